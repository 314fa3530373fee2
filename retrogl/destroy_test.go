// This file is part of Rustation.
//
// Rustation is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rustation is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rustation.  If not, see <https://www.gnu.org/licenses/>.

package retrogl_test

import (
	"testing"

	"github.com/simias/rustation-libretro/retrogl"
)

// a failed renderer construction tears everything down with a single Destroy,
// including resources that were never created. destroying nil or zero-valued
// wrappers must not panic and must not reach the graphics driver
func TestDestroyPartiallyBuilt(t *testing.T) {
	var tex *retrogl.Texture
	tex.Destroy()
	(&retrogl.Texture{}).Destroy()

	var buf *retrogl.DrawBuffer[struct{}]
	buf.Destroy()
	(&retrogl.DrawBuffer[struct{}]{}).Destroy()

	var vao *retrogl.VertexArrayObject
	vao.Destroy()
	(&retrogl.VertexArrayObject{}).Destroy()

	var prg *retrogl.Program
	prg.Destroy()
	(&retrogl.Program{}).Destroy()
}

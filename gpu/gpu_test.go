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

package gpu_test

import (
	"testing"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/test"
)

func TestVideoClock(t *testing.T) {
	test.ExpectEquality(t, gpu.Ntsc.String(), "NTSC")
	test.ExpectEquality(t, gpu.Pal.String(), "PAL")

	test.ExpectEquality(t, gpu.Ntsc.Framerate(), 59.81)
	test.ExpectEquality(t, gpu.Pal.Framerate(), 49.76)
}

func TestVRAMDimensions(t *testing.T) {
	test.ExpectEquality(t, gpu.VRAMPixels, 1024*512)
}

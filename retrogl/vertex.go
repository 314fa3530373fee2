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

package retrogl

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Attribute describes one field of a vertex struct: the name it's bound to
// in the shader, the number of components, the GL component type and the
// byte offset of the field within the struct.
type Attribute struct {
	Name       string
	Components int32
	GLType     uint32
	Offset     uintptr
}

// integer reports whether the attribute must be bound with the integer
// pointer variant (no normalization, exposed to the shader as ivec/uvec).
func (attr Attribute) integer() bool {
	switch attr.GLType {
	case gl.BYTE, gl.UNSIGNED_BYTE, gl.SHORT, gl.UNSIGNED_SHORT, gl.INT, gl.UNSIGNED_INT:
		return true
	}
	return false
}

// VertexArrayObject captures the attribute bindings of a single DrawBuffer.
type VertexArrayObject struct {
	id uint32
}

// NewVertexArrayObject generates a new VAO.
func NewVertexArrayObject() (*VertexArrayObject, error) {
	vao := &VertexArrayObject{}
	gl.GenVertexArrays(1, &vao.id)
	if err := CheckError(); err != nil {
		return nil, err
	}
	return vao, nil
}

// Bind makes the VAO current.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.id)
}

// Destroy releases the VAO handle. Destroying a nil VAO is a no-op.
func (vao *VertexArrayObject) Destroy() {
	if vao == nil {
		return
	}
	if vao.id != 0 {
		gl.DeleteVertexArrays(1, &vao.id)
		vao.id = 0
	}
}

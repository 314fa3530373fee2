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
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// DrawBuffer is a capacity-bounded vertex buffer bound to a shader program
// and a vertex layout. The VAO captures the attribute bindings so only the
// VAO needs rebinding at draw time. I'm assuming that each VAO will only
// ever use a single buffer.
type DrawBuffer[V any] struct {
	id      uint32
	vao     *VertexArrayObject
	program *Program

	// number of vertices the device-side storage can hold
	capacity int

	// current number of vertices in the buffer
	len int

	// byte size of a single vertex
	stride int32
}

// NewDrawBuffer allocates device-side storage for capacity vertices of type
// V and binds the declared attributes to the program's input names. The
// buffer takes ownership of the program.
func NewDrawBuffer[V any](capacity int, program *Program, attributes []Attribute) (*DrawBuffer[V], error) {
	vao, err := NewVertexArrayObject()
	if err != nil {
		return nil, fmt.Errorf("draw buffer: %w", err)
	}

	var v V
	buf := &DrawBuffer[V]{
		vao:      vao,
		program:  program,
		capacity: capacity,
		stride:   int32(unsafe.Sizeof(v)),
	}

	gl.GenBuffers(1, &buf.id)

	if err := buf.Clear(); err != nil {
		return nil, fmt.Errorf("draw buffer: %w", err)
	}

	if err := buf.bindAttributes(attributes); err != nil {
		return nil, fmt.Errorf("draw buffer: %w", err)
	}

	return buf, nil
}

// bindAttributes specifies the vertex attribute layout and captures it in
// the VAO.
func (buf *DrawBuffer[V]) bindAttributes(attributes []Attribute) error {
	buf.vao.Bind()

	// ARRAY_BUFFER is captured by the VertexAttrib*Pointer calls below
	buf.bind()

	for _, attr := range attributes {
		index, ok := buf.program.FindAttribute(attr.Name)
		if !ok {
			// the shader doesn't use this attribute. it could be caused by
			// shader optimization if the attribute is unused for some reason
			continue
		}

		gl.EnableVertexAttribArray(index)

		if attr.integer() {
			gl.VertexAttribIPointerWithOffset(index, attr.Components, attr.GLType, buf.stride, attr.Offset)
		} else {
			gl.VertexAttribPointerWithOffset(index, attr.Components, attr.GLType, false, buf.stride, attr.Offset)
		}
	}

	return CheckError()
}

// EnableAttribute enables a named attribute in the buffer's VAO.
func (buf *DrawBuffer[V]) EnableAttribute(name string) error {
	index, ok := buf.program.FindAttribute(name)
	if !ok {
		return fmt.Errorf("draw buffer: no attribute %q", name)
	}

	buf.vao.Bind()
	gl.EnableVertexAttribArray(index)

	return CheckError()
}

// DisableAttribute disables a named attribute in the buffer's VAO. A
// disabled attribute reads as a constant in the shader.
func (buf *DrawBuffer[V]) DisableAttribute(name string) error {
	index, ok := buf.program.FindAttribute(name)
	if !ok {
		return fmt.Errorf("draw buffer: no attribute %q", name)
	}

	buf.vao.Bind()
	gl.DisableVertexAttribArray(index)

	return CheckError()
}

// Program returns the program the buffer draws with.
func (buf *DrawBuffer[V]) Program() *Program {
	return buf.program
}

// bind binds the underlying buffer object to ARRAY_BUFFER.
func (buf *DrawBuffer[V]) bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.id)
}

// Clear resets the logical length to zero and orphans the device storage,
// allocating a fresh backing store instead of overwriting one that may still
// be referenced by an in-flight draw.
//
// https://www.opengl.org/wiki/Buffer_Object_Streaming
func (buf *DrawBuffer[V]) Clear() error {
	buf.bind()

	storageSize := buf.capacity * int(buf.stride)
	gl.BufferData(gl.ARRAY_BUFFER, storageSize, nil, gl.DYNAMIC_DRAW)

	buf.len = 0

	return CheckError()
}

// PushSlice appends vertices to the buffer. It fails with ErrCapacity if the
// slice doesn't fit in the remaining room; the caller must draw and clear
// first.
func (buf *DrawBuffer[V]) PushSlice(slice []V) error {
	n := len(slice)

	if n > buf.Remaining() {
		return fmt.Errorf("draw buffer: %w", ErrCapacity)
	}

	offsetBytes := buf.len * int(buf.stride)
	sizeBytes := n * int(buf.stride)

	buf.bind()
	gl.BufferSubData(gl.ARRAY_BUFFER, offsetBytes, sizeBytes, gl.Ptr(slice))

	if err := CheckError(); err != nil {
		return err
	}

	buf.len += n

	return nil
}

// Draw issues a single draw call over the current buffer length. The buffer
// is not cleared.
func (buf *DrawBuffer[V]) Draw(topology uint32) error {
	buf.vao.Bind()
	buf.program.Bind()

	gl.DrawArrays(topology, 0, int32(buf.len))

	return CheckError()
}

// Remaining returns the number of vertices that can still be pushed before
// the buffer must be drawn and cleared.
func (buf *DrawBuffer[V]) Remaining() int {
	return buf.capacity - buf.len
}

// Empty reports whether the buffer holds no vertices.
func (buf *DrawBuffer[V]) Empty() bool {
	return buf.len == 0
}

// Destroy releases the buffer object, its VAO and its program. Destroying a
// nil buffer is a no-op so partially built renderer state can be torn down
// unconditionally.
func (buf *DrawBuffer[V]) Destroy() {
	if buf == nil {
		return
	}
	if buf.id != 0 {
		gl.DeleteBuffers(1, &buf.id)
		buf.id = 0
	}
	buf.vao.Destroy()
	buf.program.Destroy()
}

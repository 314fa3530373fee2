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
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// ErrCapacity is returned by DrawBuffer.PushSlice when the pushed slice
// doesn't fit in the buffer. Callers are expected to have drawn and cleared
// the buffer before this can happen.
var ErrCapacity = errors.New("not enough room left in buffer")

// Error is an error code raised by the OpenGL driver.
type Error uint32

func (e Error) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return fmt.Sprintf("unknown error (%#x)", uint32(e))
}

// CheckError returns the currently raised OpenGL error flag, if any.
func CheckError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return Error(code)
	}
	return nil
}

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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// compileShader compiles a single shader stage and returns its handle. On
// failure the handle is released and the error includes the stage name and
// the driver's info log.
func compileShader(source string, stage uint32) (uint32, error) {
	handle := gl.CreateShader(stage)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(handle)
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("%s shader compilation failed: %s", stageName(stage), log)
	}

	return handle, CheckError()
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

// shaderInfoLog returns the most recent info log for the shader handle.
func shaderInfoLog(handle uint32) string {
	var logLen int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return "no shader info log"
	}

	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(handle, logLen, &logLen, gl.Str(log))

	return strings.TrimRight(log, "\x00")
}

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

// Program is a linked pair of vertex and fragment shaders. Uniforms and
// attributes are addressed by the names declared in the GLSL sources.
type Program struct {
	handle uint32
}

// NewProgram compiles both stages and links them into a program. The
// individual shader handles are released once the program has linked.
func NewProgram(vertexSource string, fragmentSource string) (*Program, error) {
	vert, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}

	frag, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("program: %w", err)
	}

	prg := &Program{handle: gl.CreateProgram()}

	gl.AttachShader(prg.handle, vert)
	gl.AttachShader(prg.handle, frag)
	gl.LinkProgram(prg.handle)

	// the program keeps the stages alive, the individual handles are no
	// longer needed
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prg.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := prg.infoLog()
		prg.Destroy()
		return nil, fmt.Errorf("program: link failed: %s", log)
	}

	return prg, CheckError()
}

func (prg *Program) infoLog() string {
	var logLen int32
	gl.GetProgramiv(prg.handle, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return "no program info log"
	}

	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prg.handle, logLen, &logLen, gl.Str(log))

	return strings.TrimRight(log, "\x00")
}

// Bind makes the program current.
func (prg *Program) Bind() {
	gl.UseProgram(prg.handle)
}

// Destroy releases the program handle. Destroying a nil program is a no-op
// so partially built renderer state can be torn down unconditionally.
func (prg *Program) Destroy() {
	if prg == nil {
		return
	}
	if prg.handle != 0 {
		gl.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}

// FindAttribute returns the location of a named vertex attribute. The second
// return value is false if the program doesn't use the attribute, which can
// be caused by shader optimization if the attribute is unused.
func (prg *Program) FindAttribute(name string) (uint32, bool) {
	loc := gl.GetAttribLocation(prg.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (prg *Program) uniform(name string) int32 {
	return gl.GetUniformLocation(prg.handle, gl.Str(name+"\x00"))
}

// Uniform1i sets a named int uniform. Setting a uniform the shader doesn't
// declare is a no-op, matching how the driver treats location -1.
func (prg *Program) Uniform1i(name string, v int32) error {
	prg.Bind()
	gl.Uniform1i(prg.uniform(name), v)
	return CheckError()
}

// Uniform1ui sets a named uint uniform.
func (prg *Program) Uniform1ui(name string, v uint32) error {
	prg.Bind()
	gl.Uniform1ui(prg.uniform(name), v)
	return CheckError()
}

// Uniform2i sets a named ivec2 uniform.
func (prg *Program) Uniform2i(name string, a int32, b int32) error {
	prg.Bind()
	gl.Uniform2i(prg.uniform(name), a, b)
	return CheckError()
}

// Uniform1f sets a named float uniform.
func (prg *Program) Uniform1f(name string, v float32) error {
	prg.Bind()
	gl.Uniform1f(prg.uniform(name), v)
	return CheckError()
}

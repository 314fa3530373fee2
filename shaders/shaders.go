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

// Package shaders embeds the GLSL sources used by the renderer.
package shaders

import _ "embed"

//go:embed "command.vert"
var CommandVertexShader []byte

//go:embed "command.frag"
var CommandFragmentShader []byte

//go:embed "output.vert"
var OutputVertexShader []byte

//go:embed "output.frag"
var OutputFragmentShader []byte

//go:embed "image_load.vert"
var ImageLoadVertexShader []byte

//go:embed "image_load.frag"
var ImageLoadFragmentShader []byte

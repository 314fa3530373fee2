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

// Package gpu defines the value types shared between the emulated GPU and
// the renderer backends: vertices, primitive attributes, texture depths,
// blending modes and the Renderer interface through which the emulation
// core issues its draw commands.
//
// The types in this package carry no logic beyond simple conversions and
// never touch the graphics API. A renderer backend (package renderer) is
// free to translate them however it sees fit.
package gpu

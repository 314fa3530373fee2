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

// Package renderer implements the PlayStation GPU rasterizer on top of
// OpenGL 3.2.
//
// The RetroGl type is the entry point. It owns the renderer across hardware
// context losses: while a context is available draw commands reach a
// GlRenderer, otherwise they reach a placeholder that keeps the draw
// configuration (including the VRAM shadow copy) up to date so that the
// GlRenderer can be rebuilt when the frontend provides a new context.
//
// GPU draw commands are batched and only flushed to OpenGL when a command is
// incompatible with the batched ones (different primitive topology or
// conflicting semi-transparency blending) or when the vertex buffer is full.
// Draw order between opaque and semi-transparent primitives is preserved
// with the depth buffer: every primitive is assigned an increasing ordering
// index carried in the Z coordinate.
package renderer

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

// Package retrogl wraps the raw OpenGL objects used by the renderer: shader
// programs, vertex buffers, textures and framebuffers. Each wrapper owns
// exactly one native handle and releases it with Destroy(). No handle ever
// outlives the hardware context generation it was created in; when the
// frontend destroys the context every wrapper must be destroyed and rebuilt.
//
// The package also defines DrawConfig, the durable subset of renderer state
// that survives context loss. DrawConfig lives entirely in host memory and
// is the single source of truth for VRAM contents.
package retrogl

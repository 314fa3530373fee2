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

// Package libretro declares the contract between the renderer and the
// frontend hosting it: the hardware-context services the renderer consumes
// every frame (current framebuffer, proc addresses), the geometry
// negotiation callbacks and the core options the user can change at
// runtime.
//
// The package contains no frontend implementation. A real libretro plugin
// shim, or the standalone SDL harness at the repository root, provides the
// Host interface.
package libretro

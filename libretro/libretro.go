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

package libretro

import (
	"unsafe"
)

// GameGeometry describes the video output geometry negotiated with the
// frontend.
type GameGeometry struct {
	// nominal video output resolution
	BaseWidth  uint32
	BaseHeight uint32

	// maximum possible resolution, used by the frontend to size its
	// framebuffer once. ignored by geometry-only renegotiations
	MaxWidth  uint32
	MaxHeight uint32

	// AspectRatio <= 0 means the frontend assumes BaseWidth/BaseHeight
	AspectRatio float32
}

// SystemTiming describes the audio/video timing of the emulated system.
type SystemTiming struct {
	FPS        float64
	SampleRate float64
}

// SystemAVInfo is the complete audio/video parameter set reported to the
// frontend when a session starts.
type SystemAVInfo struct {
	Geometry GameGeometry
	Timing   SystemTiming
}

// HWContext gives access to the frontend's hardware rendering context. Both
// values must be re-queried whenever they're needed: the framebuffer can
// change every frame and proc addresses are only valid for the current
// context generation.
type HWContext interface {
	// CurrentFramebuffer returns the native handle of the framebuffer the
	// frontend wants the frame rendered into.
	CurrentFramebuffer() uint32

	// ProcAddress resolves an OpenGL symbol in the current context.
	ProcAddress(name string) unsafe.Pointer
}

// Host is the set of frontend services the renderer consumes. Implementors
// must be prepared for SetGeometry to be called in the middle of a frame;
// depending on the frontend it can destroy and recreate the whole hardware
// context.
type Host interface {
	HWContext

	// SetGeometry renegotiates the video output geometry.
	SetGeometry(geometry GameGeometry)

	// FrameDone signals that the frame has been rendered into the
	// framebuffer returned by CurrentFramebuffer, with the given output
	// dimensions.
	FrameDone(width uint32, height uint32)
}

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

package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/libretro"
	"github.com/simias/rustation-libretro/logger"
	"github.com/simias/rustation-libretro/retrogl"
)

const stateTag = "retrogl"

// ErrNoContext is returned by the frame functions while no hardware context
// is available.
var ErrNoContext = errors.New("no hardware context available")

// RetroGl owns the renderer across hardware context losses. While a context
// is alive draw commands reach the GlRenderer; in between ContextDestroy and
// ContextReset they reach a suspended placeholder that keeps the draw config
// up to date so nothing is lost.
type RetroGl struct {
	clock gpu.VideoClock
	host  libretro.Host
	vars  libretro.VariableSource

	// live renderer, nil while the hardware context is down
	rnd *GlRenderer

	// placeholder holding the draw config while the context is down, nil
	// while the renderer is live
	suspended *suspendedRenderer
}

// NewRetroGl returns a RetroGl in the suspended state with a power-up draw
// config. The renderer becomes usable after the first ContextReset.
func NewRetroGl(clock gpu.VideoClock, host libretro.Host,
	vars libretro.VariableSource) *RetroGl {

	logger.Logf(logger.Allow, stateTag, "initialized renderer (%s)", clock)

	return &RetroGl{
		clock:     clock,
		host:      host,
		vars:      vars,
		suspended: &suspendedRenderer{config: retrogl.NewDrawConfig()},
	}
}

// ContextReset builds a new GlRenderer for the fresh hardware context,
// restoring the draw config (and through it the VRAM contents) carried over
// from the previous context.
func (r *RetroGl) ContextReset() error {
	logger.Log(logger.Allow, stateTag, "OpenGL context reset")

	err := gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		return r.host.ProcAddress(name)
	})
	if err != nil {
		return fmt.Errorf("OpenGL loader: %w", err)
	}

	var config *retrogl.DrawConfig

	if r.rnd != nil {
		// reset without a destroy notification. the old context is gone so
		// the old device handles are already invalid; just drop them
		config = r.rnd.Config()
		r.rnd = nil
	} else {
		config = r.suspended.config
	}

	rnd, err := FromConfig(config, r.host, r.vars)
	if err != nil {
		r.suspended = &suspendedRenderer{config: config}
		return fmt.Errorf("context reset: %w", err)
	}

	r.rnd = rnd
	r.suspended = nil

	return nil
}

// ContextDestroy releases the device-side state and switches to the
// suspended placeholder. The draw config survives.
func (r *RetroGl) ContextDestroy() {
	if r.rnd == nil {
		return
	}

	logger.Log(logger.Allow, stateTag, "OpenGL context destroyed")

	config := r.rnd.Config().Clone()
	r.rnd.Destroy()
	r.rnd = nil

	r.suspended = &suspendedRenderer{config: config}
}

// Live reports whether a hardware context is currently available.
func (r *RetroGl) Live() bool {
	return r.rnd != nil
}

// Renderer returns the target for GPU draw commands. It's always usable:
// while no context is available the suspended placeholder accepts the
// commands that mutate durable state and drops the rest.
func (r *RetroGl) Renderer() gpu.Renderer {
	if r.rnd != nil {
		return r.rnd
	}
	return r.suspended
}

// PrepareRender sets up the frame. Must be called before any draw command of
// the frame reaches the renderer.
func (r *RetroGl) PrepareRender() error {
	if r.rnd == nil {
		return ErrNoContext
	}

	r.rnd.PrepareRender()
	return nil
}

// FinalizeFrame flushes the frame to the frontend's framebuffer.
func (r *RetroGl) FinalizeFrame() error {
	if r.rnd == nil {
		return ErrNoContext
	}

	return r.rnd.FinalizeFrame()
}

// RenderFrame runs one full frame: it prepares the render state, hands the
// renderer to the closure issuing the frame's draw commands and finalizes
// the frame.
func (r *RetroGl) RenderFrame(frame func(gpu.Renderer)) error {
	if r.rnd == nil {
		return ErrNoContext
	}

	r.rnd.PrepareRender()
	frame(r.rnd)
	return r.rnd.FinalizeFrame()
}

// RefreshVariables reloads the core options into the live renderer. It
// returns true if the output geometry must be renegotiated with the
// frontend. If the new options can't be applied the previous configuration
// stays live.
func (r *RetroGl) RefreshVariables() (bool, error) {
	if r.rnd == nil {
		return false, ErrNoContext
	}

	return r.rnd.RefreshVariables()
}

// SystemAVInfo returns the audio/video parameters for the current video
// clock and upscaling factor.
func (r *RetroGl) SystemAVInfo() libretro.SystemAVInfo {
	upscaling := r.vars.Variables().InternalResolution
	if upscaling < 1 {
		upscaling = 1
	}

	// maximum resolution supported by the PlayStation video output is
	// 640x480
	maxWidth := 640 * upscaling
	maxHeight := 480 * upscaling

	return libretro.SystemAVInfo{
		Geometry: libretro.GameGeometry{
			// the base resolution is renegotiated before the first frame is
			// rendered so this value is not important
			BaseWidth:   maxWidth,
			BaseHeight:  maxHeight,
			MaxWidth:    maxWidth,
			MaxHeight:   maxHeight,
			AspectRatio: 4. / 3.,
		},
		Timing: libretro.SystemTiming{
			FPS:        float64(r.clock.Framerate()),
			SampleRate: 44100,
		},
	}
}

// suspendedRenderer accepts GPU draw commands while no hardware context is
// available. Commands that mutate durable state update the draw config,
// actual drawing is dropped with a warning.
type suspendedRenderer struct {
	config *retrogl.DrawConfig
}

// SetDrawOffset implements the gpu.Renderer interface.
func (s *suspendedRenderer) SetDrawOffset(x int16, y int16) {
	s.config.DrawOffset = [2]int16{x, y}
}

// SetDrawArea implements the gpu.Renderer interface.
func (s *suspendedRenderer) SetDrawArea(topLeft [2]uint16, dimensions [2]uint16) {
	s.config.DrawAreaTopLeft = topLeft
	s.config.DrawAreaDimensions = dimensions
}

// SetDisplayMode implements the gpu.Renderer interface.
func (s *suspendedRenderer) SetDisplayMode(topLeft [2]uint16,
	resolution [2]uint16, depth24bpp bool) {

	s.config.DisplayTopLeft = topLeft
	s.config.DisplayResolution = resolution
	s.config.Display24bpp = depth24bpp
}

// PushLine implements the gpu.Renderer interface.
func (s *suspendedRenderer) PushLine(_ *gpu.PrimitiveAttributes, _ *[2]gpu.Vertex) {
	logger.Log(logger.Allow, stateTag, "line draw command without a context")
}

// PushTriangle implements the gpu.Renderer interface.
func (s *suspendedRenderer) PushTriangle(_ *gpu.PrimitiveAttributes, _ *[3]gpu.Vertex) {
	logger.Log(logger.Allow, stateTag, "triangle draw command without a context")
}

// PushQuad implements the gpu.Renderer interface.
func (s *suspendedRenderer) PushQuad(_ *gpu.PrimitiveAttributes, _ *[4]gpu.Vertex) {
	logger.Log(logger.Allow, stateTag, "quad draw command without a context")
}

// FillRect implements the gpu.Renderer interface.
func (s *suspendedRenderer) FillRect(_ [3]uint8, _ [2]uint16, _ [2]uint16) {
	logger.Log(logger.Allow, stateTag, "fill rect command without a context")
}

// LoadImage implements the gpu.Renderer interface. The pixels are stored in
// the VRAM shadow copy so the upload isn't lost: it will reach the device
// when the next context is built.
func (s *suspendedRenderer) LoadImage(topLeft [2]uint16, resolution [2]uint16,
	pixels []uint16) {

	s.config.StoreImage(topLeft, resolution, pixels)
}

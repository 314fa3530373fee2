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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/libretro"
	"github.com/simias/rustation-libretro/logger"
	"github.com/simias/rustation-libretro/renderer"
	"github.com/simias/rustation-libretro/statsview"
)

func init() {
	// OpenGL and SDL want to be on the main thread
	runtime.LockOSThread()
}

// sdlHost adapts an SDL window to the frontend interface consumed by the
// renderer.
type sdlHost struct {
	window *sdl.Window
}

// CurrentFramebuffer implements the libretro.HWContext interface. Rendering
// goes straight to the window's default framebuffer.
func (h *sdlHost) CurrentFramebuffer() uint32 {
	return 0
}

// ProcAddress implements the libretro.HWContext interface.
func (h *sdlHost) ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// SetGeometry implements the libretro.Host interface.
func (h *sdlHost) SetGeometry(geometry libretro.GameGeometry) {
	h.window.SetSize(int32(geometry.BaseWidth), int32(geometry.BaseHeight))
}

// FrameDone implements the libretro.Host interface.
func (h *sdlHost) FrameDone(_ uint32, _ uint32) {
	h.window.GLSwap()
}

// coreOptions is a mutable variable store. The renderer picks up changes on
// the next RefreshVariables.
type coreOptions struct {
	vars libretro.CoreVariables
}

// Variables implements the libretro.VariableSource interface.
func (opts *coreOptions) Variables() libretro.CoreVariables {
	return opts.vars
}

func run() error {
	upscale := flag.String("upscale", "1x (native)", "internal upscaling factor (1x to 12x)")
	depth := flag.String("depth", "dithered 16bpp (native)", "internal color depth (16bpp or 32bpp)")
	pal := flag.Bool("pal", false, "use PAL video timings")
	wireframe := flag.Bool("wireframe", false, "render polygons as wireframes")
	scaleDither := flag.Bool("scaledither", false, "scale dithering pattern with internal resolution")
	stats := flag.Bool("statsview", false, "run stats server (requires the statsview build tag)")
	flag.Parse()

	logger.SetEcho(os.Stdout, true)

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("statsview not available in this build")
		}
	}

	opts := &coreOptions{}

	var err error
	if opts.vars.InternalResolution, err = libretro.ParseUpscale(*upscale); err != nil {
		return err
	}
	if opts.vars.InternalColorDepth, err = libretro.ParseColorDepth(*depth); err != nil {
		return err
	}
	opts.vars.Wireframe = *wireframe
	opts.vars.ScaleDither = *scaleDither

	clock := gpu.Ntsc
	if *pal {
		clock = gpu.Pal
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer sdl.Quit()

	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	window, err := sdl.CreateWindow("Rustation",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		640, 480, sdl.WINDOW_OPENGL)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer sdl.GLDeleteContext(glContext)

	if err := window.GLMakeCurrent(glContext); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	host := &sdlHost{window: window}
	rgl := renderer.NewRetroGl(clock, host, opts)

	if err := rgl.ContextReset(); err != nil {
		return err
	}
	defer rgl.ContextDestroy()

	info := rgl.SystemAVInfo()
	logger.Logf(logger.Allow, "main", "%s output at %.2ffps, up to %dx%d",
		clock, info.Timing.FPS, info.Geometry.MaxWidth, info.Geometry.MaxHeight)

	frame := 0

	for {
		quit := false

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				quit = true

			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN {
					break
				}

				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					quit = true

				case sdl.K_u:
					// cycle the upscaling factor
					opts.vars.InternalResolution = opts.vars.InternalResolution%4 + 1
					refreshVariables(rgl, opts)

				case sdl.K_b:
					// toggle the internal color depth
					if opts.vars.InternalColorDepth == 16 {
						opts.vars.InternalColorDepth = 32
					} else {
						opts.vars.InternalColorDepth = 16
					}
					refreshVariables(rgl, opts)

				case sdl.K_w:
					opts.vars.Wireframe = !opts.vars.Wireframe
					refreshVariables(rgl, opts)

				case sdl.K_c:
					// simulate a context loss
					rgl.ContextDestroy()
					if err := rgl.ContextReset(); err != nil {
						return err
					}
				}
			}
		}

		if quit {
			break
		}

		if err := rgl.RenderFrame(func(rnd gpu.Renderer) {
			demoFrame(rnd, frame)
		}); err != nil {
			return err
		}

		frame++
	}

	return nil
}

// refreshVariables pushes new core options into the renderer, renegotiating
// the output geometry with the frontend if needed.
func refreshVariables(rgl *renderer.RetroGl, opts *coreOptions) {
	reconfigure, err := rgl.RefreshVariables()
	if err != nil {
		logger.Logf(logger.Allow, "main", "refresh variables: %v", err)
		return
	}

	if reconfigure {
		info := rgl.SystemAVInfo()
		logger.Logf(logger.Allow, "main", "renegotiated output: up to %dx%d",
			info.Geometry.MaxWidth, info.Geometry.MaxHeight)
	}
}

// demoFrame issues a frame's worth of GPU draw commands exercising the
// renderer: a full-screen fill, flat and gouraud shaded polygons, a
// semi-transparent quad for each blending mode and a couple of lines.
func demoFrame(rnd gpu.Renderer, frame int) {
	rnd.SetDisplayMode([2]uint16{0, 0}, [2]uint16{640, 480}, false)
	rnd.SetDrawArea([2]uint16{0, 0}, [2]uint16{640, 480})
	rnd.SetDrawOffset(0, 0)

	rnd.FillRect([3]uint8{30, 30, 50}, [2]uint16{0, 0}, [2]uint16{640, 480})

	pulse := uint8(frame % 256)

	// gouraud shaded triangle
	rnd.PushTriangle(&gpu.PrimitiveAttributes{Dither: true}, &[3]gpu.Vertex{
		{Position: [2]int16{320, 60}, Color: [3]uint8{255, pulse, 0}},
		{Position: [2]int16{160, 360}, Color: [3]uint8{0, 255, pulse}},
		{Position: [2]int16{480, 360}, Color: [3]uint8{pulse, 0, 255}},
	})

	// one semi-transparent quad per blending mode
	modes := []gpu.SemiTransparencyMode{
		gpu.Average, gpu.Add, gpu.SubtractSource, gpu.AddQuarterSource,
	}

	for i, mode := range modes {
		x := int16(40 + i*150)
		y := int16(180)

		attributes := &gpu.PrimitiveAttributes{
			SemiTransparent:      true,
			SemiTransparencyMode: mode,
		}

		rnd.PushQuad(attributes, &[4]gpu.Vertex{
			{Position: [2]int16{x, y}, Color: [3]uint8{200, 200, 200}},
			{Position: [2]int16{x + 120, y}, Color: [3]uint8{200, 200, 200}},
			{Position: [2]int16{x, y + 120}, Color: [3]uint8{200, 200, 200}},
			{Position: [2]int16{x + 120, y + 120}, Color: [3]uint8{200, 200, 200}},
		})
	}

	// crossing lines on top
	rnd.PushLine(&gpu.PrimitiveAttributes{}, &[2]gpu.Vertex{
		{Position: [2]int16{0, 0}, Color: [3]uint8{255, 255, 255}},
		{Position: [2]int16{639, 479}, Color: [3]uint8{255, 255, 255}},
	})
	rnd.PushLine(&gpu.PrimitiveAttributes{}, &[2]gpu.Vertex{
		{Position: [2]int16{639, 0}, Color: [3]uint8{255, 255, 255}},
		{Position: [2]int16{0, 479}, Color: [3]uint8{255, 255, 255}},
	})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rustation: %v\n", err)
		os.Exit(1)
	}
}

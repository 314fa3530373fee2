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
	"testing"
	"unsafe"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/libretro"
	"github.com/simias/rustation-libretro/test"
)

type stubHost struct {
	geometries []libretro.GameGeometry
	frames     [][2]uint32
}

func (h *stubHost) CurrentFramebuffer() uint32 {
	return 0
}

func (h *stubHost) ProcAddress(_ string) unsafe.Pointer {
	return nil
}

func (h *stubHost) SetGeometry(geometry libretro.GameGeometry) {
	h.geometries = append(h.geometries, geometry)
}

func (h *stubHost) FrameDone(width uint32, height uint32) {
	h.frames = append(h.frames, [2]uint32{width, height})
}

type stubVars struct {
	v libretro.CoreVariables
}

func (s stubVars) Variables() libretro.CoreVariables {
	return s.v
}

func newSuspendedRetroGl(upscale uint32) *RetroGl {
	return NewRetroGl(gpu.Ntsc, &stubHost{}, stubVars{libretro.CoreVariables{
		InternalResolution: upscale,
		InternalColorDepth: 16,
	}})
}

func TestNoContext(t *testing.T) {
	r := newSuspendedRetroGl(1)

	test.ExpectEquality(t, r.Live(), false)

	// frame functions are unavailable until the first context reset
	test.ExpectEquality(t, r.PrepareRender(), ErrNoContext)
	test.ExpectEquality(t, r.FinalizeFrame(), ErrNoContext)
	test.ExpectEquality(t, r.RenderFrame(func(_ gpu.Renderer) {}), ErrNoContext)

	_, err := r.RefreshVariables()
	test.ExpectEquality(t, err, ErrNoContext)

	// destroying a context that was never created is harmless
	r.ContextDestroy()
	test.ExpectEquality(t, r.Live(), false)
}

func TestSuspendedConfigMutation(t *testing.T) {
	r := newSuspendedRetroGl(1)

	rnd := r.Renderer()

	rnd.SetDrawOffset(-64, 32)
	rnd.SetDrawArea([2]uint16{8, 16}, [2]uint16{256, 240})
	rnd.SetDisplayMode([2]uint16{0, 256}, [2]uint16{320, 240}, true)

	config := r.suspended.config

	test.ExpectEquality(t, config.DrawOffset, [2]int16{-64, 32})
	test.ExpectEquality(t, config.DrawAreaTopLeft, [2]uint16{8, 16})
	test.ExpectEquality(t, config.DrawAreaDimensions, [2]uint16{256, 240})
	test.ExpectEquality(t, config.DisplayTopLeft, [2]uint16{0, 256})
	test.ExpectEquality(t, config.DisplayResolution, [2]uint16{320, 240})
	test.ExpectEquality(t, config.Display24bpp, true)
}

func TestSuspendedImageLoad(t *testing.T) {
	r := newSuspendedRetroGl(1)

	rnd := r.Renderer()

	pixels := []uint16{0x8000, 0x801f, 0x83e0, 0xfc00}
	rnd.LoadImage([2]uint16{100, 200}, [2]uint16{2, 2}, pixels)

	// the upload lands in the VRAM shadow copy so it will reach the device
	// when the next context is built
	vram := r.suspended.config.VRAM
	test.ExpectEquality(t, vram[200*gpu.VRAMWidthPixels+100], uint16(0x8000))
	test.ExpectEquality(t, vram[200*gpu.VRAMWidthPixels+101], uint16(0x801f))
	test.ExpectEquality(t, vram[201*gpu.VRAMWidthPixels+100], uint16(0x83e0))
	test.ExpectEquality(t, vram[201*gpu.VRAMWidthPixels+101], uint16(0xfc00))

	// draw commands are dropped without touching the config
	rnd.PushTriangle(&gpu.PrimitiveAttributes{}, triangle(0))
	rnd.PushQuad(&gpu.PrimitiveAttributes{}, quad(0))
	rnd.PushLine(&gpu.PrimitiveAttributes{}, line(0))
	rnd.FillRect([3]uint8{255, 0, 0}, [2]uint16{0, 0}, [2]uint16{64, 64})

	test.ExpectEquality(t, vram[0], uint16(0xdead))
}

func TestSystemAVInfo(t *testing.T) {
	r := newSuspendedRetroGl(2)

	info := r.SystemAVInfo()

	test.ExpectEquality(t, info.Geometry.MaxWidth, uint32(1280))
	test.ExpectEquality(t, info.Geometry.MaxHeight, uint32(960))
	test.ExpectEquality(t, info.Geometry.AspectRatio, float32(4.)/3.)
	test.ExpectEquality(t, info.Timing.FPS, float64(gpu.Ntsc.Framerate()))
	test.ExpectEquality(t, info.Timing.SampleRate, 44100.)
}

func TestSystemAVInfoPal(t *testing.T) {
	r := NewRetroGl(gpu.Pal, &stubHost{}, stubVars{libretro.CoreVariables{
		InternalResolution: 1,
		InternalColorDepth: 16,
	}})

	info := r.SystemAVInfo()

	test.ExpectEquality(t, info.Geometry.MaxWidth, uint32(640))
	test.ExpectEquality(t, info.Geometry.MaxHeight, uint32(480))
	test.ExpectEquality(t, info.Timing.FPS, float64(gpu.Pal.Framerate()))
}

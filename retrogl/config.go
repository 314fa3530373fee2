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
	"github.com/simias/rustation-libretro/gpu"
)

// DrawConfig is the durable subset of renderer state: everything needed to
// rebuild the device-side resources after the hardware context has been
// destroyed and recreated. VRAM is the single source of truth for texture
// sampling and must be kept byte-for-byte consistent with what has been
// drawn into the device-side VRAM texture.
type DrawConfig struct {
	// portion of VRAM displayed on screen
	DisplayTopLeft    [2]uint16
	DisplayResolution [2]uint16

	// color depth used when reading the displayed framebuffer back: 24bpp
	// packed pixels instead of the native 16bpp
	Display24bpp bool

	// signed translation added to every vertex position before
	// rasterization
	DrawOffset [2]int16

	// clipping rectangle, implemented as a scissor box on the device
	DrawAreaTopLeft    [2]uint16
	DrawAreaDimensions [2]uint16

	// full addressable video memory, 1024x512 16bit pixels, row-major
	VRAM []uint16
}

// NewDrawConfig returns a DrawConfig with power-up defaults. The real
// hardware's VRAM contents are undefined at power-up; the 0xdead fill makes
// uninitialized reads easy to spot.
func NewDrawConfig() *DrawConfig {
	config := &DrawConfig{
		DisplayTopLeft:     [2]uint16{0, 0},
		DisplayResolution:  [2]uint16{640, 480},
		Display24bpp:       false,
		DrawOffset:         [2]int16{0, 0},
		DrawAreaTopLeft:    [2]uint16{0, 0},
		DrawAreaDimensions: [2]uint16{gpu.VRAMWidthPixels, gpu.VRAMHeight},
		VRAM:               make([]uint16, gpu.VRAMPixels),
	}

	for i := range config.VRAM {
		config.VRAM[i] = 0xdead
	}

	return config
}

// Clone returns a deep copy of the config. Used when handing the config
// between the live and suspended renderer states.
func (config *DrawConfig) Clone() *DrawConfig {
	clone := *config
	clone.VRAM = make([]uint16, len(config.VRAM))
	copy(clone.VRAM, config.VRAM)
	return &clone
}

// StoreImage copies a rectangle of pixels into VRAM. pixels is row-major
// with a row stride equal to the rectangle width. Updating the host-memory
// copy alongside the device texture means the image survives the loss of
// the hardware context.
func (config *DrawConfig) StoreImage(topLeft [2]uint16, resolution [2]uint16, pixels []uint16) {
	xStart := int(topLeft[0])
	yStart := int(topLeft[1])
	w := int(resolution[0])
	h := int(resolution[1])

	for y := 0; y < h; y++ {
		vramRow := (yStart+y)*gpu.VRAMWidthPixels + xStart
		copy(config.VRAM[vramRow:vramRow+w], pixels[y*w:(y+1)*w])
	}
}

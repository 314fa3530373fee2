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

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/test"
)

func TestMakeCommandVertex(t *testing.T) {
	attributes := &gpu.PrimitiveAttributes{
		TexturePage:          [2]uint16{320, 256},
		Clut:                 [2]uint16{16, 480},
		BlendMode:            gpu.BlendModeBlended,
		TextureDepth:         gpu.T4bpp,
		Dither:               true,
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Add,
	}

	v := gpu.Vertex{
		Position:     [2]int16{-12, 300},
		Color:        [3]uint8{0x80, 0x40, 0x20},
		TextureCoord: [2]uint16{32, 48},
	}

	cv := makeCommandVertex(attributes, v, 7)

	test.ExpectEquality(t, cv.Position, [3]int16{-12, 300, 7})
	test.ExpectEquality(t, cv.Color, [3]uint8{0x80, 0x40, 0x20})
	test.ExpectEquality(t, cv.TextureCoord, [2]uint16{32, 48})
	test.ExpectEquality(t, cv.TexturePage, [2]uint16{320, 256})
	test.ExpectEquality(t, cv.Clut, [2]uint16{16, 480})
	test.ExpectEquality(t, cv.TextureBlendMode, 2)
	test.ExpectEquality(t, cv.DepthShift, 2)
	test.ExpectEquality(t, cv.Dither, 1)
	test.ExpectEquality(t, cv.SemiTransparent, 1)
}

func TestMakeCommandVertexUntextured(t *testing.T) {
	attributes := &gpu.PrimitiveAttributes{
		BlendMode:    gpu.BlendModeNone,
		TextureDepth: gpu.T16bpp,
	}

	v := gpu.Vertex{Position: [2]int16{0, 0}}

	cv := makeCommandVertex(attributes, v, 0)

	test.ExpectEquality(t, cv.TextureBlendMode, 0)
	test.ExpectEquality(t, cv.DepthShift, 0)
	test.ExpectEquality(t, cv.Dither, 0)
	test.ExpectEquality(t, cv.SemiTransparent, 0)
}

func TestTextureDepthShift(t *testing.T) {
	test.ExpectEquality(t, gpu.T4bpp.Shift(), 2)
	test.ExpectEquality(t, gpu.T8bpp.Shift(), 1)
	test.ExpectEquality(t, gpu.T16bpp.Shift(), 0)
}

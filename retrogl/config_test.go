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

package retrogl_test

import (
	"testing"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/retrogl"
	"github.com/simias/rustation-libretro/test"
)

func TestNewDrawConfig(t *testing.T) {
	config := retrogl.NewDrawConfig()

	test.ExpectEquality(t, config.DisplayResolution, [2]uint16{640, 480})
	test.ExpectEquality(t, config.DrawAreaDimensions, [2]uint16{1024, 512})
	test.ExpectEquality(t, config.Display24bpp, false)

	test.DemandEquality(t, len(config.VRAM), gpu.VRAMPixels)
	test.ExpectEquality(t, config.VRAM[0], uint16(0xdead))
	test.ExpectEquality(t, config.VRAM[gpu.VRAMPixels-1], uint16(0xdead))
}

func TestStoreImage(t *testing.T) {
	config := retrogl.NewDrawConfig()

	pixels := []uint16{
		1, 2, 3,
		4, 5, 6,
	}

	config.StoreImage([2]uint16{10, 20}, [2]uint16{3, 2}, pixels)

	row := 20 * gpu.VRAMWidthPixels
	test.ExpectEquality(t, config.VRAM[row+10], uint16(1))
	test.ExpectEquality(t, config.VRAM[row+11], uint16(2))
	test.ExpectEquality(t, config.VRAM[row+12], uint16(3))

	row += gpu.VRAMWidthPixels
	test.ExpectEquality(t, config.VRAM[row+10], uint16(4))
	test.ExpectEquality(t, config.VRAM[row+11], uint16(5))
	test.ExpectEquality(t, config.VRAM[row+12], uint16(6))

	// pixels around the rectangle are untouched
	test.ExpectEquality(t, config.VRAM[row+9], uint16(0xdead))
	test.ExpectEquality(t, config.VRAM[row+13], uint16(0xdead))
}

func TestCloneIsDeep(t *testing.T) {
	config := retrogl.NewDrawConfig()
	config.DrawOffset = [2]int16{5, -5}
	config.VRAM[100] = 0x1234

	clone := config.Clone()

	test.ExpectEquality(t, clone.DrawOffset, [2]int16{5, -5})
	test.ExpectEquality(t, clone.VRAM[100], uint16(0x1234))

	// mutating the original doesn't leak into the clone
	config.VRAM[100] = 0x4321
	test.ExpectEquality(t, clone.VRAM[100], uint16(0x1234))
}

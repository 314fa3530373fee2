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

package libretro_test

import (
	"testing"

	"github.com/simias/rustation-libretro/libretro"
	"github.com/simias/rustation-libretro/test"
)

func TestParseUpscale(t *testing.T) {
	v, err := libretro.ParseUpscale("1x (native)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1))

	v, err = libretro.ParseUpscale("8x")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(8))

	v, err = libretro.ParseUpscale("12x")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(12))

	_, err = libretro.ParseUpscale("native")
	test.ExpectFailure(t, err)
}

func TestParseColorDepth(t *testing.T) {
	v, err := libretro.ParseColorDepth("dithered 16bpp (native)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(16))

	v, err = libretro.ParseColorDepth("32bpp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(32))

	_, err = libretro.ParseColorDepth("full")
	test.ExpectFailure(t, err)
}

func TestParseBool(t *testing.T) {
	for _, option := range []string{"true", "enabled", "on"} {
		v, err := libretro.ParseBool(option)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, true)
	}

	for _, option := range []string{"false", "disabled", "off"} {
		v, err := libretro.ParseBool(option)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, false)
	}

	_, err := libretro.ParseBool("maybe")
	test.ExpectFailure(t, err)
}

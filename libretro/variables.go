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
	"fmt"
	"strconv"
	"strings"
)

// CoreVariables is the renderer-facing view of the core options. The
// renderer only ever reads these values; ownership stays with the frontend
// shim.
type CoreVariables struct {
	// internal upscaling factor applied to the native resolution, >= 1
	InternalResolution uint32

	// internal color depth: 16 (native, dithered) or 32
	InternalColorDepth uint8

	// scale the dithering pattern with the internal resolution
	ScaleDither bool

	// render polygons as wireframes
	Wireframe bool
}

// VariableSource is how the renderer reads the current core options. The
// frontend signals option changes separately; the renderer then calls
// RefreshVariables to pick up the new values.
type VariableSource interface {
	Variables() CoreVariables
}

// ParseUpscale parses an internal resolution option value of the form
// "1x (native)", "2x", ... into the numeric upscaling factor.
func ParseUpscale(option string) (uint32, error) {
	num := strings.TrimFunc(option, func(r rune) bool {
		return r < '0' || r > '9'
	})

	v, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("variables: bad upscale option %q", option)
	}

	return uint32(v), nil
}

// ParseColorDepth parses an internal color depth option value of the form
// "dithered 16bpp (native)" or "32bpp" into the numeric depth.
func ParseColorDepth(option string) (uint8, error) {
	num := strings.TrimFunc(option, func(r rune) bool {
		return r < '0' || r > '9'
	})

	v, err := strconv.ParseUint(num, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("variables: bad color depth option %q", option)
	}

	return uint8(v), nil
}

// ParseBool parses a boolean option value.
func ParseBool(option string) (bool, error) {
	switch option {
	case "true", "enabled", "on":
		return true, nil
	case "false", "disabled", "off":
		return false, nil
	}
	return false, fmt.Errorf("variables: bad boolean option %q", option)
}

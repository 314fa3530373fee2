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
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/simias/rustation-libretro/gpu"
)

// blendConfig is the OpenGL blending state emulating one of the PlayStation
// semi-transparency equations. The alpha channel always passes through
// unblended since it carries the mask bit.
type blendConfig struct {
	// blend equation for the color components
	equation uint32

	// blend functions for the color components
	srcFunc uint32
	dstFunc uint32

	// constant blend color, used by the equations that scale one of the
	// operands
	constantColor [4]float32
}

// semiTransparencyBlend returns the blending state for the given
// semi-transparency mode:
//
//	Average:          dst/2 + src/2
//	Add:              dst + src
//	SubtractSource:   dst - src
//	AddQuarterSource: dst + src/4
func semiTransparencyBlend(mode gpu.SemiTransparencyMode) blendConfig {
	switch mode {
	case gpu.Average:
		return blendConfig{
			equation:      gl.FUNC_ADD,
			srcFunc:       gl.CONSTANT_ALPHA,
			dstFunc:       gl.CONSTANT_ALPHA,
			constantColor: [4]float32{0, 0, 0, 0.5},
		}
	case gpu.Add:
		return blendConfig{
			equation: gl.FUNC_ADD,
			srcFunc:  gl.ONE,
			dstFunc:  gl.ONE,
		}
	case gpu.SubtractSource:
		return blendConfig{
			equation: gl.FUNC_REVERSE_SUBTRACT,
			srcFunc:  gl.ONE,
			dstFunc:  gl.ONE,
		}
	case gpu.AddQuarterSource:
		return blendConfig{
			equation:      gl.FUNC_ADD,
			srcFunc:       gl.CONSTANT_COLOR,
			dstFunc:       gl.ONE,
			constantColor: [4]float32{0.25, 0.25, 0.25, 0},
		}
	}

	// unreachable as long as mode is one of the four valid values
	return blendConfig{equation: gl.FUNC_ADD, srcFunc: gl.ONE, dstFunc: gl.ZERO}
}

// apply sets the OpenGL blending state.
func (cfg blendConfig) apply() {
	gl.Enable(gl.BLEND)
	gl.BlendColor(cfg.constantColor[0], cfg.constantColor[1],
		cfg.constantColor[2], cfg.constantColor[3])
	gl.BlendEquationSeparate(cfg.equation, gl.FUNC_ADD)
	gl.BlendFuncSeparate(cfg.srcFunc, cfg.dstFunc, gl.ONE, gl.ZERO)
}

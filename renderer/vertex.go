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
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/retrogl"
)

// CommandVertex is the device-side vertex format for GPU draw commands. The
// primitive attributes are flattened into every vertex because the command
// buffer batches many primitives into a single draw call.
type CommandVertex struct {
	// Position in PlayStation VRAM coordinates. The third component is the
	// primitive ordering index used to preserve draw order in the depth
	// buffer.
	Position [3]int16

	// RGB color, 8bits per component
	Color [3]uint8

	// Texture coordinates within the page
	TextureCoord [2]uint16

	// Texture page (base offset in VRAM used for texture lookup)
	TexturePage [2]uint16

	// Color Look-Up Table (palette) coordinates in VRAM
	Clut [2]uint16

	// Blending mode: 0: no texture, 1: raw-texture, 2: texture-blended
	TextureBlendMode uint8

	// Right shift from 16bits: 0 for 16bpp textures, 1 for 8bpp, 2 for 4bpp
	DepthShift uint8

	// 1 if dithering is enabled for this primitive
	Dither uint8

	// 0: primitive is opaque, 1: primitive is semi-transparent
	SemiTransparent uint8
}

var commandVertexAttributes = []retrogl.Attribute{
	{Name: "position", Components: 3, GLType: gl.SHORT, Offset: unsafe.Offsetof(CommandVertex{}.Position)},
	{Name: "color", Components: 3, GLType: gl.UNSIGNED_BYTE, Offset: unsafe.Offsetof(CommandVertex{}.Color)},
	{Name: "texture_coord", Components: 2, GLType: gl.UNSIGNED_SHORT, Offset: unsafe.Offsetof(CommandVertex{}.TextureCoord)},
	{Name: "texture_page", Components: 2, GLType: gl.UNSIGNED_SHORT, Offset: unsafe.Offsetof(CommandVertex{}.TexturePage)},
	{Name: "clut", Components: 2, GLType: gl.UNSIGNED_SHORT, Offset: unsafe.Offsetof(CommandVertex{}.Clut)},
	{Name: "texture_blend_mode", Components: 1, GLType: gl.UNSIGNED_BYTE, Offset: unsafe.Offsetof(CommandVertex{}.TextureBlendMode)},
	{Name: "depth_shift", Components: 1, GLType: gl.UNSIGNED_BYTE, Offset: unsafe.Offsetof(CommandVertex{}.DepthShift)},
	{Name: "dither", Components: 1, GLType: gl.UNSIGNED_BYTE, Offset: unsafe.Offsetof(CommandVertex{}.Dither)},
	{Name: "semi_transparent", Components: 1, GLType: gl.UNSIGNED_BYTE, Offset: unsafe.Offsetof(CommandVertex{}.SemiTransparent)},
}

// makeCommandVertex folds the shared primitive attributes and the ordering
// index into a single vertex.
func makeCommandVertex(attributes *gpu.PrimitiveAttributes, v gpu.Vertex, z int16) CommandVertex {
	cv := CommandVertex{
		Position:     [3]int16{v.Position[0], v.Position[1], z},
		Color:        v.Color,
		TextureCoord: v.TextureCoord,
		TexturePage:  attributes.TexturePage,
		Clut:         attributes.Clut,
		DepthShift:   attributes.TextureDepth.Shift(),
	}

	switch attributes.BlendMode {
	case gpu.BlendModeNone:
		cv.TextureBlendMode = 0
	case gpu.BlendModeRaw:
		cv.TextureBlendMode = 1
	case gpu.BlendModeBlended:
		cv.TextureBlendMode = 2
	}

	if attributes.Dither {
		cv.Dither = 1
	}
	if attributes.SemiTransparent {
		cv.SemiTransparent = 1
	}

	return cv
}

// OutputVertex is the vertex format for the final blit of the displayed part
// of the framebuffer into the frontend's framebuffer.
type OutputVertex struct {
	// Vertex position on the screen
	Position [2]float32

	// Corresponding coordinate in the framebuffer
	FBCoord [2]uint16
}

var outputVertexAttributes = []retrogl.Attribute{
	{Name: "position", Components: 2, GLType: gl.FLOAT, Offset: unsafe.Offsetof(OutputVertex{}.Position)},
	{Name: "fb_coord", Components: 2, GLType: gl.UNSIGNED_SHORT, Offset: unsafe.Offsetof(OutputVertex{}.FBCoord)},
}

// ImageLoadVertex is the vertex format for replaying VRAM uploads into the
// output framebuffer.
type ImageLoadVertex struct {
	// Vertex position in VRAM
	Position [2]uint16
}

var imageLoadVertexAttributes = []retrogl.Attribute{
	{Name: "position", Components: 2, GLType: gl.UNSIGNED_SHORT, Offset: unsafe.Offsetof(ImageLoadVertex{}.Position)},
}

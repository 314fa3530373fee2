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

package gpu

// TextureDepth is the depth of the pixel values in a texture page.
type TextureDepth uint8

// List of valid TextureDepth values.
const (
	T4bpp TextureDepth = iota
	T8bpp
	T16bpp
)

// Shift returns the right shift from a 16bit VRAM pixel needed to address
// texels of this depth: 0 for 16bpp, 1 for 8bpp paletted, 2 for 4bpp
// paletted.
func (d TextureDepth) Shift() uint8 {
	switch d {
	case T4bpp:
		return 2
	case T8bpp:
		return 1
	}
	return 0
}

// BlendMode describes how a texel is combined with the primitive's shading
// color.
type BlendMode uint8

// List of valid BlendMode values.
const (
	// BlendModeNone means the primitive is not textured.
	BlendModeNone BlendMode = iota
	// BlendModeRaw means the texel is used unmodified.
	BlendModeRaw
	// BlendModeBlended means the texel is modulated by the shading color.
	BlendModeBlended
)

// SemiTransparencyMode is one of the four blending equations selectable per
// draw command for semi-transparent primitives.
type SemiTransparencyMode uint8

// List of valid SemiTransparencyMode values.
const (
	// Average blends the source and destination: (src + dst) / 2.
	Average SemiTransparencyMode = iota
	// Add sums the source and destination: src + dst.
	Add
	// SubtractSource subtracts the source from the destination: dst - src.
	SubtractSource
	// AddQuarterSource adds a quarter of the source: dst + src / 4.
	AddQuarterSource
)

func (m SemiTransparencyMode) String() string {
	switch m {
	case Average:
		return "average"
	case Add:
		return "add"
	case SubtractSource:
		return "subtract source"
	case AddQuarterSource:
		return "add quarter source"
	}
	return "unknown"
}

// Vertex is a single corner of a primitive as emitted by the GPU command
// decoder. Position is in native VRAM pixel coordinates.
type Vertex struct {
	Position     [2]int16
	Color        [3]uint8
	TextureCoord [2]uint16
}

// PrimitiveAttributes are shared by all vertices of a single primitive.
// They're transient: the renderer folds them into its own per-vertex format
// and never stores them.
type PrimitiveAttributes struct {
	// Texture page: base offset in VRAM used for texture lookup
	TexturePage [2]uint16
	// Color Look-Up Table (palette) coordinates in VRAM
	Clut [2]uint16
	// How the texel is combined with the shading color
	BlendMode BlendMode
	// Depth of the texels for this primitive
	TextureDepth TextureDepth
	// True if dithering is enabled for this primitive
	Dither bool
	// True if the primitive is semi-transparent
	SemiTransparent bool
	// Blending equation used if the primitive is semi-transparent
	SemiTransparencyMode SemiTransparencyMode
}

// Renderer is the capability interface invoked by the emulation core with
// primitive draw calls and VRAM access commands. The renderer backend is
// responsible for keeping its VRAM model coherent with what has been drawn.
type Renderer interface {
	// SetDrawOffset sets the signed translation added to every vertex
	// position before rasterization.
	SetDrawOffset(x int16, y int16)

	// SetDrawArea sets the clipping rectangle within which rasterization is
	// permitted.
	SetDrawArea(topLeft [2]uint16, dimensions [2]uint16)

	// SetDisplayMode sets the portion of VRAM displayed on screen and the
	// color depth used for the readback.
	SetDisplayMode(topLeft [2]uint16, resolution [2]uint16, depth24bpp bool)

	// PushLine buffers a 2 vertex line for drawing.
	PushLine(attributes *PrimitiveAttributes, vertices *[2]Vertex)

	// PushTriangle buffers a 3 vertex triangle for drawing.
	PushTriangle(attributes *PrimitiveAttributes, vertices *[3]Vertex)

	// PushQuad buffers a 4 vertex quad for drawing.
	PushQuad(attributes *PrimitiveAttributes, vertices *[4]Vertex)

	// FillRect fills a rectangle of VRAM with a solid color, ignoring the
	// draw area.
	FillRect(color [3]uint8, topLeft [2]uint16, dimensions [2]uint16)

	// LoadImage copies a rectangle of pixels into VRAM. pixels is row-major
	// with a row stride equal to the rectangle width.
	LoadImage(topLeft [2]uint16, resolution [2]uint16, pixels []uint16)
}

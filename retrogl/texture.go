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
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Texture is a single-level 2D texture.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// uploadFormat returns the pixel transfer format/type pair matching a sized
// internal format.
func uploadFormat(internalFormat uint32) (uint32, uint32) {
	switch internalFormat {
	case gl.RGB5_A1:
		return gl.RGBA, gl.UNSIGNED_SHORT_1_5_5_5_REV
	case gl.DEPTH_COMPONENT32F:
		return gl.DEPTH_COMPONENT, gl.FLOAT
	}
	return gl.RGBA, gl.UNSIGNED_BYTE
}

// NewTexture allocates a texture of the given dimensions and sized internal
// format. The initial contents are undefined.
func NewTexture(width int32, height int32, internalFormat uint32) (*Texture, error) {
	tex := &Texture{
		width:  width,
		height: height,
	}

	format, xtype := uploadFormat(internalFormat)

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(internalFormat), width, height, 0, format, xtype, nil)

	// the shaders address VRAM with texelFetch so filtering never applies,
	// but the texture must still be mipmap-complete to be sampled
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if err := CheckError(); err != nil {
		tex.Destroy()
		return nil, err
	}

	return tex, nil
}

// Bind binds the texture to the given texture unit.
func (tex *Texture) Bind(textureUnit uint32) {
	gl.ActiveTexture(textureUnit)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
}

// SetSubImage uploads a rectangle of 16bit pixels. pixels must be tightly
// packed with a row stride equal to the rectangle width.
func (tex *Texture) SetSubImage(topLeft [2]uint16, resolution [2]uint16, format uint32, xtype uint32, pixels []uint16) error {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		int32(topLeft[0]), int32(topLeft[1]),
		int32(resolution[0]), int32(resolution[1]),
		format, xtype,
		gl.Ptr(pixels))

	return CheckError()
}

// SetSubImageWindow uploads a rectangle taken out of a larger image whose
// rows are rowLen pixels wide.
func (tex *Texture) SetSubImageWindow(topLeft [2]uint16, resolution [2]uint16, rowLen int, format uint32, xtype uint32, pixels []uint16) error {
	index := int(topLeft[1])*rowLen + int(topLeft[0])

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(rowLen))
	err := tex.SetSubImage(topLeft, resolution, format, xtype, pixels[index:])
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	return err
}

// ID returns the native texture handle.
func (tex *Texture) ID() uint32 {
	return tex.id
}

// Width returns the texture width in pixels.
func (tex *Texture) Width() int32 {
	return tex.width
}

// Height returns the texture height in pixels.
func (tex *Texture) Height() int32 {
	return tex.height
}

// Destroy releases the texture handle. Destroying a nil texture is a no-op
// so partially built renderer state can be torn down unconditionally.
func (tex *Texture) Destroy() {
	if tex == nil {
		return
	}
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}

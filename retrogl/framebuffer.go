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

// Framebuffer is an off-screen render target backed by a color texture and
// optionally a depth texture. Creating one binds it as the draw framebuffer
// and sets the viewport to the color texture's dimensions. Framebuffers are
// created for the duration of a render pass and destroyed afterwards.
type Framebuffer struct {
	id uint32
}

// NewFramebuffer creates a framebuffer drawing into the given color texture.
func NewFramebuffer(color *Texture) (*Framebuffer, error) {
	fb := &Framebuffer{}

	gl.GenFramebuffers(1, &fb.id)
	fb.Bind()

	gl.FramebufferTexture(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, color.ID(), 0)

	attachment := uint32(gl.COLOR_ATTACHMENT0)
	gl.DrawBuffers(1, &attachment)

	gl.Viewport(0, 0, color.Width(), color.Height())

	if err := CheckError(); err != nil {
		fb.Destroy()
		return nil, err
	}

	return fb, nil
}

// NewFramebufferWithDepth creates a framebuffer drawing into the given color
// texture with depth testing against the given depth texture.
func NewFramebufferWithDepth(color *Texture, depth *Texture) (*Framebuffer, error) {
	fb, err := NewFramebuffer(color)
	if err != nil {
		return nil, err
	}

	gl.FramebufferTexture(gl.DRAW_FRAMEBUFFER, gl.DEPTH_ATTACHMENT, depth.ID(), 0)

	if err := CheckError(); err != nil {
		fb.Destroy()
		return nil, err
	}

	return fb, nil
}

// Bind makes the framebuffer the current draw framebuffer.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.id)
}

// Destroy releases the framebuffer handle. The attached textures are left
// alone.
func (fb *Framebuffer) Destroy() {
	if fb.id != 0 {
		gl.DeleteFramebuffers(1, &fb.id)
		fb.id = 0
	}
}

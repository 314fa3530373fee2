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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/libretro"
	"github.com/simias/rustation-libretro/logger"
	"github.com/simias/rustation-libretro/retrogl"
	"github.com/simias/rustation-libretro/shaders"
)

const logTag = "renderer"

// maximum number of vertices in the command buffer. pushing a primitive that
// doesn't fit forces a flush
const commandBufferLen = 2048

// the output and image load buffers only ever hold a single quad
const outputBufferLen = 4
const imageLoadBufferLen = 4

// GlRenderer rasterizes PlayStation GPU draw commands with OpenGL. It's only
// valid while the hardware context that created it is alive.
type GlRenderer struct {
	// accumulated vertices waiting for the next flush
	batch *batcher

	// buffer used to handle PlayStation GPU draw commands
	commandBuffer *retrogl.DrawBuffer[CommandVertex]

	// polygon mode for draw commands (gl.FILL or gl.LINE for wireframe)
	polygonMode uint32

	// buffer used to draw to the frontend's framebuffer
	outputBuffer *retrogl.DrawBuffer[OutputVertex]

	// buffer used to copy textures from fbTexture to fbOut
	imageLoadBuffer *retrogl.DrawBuffer[ImageLoadVertex]

	// durable renderer state, including the VRAM shadow copy
	config *retrogl.DrawConfig

	// texture holding the raw VRAM contents, used as a shader input for
	// texturing draw commands. can't be meaningfully upscaled since most
	// games use paletted textures
	fbTexture *retrogl.Texture

	// texture used as the output when running draw commands, at the
	// internal (possibly upscaled) resolution
	fbOut *retrogl.Texture

	// depth buffer for fbOut
	fbOutDepth *retrogl.Texture

	// current resolution of the frontend's framebuffer
	frontendResolution [2]uint32

	// current internal resolution upscaling factor
	internalUpscaling uint32

	// current internal color depth
	internalColorDepth uint8

	host libretro.Host
	vars libretro.VariableSource
}

// FromConfig builds all device-side state for the given draw config. The
// VRAM contents of the config are uploaded to the new textures so the frame
// picks up exactly where the previous context left off.
func FromConfig(config *retrogl.DrawConfig, host libretro.Host,
	vars libretro.VariableSource) (*GlRenderer, error) {

	v := vars.Variables()

	upscaling := v.InternalResolution
	if upscaling < 1 {
		upscaling = 1
	}
	depth := v.InternalColorDepth

	logger.Logf(logger.Allow, logTag, "building OpenGL state (%dx internal res., %dbpp)",
		upscaling, depth)

	polygonMode := uint32(gl.FILL)
	if v.Wireframe {
		polygonMode = gl.LINE
	}

	// the GL resources are built directly into the renderer so that a failure
	// at any step can release everything built so far with a single Destroy
	rnd := &GlRenderer{
		batch:              newBatcher(commandBufferLen),
		polygonMode:        polygonMode,
		config:             config,
		internalUpscaling:  upscaling,
		internalColorDepth: depth,
		host:               host,
		vars:               vars,
	}

	var err error

	rnd.commandBuffer, err = buildBuffer[CommandVertex](
		shaders.CommandVertexShader, shaders.CommandFragmentShader,
		commandBufferLen, commandVertexAttributes)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("command buffer: %w", err)
	}

	rnd.outputBuffer, err = buildBuffer[OutputVertex](
		shaders.OutputVertexShader, shaders.OutputFragmentShader,
		outputBufferLen, outputVertexAttributes)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("output buffer: %w", err)
	}

	rnd.imageLoadBuffer, err = buildBuffer[ImageLoadVertex](
		shaders.ImageLoadVertexShader, shaders.ImageLoadFragmentShader,
		imageLoadBufferLen, imageLoadVertexAttributes)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("image load buffer: %w", err)
	}

	rnd.fbTexture, err = retrogl.NewTexture(int32(gpu.VRAMWidthPixels),
		int32(gpu.VRAMHeight), gl.RGB5_A1)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("VRAM texture: %w", err)
	}

	if depth > 16 {
		// dithering is superfluous when we increase the internal color
		// depth
		if err := rnd.commandBuffer.DisableAttribute("dither"); err != nil {
			rnd.Destroy()
			return nil, err
		}
	}

	ditherScaling := uint32(1)
	if v.ScaleDither {
		ditherScaling = upscaling
	}

	if err := rnd.commandBuffer.Program().Uniform1ui("dither_scaling", ditherScaling); err != nil {
		rnd.Destroy()
		return nil, err
	}

	storage, err := textureStorage(depth)
	if err != nil {
		rnd.Destroy()
		return nil, err
	}

	w := int32(gpu.VRAMWidthPixels) * int32(upscaling)
	h := int32(gpu.VRAMHeight) * int32(upscaling)

	rnd.fbOut, err = retrogl.NewTexture(w, h, storage)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("output framebuffer: %w", err)
	}

	rnd.fbOutDepth, err = retrogl.NewTexture(w, h, gl.DEPTH_COMPONENT32F)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("output depth buffer: %w", err)
	}

	// load the VRAM contents into the textures
	err = rnd.uploadTextures([2]uint16{0, 0},
		[2]uint16{gpu.VRAMWidthPixels, gpu.VRAMHeight}, config.VRAM)
	if err != nil {
		rnd.Destroy()
		return nil, fmt.Errorf("VRAM upload: %w", err)
	}

	return rnd, nil
}

// buildBuffer compiles and links a shader program and wraps it in a
// DrawBuffer for the given vertex type.
func buildBuffer[V any](vertexShader []byte, fragmentShader []byte,
	capacity int, attributes []retrogl.Attribute) (*retrogl.DrawBuffer[V], error) {

	program, err := retrogl.NewProgram(string(vertexShader), string(fragmentShader))
	if err != nil {
		return nil, err
	}

	return retrogl.NewDrawBuffer[V](capacity, program, attributes)
}

// textureStorage returns the texture internal format for the given internal
// color depth.
func textureStorage(depth uint8) (uint32, error) {
	switch depth {
	case 16:
		return gl.RGB5_A1, nil
	case 32:
		return gl.RGBA8, nil
	}
	return 0, fmt.Errorf("unsupported internal color depth %d", depth)
}

// Config returns the durable renderer state.
func (rnd *GlRenderer) Config() *retrogl.DrawConfig {
	return rnd.config
}

// draw flushes the batched vertices to the output framebuffer: first the
// opaque vertices with blending disabled, then the semi-transparent ones
// with the blending state of the current semi-transparency mode. The depth
// buffer is cleared so the ordering indices restart from zero.
func (rnd *GlRenderer) draw() error {
	if rnd.batch.Empty() {
		// nothing to be done
		return nil
	}

	gl.BlendFuncSeparate(gl.ONE, gl.ZERO, gl.ONE, gl.ZERO)
	gl.Disable(gl.BLEND)

	prg := rnd.commandBuffer.Program()

	err := prg.Uniform2i("offset", int32(rnd.config.DrawOffset[0]),
		int32(rnd.config.DrawOffset[1]))
	if err != nil {
		return err
	}

	// we use texture unit 0
	if err := prg.Uniform1i("fb_texture", 0); err != nil {
		return err
	}

	if err := prg.Uniform1ui("draw_semi_transparent", 0); err != nil {
		return err
	}

	// bind the out framebuffer
	fb, err := retrogl.NewFramebufferWithDepth(rnd.fbOut, rnd.fbOutDepth)
	if err != nil {
		return err
	}
	defer fb.Destroy()

	gl.Clear(gl.DEPTH_BUFFER_BIT)

	if len(rnd.batch.opaque) > 0 {
		if err := rnd.commandBuffer.Clear(); err != nil {
			return err
		}
		if err := rnd.commandBuffer.PushSlice(rnd.batch.opaque); err != nil {
			return err
		}
		if err := rnd.commandBuffer.Draw(rnd.batch.drawMode); err != nil {
			return err
		}
	}

	if len(rnd.batch.semi) > 0 {
		if err := prg.Uniform1ui("draw_semi_transparent", 1); err != nil {
			return err
		}

		semiTransparencyBlend(rnd.batch.semiMode).apply()

		if err := rnd.commandBuffer.Clear(); err != nil {
			return err
		}
		if err := rnd.commandBuffer.PushSlice(rnd.batch.semi); err != nil {
			return err
		}
		if err := rnd.commandBuffer.Draw(rnd.batch.drawMode); err != nil {
			return err
		}
	}

	rnd.batch.Reset()

	return retrogl.CheckError()
}

// maybeForceDraw flushes the batch if the incoming primitive is incompatible
// with the buffered ones.
func (rnd *GlRenderer) maybeForceDraw(nvertices int, drawMode uint32,
	attributes *gpu.PrimitiveAttributes) {

	if rnd.batch.NeedsFlush(nvertices, drawMode, attributes) {
		if err := rnd.draw(); err != nil {
			logger.Logf(logger.Allow, logTag, "draw: %v", err)
		}
	}

	rnd.batch.Adopt(drawMode, attributes)
}

// applyScissor sets the scissor box to the draw area, scaled to the internal
// resolution.
func (rnd *GlRenderer) applyScissor() {
	x := int32(rnd.config.DrawAreaTopLeft[0])
	y := int32(rnd.config.DrawAreaTopLeft[1])
	w := int32(rnd.config.DrawAreaDimensions[0])
	h := int32(rnd.config.DrawAreaDimensions[1])

	upscale := int32(rnd.internalUpscaling)

	gl.Scissor(x*upscale, y*upscale, w*upscale, h*upscale)
}

// bindHostFramebuffer binds the framebuffer provided by the frontend,
// renegotiating the output geometry first if the display resolution has
// changed.
func (rnd *GlRenderer) bindHostFramebuffer() {
	w := uint32(rnd.config.DisplayResolution[0]) * rnd.internalUpscaling
	h := uint32(rnd.config.DisplayResolution[1]) * rnd.internalUpscaling

	if w != rnd.frontendResolution[0] || h != rnd.frontendResolution[1] {
		logger.Logf(logger.Allow, logTag, "target framebuffer size: %dx%d", w, h)

		rnd.host.SetGeometry(libretro.GameGeometry{
			BaseWidth:  w,
			BaseHeight: h,
			// max parameters are ignored by geometry-only renegotiations
			MaxWidth:    0,
			MaxHeight:   0,
			AspectRatio: 4. / 3.,
		})

		rnd.frontendResolution = [2]uint32{w, h}
	}

	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, rnd.host.CurrentFramebuffer())
	gl.Viewport(0, 0, int32(w), int32(h))
}

// uploadTextures copies a rectangle of pixels into the VRAM texture and
// replays it into the output framebuffer with a textured quad, bypassing the
// draw area and the depth test.
func (rnd *GlRenderer) uploadTextures(topLeft [2]uint16, resolution [2]uint16,
	pixels []uint16) error {

	err := rnd.fbTexture.SetSubImage(topLeft, resolution, gl.RGBA,
		gl.UNSIGNED_SHORT_1_5_5_5_REV, pixels)
	if err != nil {
		return err
	}

	if err := rnd.imageLoadBuffer.Clear(); err != nil {
		return err
	}

	xStart := topLeft[0]
	xEnd := xStart + resolution[0]
	yStart := topLeft[1]
	yEnd := yStart + resolution[1]

	err = rnd.imageLoadBuffer.PushSlice([]ImageLoadVertex{
		{Position: [2]uint16{xStart, yStart}},
		{Position: [2]uint16{xEnd, yStart}},
		{Position: [2]uint16{xStart, yEnd}},
		{Position: [2]uint16{xEnd, yEnd}},
	})
	if err != nil {
		return err
	}

	if err := rnd.imageLoadBuffer.Program().Uniform1i("fb_texture", 0); err != nil {
		return err
	}

	rnd.fbTexture.Bind(gl.TEXTURE0)

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	// the scissor test and polygon mode must be restored on every return
	// path, including the error ones, or subsequent command draws inherit
	// the replay state
	defer func() {
		gl.PolygonMode(gl.FRONT_AND_BACK, rnd.polygonMode)
		gl.Enable(gl.SCISSOR_TEST)
	}()

	// bind the output framebuffer
	fb, err := retrogl.NewFramebuffer(rnd.fbOut)
	if err != nil {
		return err
	}
	defer fb.Destroy()

	if err := rnd.imageLoadBuffer.Draw(gl.TRIANGLE_STRIP); err != nil {
		return err
	}

	return retrogl.CheckError()
}

// PrepareRender sets up the OpenGL state at the start of a frame.
func (rnd *GlRenderer) PrepareRender() {
	rnd.applyScissor()

	// in case we're upscaling we need to increase the line width
	// proportionally
	gl.LineWidth(float32(rnd.internalUpscaling))
	gl.PolygonMode(gl.FRONT_AND_BACK, rnd.polygonMode)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	// bind fbTexture to texture unit 0
	rnd.fbTexture.Bind(gl.TEXTURE0)
}

// refreshChanges reports what new core options require of a renderer running
// with the current ones: whether the output textures must be reallocated and
// whether the output geometry must be renegotiated with the frontend.
// Unchanged options require neither.
func refreshChanges(upscaling uint32, depth uint8,
	currentUpscaling uint32, currentDepth uint8) (rebuildFbOut bool, reconfigureFrontend bool) {

	rebuildFbOut = upscaling != currentUpscaling || depth != currentDepth
	reconfigureFrontend = upscaling != currentUpscaling

	return rebuildFbOut, reconfigureFrontend
}

// RefreshVariables reloads the core options. It returns true if the output
// geometry has to be renegotiated with the frontend, which the caller must
// do outside of the render call since it can destroy the hardware context.
func (rnd *GlRenderer) RefreshVariables() (bool, error) {
	v := rnd.vars.Variables()

	upscaling := v.InternalResolution
	if upscaling < 1 {
		upscaling = 1
	}
	depth := v.InternalColorDepth

	rebuildFbOut, reconfigureFrontend := refreshChanges(upscaling, depth,
		rnd.internalUpscaling, rnd.internalColorDepth)

	if rebuildFbOut {
		storage, err := textureStorage(depth)
		if err != nil {
			return false, err
		}

		w := int32(gpu.VRAMWidthPixels) * int32(upscaling)
		h := int32(gpu.VRAMHeight) * int32(upscaling)

		fbOut, err := retrogl.NewTexture(w, h, storage)
		if err != nil {
			return false, fmt.Errorf("output framebuffer: %w", err)
		}

		fbOutDepth, err := retrogl.NewTexture(w, h, gl.DEPTH_COMPONENT32F)
		if err != nil {
			fbOut.Destroy()
			return false, fmt.Errorf("output depth buffer: %w", err)
		}

		rnd.fbOut.Destroy()
		rnd.fbOutDepth.Destroy()
		rnd.fbOut = fbOut
		rnd.fbOutDepth = fbOutDepth

		// the new targets are installed: the scaling factor and color depth
		// must be committed with them so the scissor box and the output blit
		// keep scaling by the factor the targets were sized for, even if a
		// later step fails
		rnd.internalUpscaling = upscaling
		rnd.internalColorDepth = depth

		if depth > 16 {
			err = rnd.commandBuffer.DisableAttribute("dither")
		} else {
			err = rnd.commandBuffer.EnableAttribute("dither")
		}
		if err != nil {
			return reconfigureFrontend, err
		}

		// this re-uploads fbTexture even though we haven't touched it but
		// this code is not performance-critical
		err = rnd.uploadTextures([2]uint16{0, 0},
			[2]uint16{gpu.VRAMWidthPixels, gpu.VRAMHeight}, rnd.config.VRAM)
		if err != nil {
			return reconfigureFrontend, fmt.Errorf("VRAM upload: %w", err)
		}
	}

	ditherScaling := uint32(1)
	if v.ScaleDither {
		ditherScaling = upscaling
	}

	err := rnd.commandBuffer.Program().Uniform1ui("dither_scaling", ditherScaling)
	if err != nil {
		return reconfigureFrontend, err
	}

	rnd.polygonMode = gl.FILL
	if v.Wireframe {
		rnd.polygonMode = gl.LINE
	}

	gl.LineWidth(float32(upscaling))

	// if the scaling factor has changed the frontend must be reconfigured.
	// we can't do that here because it could destroy the OpenGL context,
	// which would destroy us
	return reconfigureFrontend, nil
}

// FinalizeFrame flushes any pending draw commands, blits the displayed part
// of the framebuffer to the frontend's framebuffer and signals the frontend
// that the frame is complete.
func (rnd *GlRenderer) FinalizeFrame() error {
	// draw pending commands
	if err := rnd.draw(); err != nil {
		return err
	}

	// we can now render to the frontend's buffer
	rnd.bindHostFramebuffer()

	// bind fbOut to texture unit 1
	rnd.fbOut.Bind(gl.TEXTURE1)

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	fbXStart := rnd.config.DisplayTopLeft[0]
	fbYStart := rnd.config.DisplayTopLeft[1]
	fbXEnd := fbXStart + rnd.config.DisplayResolution[0]
	fbYEnd := fbYStart + rnd.config.DisplayResolution[1]

	if err := rnd.outputBuffer.Clear(); err != nil {
		return err
	}

	err := rnd.outputBuffer.PushSlice([]OutputVertex{
		{Position: [2]float32{-1., -1.}, FBCoord: [2]uint16{fbXStart, fbYEnd}},
		{Position: [2]float32{1., -1.}, FBCoord: [2]uint16{fbXEnd, fbYEnd}},
		{Position: [2]float32{-1., 1.}, FBCoord: [2]uint16{fbXStart, fbYStart}},
		{Position: [2]float32{1., 1.}, FBCoord: [2]uint16{fbXEnd, fbYStart}},
	})
	if err != nil {
		return err
	}

	prg := rnd.outputBuffer.Program()

	if err := prg.Uniform1i("fb", 1); err != nil {
		return err
	}

	depth24bpp := int32(0)
	if rnd.config.Display24bpp {
		depth24bpp = 1
	}
	if err := prg.Uniform1i("depth_24bpp", depth24bpp); err != nil {
		return err
	}

	if err := prg.Uniform1ui("internal_upscaling", rnd.internalUpscaling); err != nil {
		return err
	}

	if err := rnd.outputBuffer.Draw(gl.TRIANGLE_STRIP); err != nil {
		return err
	}

	// cleanup the OpenGL context before returning to the frontend
	gl.Disable(gl.BLEND)
	gl.BlendColor(0., 0., 0., 0.)
	gl.BlendEquationSeparate(gl.FUNC_ADD, gl.FUNC_ADD)
	gl.BlendFuncSeparate(gl.ONE, gl.ZERO, gl.ONE, gl.ZERO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.BindVertexArray(0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.LineWidth(1.)

	rnd.host.FrameDone(rnd.frontendResolution[0], rnd.frontendResolution[1])

	return nil
}

// Destroy releases all device-side resources, including those of a partially
// built renderer. The config, including the VRAM shadow copy, stays valid.
func (rnd *GlRenderer) Destroy() {
	rnd.commandBuffer.Destroy()
	rnd.outputBuffer.Destroy()
	rnd.imageLoadBuffer.Destroy()
	rnd.fbTexture.Destroy()
	rnd.fbOut.Destroy()
	rnd.fbOutDepth.Destroy()
}

// SetDrawOffset implements the gpu.Renderer interface.
func (rnd *GlRenderer) SetDrawOffset(x int16, y int16) {
	// finish drawing anything with the current offset
	if err := rnd.draw(); err != nil {
		logger.Logf(logger.Allow, logTag, "draw: %v", err)
	}

	rnd.config.DrawOffset = [2]int16{x, y}
}

// SetDrawArea implements the gpu.Renderer interface.
func (rnd *GlRenderer) SetDrawArea(topLeft [2]uint16, dimensions [2]uint16) {
	// finish drawing anything in the current area
	if err := rnd.draw(); err != nil {
		logger.Logf(logger.Allow, logTag, "draw: %v", err)
	}

	rnd.config.DrawAreaTopLeft = topLeft
	rnd.config.DrawAreaDimensions = dimensions

	rnd.applyScissor()
}

// SetDisplayMode implements the gpu.Renderer interface.
func (rnd *GlRenderer) SetDisplayMode(topLeft [2]uint16, resolution [2]uint16,
	depth24bpp bool) {

	rnd.config.DisplayTopLeft = topLeft
	rnd.config.DisplayResolution = resolution
	rnd.config.Display24bpp = depth24bpp
}

// PushLine implements the gpu.Renderer interface.
func (rnd *GlRenderer) PushLine(attributes *gpu.PrimitiveAttributes,
	vertices *[2]gpu.Vertex) {

	rnd.maybeForceDraw(2, gl.LINES, attributes)
	rnd.batch.PushLine(attributes, vertices)
}

// PushTriangle implements the gpu.Renderer interface.
func (rnd *GlRenderer) PushTriangle(attributes *gpu.PrimitiveAttributes,
	vertices *[3]gpu.Vertex) {

	rnd.maybeForceDraw(3, gl.TRIANGLES, attributes)
	rnd.batch.PushTriangle(attributes, vertices)
}

// PushQuad implements the gpu.Renderer interface.
func (rnd *GlRenderer) PushQuad(attributes *gpu.PrimitiveAttributes,
	vertices *[4]gpu.Vertex) {

	rnd.maybeForceDraw(6, gl.TRIANGLES, attributes)
	rnd.batch.PushQuad(attributes, vertices)
}

// FillRect implements the gpu.Renderer interface. The fill ignores the draw
// area: the scissor box is temporarily reconfigured to the fill rectangle.
func (rnd *GlRenderer) FillRect(color [3]uint8, topLeft [2]uint16,
	dimensions [2]uint16) {

	// draw pending commands
	if err := rnd.draw(); err != nil {
		logger.Logf(logger.Allow, logTag, "draw: %v", err)
	}

	drawAreaTopLeft := rnd.config.DrawAreaTopLeft
	drawAreaDimensions := rnd.config.DrawAreaDimensions

	rnd.config.DrawAreaTopLeft = topLeft
	rnd.config.DrawAreaDimensions = dimensions
	rnd.applyScissor()

	fb, err := retrogl.NewFramebuffer(rnd.fbOut)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "fill rect: %v", err)
	} else {
		// the mask bit is set to 0 by the fill
		gl.ClearColor(float32(color[0])/255.,
			float32(color[1])/255.,
			float32(color[2])/255.,
			0.)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		fb.Destroy()
	}

	// reconfigure the draw area
	rnd.config.DrawAreaTopLeft = drawAreaTopLeft
	rnd.config.DrawAreaDimensions = drawAreaDimensions
	rnd.applyScissor()
}

// LoadImage implements the gpu.Renderer interface. The VRAM shadow copy is
// updated alongside the device textures so the image survives a context
// loss.
func (rnd *GlRenderer) LoadImage(topLeft [2]uint16, resolution [2]uint16,
	pixels []uint16) {

	// draw pending commands since they may sample VRAM
	if err := rnd.draw(); err != nil {
		logger.Logf(logger.Allow, logTag, "draw: %v", err)
	}

	rnd.config.StoreImage(topLeft, resolution, pixels)

	if err := rnd.uploadTextures(topLeft, resolution, pixels); err != nil {
		logger.Logf(logger.Allow, logTag, "image load: %v", err)
	}
}

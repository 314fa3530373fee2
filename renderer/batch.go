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

// batcher accumulates vertices for GPU draw commands until they have to be
// flushed to the device. It never touches OpenGL itself: the GlRenderer asks
// NeedsFlush before every push and performs the flush when required.
//
// Opaque and semi-transparent vertices are kept in separate lists because
// they're drawn in two passes with different blending state. Draw order
// between the two lists is preserved through the ordering index in the
// vertex Z coordinate.
type batcher struct {
	capacity int

	opaque []CommandVertex
	semi   []CommandVertex

	// primitive type of the buffered vertices (gl.TRIANGLES or gl.LINES)
	drawMode uint32

	// transparency mode of the buffered semi-transparent vertices. only
	// meaningful while semi is not empty
	semiMode gpu.SemiTransparencyMode

	// ordering index for the next primitive
	ordering int16
}

func newBatcher(capacity int) *batcher {
	return &batcher{
		capacity: capacity,
		opaque:   make([]CommandVertex, 0, capacity),
		semi:     make([]CommandVertex, 0, capacity),
		drawMode: gl.TRIANGLES,
		semiMode: gpu.Average,
	}
}

// NeedsFlush reports whether a primitive with the given vertex count, draw
// mode and attributes is incompatible with the buffered vertices and
// therefore requires a flush before being pushed.
func (b *batcher) NeedsFlush(nvertices int, drawMode uint32, attributes *gpu.PrimitiveAttributes) bool {
	// enough room left in both batches?
	if len(b.opaque)+nvertices > b.capacity {
		return true
	}
	if len(b.semi)+nvertices > b.capacity {
		return true
	}

	// changing the draw mode (line <=> triangle)?
	if drawMode != b.drawMode {
		return true
	}

	// changing the semi-transparency mode while semi-transparent vertices
	// are buffered?
	return attributes.SemiTransparent &&
		len(b.semi) > 0 &&
		attributes.SemiTransparencyMode != b.semiMode
}

// Adopt updates the batching state for the next primitive. Called after any
// flush required by NeedsFlush has been performed.
func (b *batcher) Adopt(drawMode uint32, attributes *gpu.PrimitiveAttributes) {
	b.drawMode = drawMode

	if attributes.SemiTransparent && len(b.semi) == 0 {
		b.semiMode = attributes.SemiTransparencyMode
	}
}

// nextOrdering returns the ordering index for a new primitive.
func (b *batcher) nextOrdering() int16 {
	z := b.ordering
	b.ordering++
	return z
}

// PushLine buffers a 2 vertex line. Lines are never textured so a
// semi-transparent line has no opaque texels and is only buffered for the
// semi-transparent pass.
func (b *batcher) PushLine(attributes *gpu.PrimitiveAttributes, vertices *[2]gpu.Vertex) {
	z := b.nextOrdering()

	v := [2]CommandVertex{
		makeCommandVertex(attributes, vertices[0], z),
		makeCommandVertex(attributes, vertices[1], z),
	}

	if attributes.SemiTransparent {
		b.semi = append(b.semi, v[:]...)
	} else {
		b.opaque = append(b.opaque, v[:]...)
	}
}

// PushTriangle buffers a 3 vertex triangle.
func (b *batcher) PushTriangle(attributes *gpu.PrimitiveAttributes, vertices *[3]gpu.Vertex) {
	z := b.nextOrdering()

	v := [3]CommandVertex{
		makeCommandVertex(attributes, vertices[0], z),
		makeCommandVertex(attributes, vertices[1], z),
		makeCommandVertex(attributes, vertices[2], z),
	}

	// Textured semi-transparent polygons can contain opaque texels (when
	// bit 15 of the texel is 0) so they're drawn twice, once in the opaque
	// pass and once in the semi-transparent pass
	needsOpaqueDraw := !attributes.SemiTransparent ||
		attributes.BlendMode != gpu.BlendModeNone

	if needsOpaqueDraw {
		b.opaque = append(b.opaque, v[:]...)
	}

	if attributes.SemiTransparent {
		b.semi = append(b.semi, v[:]...)
	}
}

// PushQuad buffers a 4 vertex quad as two triangles.
func (b *batcher) PushQuad(attributes *gpu.PrimitiveAttributes, vertices *[4]gpu.Vertex) {
	z := b.nextOrdering()

	v := [4]CommandVertex{
		makeCommandVertex(attributes, vertices[0], z),
		makeCommandVertex(attributes, vertices[1], z),
		makeCommandVertex(attributes, vertices[2], z),
		makeCommandVertex(attributes, vertices[3], z),
	}

	needsOpaqueDraw := !attributes.SemiTransparent ||
		attributes.BlendMode != gpu.BlendModeNone

	if needsOpaqueDraw {
		b.opaque = append(b.opaque, v[0:3]...)
		b.opaque = append(b.opaque, v[1:4]...)
	}

	if attributes.SemiTransparent {
		b.semi = append(b.semi, v[0:3]...)
		b.semi = append(b.semi, v[1:4]...)
	}
}

// Empty reports whether there's nothing to flush.
func (b *batcher) Empty() bool {
	return len(b.opaque) == 0 && len(b.semi) == 0
}

// Reset discards the buffered vertices and restarts the ordering counter.
func (b *batcher) Reset() {
	b.opaque = b.opaque[:0]
	b.semi = b.semi[:0]
	b.ordering = 0
}

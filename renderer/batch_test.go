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
	"testing"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/simias/rustation-libretro/gpu"
	"github.com/simias/rustation-libretro/test"
)

func triangle(x int16) *[3]gpu.Vertex {
	return &[3]gpu.Vertex{
		{Position: [2]int16{x, 0}},
		{Position: [2]int16{x + 10, 0}},
		{Position: [2]int16{x, 10}},
	}
}

func quad(x int16) *[4]gpu.Vertex {
	return &[4]gpu.Vertex{
		{Position: [2]int16{x, 0}},
		{Position: [2]int16{x + 10, 0}},
		{Position: [2]int16{x, 10}},
		{Position: [2]int16{x + 10, 10}},
	}
}

func line(x int16) *[2]gpu.Vertex {
	return &[2]gpu.Vertex{
		{Position: [2]int16{x, 0}},
		{Position: [2]int16{x + 10, 10}},
	}
}

func TestOrderingIndex(t *testing.T) {
	b := newBatcher(2048)

	opaque := &gpu.PrimitiveAttributes{}
	semi := &gpu.PrimitiveAttributes{
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Average,
	}

	b.PushTriangle(opaque, triangle(0))
	b.PushTriangle(semi, triangle(10))
	b.PushTriangle(opaque, triangle(20))

	// every primitive gets its own index, regardless of which batch it
	// lands in
	test.DemandEquality(t, len(b.opaque), 6)
	test.DemandEquality(t, len(b.semi), 3)

	test.ExpectEquality(t, b.opaque[0].Position[2], 0)
	test.ExpectEquality(t, b.semi[0].Position[2], 1)
	test.ExpectEquality(t, b.opaque[3].Position[2], 2)
}

func TestCapacityFlush(t *testing.T) {
	b := newBatcher(6)

	opaque := &gpu.PrimitiveAttributes{}

	test.ExpectEquality(t, b.NeedsFlush(6, gl.TRIANGLES, opaque), false)
	b.PushQuad(opaque, quad(0))
	test.ExpectEquality(t, len(b.opaque), 6)

	// no room left for another triangle
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, opaque), true)

	b.Reset()
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, opaque), false)
}

func TestSemiCapacityFlush(t *testing.T) {
	b := newBatcher(6)

	// untextured semi-transparent primitives only fill the semi batch but
	// must trigger a flush all the same
	semi := &gpu.PrimitiveAttributes{
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Add,
	}

	b.Adopt(gl.TRIANGLES, semi)
	b.PushQuad(semi, quad(0))
	test.ExpectEquality(t, len(b.opaque), 0)
	test.ExpectEquality(t, len(b.semi), 6)

	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, semi), true)
}

func TestTopologyFlush(t *testing.T) {
	b := newBatcher(2048)

	opaque := &gpu.PrimitiveAttributes{}

	b.PushTriangle(opaque, triangle(0))

	// switching from triangles to lines forces a flush and vice versa
	test.ExpectEquality(t, b.NeedsFlush(2, gl.LINES, opaque), true)

	b.Reset()
	b.Adopt(gl.LINES, opaque)
	b.PushLine(opaque, line(0))

	test.ExpectEquality(t, b.NeedsFlush(2, gl.LINES, opaque), false)
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, opaque), true)
}

func TestSemiTransparencyModeFlush(t *testing.T) {
	b := newBatcher(2048)

	average := &gpu.PrimitiveAttributes{
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Average,
	}
	add := &gpu.PrimitiveAttributes{
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Add,
	}

	// the first semi-transparent primitive adopts its mode without a flush
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, average), false)
	b.Adopt(gl.TRIANGLES, average)
	test.ExpectEquality(t, b.semiMode, gpu.Average)

	b.PushTriangle(average, triangle(0))

	// same mode doesn't flush, a conflicting mode does
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, average), false)
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, add), true)

	// an opaque primitive never conflicts
	opaque := &gpu.PrimitiveAttributes{}
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, opaque), false)

	// once the semi batch is empty again the new mode is adopted silently
	b.Reset()
	test.ExpectEquality(t, b.NeedsFlush(3, gl.TRIANGLES, add), false)
	b.Adopt(gl.TRIANGLES, add)
	test.ExpectEquality(t, b.semiMode, gpu.Add)
}

func TestQuadExpansion(t *testing.T) {
	b := newBatcher(2048)

	opaque := &gpu.PrimitiveAttributes{}

	b.PushQuad(opaque, quad(0))

	// a quad becomes two triangles sharing an edge: 012 and 123
	test.DemandEquality(t, len(b.opaque), 6)

	test.ExpectEquality(t, b.opaque[0].Position[0], 0)
	test.ExpectEquality(t, b.opaque[1].Position[0], 10)
	test.ExpectEquality(t, b.opaque[2].Position[0], 0)
	test.ExpectEquality(t, b.opaque[3].Position[0], 10)
	test.ExpectEquality(t, b.opaque[4].Position[0], 0)
	test.ExpectEquality(t, b.opaque[5].Position[0], 10)
	test.ExpectEquality(t, b.opaque[5].Position[1], 10)

	// both triangles carry the same ordering index
	test.ExpectEquality(t, b.opaque[0].Position[2], b.opaque[5].Position[2])
}

func TestSemiTransparentRouting(t *testing.T) {
	b := newBatcher(2048)

	// untextured semi-transparent polygons have no opaque texels so they
	// only go to the semi batch
	untextured := &gpu.PrimitiveAttributes{
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Average,
	}
	b.PushTriangle(untextured, triangle(0))
	test.ExpectEquality(t, len(b.opaque), 0)
	test.ExpectEquality(t, len(b.semi), 3)

	// textured semi-transparent polygons can contain opaque texels so they
	// go to both batches
	b.Reset()
	textured := &gpu.PrimitiveAttributes{
		BlendMode:            gpu.BlendModeRaw,
		SemiTransparent:      true,
		SemiTransparencyMode: gpu.Average,
	}
	b.PushTriangle(textured, triangle(0))
	test.ExpectEquality(t, len(b.opaque), 3)
	test.ExpectEquality(t, len(b.semi), 3)

	// lines are never textured: a semi-transparent line is semi only
	b.Reset()
	b.Adopt(gl.LINES, untextured)
	b.PushLine(untextured, line(0))
	test.ExpectEquality(t, len(b.opaque), 0)
	test.ExpectEquality(t, len(b.semi), 2)
}

func TestReset(t *testing.T) {
	b := newBatcher(2048)

	opaque := &gpu.PrimitiveAttributes{}

	b.PushTriangle(opaque, triangle(0))
	b.PushTriangle(opaque, triangle(10))
	test.ExpectEquality(t, b.Empty(), false)

	b.Reset()
	test.ExpectEquality(t, b.Empty(), true)
	test.ExpectEquality(t, b.ordering, 0)
}

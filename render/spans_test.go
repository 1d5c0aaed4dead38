// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package render_test

import (
	"testing"

	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/render"
)

func solidFlat(fill render.Pixel) *render.Flat {
	var f render.Flat
	for i := range f {
		f[i] = fill
	}
	return &f
}

func TestDrawSpanFillsRowWithFlatSample(t *testing.T) {
	fb := render.NewFramebuffer(320, 10)
	s := &render.SpanCtx{
		FB: fb, Flat: solidFlat(7), Y: 3, X1: 0, X2: 9,
	}
	s.DrawSpan()
	for x := 0; x <= 9; x++ {
		assert.Equate(t, fb.At(x, 3), render.Pixel(7))
	}
}

func TestDrawPlanesEmitsOneSpanCallPerCoveredScanline(t *testing.T) {
	fb := render.NewFramebuffer(render.ScreenWidth, render.ScreenHeight)
	arena := render.NewVisplaneArena(render.ScreenWidth, 0)
	p := arena.FindPlane(0, "FLOOR4_8", 160)
	p = arena.CheckPlane(p, 0, render.ScreenWidth-1)
	for x := 0; x < render.ScreenWidth; x++ {
		p.MarkColumn(x, 0, render.ScreenHeight-1)
	}

	flats := map[string]*render.Flat{"FLOOR4_8": solidFlat(9)}
	count := 0
	render.DrawPlanes(fb, arena, flats, func(int) render.Colormap { return nil }, render.Viewpoint{}, nil, &count)
	assert.Equate(t, count, render.ScreenHeight)
}

func TestDrawPlanesSkipsPlaneWithNoClaimedColumns(t *testing.T) {
	fb := render.NewFramebuffer(render.ScreenWidth, render.ScreenHeight)
	arena := render.NewVisplaneArena(render.ScreenWidth, 0)
	arena.FindPlane(0, "FLOOR4_8", 160) // never extended or marked

	flats := map[string]*render.Flat{"FLOOR4_8": solidFlat(9)}
	count := 0
	render.DrawPlanes(fb, arena, flats, func(int) render.Colormap { return nil }, render.Viewpoint{}, nil, &count)
	assert.Equate(t, count, 0)
}

func TestDrawPlanesSkipsUnmappedFlat(t *testing.T) {
	fb := render.NewFramebuffer(render.ScreenWidth, render.ScreenHeight)
	arena := render.NewVisplaneArena(render.ScreenWidth, 0)
	p := arena.FindPlane(0, "MISSING", 160)
	arena.CheckPlane(p, 0, 10)

	count := 0
	render.DrawPlanes(fb, arena, map[string]*render.Flat{}, func(int) render.Colormap { return nil }, render.Viewpoint{}, nil, &count)
	assert.Equate(t, count, 0)
}

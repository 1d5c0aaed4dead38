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

	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/render"
)

func TestFindPlaneReturnsSamePointerForIdenticalKey(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p1 := a.FindPlane(64*fixedpoint.Fixed(1<<fixedpoint.FRACBITS), "FLOOR4_8", 160)
	p2 := a.FindPlane(64*fixedpoint.Fixed(1<<fixedpoint.FRACBITS), "FLOOR4_8", 160)
	assert.Equate(t, p1 == p2, true)
}

func TestFindPlaneDistinguishesDifferentHeights(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p1 := a.FindPlane(64*fixedpoint.Fixed(1<<fixedpoint.FRACBITS), "FLOOR4_8", 160)
	p2 := a.FindPlane(96*fixedpoint.Fixed(1<<fixedpoint.FRACBITS), "FLOOR4_8", 160)
	assert.ExpectInequality(t, p1, p2)
}

func TestClearInvalidatesPlaneIdentity(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p1 := a.FindPlane(0, "FLOOR4_8", 160)
	a.Clear()
	p2 := a.FindPlane(0, "FLOOR4_8", 160)
	assert.Equate(t, p1 == p2, false)
	assert.Equate(t, len(a.Planes()), 1)
}

func TestSkyPlanesCollapseLightLevelAndHeightAboveViewZ(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p1 := a.FindPlane(100, render.SkyFlat, 50)
	p2 := a.FindPlane(200, render.SkyFlat, 90)
	assert.Equate(t, p1 == p2, true)
}

func TestSkyPlanesDistinguishAboveAndBelowViewZ(t *testing.T) {
	a := render.NewVisplaneArena(320, 50)
	above := a.FindPlane(100, render.SkyFlat, 10)
	below := a.FindPlane(0, render.SkyFlat, 10)
	assert.ExpectInequality(t, above, below)
}

func TestCheckPlaneExtendsSpanWhenNoOverlap(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p := a.FindPlane(0, "FLOOR4_8", 160)
	got := a.CheckPlane(p, 10, 50)
	assert.Equate(t, got, p)
	assert.Equate(t, p.MinX, 10)
	assert.Equate(t, p.MaxX, 50)
}

func TestCheckPlaneSplitsOnColumnConflict(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p := a.FindPlane(0, "FLOOR4_8", 160)
	p = a.CheckPlane(p, 10, 50)
	p.MarkColumn(30, 0, 100)

	dup := a.CheckPlane(p, 20, 60)
	assert.ExpectInequality(t, dup, p)
	assert.Equate(t, dup.MinX, 20)
	assert.Equate(t, dup.MaxX, 60)
}

func TestPlanesReturnsAllocationOrder(t *testing.T) {
	a := render.NewVisplaneArena(320, 0)
	p1 := a.FindPlane(0, "FLOOR4_8", 160)
	p2 := a.FindPlane(10, "CEIL3_5", 160)
	assert.Equate(t, a.Planes(), []*render.Visplane{p1, p2})
}

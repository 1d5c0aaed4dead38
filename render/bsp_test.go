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
	"github.com/jetsetilly/doomcore/worldmap"
)

func oneSectorLevel() *worldmap.Level {
	return &worldmap.Level{
		Vertexes: []worldmap.Vertex{{X: 0, Y: 0}, {X: 100 * unit(), Y: 0}},
		Sectors:  []worldmap.Sector{{FloorHeight: 0, CeilingHeight: 128 * unit(), FloorPic: "FLOOR4_8", CeilingPic: "CEIL3_5"}},
		Subsectors: []worldmap.Subsector{{Sector: 0, FirstSeg: 0, NumSegs: 0}},
	}
}

func TestNewFrameInitializesCollaborators(t *testing.T) {
	lv := oneSectorLevel()
	vs := render.NewViewSize(11, 0)
	f := render.NewFrame(lv, render.Viewpoint{}, vs, 7)
	assert.Equate(t, f.ValidCount, 7)
	assert.Equate(t, f.Level, lv)
	assert.ExpectInequality(t, f.Solid, (*render.SolidSegs)(nil))
	assert.ExpectInequality(t, f.Planes, (*render.VisplaneArena)(nil))
}

func TestWalkDegenerateSingleSubsectorInvokesSpriteAdderOnce(t *testing.T) {
	lv := oneSectorLevel()
	vs := render.NewViewSize(11, 0)
	calls := 0
	f := render.NewFrame(lv, render.Viewpoint{}, vs, 1)
	f.SpriteAdder = func(sectorIdx int) { calls++ }
	f.Walk()
	assert.Equate(t, calls, 1)
}

func TestSubsectorOnlyAddsSpritesOncePerValidCount(t *testing.T) {
	lv := oneSectorLevel()
	vs := render.NewViewSize(11, 0)
	calls := 0
	f := render.NewFrame(lv, render.Viewpoint{}, vs, 3)
	f.SpriteAdder = func(sectorIdx int) { calls++ }
	f.Subsector(0)
	f.Subsector(0)
	assert.Equate(t, calls, 1)
}

func TestSubsectorStampResetsOnNewFrame(t *testing.T) {
	lv := oneSectorLevel()
	vs := render.NewViewSize(11, 0)
	calls := 0
	adder := func(sectorIdx int) { calls++ }

	f1 := render.NewFrame(lv, render.Viewpoint{}, vs, 1)
	f1.SpriteAdder = adder
	f1.Subsector(0)

	f2 := render.NewFrame(lv, render.Viewpoint{}, vs, 2)
	f2.SpriteAdder = adder
	f2.Subsector(0)

	assert.Equate(t, calls, 2)
}

// TestAddLineZeroLengthSegFromViewpointProjectsToOneColumn covers the
// degenerate case PointToAngle2 special-cases directly (dx==0 && dy==0
// returns angle 0 for both endpoints). Both endpoints project through the
// identical angleToX call, so whatever screen column that resolves to, it
// resolves to the same one for both — the seg clips to a single-column
// span rather than panicking or being dropped.
func TestAddLineZeroLengthSegFromViewpointProjectsToOneColumn(t *testing.T) {
	vp := render.Viewpoint{X: 0, Y: 0}

	lv := &worldmap.Level{
		Vertexes: []worldmap.Vertex{{X: 0, Y: 0}, {X: 0, Y: 0}},
		Sectors:  []worldmap.Sector{{}},
		Linedefs: []worldmap.Linedef{
			{V1: 0, V2: 1, Side: [2]int{0, worldmap.NoIndex}, FrontSector: 0, BackSector: worldmap.NoIndex},
		},
		Segs: []worldmap.Seg{
			{V1: 0, V2: 1, Linedef: 0, Side: 0, FrontSector: 0, BackSector: worldmap.NoIndex},
		},
	}

	vs := render.NewViewSize(11, 0)
	f := render.NewFrame(lv, vp, vs, 1)
	f.AddLine(0, nil, nil)
	assert.Equate(t, len(f.DrawSegs), 1)
	assert.Equate(t, f.DrawSegs[0].X1, f.DrawSegs[0].X2)
}

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

func TestBuildSwirlTableProducesBoundedOffsets(t *testing.T) {
	for _, mode := range []render.SwirlMode{render.SwirlClassic, render.SwirlUniform, render.SwirlLava, render.SwirlSludge} {
		tbl := render.BuildSwirlTable(mode)
		assert.Equate(t, tbl.Mode, mode)
		for _, v := range tbl.XOffset[0] {
			assert.Equate(t, v >= -8 && v <= 8, true)
		}
	}
}

func TestSwirlOffsetWrapsFrameAndEntryIndices(t *testing.T) {
	tbl := render.BuildSwirlTable(render.SwirlClassic)
	dx1, dy1 := tbl.Offset(256, 4096)
	dx2, dy2 := tbl.Offset(0, 0)
	assert.Equate(t, dx1, dx2)
	assert.Equate(t, dy1, dy2)
}

func TestApplySwirlIsNoopForNilTable(t *testing.T) {
	var tbl *render.SwirlTable
	s := &render.SpanCtx{XFrac: 100, YFrac: 200}
	tbl.ApplySwirl(s, 10)
	assert.Equate(t, s.XFrac, fixedpoint.Fixed(100))
	assert.Equate(t, s.YFrac, fixedpoint.Fixed(200))
}

func TestApplySwirlPerturbsSpanOrigin(t *testing.T) {
	tbl := render.BuildSwirlTable(render.SwirlLava)
	s := &render.SpanCtx{XFrac: 0, YFrac: 0}
	tbl.ApplySwirl(s, 5)
	// perturbation may legitimately be zero for some (frame,entry) pairs,
	// but applying it must never panic and must leave the context usable.
	_ = s.XFrac
	_ = s.YFrac
}

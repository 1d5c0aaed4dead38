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

package worldmap

import (
	"testing"

	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/internal/assert"
)

func TestBuildBlockmapCoversEndpoints(t *testing.T) {
	vertexes := []Vertex{
		{X: fixedpoint.ToFixed(0), Y: fixedpoint.ToFixed(0)},
		{X: fixedpoint.ToFixed(300), Y: fixedpoint.ToFixed(0)},
	}
	linedefs := []Linedef{{V1: 0, V2: 1}}

	bm := buildBlockmap(vertexes, linedefs)

	start := bm.BlockIndex(vertexes[0].X, vertexes[0].Y)
	end := bm.BlockIndex(vertexes[1].X, vertexes[1].Y)

	assert.ExpectInequality(t, start, -1)
	assert.ExpectInequality(t, end, -1)
	assert.ExpectInequality(t, len(bm.Lines[start]), 0)
	assert.ExpectInequality(t, len(bm.Lines[end]), 0)
}

func TestBlockIndexOutOfBounds(t *testing.T) {
	bm := &Blockmap{OriginX: 0, OriginY: 0, Width: 2, Height: 2}
	assert.Equate(t, bm.BlockIndex(fixedpoint.ToFixed(10000), 0), -1)
}

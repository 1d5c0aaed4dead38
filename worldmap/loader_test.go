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

	"github.com/jetsetilly/doomcore/internal/assert"
)

type fakeLumpSource map[string][]byte

func (f fakeLumpSource) Lump(name string) ([]byte, bool) {
	data, ok := f[NormaliseLumpName(name)]
	return data, ok
}

// buildSquareRoom constructs the lumps for a single convex four-sided
// sector, the smallest map shape that exercises every loader stage
// including a non-trivial BSP node.
func buildSquareRoom() fakeLumpSource {
	vertexes := concatBytes(
		packVertex(0, 0),
		packVertex(64, 0),
		packVertex(64, 64),
		packVertex(0, 64),
	)

	sectors := packSector(0, 128, "FLOOR4_8", "CEIL3_5", 160, 0, 0)

	sidedefs := concatBytes(
		packSidedef(0, 0, "-", "-", "BRICK1", 0),
		packSidedef(0, 0, "-", "-", "BRICK1", 0),
		packSidedef(0, 0, "-", "-", "BRICK1", 0),
		packSidedef(0, 0, "-", "-", "BRICK1", 0),
	)

	linedefs := concatBytes(
		packLinedef(0, 1, 0, 0, 0, 0, noSidedef),
		packLinedef(1, 2, 0, 0, 0, 1, noSidedef),
		packLinedef(2, 3, 0, 0, 0, 2, noSidedef),
		packLinedef(3, 0, 0, 0, 0, 3, noSidedef),
	)

	segs := concatBytes(
		packSeg(0, 1, 0, 0, 0, 0),
		packSeg(1, 2, 0, 1, 0, 0),
		packSeg(2, 3, 0, 2, 0, 0),
		packSeg(3, 0, 0, 3, 0, 0),
	)

	ssectors := packSubsector(4, 0)

	var bbox [2][4]int16
	nodes := packNode(0, 0, 64, 0, bbox, uint16(subsectorBit|0), uint16(subsectorBit|0))

	return fakeLumpSource{
		"VERTEXES": vertexes,
		"SECTORS":  sectors,
		"SIDEDEFS": sidedefs,
		"LINEDEFS": linedefs,
		"SEGS":     segs,
		"SSECTORS": ssectors,
		"NODES":    nodes,
		"THINGS":   nil,
	}
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestLoadFullPipeline(t *testing.T) {
	lv, err := Load(buildSquareRoom(), "MAP01")
	assert.ExpectSuccess(t, err)

	assert.Equate(t, len(lv.Vertexes), 4)
	assert.Equate(t, len(lv.Sectors), 1)
	assert.Equate(t, len(lv.Linedefs), 4)
	assert.Equate(t, len(lv.Segs), 4)
	assert.Equate(t, len(lv.Subsectors), 1)
	assert.Equate(t, len(lv.Nodes), 1)
	assert.Equate(t, lv.RootNode(), 0)
	assert.Equate(t, lv.BuiltBlockmap, true)
	assert.Equate(t, len(lv.Sectors[0].Lines), 4)

	for _, seg := range lv.Segs {
		assert.ExpectInequality(t, seg.Length, 0)
	}
}

func TestLoadMissingVertexesIsFatal(t *testing.T) {
	_, err := Load(fakeLumpSource{}, "MAP01")
	assert.ExpectFailure(t, err)
}

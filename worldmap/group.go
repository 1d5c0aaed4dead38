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

import "github.com/jetsetilly/doomcore/fixedpoint"

// groupLines associates each sector with the linedefs that bound it and
// computes each sector's bounding box (spec §4.C step 9, "group_lines").
// A sector with zero bounding lines is left with its zero-value bbox;
// nothing in the engine walks an unbounded sector's geometry.
func groupLines(sectors []Sector, linedefs []Linedef, vertexes []Vertex) {
	for i := range linedefs {
		ld := &linedefs[i]
		addSectorLine(sectors, ld.FrontSector, i, vertexes[ld.V1], vertexes[ld.V2])
		if ld.BackSector != NoIndex && ld.BackSector != ld.FrontSector {
			addSectorLine(sectors, ld.BackSector, i, vertexes[ld.V1], vertexes[ld.V2])
		}
	}
}

func addSectorLine(sectors []Sector, sectorIdx, lineIdx int, v1, v2 Vertex) {
	if sectorIdx == NoIndex || sectorIdx >= len(sectors) {
		return
	}
	s := &sectors[sectorIdx]
	s.Lines = append(s.Lines, lineIdx)

	lo := func(a, b fixedpoint.Fixed) fixedpoint.Fixed {
		if a < b {
			return a
		}
		return b
	}
	hi := func(a, b fixedpoint.Fixed) fixedpoint.Fixed {
		if a > b {
			return a
		}
		return b
	}

	minX, maxX := lo(v1.X, v2.X), hi(v1.X, v2.X)
	minY, maxY := lo(v1.Y, v2.Y), hi(v1.Y, v2.Y)

	if len(s.Lines) == 1 {
		s.BBoxMinX, s.BBoxMaxX = minX, maxX
		s.BBoxMinY, s.BBoxMaxY = minY, maxY
		return
	}

	s.BBoxMinX = lo(s.BBoxMinX, minX)
	s.BBoxMaxX = hi(s.BBoxMaxX, maxX)
	s.BBoxMinY = lo(s.BBoxMinY, minY)
	s.BBoxMaxY = hi(s.BBoxMaxY, maxY)
}

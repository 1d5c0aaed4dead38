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
	"fmt"

	"github.com/jetsetilly/doomcore/curated"
)

// noSidedef is the on-disk sentinel for "this side does not exist".
const noSidedef = 0xFFFF

func loadLinedefs(data []byte, vertexes []Vertex, sidedefs []Sidedef) ([]Linedef, error) {
	var out []Linedef
	err := decodeLump("LINEDEFS", data, linedefSize, func(rec []byte) error {
		rl := decodeLinedef(rec)
		if int(rl.V1) >= len(vertexes) || int(rl.V2) >= len(vertexes) {
			return curated.Errorf(curated.MalformedMap, fmt.Sprintf("linedef references vertex out of range (have %d)", len(vertexes)))
		}

		ld := Linedef{
			V1:      int(rl.V1),
			V2:      int(rl.V2),
			Flags:   LineFlag(rl.Flags),
			Special: int(rl.Special),
			Tag:     int(rl.Tag),
		}

		ld.Side[0] = sideIndex(rl.SideFront)
		ld.Side[1] = sideIndex(rl.SideBack)

		v1, v2 := vertexes[ld.V1], vertexes[ld.V2]
		ld.DX = v2.X - v1.X
		ld.DY = v2.Y - v1.Y

		switch {
		case ld.DX == 0:
			ld.SlopeType = SlopeVertical
		case ld.DY == 0:
			ld.SlopeType = SlopeHorizontal
		case (ld.DY > 0) == (ld.DX > 0):
			ld.SlopeType = SlopePositive
		default:
			ld.SlopeType = SlopeNegative
		}

		if v1.X < v2.X {
			ld.BBoxMinX, ld.BBoxMaxX = v1.X, v2.X
		} else {
			ld.BBoxMinX, ld.BBoxMaxX = v2.X, v1.X
		}
		if v1.Y < v2.Y {
			ld.BBoxMinY, ld.BBoxMaxY = v1.Y, v2.Y
		} else {
			ld.BBoxMinY, ld.BBoxMaxY = v2.Y, v1.Y
		}

		ld.FrontSector = NoIndex
		ld.BackSector = NoIndex
		if ld.Side[0] != NoIndex {
			if ld.Side[0] >= len(sidedefs) {
				return curated.Errorf(curated.MalformedMap, fmt.Sprintf("linedef front side %d out of range (have %d)", ld.Side[0], len(sidedefs)))
			}
			ld.FrontSector = sidedefs[ld.Side[0]].Sector
		}
		if ld.Side[1] != NoIndex {
			if ld.Side[1] >= len(sidedefs) {
				return curated.Errorf(curated.MalformedMap, fmt.Sprintf("linedef back side %d out of range (have %d)", ld.Side[1], len(sidedefs)))
			}
			ld.BackSector = sidedefs[ld.Side[1]].Sector
		}

		// A two-sided line with no second sidedef is not a load failure: it
		// keeps BackSector == NoIndex. No null sector is substituted here
		// (NullSector is not called and config.NullSectorSource is not read).
		if ld.Flags&LineTwoSided != 0 && ld.Side[1] == NoIndex {
			ld.BackSector = NoIndex
		}

		out = append(out, ld)
		return nil
	})
	return out, err
}

func sideIndex(raw uint16) int {
	if raw == noSidedef {
		return NoIndex
	}
	return int(raw)
}

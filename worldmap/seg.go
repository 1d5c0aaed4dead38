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

func loadSegs(data []byte, vertexes []Vertex, linedefs []Linedef) ([]Seg, error) {
	var out []Seg
	err := decodeLump("SEGS", data, segSize, func(rec []byte) error {
		rs := decodeSeg(rec)
		if int(rs.V1) >= len(vertexes) || int(rs.V2) >= len(vertexes) {
			return curated.Errorf(curated.MalformedMap, fmt.Sprintf("seg references vertex out of range (have %d)", len(vertexes)))
		}
		if int(rs.Linedef) >= len(linedefs) {
			return curated.Errorf(curated.MalformedMap, fmt.Sprintf("seg references linedef %d, have %d", rs.Linedef, len(linedefs)))
		}

		ld := linedefs[rs.Linedef]
		side := int(rs.Side)

		seg := Seg{
			V1:      int(rs.V1),
			V2:      int(rs.V2),
			Angle:   segAngle(rs.Angle),
			Linedef: int(rs.Linedef),
			Side:    side,
		}

		if side == 0 {
			seg.FrontSector = ld.FrontSector
			seg.BackSector = ld.BackSector
		} else {
			seg.FrontSector = ld.BackSector
			seg.BackSector = ld.FrontSector
		}
		if !ld.TwoSided() {
			seg.BackSector = NoIndex
		}

		out = append(out, seg)
		return nil
	})
	return out, err
}

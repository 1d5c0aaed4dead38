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

func loadSubsectors(data []byte, segs []Seg) ([]Subsector, error) {
	var out []Subsector
	err := decodeLump("SSECTORS", data, subsectorSize, func(rec []byte) error {
		rss := decodeSubsector(rec)
		first, num := int(rss.FirstSeg), int(rss.NumSegs)
		if first+num > len(segs) {
			return curated.Errorf(curated.MalformedMap, fmt.Sprintf("subsector seg range [%d,%d) exceeds %d segs", first, first+num, len(segs)))
		}

		sector := NoIndex
		if num > 0 {
			sector = segs[first].FrontSector
		}

		out = append(out, Subsector{Sector: sector, FirstSeg: first, NumSegs: num})
		return nil
	})
	return out, err
}

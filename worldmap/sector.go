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

func loadSectors(data []byte) ([]Sector, error) {
	var out []Sector
	err := decodeLump("SECTORS", data, sectorSize, func(rec []byte) error {
		rs := decodeSector(rec)
		floor := fixedpoint.ToFixed(int(rs.FloorHeight))
		ceiling := fixedpoint.ToFixed(int(rs.CeilingHeight))
		out = append(out, Sector{
			FloorHeight:      floor,
			CeilingHeight:    ceiling,
			OldFloorHeight:   floor,
			OldCeilingHeight: ceiling,
			FloorPic:         readString8(rs.FloorPic),
			CeilingPic:       readString8(rs.CeilingPic),
			LightLevel:       int(rs.LightLevel),
			Special:          int(rs.Special),
			Tag:              int(rs.Tag),
			ThingList:        NoIndex,
		})
		return nil
	})
	return out, err
}

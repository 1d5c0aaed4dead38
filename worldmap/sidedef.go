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
	"github.com/jetsetilly/doomcore/fixedpoint"
)

func loadSidedefs(data []byte, numSectors int) ([]Sidedef, error) {
	var out []Sidedef
	err := decodeLump("SIDEDEFS", data, sidedefSize, func(rec []byte) error {
		rs := decodeSidedef(rec)
		if int(rs.Sector) >= numSectors {
			return curated.Errorf(curated.MalformedMap, fmt.Sprintf("sidedef references sector %d, have %d", rs.Sector, numSectors))
		}
		out = append(out, Sidedef{
			TextureOffset: fixedpoint.ToFixed(int(rs.TextureOffset)),
			RowOffset:     fixedpoint.ToFixed(int(rs.RowOffset)),
			TopTexture:    readString8(rs.TopTexture),
			BottomTexture: readString8(rs.BottomTexture),
			MidTexture:    readString8(rs.MidTexture),
			Sector:        int(rs.Sector),
		})
		return nil
	})
	return out, err
}

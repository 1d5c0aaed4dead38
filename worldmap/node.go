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

// This engine only loads vanilla-format NODES lumps (spec §4.C step 1):
// extended node formats (DeePBSP, ZDBSP, UDMF) that some modern source
// ports accept are treated as a component permanently out of scope, the
// same way the spec keeps WAD container handling and video/audio device
// backends out of core.
func loadNodes(data []byte, numSubsectors int) ([]Node, error) {
	var out []Node
	err := decodeLump("NODES", data, nodeSize, func(rec []byte) error {
		rn := decodeNode(rec)

		n := Node{
			Partition: fixedpoint.Partition{
				X:  fixedpoint.ToFixed(int(rn.X)),
				Y:  fixedpoint.ToFixed(int(rn.Y)),
				DX: fixedpoint.ToFixed(int(rn.DX)),
				DY: fixedpoint.ToFixed(int(rn.DY)),
			},
		}

		for side := 0; side < 2; side++ {
			for i := 0; i < 4; i++ {
				n.BBox[side][i] = fixedpoint.ToFixed(int(rn.BBox[side][i]))
			}

			child := rn.Children[side]
			if child&subsectorBit != 0 {
				idx := int(child &^ subsectorBit)
				if idx >= numSubsectors {
					return curated.Errorf(curated.MalformedMap, fmt.Sprintf("node references subsector %d, have %d", idx, numSubsectors))
				}
				n.Children[side] = idx
				n.IsLeaf[side] = true
			} else {
				n.Children[side] = int(child)
			}
		}

		out = append(out, n)
		return nil
	})
	return out, err
}

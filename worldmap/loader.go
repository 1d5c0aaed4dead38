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

// Load runs the map-load pipeline against src: load vertexes, sectors,
// sidedefs and linedefs (in that dependency order, since later lumps
// reference earlier ones), load the blockmap or build one if the lump is
// missing or empty, load segs, subsectors and nodes, group sector lines,
// load the reject table, remove slime trails, compute seg lengths and fake
// contrast, and finally load the things. There is no node-format probe:
// NODES is always decoded as the vanilla format. Lumps are requested from
// src by their bare names (THINGS, LINEDEFS, ...); marker (e.g. "E1M1" or
// "MAP01") only labels errors.
func Load(src LumpSource, marker string) (*Level, error) {
	lumps := make(map[string][]byte, len(mapLumpOrder))
	for _, name := range mapLumpOrder {
		data, ok := src.Lump(name)
		if !ok {
			continue
		}
		lumps[name] = data
	}

	if _, ok := lumps["VERTEXES"]; !ok {
		return nil, curated.Errorf(curated.MalformedMap, fmt.Sprintf("%s: no VERTEXES lump", marker))
	}

	lv := &Level{}

	var err error
	lv.Vertexes, err = loadVertexes(lumps["VERTEXES"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	lv.Sectors, err = loadSectors(lumps["SECTORS"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	lv.Sidedefs, err = loadSidedefs(lumps["SIDEDEFS"], len(lv.Sectors))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	lv.Linedefs, err = loadLinedefs(lumps["LINEDEFS"], lv.Vertexes, lv.Sidedefs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	if data, ok := lumps["BLOCKMAP"]; ok && len(data) > 0 {
		lv.Blockmap, err = loadBlockmap(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", marker, err)
		}
	} else {
		lv.Blockmap = buildBlockmap(lv.Vertexes, lv.Linedefs)
		lv.BuiltBlockmap = true
	}

	lv.Segs, err = loadSegs(lumps["SEGS"], lv.Vertexes, lv.Linedefs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	lv.Subsectors, err = loadSubsectors(lumps["SSECTORS"], lv.Segs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	lv.Nodes, err = loadNodes(lumps["NODES"], len(lv.Subsectors))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}
	if err := validateNodeChildren(lv.Nodes); err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	groupLines(lv.Sectors, lv.Linedefs, lv.Vertexes)

	lv.Reject = loadReject(lumps["REJECT"], len(lv.Sectors))

	removeSlimeTrails(lv.Vertexes, lv.Segs, lv.Linedefs)

	segLengthsAndContrast(lv.Vertexes, lv.Segs)

	lv.Things, err = loadThings(lumps["THINGS"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", marker, err)
	}

	return lv, nil
}

// validateNodeChildren checks that every non-leaf child index refers to a
// node that appears earlier in the slice, matching the invariant that the
// BSP root is always the last node (spec §3.1).
func validateNodeChildren(nodes []Node) error {
	for i, n := range nodes {
		for side := 0; side < 2; side++ {
			if n.IsLeaf[side] {
				continue
			}
			if n.Children[side] >= i {
				return curated.Errorf(curated.MalformedMap, fmt.Sprintf("node %d child %d is not a backward reference", i, n.Children[side]))
			}
		}
	}
	return nil
}

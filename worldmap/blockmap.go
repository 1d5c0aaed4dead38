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
	"encoding/binary"

	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/fixedpoint"
)

const blockSize = 128

// loadBlockmap decodes a BLOCKMAP lump in its native format: a header of
// origin/width/height, followed by a table of per-block offsets into the
// same lump, each block terminated by the 0xFFFF sentinel (spec §6.3,
// glossary "blockmap").
func loadBlockmap(data []byte) (*Blockmap, error) {
	if len(data) < 8 {
		return nil, curated.Errorf(curated.MalformedMap, "blockmap header truncated")
	}

	originX := int16(binary.LittleEndian.Uint16(data[0:2]))
	originY := int16(binary.LittleEndian.Uint16(data[2:4]))
	width := int(binary.LittleEndian.Uint16(data[4:6]))
	height := int(binary.LittleEndian.Uint16(data[6:8]))

	numBlocks := width * height
	if numBlocks == 0 {
		return nil, curated.Errorf(curated.MalformedMap, "blockmap has zero blocks")
	}

	offsetTable := data[8:]
	if len(offsetTable) < numBlocks*2 {
		return nil, curated.Errorf(curated.MalformedMap, "blockmap offset table truncated")
	}

	bm := &Blockmap{
		OriginX: fixedpoint.ToFixed(int(originX)),
		OriginY: fixedpoint.ToFixed(int(originY)),
		Width:   width,
		Height:  height,
		Lines:   make([][]int, numBlocks),
	}

	for i := 0; i < numBlocks; i++ {
		offset := int(binary.LittleEndian.Uint16(offsetTable[i*2 : i*2+2]))
		wordOffset := offset * 2
		if wordOffset+2 > len(data) {
			return nil, curated.Errorf(curated.MalformedMap, "blockmap block offset out of range")
		}

		// the first entry in every block's line list is a historical zero
		// placeholder that every engine since vanilla Doom has ignored.
		pos := wordOffset + 2
		var lines []int
		for pos+2 <= len(data) {
			v := binary.LittleEndian.Uint16(data[pos : pos+2])
			if v == 0xFFFF {
				break
			}
			lines = append(lines, int(v))
			pos += 2
		}
		bm.Lines[i] = lines
	}

	return bm, nil
}

// buildBlockmap synthesizes a blockmap for maps that ship without one,
// stamping each linedef into the blocks on the Bresenham path between the
// blocks holding its endpoints (spec §4.C step 7). The result has the same
// shape as a loaded blockmap, without the BLOCKMAP lump's historical zero
// placeholder.
func buildBlockmap(vertexes []Vertex, linedefs []Linedef) *Blockmap {
	if len(vertexes) == 0 {
		return &Blockmap{Width: 0, Height: 0}
	}

	minX, minY := vertexes[0].X, vertexes[0].Y
	maxX, maxY := vertexes[0].X, vertexes[0].Y
	for _, v := range vertexes[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	width := (maxX.Int()-minX.Int())/blockSize + 1
	height := (maxY.Int()-minY.Int())/blockSize + 1
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	bm := &Blockmap{
		OriginX: minX,
		OriginY: minY,
		Width:   width,
		Height:  height,
		Lines:   make([][]int, width*height),
	}

	for i, ld := range linedefs {
		v1, v2 := vertexes[ld.V1], vertexes[ld.V2]
		bresenhamBlocks(bm, v1.X.Int(), v1.Y.Int(), v2.X.Int(), v2.Y.Int(), func(bx, by int) {
			idx := by*width + bx
			if idx < 0 || idx >= len(bm.Lines) {
				return
			}
			for _, have := range bm.Lines[idx] {
				if have == i {
					return
				}
			}
			bm.Lines[idx] = append(bm.Lines[idx], i)
		})
	}

	return bm
}

// bresenhamBlocks walks the 8-connected Bresenham path from the cell
// holding (x1,y1) to the cell holding (x2,y2), calling visit once per cell
// on it. Where the path steps diagonally, a cell the line only crosses near
// that corner is not visited.
func bresenhamBlocks(bm *Blockmap, x1, y1, x2, y2 int, visit func(bx, by int)) {
	originX, originY := bm.OriginX.Int(), bm.OriginY.Int()

	bx1, by1 := (x1-originX)/blockSize, (y1-originY)/blockSize
	bx2, by2 := (x2-originX)/blockSize, (y2-originY)/blockSize

	dx := abs(bx2 - bx1)
	dy := abs(by2 - by1)
	sx, sy := 1, 1
	if bx1 > bx2 {
		sx = -1
	}
	if by1 > by2 {
		sy = -1
	}
	err := dx - dy

	bx, by := bx1, by1
	for {
		visit(bx, by)
		if bx == bx2 && by == by2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			bx += sx
		}
		if e2 < dx {
			err += dx
			by += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

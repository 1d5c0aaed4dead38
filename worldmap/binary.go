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
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/fixedpoint"
)

// The structs below mirror the on-disk lump record layouts exactly (spec
// §6.3). Every field is little-endian; string fields are fixed-width,
// NUL-padded ASCII. They exist only as a decode target — callers never see
// them, only the richer types in types.go that the loader builds from them.

type rawVertex struct {
	X, Y int16
}

const vertexSize = 4

type rawLinedef struct {
	V1, V2          uint16
	Flags           uint16
	Special         int16
	Tag             int16
	SideFront, SideBack uint16
}

const linedefSize = 14

type rawSidedef struct {
	TextureOffset, RowOffset int16
	TopTexture               [8]byte
	BottomTexture            [8]byte
	MidTexture               [8]byte
	Sector                   uint16
}

const sidedefSize = 30

type rawSector struct {
	FloorHeight, CeilingHeight int16
	FloorPic, CeilingPic       [8]byte
	LightLevel                 int16
	Special                    int16
	Tag                        int16
}

const sectorSize = 26

type rawSubsector struct {
	NumSegs, FirstSeg uint16
}

const subsectorSize = 4

type rawSeg struct {
	V1, V2  uint16
	Angle   uint16
	Linedef uint16
	Side    uint16
	Offset  uint16
}

const segSize = 12

type rawNode struct {
	X, Y, DX, DY int16
	BBox         [2][4]int16
	Children     [2]uint16
}

const nodeSize = 28

type rawThing struct {
	X, Y    int16
	Angle   uint16
	Type    uint16
	Options uint16
}

const thingSize = 10

// decodeLump splits data into fixed-size records and applies decode to each,
// returning a MalformedMap error if the lump length isn't an exact multiple
// of recordSize.
func decodeLump(lumpName string, data []byte, recordSize int, decode func([]byte) error) error {
	if len(data)%recordSize != 0 {
		return curated.Errorf(curated.MalformedMap, fmt.Sprintf("%s: %d bytes is not a multiple of the %d-byte record size", lumpName, len(data), recordSize))
	}
	count := len(data) / recordSize
	for i := 0; i < count; i++ {
		rec := data[i*recordSize : (i+1)*recordSize]
		if err := decode(rec); err != nil {
			return fmt.Errorf("%s record %d: %w", lumpName, i, err)
		}
	}
	return nil
}

func readString8(b [8]byte) string {
	n := bytes.IndexByte(b[:], 0)
	if n < 0 {
		n = len(b)
	}
	return string(b[:n])
}

func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func decodeVertex(b []byte) rawVertex {
	return rawVertex{X: int16(le16(b[0:2])), Y: int16(le16(b[2:4]))}
}

func decodeLinedef(b []byte) rawLinedef {
	return rawLinedef{
		V1:        le16(b[0:2]),
		V2:        le16(b[2:4]),
		Flags:     le16(b[4:6]),
		Special:   int16(le16(b[6:8])),
		Tag:       int16(le16(b[8:10])),
		SideFront: le16(b[10:12]),
		SideBack:  le16(b[12:14]),
	}
}

func decodeSidedef(b []byte) rawSidedef {
	var r rawSidedef
	r.TextureOffset = int16(le16(b[0:2]))
	r.RowOffset = int16(le16(b[2:4]))
	copy(r.TopTexture[:], b[4:12])
	copy(r.BottomTexture[:], b[12:20])
	copy(r.MidTexture[:], b[20:28])
	r.Sector = le16(b[28:30])
	return r
}

func decodeSector(b []byte) rawSector {
	var r rawSector
	r.FloorHeight = int16(le16(b[0:2]))
	r.CeilingHeight = int16(le16(b[2:4]))
	copy(r.FloorPic[:], b[4:12])
	copy(r.CeilingPic[:], b[12:20])
	r.LightLevel = int16(le16(b[20:22]))
	r.Special = int16(le16(b[22:24]))
	r.Tag = int16(le16(b[24:26]))
	return r
}

func decodeSubsector(b []byte) rawSubsector {
	return rawSubsector{NumSegs: le16(b[0:2]), FirstSeg: le16(b[2:4])}
}

func decodeSeg(b []byte) rawSeg {
	return rawSeg{
		V1:      le16(b[0:2]),
		V2:      le16(b[2:4]),
		Angle:   le16(b[4:6]),
		Linedef: le16(b[6:8]),
		Side:    le16(b[8:10]),
		Offset:  le16(b[10:12]),
	}
}

func decodeNode(b []byte) rawNode {
	var r rawNode
	r.X = int16(le16(b[0:2]))
	r.Y = int16(le16(b[2:4]))
	r.DX = int16(le16(b[4:6]))
	r.DY = int16(le16(b[6:8]))
	off := 8
	for side := 0; side < 2; side++ {
		for i := 0; i < 4; i++ {
			r.BBox[side][i] = int16(le16(b[off : off+2]))
			off += 2
		}
	}
	r.Children[0] = le16(b[off : off+2])
	r.Children[1] = le16(b[off+2 : off+4])
	return r
}

func decodeThing(b []byte) rawThing {
	return rawThing{
		X:       int16(le16(b[0:2])),
		Y:       int16(le16(b[2:4])),
		Angle:   le16(b[4:6]),
		Type:    le16(b[6:8]),
		Options: le16(b[8:10]),
	}
}

// segAngle converts the on-disk SEGS angle field — already expressed as the
// top 16 bits of a full Angle — into the engine's Angle space.
func segAngle(raw uint16) fixedpoint.Angle {
	return fixedpoint.Angle(uint32(raw) << 16)
}

// angleUnit is one degree in the engine's binary-angle space, matching the
// original engine's ANGLE_1 constant (ANG45/45): THINGS store orientation
// in whole degrees, not binary angle units.
const angleUnit = uint32(fixedpoint.ANG45) / 45

// thingAngle converts a THINGS lump's degree-valued angle field into the
// engine's Angle space.
func thingAngle(raw uint16) fixedpoint.Angle {
	return fixedpoint.Angle(uint32(raw) * angleUnit)
}

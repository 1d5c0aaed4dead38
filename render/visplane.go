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

package render

import "github.com/jetsetilly/doomcore/fixedpoint"

// visplaneHashSize is the fixed 128-slot visplane hash table size (spec
// §4.H: "Visplane hash table: 128 slots").
const visplaneHashSize = 128

// SkyFlat is the sentinel flat name that causes the sky texture to be
// drawn column-wise instead of a horizontal span (spec glossary: "sky
// flat").
const SkyFlat = "F_SKY1"

// Visplane is a per-frame record for one contiguous run of columns
// rendering the same flat at the same height and light level (spec §3.5).
type Visplane struct {
	Picnum     string
	LightLevel int
	Height     fixedpoint.Fixed

	MinX, MaxX int

	// Top/Bottom are indexed by absolute screen column; Top[x]==planeUnclaimed
	// marks a column this plane has not yet claimed (mirrors the
	// original's 0xFF sentinel byte, widened since picture heights here
	// aren't byte-bounded).
	Top, Bottom []int
}

const planeUnclaimed = 1<<31 - 1

// NewVisplane returns an empty plane spanning no columns yet, with every
// column's Top/Bottom marked unclaimed.
func NewVisplane(picnum string, lightLevel int, height fixedpoint.Fixed, width int) *Visplane {
	p := &Visplane{
		Picnum: picnum, LightLevel: lightLevel, Height: height,
		MinX: width, MaxX: -1,
		Top:    make([]int, width),
		Bottom: make([]int, width),
	}
	for x := range p.Top {
		p.Top[x] = planeUnclaimed
		p.Bottom[x] = -1
	}
	return p
}

// planeKey hashes (picnum, lightlevel, height) into a visplane hash bucket
// (spec §4.H: "(picnum·3 + lightlevel + height·7) mod 128"). Sky planes
// collapse lightlevel to 0 and height to 0 or 1 so floors and ceilings
// never merge (spec §4.H).
func planeKey(picnum string, lightLevel int, height fixedpoint.Fixed, viewZ fixedpoint.Fixed, isSky bool) (int, int, fixedpoint.Fixed) {
	if isSky {
		lightLevel = 0
		if height > viewZ {
			height = 1
		} else {
			height = 0
		}
	}
	return int(picnumHash(picnum)), lightLevel, height
}

func picnumHash(picnum string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(picnum); i++ {
		h ^= uint32(picnum[i])
		h *= 16777619
	}
	return h
}

func bucket(picHash uint32, lightLevel int, height fixedpoint.Fixed) int {
	v := int64(picHash)*3 + int64(lightLevel) + int64(height)*7
	m := v % visplaneHashSize
	if m < 0 {
		m += visplaneHashSize
	}
	return int(m)
}

// VisplaneArena owns the visplane hash table for one frame. R_ClearPlanes
// resets it; R_FindPlane/R_CheckPlane are its two entry points (spec §8
// property 4: identity until R_ClearPlanes).
type VisplaneArena struct {
	width  int
	viewZ  fixedpoint.Fixed
	table  [visplaneHashSize][]*Visplane
	planes []*Visplane
}

// NewVisplaneArena creates an arena for a frame of the given screen width.
func NewVisplaneArena(width int, viewZ fixedpoint.Fixed) *VisplaneArena {
	return &VisplaneArena{width: width, viewZ: viewZ}
}

// Clear empties every hash bucket, matching R_ClearPlanes (spec §8
// property 4: plane identity holds only "until R_ClearPlanes").
func (a *VisplaneArena) Clear() {
	for i := range a.table {
		a.table[i] = a.table[i][:0]
	}
	a.planes = a.planes[:0]
}

// FindPlane returns an existing plane matching (height, picnum,
// lightlevel), or allocates a new one. Equal inputs always return the same
// *Visplane pointer until the next Clear (spec §4.H, §8 property 4).
func (a *VisplaneArena) FindPlane(height fixedpoint.Fixed, picnum string, lightLevel int) *Visplane {
	isSky := picnum == SkyFlat
	h, ll, ht := planeKey(picnum, lightLevel, height, a.viewZ, isSky)
	b := bucket(uint32(h), ll, ht)

	for _, p := range a.table[b] {
		if p.Picnum == picnum && p.LightLevel == ll && p.Height == ht {
			return p
		}
	}

	p := NewVisplane(picnum, ll, ht, a.width)
	a.table[b] = append(a.table[b], p)
	a.planes = append(a.planes, p)
	return p
}

// CheckPlane extends plane's [minx,maxx] span to include [start,stop] if
// that range doesn't overlap columns the plane has already claimed;
// otherwise it returns a fresh duplicate plane for the new range, exactly
// mirroring R_CheckPlane's split-on-conflict behaviour (spec §4.H).
func (a *VisplaneArena) CheckPlane(p *Visplane, start, stop int) *Visplane {
	intersectStart := start
	if p.MinX > intersectStart {
		intersectStart = p.MinX
	}
	intersectStop := stop
	if p.MaxX < intersectStop {
		intersectStop = p.MaxX
	}

	overlap := false
	for x := intersectStart; x <= intersectStop; x++ {
		if x < 0 || x >= len(p.Top) {
			continue
		}
		if p.Top[x] != planeUnclaimed {
			overlap = true
			break
		}
	}

	if !overlap {
		if start < p.MinX {
			p.MinX = start
		}
		if stop > p.MaxX {
			p.MaxX = stop
		}
		return p
	}

	dup := a.FindPlane(p.Height, p.Picnum, p.LightLevel)
	if dup == p {
		// every match is already occupied across [start,stop]; allocate a
		// genuinely new plane instance and register it under the same
		// bucket so future lookups can still find either instance.
		dup = NewVisplane(p.Picnum, p.LightLevel, p.Height, a.width)
		isSky := p.Picnum == SkyFlat
		_, ll, ht := planeKey(p.Picnum, p.LightLevel, p.Height, a.viewZ, isSky)
		b := bucket(uint32(picnumHash(p.Picnum)), ll, ht)
		a.table[b] = append(a.table[b], dup)
		a.planes = append(a.planes, dup)
	}
	dup.MinX, dup.MaxX = start, stop
	return dup
}

// MarkColumn records that plane covers column x between top and bottom
// (inclusive), used while walking a subsector's segs to build up the
// plane's footprint before R_DrawPlanes runs (spec §4.G: "R_Subsector...
// finds or creates floor and ceiling visplanes").
func (p *Visplane) MarkColumn(x, top, bottom int) {
	p.Top[x] = top
	p.Bottom[x] = bottom
}

// Planes returns every plane allocated this frame, in allocation order.
func (a *VisplaneArena) Planes() []*Visplane {
	return a.planes
}

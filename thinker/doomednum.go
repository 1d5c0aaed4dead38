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

package thinker

// DoomedNumTable is a lazily-initialized hash table mapping a mapthing's
// doomednum to its type id, chained by doomednum % size (spec §4.D,
// P_FindDoomedNum). Used by map-thing spawning and by special respawn
// paths that need to look a type back up by its placement-time id.
type DoomedNumTable struct {
	size    int
	buckets [][]doomedNumEntry
}

type doomedNumEntry struct {
	doomedNum int
	typeID    int
}

// NewDoomedNumTable builds the table from the full list of (doomednum,
// typeID) pairs declared by the type-descriptor set, sized to the number
// of types as the original sizes its hash table to NUMMOBJTYPES.
func NewDoomedNumTable(pairs []struct {
	DoomedNum int
	TypeID    int
}) *DoomedNumTable {
	size := len(pairs)
	if size == 0 {
		size = 1
	}
	t := &DoomedNumTable{size: size, buckets: make([][]doomedNumEntry, size)}
	for _, p := range pairs {
		b := p.DoomedNum % size
		if b < 0 {
			b += size
		}
		t.buckets[b] = append(t.buckets[b], doomedNumEntry{doomedNum: p.DoomedNum, typeID: p.TypeID})
	}
	return t
}

// Find returns the type id registered for doomedNum, and whether one was
// found.
func (t *DoomedNumTable) Find(doomedNum int) (int, bool) {
	if t == nil || t.size == 0 {
		return 0, false
	}
	b := doomedNum % t.size
	if b < 0 {
		b += t.size
	}
	for _, e := range t.buckets[b] {
		if e.doomedNum == doomedNum {
			return e.typeID, true
		}
	}
	return 0, false
}

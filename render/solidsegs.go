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

// solidRange is one inclusive [first,last] span of screen columns that is
// already fully covered by a nearer, opaque wall (spec §4.G: "solid-column
// list").
type solidRange struct {
	first, last int
}

// SolidSegs is the 1D run-length list the BSP walk clips against. It is
// reset once per frame with the two screen-edge sentinels already present,
// matching the original's r_newend bootstrap.
type SolidSegs struct {
	ranges []solidRange
}

// NewSolidSegs returns a SolidSegs initialised with the two off-screen
// sentinel spans that make every subsequent clip a simple interior
// insertion (spec §4.G).
func NewSolidSegs(width int) *SolidSegs {
	return &SolidSegs{
		ranges: []solidRange{
			{first: -0x7fffffff, last: -1},
			{first: width, last: 0x7fffffff},
		},
	}
}

// Covered reports whether every column in [first,last] is already solid.
func (s *SolidSegs) Covered(first, last int) bool {
	for _, r := range s.ranges {
		if first >= r.first && last <= r.last {
			return true
		}
	}
	return false
}

// ClipResult describes the visible sub-ranges of a wall segment after
// solid-column clipping: zero, one, or two spans (a segment can be split
// when it pokes out on both sides of an existing solid range).
type ClipResult struct {
	Spans [][2]int
}

// ClipSolidWallSegment clips [first,last] against the existing solid
// ranges, returns the newly visible sub-spans, and marks the full
// [first,last] run as solid afterward (spec §4.G: "R_ClipSolidWallSegment
// extends spans and emits drawsegs for visible portions").
func (s *SolidSegs) ClipSolidWallSegment(first, last int) ClipResult {
	var res ClipResult
	cur := first

	for i := 0; i < len(s.ranges) && cur <= last; i++ {
		r := s.ranges[i]
		if r.last < cur {
			continue
		}
		if r.first > last {
			res.Spans = append(res.Spans, [2]int{cur, last})
			cur = last + 1
			break
		}
		if r.first > cur {
			res.Spans = append(res.Spans, [2]int{cur, r.first - 1})
		}
		cur = r.last + 1
	}

	s.insertSolid(first, last)
	return res
}

// ClipPassWallSegment clips like ClipSolidWallSegment but never marks the
// range solid: used for two-sided lines whose far side may still need
// sprites/planes drawn through it (spec §4.G: "R_ClipPassWallSegment emits
// drawsegs without modifying the list").
func (s *SolidSegs) ClipPassWallSegment(first, last int) ClipResult {
	var res ClipResult
	cur := first

	for i := 0; i < len(s.ranges) && cur <= last; i++ {
		r := s.ranges[i]
		if r.last < cur {
			continue
		}
		if r.first > last {
			res.Spans = append(res.Spans, [2]int{cur, last})
			cur = last + 1
			break
		}
		if r.first > cur {
			res.Spans = append(res.Spans, [2]int{cur, r.first - 1})
		}
		cur = r.last + 1
	}
	return res
}

// insertSolid merges [first,last] into the solid range list, coalescing
// with any overlapping or adjacent neighbours.
func (s *SolidSegs) insertSolid(first, last int) {
	merged := solidRange{first: first, last: last}
	var out []solidRange
	inserted := false
	for _, r := range s.ranges {
		if r.last+1 < merged.first || r.first-1 > merged.last {
			if !inserted && r.first > merged.last {
				out = append(out, merged)
				inserted = true
			}
			out = append(out, r)
			continue
		}
		if r.first < merged.first {
			merged.first = r.first
		}
		if r.last > merged.last {
			merged.last = r.last
		}
	}
	if !inserted {
		out = append(out, merged)
	}
	s.ranges = out
}

// FullyClosed reports whether the entire screen width is now solid, which
// lets the BSP walk stop early (every original port's CheckBBox early-out).
func (s *SolidSegs) FullyClosed(width int) bool {
	return len(s.ranges) == 1 && s.ranges[0].first <= 0 && s.ranges[0].last >= width-1
}

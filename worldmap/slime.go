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

// removeSlimeTrails corrects the classic "slime trail" rendering artifact:
// a seg's endpoint is supposed to lie exactly on its parent linedef, but
// integer rounding during the original node build can leave it a unit or
// two off the line, which shows up as a visible seam when two subsectors
// meet there. The fix only ever touches the render-only vertex copy (spec
// §3.1, Vertex.RX/RY) — simulation coordinates are untouched, so nothing
// about collision or sight changes (spec §4.C step 11).
func removeSlimeTrails(vertexes []Vertex, segs []Seg, linedefs []Linedef) {
	for _, seg := range segs {
		ld := linedefs[seg.Linedef]
		if ld.DX == 0 || ld.DY == 0 {
			// axis-aligned lines can't suffer from the rounding error this
			// fix targets: a point off an axis-aligned line by construction
			// isn't the kind of near-miss slime trails come from.
			continue
		}

		snapOnto(&vertexes[seg.V1], ld, vertexes)
		snapOnto(&vertexes[seg.V2], ld, vertexes)
	}
}

// snapOnto projects v's simulation position onto the infinite line through
// the parent linedef and stores the result as v's render position, if that
// point lies within 2 units of v on each axis — a large
// correction would indicate the vertex legitimately belongs elsewhere, and
// is left alone.
func snapOnto(v *Vertex, ld Linedef, vertexes []Vertex) {
	origin := vertexes[ld.V1]

	px, py := v.X-origin.X, v.Y-origin.Y
	dx, dy := ld.DX, ld.DY

	denom := fixedpoint.FixedMul(dx, dx) + fixedpoint.FixedMul(dy, dy)
	if denom == 0 {
		return
	}

	t := fixedpoint.FixedDiv(fixedpoint.FixedMul(px, dx)+fixedpoint.FixedMul(py, dy), denom)

	nx := origin.X + fixedpoint.FixedMul(t, dx)
	ny := origin.Y + fixedpoint.FixedMul(t, dy)

	const maxNudge = fixedpoint.Fixed(2 << fixedpoint.FRACBITS)
	dxOff := nx - v.X
	dyOff := ny - v.Y
	if abs32fixed(dxOff) > maxNudge || abs32fixed(dyOff) > maxNudge {
		return
	}

	if nx != v.RX || ny != v.RY {
		v.RX, v.RY = nx, ny
		v.Moved = true
	}
}

func abs32fixed(f fixedpoint.Fixed) fixedpoint.Fixed {
	if f < 0 {
		return -f
	}
	return f
}

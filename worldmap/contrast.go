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

// segLengthsAndContrast fills in the render-only Length, RAngle and
// FakeContrast fields on every seg (spec §4.C step 12). FakeContrast
// slightly darkens or brightens purely-horizontal or purely-vertical walls
// so that axis-aligned surfaces remain visually distinguishable under flat
// lighting, a cosmetic touch the original renderer is well known for.
func segLengthsAndContrast(vertexes []Vertex, segs []Seg) {
	for i := range segs {
		s := &segs[i]
		v1, v2 := vertexes[s.V1], vertexes[s.V2]

		dx := v2.X - v1.X
		dy := v2.Y - v1.Y
		s.Length = fixedpoint.Fixed(isqrt(int64(dx)*int64(dx) + int64(dy)*int64(dy)))
		s.RAngle = fixedpoint.PointToAngle2(v1.X, v1.Y, v2.X, v2.Y)

		switch {
		case dy == 0:
			s.FakeContrast = -1
		case dx == 0:
			s.FakeContrast = 1
		default:
			s.FakeContrast = 0
		}
	}
}

// isqrt returns the integer square root of a non-negative 64-bit value
// using Newton's method, used here because seg lengths are a render-only
// quantity computed once at load time rather than per tick.
func isqrt(v int64) int64 {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}

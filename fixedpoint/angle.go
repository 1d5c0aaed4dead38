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

package fixedpoint

import "math"

// Angle is an unsigned binary angle: the full circle is the entire uint32
// range, so addition/subtraction wrap around for free using normal Go
// unsigned arithmetic.
type Angle uint32

// Angle constants for the cardinal directions, expressed in binary-angle
// units (ANG90 is a quarter turn, and so on).
const (
	ANG0   Angle = 0
	ANG45  Angle = 0x20000000
	ANG90  Angle = 0x40000000
	ANG180 Angle = 0x80000000
	ANG270 Angle = 0xC0000000
)

// ANGLETOFINESHIFT is the shift that converts a full 32-bit Angle into an
// index into the 8192-entry (13-bit) fine trig tables.
const ANGLETOFINESHIFT = 19

// FINEANGLES is the number of entries in the fine trig tables: a full circle
// split into 8192 steps.
const FINEANGLES = 8192

const fineMask = FINEANGLES - 1

// ToFine converts a full Angle into an index into the fine trig tables.
func (a Angle) ToFine() int {
	return int(uint32(a) >> ANGLETOFINESHIFT)
}

var finesine [FINEANGLES]Fixed
var finecosine [FINEANGLES]Fixed
var finetangent [FINEANGLES]Fixed

func init() {
	for i := 0; i < FINEANGLES; i++ {
		radians := 2 * math.Pi * float64(i) / FINEANGLES
		finesine[i] = Fixed(math.Round(math.Sin(radians) * float64(FRACUNIT)))
	}
	// cosine is sine shifted a quarter turn ahead
	quarter := FINEANGLES / 4
	for i := 0; i < FINEANGLES; i++ {
		finecosine[i] = finesine[(i+quarter)&fineMask]
	}
	for i := 0; i < FINEANGLES; i++ {
		radians := 2 * math.Pi * float64(i) / FINEANGLES
		t := math.Tan(radians) * float64(FRACUNIT)
		if t > math.MaxInt32 {
			t = math.MaxInt32
		} else if t < math.MinInt32 {
			t = math.MinInt32
		}
		finetangent[i] = Fixed(math.Round(t))
	}
}

// FineSine returns the precomputed sine for a fine-angle index, wrapping the
// index into range.
func FineSine(fine int) Fixed {
	return finesine[fine&fineMask]
}

// FineCosine returns the precomputed cosine for a fine-angle index, wrapping
// the index into range.
func FineCosine(fine int) Fixed {
	return finecosine[fine&fineMask]
}

// FineTangent returns the precomputed tangent for a fine-angle index,
// wrapping the index into range.
func FineTangent(fine int) Fixed {
	return finetangent[fine&fineMask]
}

// Sin returns the sine of a full Angle.
func Sin(a Angle) Fixed {
	return FineSine(a.ToFine())
}

// Cos returns the cosine of a full Angle.
func Cos(a Angle) Fixed {
	return FineCosine(a.ToFine())
}

// slopeRange is the resolution of the tantoangle lookup used by PointToAngle:
// 2048 entries covering slopes from 0 to 1, as in the original engine.
const slopeRange = 2048

// tantoangle has slopeRange+1 = 2049 entries (spec §4.A), mapping a
// [0,slopeRange] slope index to the angle whose tangent that slope
// approximates, for the first 45-degree octant.
var tantoangle [slopeRange + 1]Angle

func init() {
	for i := 0; i <= slopeRange; i++ {
		slope := float64(i) / float64(slopeRange)
		radians := math.Atan(slope)
		tantoangle[i] = Angle(uint32(math.Round(radians / (2 * math.Pi) * 4294967296.0)))
	}
}

// slopeDiv reproduces the original engine's SlopeDiv: it divides num by den,
// scaled into the slopeRange index space, clamping to slopeRange when den is
// too small to divide safely or when the true quotient would exceed 1.
func slopeDiv(num, den uint32) uint32 {
	if den < 512 {
		return slopeRange
	}
	ans := (num << 3) / (den >> 8)
	if ans > slopeRange {
		return slopeRange
	}
	return ans
}

// overflowGuard is the magnitude beyond which a coordinate difference risks
// overflowing int32 when it participates in the octant classification below.
// Crossing it triggers the "crispy" halving fallback described in spec §4.A.
const overflowGuard = 1 << 30

// PointToAngle2 returns the angle from (x1,y1) to (x2,y2), using the
// overflow-safe 8-octant algorithm: when either delta would risk overflowing
// int32 arithmetic both deltas are halved before classification. This is the
// only variant used during BSP traversal (spec §4.A) because a half-unit
// angle error is harmless there but an overflow is not.
func PointToAngle2(x1, y1, x2, y2 Fixed) Angle {
	dx := int32(x2 - x1)
	dy := int32(y2 - y1)

	for abs32(dx) > overflowGuard || abs32(dy) > overflowGuard {
		dx >>= 1
		dy >>= 1
	}

	if dx == 0 && dy == 0 {
		return 0
	}

	if dx >= 0 {
		if dy >= 0 {
			if dx > dy {
				return tantoangle[slopeDiv(uint32(dy), uint32(dx))]
			}
			return ANG90 - 1 - tantoangle[slopeDiv(uint32(dx), uint32(dy))]
		}
		ndy := -dy
		if dx > ndy {
			return -tantoangle[slopeDiv(uint32(ndy), uint32(dx))]
		}
		return ANG270 + tantoangle[slopeDiv(uint32(dx), uint32(ndy))]
	}

	ndx := -dx
	if dy >= 0 {
		if ndx > dy {
			return ANG180 - 1 - tantoangle[slopeDiv(uint32(dy), uint32(ndx))]
		}
		return ANG90 + tantoangle[slopeDiv(uint32(ndx), uint32(dy))]
	}
	ndy := -dy
	if ndx > ndy {
		return ANG180 + tantoangle[slopeDiv(uint32(ndy), uint32(ndx))]
	}
	return ANG270 - 1 - tantoangle[slopeDiv(uint32(ndx), uint32(ndy))]
}

// PointToAngle returns the angle from the origin to (x,y). It's a thin
// wrapper around PointToAngle2 used when one endpoint is implicitly the
// viewer or another fixed reference point.
func PointToAngle(x, y Fixed) Angle {
	return PointToAngle2(0, 0, x, y)
}

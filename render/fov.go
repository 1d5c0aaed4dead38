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

import (
	"math"

	"github.com/jetsetilly/doomcore/fixedpoint"
)

// NewViewSize computes the field-of-view tables for a given window-size
// selector and detail level (spec §4.G step 3, §9: "field-of-view
// calibration is... integer-only result cached at view-size change").
// This is the second of the two call sites the spec permits to use
// floating point, and only here, once, never per frame or per tic.
func NewViewSize(blocks, detail int) *ViewSize {
	vs := &ViewSize{Blocks: blocks, Detail: detail}

	vs.Width = ScreenWidth
	vs.Height = ScreenHeight
	if blocks < 11 {
		vs.Width = blocks * ScreenWidth / 10
		vs.Height = blocks * (ScreenHeight - 32) / 10 & ^1
	}
	if detail == 1 {
		vs.Width /= 2
	}

	vs.CenterX = vs.Width / 2
	vs.CenterXFrac = fixedpoint.ToFixed(vs.CenterX)

	// FOV is 90 degrees; projection maps the half-width onto tan(45deg)=1.
	fovHalfTan := math.Tan(90.0 / 2.0 * math.Pi / 180.0)
	vs.ProjectionScale = fixedpoint.Fixed(float64(vs.CenterXFrac) * fovHalfTan)

	vs.ScreenAngleToX = make(map[int]int, vs.Width+1)
	for x := 0; x <= vs.Width; x++ {
		// Each screen column subtends an angle atan((centerx-x)/projection).
		dx := float64(vs.CenterX - x)
		radians := math.Atan2(dx, float64(vs.ProjectionScale>>fixedpoint.FRACBITS))
		ang := uint32(math.Round(radians / (2 * math.Pi) * 4294967296.0))
		if x <= vs.Width {
			vs.XToViewAngle[x] = fixedpoint.Angle(ang)
		}
		// ANGLETOSKYSHIFT-scale bucket used by bsp.go's angleToX reverse lookup.
		vs.ScreenAngleToX[int(uint32(ang)>>ANGLETOSKYSHIFT)] = x
	}

	return vs
}

// yslopeTable holds one row of vertical projection scales per look-pitch,
// built once per ViewSize the same way XToViewAngle is.
type yslopeTable struct {
	rows [][ScreenHeight]fixedpoint.Fixed
}

// RecomputeSlopes fills centerY/yslope rows for every supported pitch
// offset in range [-maxLookDir, maxLookDir], one row per integer pitch
// step, so SetupViewpoint's PitchRow selection (spec §4.G step 3) is a
// plain slice index rather than a per-frame recomputation.
func (vs *ViewSize) RecomputeSlopes(maxLookDir int) *yslopeTable {
	t := &yslopeTable{rows: make([][ScreenHeight]fixedpoint.Fixed, 2*maxLookDir+1)}
	for p := -maxLookDir; p <= maxLookDir; p++ {
		centerY := vs.Height/2 + p*vs.Height/320
		var row [ScreenHeight]fixedpoint.Fixed
		for y := 0; y < vs.Height; y++ {
			dy := y - centerY
			if dy == 0 {
				dy = 1
			}
			row[y] = fixedpoint.FixedDiv(vs.CenterXFrac, fixedpoint.ToFixed(abs(dy)))
		}
		t.rows[p+maxLookDir] = row
	}
	return t
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Row returns the yslope row for the given pitch offset, clamped into
// range.
func (t *yslopeTable) Row(pitch, maxLookDir int) [ScreenHeight]fixedpoint.Fixed {
	if pitch < -maxLookDir {
		pitch = -maxLookDir
	}
	if pitch > maxLookDir {
		pitch = maxLookDir
	}
	return t.rows[pitch+maxLookDir]
}

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

import (
	"math"

	"github.com/jetsetilly/doomcore/fixedpoint"
)

// floatAmplitude holds the three 64-entry amplitude tables a floating
// powerup samples from, indexed by (FloatAmp++)&63 (spec §4.D). The three
// variants give floating items a gentle bob, a slow drift, and a faster
// wobble respectively; values are generated once at init from a sine
// curve rather than reproduced from memory, since this is cosmetic motion
// with no effect on simulation determinism.
var floatAmplitude [3][64]fixedpoint.Fixed

func init() {
	scales := [3]float64{1, 0.5, 1.5}
	for variant, scale := range scales {
		for i := 0; i < 64; i++ {
			v := scale * math.Sin(2*math.Pi*float64(i)/64.0)
			floatAmplitude[variant][i] = fixedpoint.Fixed(v * float64(fixedpoint.FRACUNIT))
		}
	}
}

// FloatAmplitude samples the given variant's LUT at the mobj's current
// FloatAmp index and advances the index. The index itself is not wrapped;
// it is masked with &63 when sampled, so the samples repeat every 64 calls.
func FloatAmplitude(m *Mobj, variant int) fixedpoint.Fixed {
	v := floatAmplitude[variant%3][m.FloatAmp&63]
	m.FloatAmp++
	return v
}

// FloatSpeed is the rate at which a float-type mobj closes on its target's
// z (spec §4.D: "tolerance dist/3 at FLOATSPEED").
const FloatSpeed = fixedpoint.Fixed(4 << fixedpoint.FRACBITS)

// FloatTowards sets m.MomZ so that ZMovement will move the mobj toward
// targetZ + height/2. horizontalDist is the planar distance to the
// target, used the same way the original weighs vertical delta against
// horizontal closing distance (3·delta) to avoid jitter once close enough.
func FloatTowards(m *Mobj, targetZ, horizontalDist fixedpoint.Fixed) {
	delta := (targetZ + m.Height/2) - m.Z

	switch {
	case delta < 0 && horizontalDist < -delta*3:
		m.MomZ = -FloatSpeed
	case delta > 0 && horizontalDist < delta*3:
		m.MomZ = FloatSpeed
	default:
		m.MomZ = 0
	}
}

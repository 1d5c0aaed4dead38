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

package sound_test

import (
	"testing"

	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/sound"
)

func TestApproxDistanceMatchesAxisAlignedCase(t *testing.T) {
	unit := fixedpoint.Fixed(1 << fixedpoint.FRACBITS)
	d := sound.ApproxDistance(10*unit, 0)
	assert.Equate(t, d, 10*unit)
}

func TestApproxDistanceIsSymmetricInSign(t *testing.T) {
	unit := fixedpoint.Fixed(1 << fixedpoint.FRACBITS)
	a := sound.ApproxDistance(3*unit, 4*unit)
	b := sound.ApproxDistance(-3*unit, -4*unit)
	assert.Equate(t, a, b)
}

func TestAdjustSoundParamsBeyondClippingIsInaudible(t *testing.T) {
	listener := sound.Listener{}
	far := sound.ClippingDist + fixedpoint.Fixed(1<<fixedpoint.FRACBITS)
	params := sound.AdjustSoundParams(listener, far, 0, 127, false, false, false, 0)
	assert.Equate(t, params.Audible, false)
}

func TestAdjustSoundParamsCloseIsFullVolumeCentered(t *testing.T) {
	listener := sound.Listener{}
	params := sound.AdjustSoundParams(listener, 0, 0, 127, true, false, false, 0)
	assert.Equate(t, params.Audible, true)
	assert.Equate(t, params.Separation, 128)
	assert.Equate(t, params.Volume, 127*15/127)
}

func TestPitchVarianceFlatNeverShifts(t *testing.T) {
	assert.Equate(t, sound.PitchVariance(sound.PitchFlat, constRandom(255)), 128)
}

func TestPitchVarianceSawBoundedTo7(t *testing.T) {
	p := sound.PitchVariance(sound.PitchSaw, constRandom(14))
	assert.Equate(t, p >= 121 && p <= 135, true)
}

func TestPitchVarianceDefaultBoundedTo15(t *testing.T) {
	p := sound.PitchVariance(sound.PitchDefault, constRandom(30))
	assert.Equate(t, p >= 113 && p <= 143, true)
}

type constRandom uint8

func (c constRandom) Next() uint8 { return uint8(c) }

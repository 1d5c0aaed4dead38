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

package sound

import "github.com/jetsetilly/doomcore/fixedpoint"

// ClippingDist is the distance beyond which a sound is never audible
// (spec §8 property 7, §4.F step 3).
const ClippingDist = fixedpoint.Fixed(1200 << fixedpoint.FRACBITS)

// closeDist is the distance within which a sound plays at full volume with
// no stereo separation.
const closeDist = fixedpoint.Fixed(160 << fixedpoint.FRACBITS)

// Listener is the minimal geometry AdjustSoundParams needs from the
// listening player's mobj (spec §4.F step 3).
type Listener struct {
	X, Y, Z fixedpoint.Fixed
	Angle   fixedpoint.Angle
}

// Params is the resolved volume/separation pair S_AdjustSoundParams
// produces, or Audible=false when the sound should not play at all.
type Params struct {
	Volume     int // 0-15, matching the classic driver's volume scale
	Separation int // 0-255, 128 is centered
	Audible    bool
}

// ApproxDistance reproduces P_AproxDistance: |dx|+|dy| minus the smaller
// half, a cheap Euclidean-distance approximation that avoids a sqrt on
// every sound-position update (spec §4.F step 3).
func ApproxDistance(dx, dy fixedpoint.Fixed) fixedpoint.Fixed {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		return dx + dy - dx>>1
	}
	return dx + dy - dy>>1
}

// ApproxDistance3D extends ApproxDistance with a z-axis term, used when
// the "3-axis variant" option is enabled (spec §4.F step 3).
func ApproxDistance3D(dx, dy, dz fixedpoint.Fixed) fixedpoint.Fixed {
	return ApproxDistance(ApproxDistance(dx, dy), dz)
}

// AdjustSoundParams computes volume and stereo separation for a sound at
// origin as heard by listener, given the maximum volume the sfx def
// allows (0-127, spec §7 VolumeOutOfRange) and whether stereo is disabled
// (mono mode forces separation to 128, i.e. centered) or the level is
// mirrored (spec §4.F: "negated when levels are mirrored").
func AdjustSoundParams(listener Listener, originX, originY fixedpoint.Fixed, maxVolume int, mono, mirrored, threeAxis bool, originZ fixedpoint.Fixed) Params {
	dx := originX - listener.X
	dy := originY - listener.Y

	var dist fixedpoint.Fixed
	if threeAxis {
		dist = ApproxDistance3D(dx, dy, originZ-listener.Z)
	} else {
		dist = ApproxDistance(dx, dy)
	}

	if dist > ClippingDist {
		return Params{Audible: false}
	}

	var volume int
	if dist < closeDist {
		volume = maxVolume
	} else {
		// linear falloff from close distance to clipping distance.
		span := ClippingDist - closeDist
		volume = maxVolume * int(ClippingDist-dist) / int(span)
	}
	if volume <= 0 {
		return Params{Audible: false}
	}

	separation := 128
	if !mono {
		angle := fixedpoint.PointToAngle2(listener.X, listener.Y, originX, originY) - listener.Angle
		s := fixedpoint.FixedMul(StereoSwing, fixedpoint.Sin(angle))
		separation = 128 + s.Int()
		if mirrored {
			separation = 256 - separation
		}
		if separation < 0 {
			separation = 0
		}
		if separation > 255 {
			separation = 255
		}
	}

	return Params{Volume: volume * 15 / 127, Separation: separation, Audible: true}
}

// PitchVariance computes the randomized pitch offset for an sfx id (spec
// §4.F step 4, supplemented from original_source/s_sound.c): saw sounds
// vary by +-7, most sounds by +-15, and a fixed allow-list (itempickup,
// tink) never varies at all.
type PitchClass int

const (
	PitchDefault PitchClass = iota
	PitchSaw
	PitchFlat
)

// RandomSource supplies the gameplay-adjacent jitter PitchVariance needs;
// in the engine this is always the cosmetic stream, since pitch variance
// is audio-only and must never influence simulation (spec §4.B).
type RandomSource interface {
	Next() uint8
}

// PitchVariance returns a pitch value centered on 128 (no shift) with the
// jitter appropriate to class.
func PitchVariance(class PitchClass, rnd RandomSource) int {
	switch class {
	case PitchFlat:
		return 128
	case PitchSaw:
		return 128 + int(rnd.Next()%15) - 7
	default:
		return 128 + int(rnd.Next()%31) - 15
	}
}

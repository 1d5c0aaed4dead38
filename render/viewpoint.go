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

// ActorPose is the minimal snapshot SetupFrame needs from a mobj: current
// and previous-tic position/angle, used for uncapped-framerate
// interpolation (spec §4.G step 1). render does not import thinker
// directly so it can be unit-tested against synthetic poses.
type ActorPose struct {
	X, Y, Z   fixedpoint.Fixed
	Angle     fixedpoint.Angle
	OldX, OldY, OldZ fixedpoint.Fixed
	OldAngle  fixedpoint.Angle

	// Interp mirrors thinker.Mobj.Interp: -1 suppresses interpolation for
	// one tic (e.g. immediately after a teleport), 0 means interpolation
	// is off for this actor, 1 means on.
	Interp int
}

// LocalView is the console player's latest input-sampled angle delta,
// preferred over the interpolated mobj angle under the conditions listed
// in spec §4.G step 1.
type LocalView struct {
	Angle           fixedpoint.Angle
	Available       bool // false if spectating, dead, just-teleported, netgame, or demo
}

// Viewpoint is the per-frame camera state the BSP walk and rasterizer read
// from (spec §4.G).
type Viewpoint struct {
	X, Y, Z fixedpoint.Fixed
	Angle   fixedpoint.Angle

	ExtraLight    int
	FixedColormap int // 0 means none

	CenterY    int
	CenterYFrac fixedpoint.Fixed

	// PitchRow selects which precomputed yslope row applies for the
	// current lookdir (spec §4.G step 3).
	PitchRow int
}

// FractionalTic is the normalized [0,1] position between the previous and
// current simulation tick, used only when the uncapped framerate option is
// active and the game is not paused (spec §4.G step 1).
type FractionalTic fixedpoint.Fixed

// Lerp linearly interpolates a Fixed value between old and cur by this
// fractional tic.
func (f FractionalTic) Lerp(old, cur fixedpoint.Fixed) fixedpoint.Fixed {
	return old + fixedpoint.FixedMul(cur-old, fixedpoint.Fixed(f))
}

// lerpAngle interpolates an Angle, which must wrap through the shortest
// direction rather than go through the raw subtraction like Lerp does for
// positions (an angle's "old to cur" delta can appear to wrap the long way
// around if taken as unsigned).
func (f FractionalTic) lerpAngle(old, cur fixedpoint.Angle) fixedpoint.Angle {
	delta := int32(cur - old)
	return old + fixedpoint.Angle(fixedpoint.FixedMul(fixedpoint.Fixed(delta), fixedpoint.Fixed(f)))
}

// SetupViewpoint computes the per-frame viewpoint (spec §4.G step 1-4).
// uncapped selects whether interpolation runs at all; paused and firstTic
// suppress it even when uncapped is on. frac is ignored unless
// interpolation is active.
func SetupViewpoint(pose ActorPose, lv LocalView, frac FractionalTic, uncapped, paused, firstTic bool, extraLight, brightnessAdjust int, fixedColormap int) Viewpoint {
	vp := Viewpoint{
		X: pose.X, Y: pose.Y, Z: pose.Z, Angle: pose.Angle,
	}

	interpolate := uncapped && !paused && !firstTic && pose.Interp > 0
	if interpolate {
		vp.X = frac.Lerp(pose.OldX, pose.X)
		vp.Y = frac.Lerp(pose.OldY, pose.Y)
		vp.Z = frac.Lerp(pose.OldZ, pose.Z)
		vp.Angle = frac.lerpAngle(pose.OldAngle, pose.Angle)
	}

	if lv.Available {
		vp.Angle = lv.Angle
	}

	vp.ExtraLight = extraLight + brightnessAdjust
	vp.FixedColormap = fixedColormap

	return vp
}

// ViewSize holds the window dimensions and FOV tables for one view-size
// selection. The original precomputes all yslope rows once per view-size
// change; this engine does the same via ViewSize.RecomputeSlopes.
type ViewSize struct {
	Blocks int // 0-11 view-window size selector, as in the original options menu
	Detail int // 0 = normal, 1 = low (pixel-doubled)

	Width, Height int
	CenterX       int
	CenterXFrac   fixedpoint.Fixed

	// FOV tables, computed once at view-size change time using floating
	// point (spec §9: "the field-of-view calibration" is one of the two
	// legitimate float call sites), then frozen into integer tables for
	// the hot path.
	XToViewAngle [ScreenWidth + 1]fixedpoint.Angle
	ScreenAngleToX map[int]int

	ProjectionScale fixedpoint.Fixed
}

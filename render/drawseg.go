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

// DrawSeg is one visible horizontal range of a wall segment in screen
// space (spec §3.5). Frame.AddLine fills in the seg, column range,
// silhouette flags and MaskedMidTexture; it does not set ScaleFrac1/2 or
// TopClip/BottomClip, and nothing else in this package fills those fields
// in.
type DrawSeg struct {
	Seg int // index into Level.Segs

	X1, X2 int // screen column range, inclusive

	// Silhouette bits: which of the floor/ceiling silhouettes this drawseg
	// contributes, used by vissprite clipping.
	SilhouetteBottom bool
	SilhouetteTop    bool

	ScaleFrac1, ScaleFrac2 fixedpoint.Fixed // projected scale at X1/X2

	// TopClip/BottomClip give, per column in [X1,X2], the topmost/
	// bottommost visible screen row, used to clip masked (sprite/mid-
	// texture) columns drawn behind this drawseg.
	TopClip, BottomClip []int

	// MaskedMidTexture is true when the seg has a two-sided mid texture
	// that must be drawn in the masked pass rather than the opaque pass.
	MaskedMidTexture bool
}

// Plane is where a clipping array comes from when a drawseg has no
// silhouette of its own on that side: either "open" (no clip, i.e. use the
// screen edge) or a specific visplane's own top/bottom array.
type Plane int

const (
	PlaneNone Plane = iota
	PlaneFloor
	PlaneCeiling
)

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

// VisSprite is a per-frame projection record for one on-screen sprite
// (spec §3.5).
type VisSprite struct {
	MobjIndex int

	X1, X2       int // screen column range
	Scale, ScaleStep fixedpoint.Fixed

	GX, GY, GZ fixedpoint.Fixed // world-space origin, kept for sort/clip

	TextureMid fixedpoint.Fixed

	Sprite, Frame int
	Flip          bool

	Colormap    Colormap
	Translation Colormap // non-nil for translated (player color, colored blood)
	Translucent bool      // selects ColumnTranslucentOver
	FullBright  bool      // selects ColumnTranslucentAdd when also Translucent
	Shadow      bool      // MF_SHADOW: selects a fuzz variant instead of any blend above

	Brightmap       Colormap
	BrightmapRows   []bool

	// TopClip/BottomClip, filled in during masked drawing from the
	// overlapping drawsegs' silhouettes, give the visible [top,bottom] for
	// every column in [X1,X2].
	TopClip, BottomClip []int
}

// maxProjectSlope bounds the horizontal field the projector accepts before
// rejecting a sprite as outside the view frustum (spec §4.H: "rejects...
// outside horizontal field by |tx| > tz * max_project_slope").
const maxProjectSlope = fixedpoint.FRACUNIT * 2 // roughly a 90-degree-plus margin either side of dead ahead

// ProjectSprite transforms a sprite's world position into view space and
// returns the resulting VisSprite, or ok=false if it's behind the near
// plane, beyond the far plane, or outside the horizontal field (spec
// §4.H: "Sprite projection").
func ProjectSprite(vp Viewpoint, vs *ViewSize, gx, gy, gz fixedpoint.Fixed, radius, height fixedpoint.Fixed, spriteFrameTag int, flip bool) (VisSprite, bool) {
	dx := gx - vp.X
	dy := gy - vp.Y

	// rotate into view space: tz is depth, tx is lateral offset.
	cos := fixedpoint.Cos(vp.Angle)
	sin := fixedpoint.Sin(vp.Angle)
	tz := fixedpoint.FixedMul(dx, cos) + fixedpoint.FixedMul(dy, sin)
	if tz < fixedpoint.FRACUNIT*4 {
		return VisSprite{}, false // behind or too near the view plane
	}
	const farPlane = fixedpoint.Fixed(8192 << fixedpoint.FRACBITS)
	if tz > farPlane {
		return VisSprite{}, false
	}

	tx := fixedpoint.FixedMul(dx, sin) - fixedpoint.FixedMul(dy, cos)
	if abs64(tx) > fixedpoint.FixedMul(tz, maxProjectSlope) {
		return VisSprite{}, false
	}

	xscale := fixedpoint.FixedDiv(vs.ProjectionScale, tz)
	x1 := vs.CenterX + (fixedpoint.FixedMul(tx-radius, xscale)).Int()
	x2 := vs.CenterX + (fixedpoint.FixedMul(tx+radius, xscale)).Int()
	if x2 < 0 || x1 >= vs.Width {
		return VisSprite{}, false
	}

	vs_ := VisSprite{
		X1: x1, X2: x2,
		Scale: xscale, ScaleStep: 0,
		GX: gx, GY: gy, GZ: gz,
		TextureMid: gz + height - vp.Z,
		Sprite:     spriteFrameTag >> 8,
		Frame:      spriteFrameTag & 0xFF,
		Flip:       flip,
	}
	return vs_, true
}

func abs64(v fixedpoint.Fixed) fixedpoint.Fixed {
	if v < 0 {
		return -v
	}
	return v
}

// SortBackToFront sorts vissprites by ascending scale, so farther sprites
// come first and nearer sprites (larger scale) draw last (spec §4.H:
// back-to-front by scale).
func SortBackToFront(sprites []VisSprite) {
	// insertion sort: vissprite counts per frame are small (tens, not
	// thousands), and the original itself uses an O(n^2) insertion sort
	// here for the same reason.
	for i := 1; i < len(sprites); i++ {
		v := sprites[i]
		j := i - 1
		for j >= 0 && sprites[j].Scale > v.Scale {
			sprites[j+1] = sprites[j]
			j--
		}
		sprites[j+1] = v
	}
}

// ClipAgainstDrawSegs computes TopClip/BottomClip for sprite by walking
// the frame's drawsegs and applying any silhouette that overlaps the
// sprite's column range, matching "the list of drawsegs is walked to
// compute per-column top/bottom clips from silhouettes" (spec §4.H).
func ClipAgainstDrawSegs(sprite *VisSprite, drawSegs []DrawSeg, screenHeight int) {
	sprite.TopClip = make([]int, sprite.X2-sprite.X1+1)
	sprite.BottomClip = make([]int, sprite.X2-sprite.X1+1)
	for i := range sprite.TopClip {
		sprite.TopClip[i] = 0
		sprite.BottomClip[i] = screenHeight - 1
	}

	for _, ds := range drawSegs {
		lo := max(sprite.X1, ds.X1)
		hi := min(sprite.X2, ds.X2)
		if lo > hi {
			continue
		}
		for x := lo; x <= hi; x++ {
			i := x - sprite.X1
			if ds.SilhouetteTop {
				sprite.TopClip[i] = screenHeight
			}
			if ds.SilhouetteBottom {
				sprite.BottomClip[i] = -1
			}
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DrawMaskedSprites draws every vissprite in the list, back-to-front,
// through the supplied column source lookup, completing the masked
// drawing pass (spec §4.H).
func DrawMaskedSprites(fb *Framebuffer, sprites []VisSprite, columnAt func(v *VisSprite, col int) Column, fuzzTicPos int) {
	SortBackToFront(sprites)
	for i := range sprites {
		v := &sprites[i]
		variant := ColumnOpaque
		switch {
		case v.Shadow && v.Translucent:
			variant = ColumnFuzzTranslucent
		case v.Shadow:
			variant = ColumnFuzz
		case v.Translation != nil:
			variant = ColumnTranslated
		case v.Translucent && v.FullBright:
			variant = ColumnTranslucentAdd
		case v.Translucent:
			variant = ColumnTranslucentOver
		}

		for x := v.X1; x <= v.X2; x++ {
			if x < 0 || x >= fb.Width {
				continue
			}
			col := columnAt(v, x)
			if len(col.Pixels) == 0 {
				continue
			}
			yl, yh := 0, fb.Height-1
			if v.TopClip != nil {
				i2 := x - v.X1
				if v.TopClip[i2] > yl {
					yl = v.TopClip[i2]
				}
				if v.BottomClip[i2] < yh {
					yh = v.BottomClip[i2]
				}
			}
			if yl > yh {
				continue
			}
			ctx := ColumnCtx{
				FB: fb, X: x, YL: yl, YH: yh,
				IScale:     fixedpoint.FixedDiv(fixedpoint.FRACUNIT, v.Scale),
				TextureMid: v.TextureMid,
				Source:     col,
				Colormap:   v.Colormap,
				Translation: v.Translation,
				Variant:    variant,
				FuzzTicPos: fuzzTicPos,
			}
			if v.Brightmap != nil {
				ctx.BrightColormap = v.Brightmap
				ctx.Brightmap = v.BrightmapRows
			}
			ctx.DrawColumn()
		}
	}
}

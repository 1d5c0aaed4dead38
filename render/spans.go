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

// flatSize is the fixed 64x64 flat dimension (spec §4.H spans).
const flatSize = 64

// Flat is a 64x64 indexed texture sampled by the span rasterizer.
type Flat [flatSize * flatSize]Pixel

// SpanCtx groups the per-span drawer state the original keeps as ds_*
// globals (spec §9), mirroring ColumnCtx's treatment for the horizontal
// rasterizer.
type SpanCtx struct {
	FB   *Framebuffer
	Flat *Flat

	Y          int
	X1, X2     int
	XFrac, YFrac fixedpoint.Fixed
	XStep, YStep fixedpoint.Fixed

	Colormap Colormap
}

// flatIndex reproduces the original's bit-packed flat sample index (spec
// §4.H: "((yfrac>>10)&0x0FC0) | ((xfrac>>16)&0x3F)").
func flatIndex(xfrac, yfrac fixedpoint.Fixed) int {
	return int((yfrac>>10)&0x0FC0) | int((xfrac>>16)&0x3F)
}

// DrawSpan samples one horizontal run of a flat for scanline Y across
// [X1,X2], stepping (xfrac,yfrac) by (xstep,ystep) per column (spec §4.H).
func (s *SpanCtx) DrawSpan() {
	xfrac, yfrac := s.XFrac, s.YFrac
	for x := s.X1; x <= s.X2; x++ {
		idx := flatIndex(xfrac, yfrac)
		px := s.Flat[idx]
		s.FB.Set(x, s.Y, s.Colormap.apply(px))
		xfrac += s.XStep
		yfrac += s.YStep
	}
}

// DrawPlanes walks every visplane in the arena and emits one DrawSpan call
// per scanline row the plane covers, matching R_DrawPlanes (spec §8
// scenario S4: "R_DrawPlanes emits exactly 200 span calls" for a full-
// screen single flat).
func DrawPlanes(fb *Framebuffer, arena *VisplaneArena, flats map[string]*Flat, colormapFor func(lightLevel int) Colormap, vp Viewpoint, vs *ViewSize, count *int) {
	for _, p := range arena.Planes() {
		if p.MinX > p.MaxX {
			continue
		}
		flat := flats[p.Picnum]
		if flat == nil {
			continue
		}
		cmap := colormapFor(p.LightLevel)

		for y := 0; y < fb.Height; y++ {
			lo, hi := -1, -1
			for x := p.MinX; x <= p.MaxX; x++ {
				if p.Top[x] <= y && y <= p.Bottom[x] {
					if lo == -1 {
						lo = x
					}
					hi = x
				}
			}
			if lo == -1 {
				continue
			}

			dist := fixedpoint.FixedDiv(vp.Z-p.Height, fixedpoint.ToFixed(y-fb.Height/2+1))
			if dist < 0 {
				dist = -dist
			}
			span := &SpanCtx{
				FB: fb, Flat: flat, Y: y, X1: lo, X2: hi,
				XFrac: vp.X, YFrac: vp.Y,
				XStep: dist >> 6, YStep: dist >> 6,
				Colormap: cmap,
			}
			span.DrawSpan()
			if count != nil {
				*count++
			}
		}
	}
}

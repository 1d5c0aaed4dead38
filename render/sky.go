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

// SkyShortThreshold is the sky texture height below which the column is
// vertically stretched to compensate for mouselook pitch (spec §4.H:
// "Short skies (<200 px tall) are vertically stretched... when mouselook
// is enabled").
const SkyShortThreshold = 200

// SkyStretchFactor is the fixed vertical stretch applied to short skies.
const SkyStretchFactor fixedpoint.Fixed = fixedpoint.FRACUNIT * 5 / 4

// DrawSkyColumn draws one column of the sky texture at screen column x,
// using angle = (viewangle + xtoviewangle[x]) >> ANGLETOSKYSHIFT to pick
// the source column, as the original does (spec §4.H). skyTexture is
// addressed by that angle index modulo its width.
func DrawSkyColumn(fb *Framebuffer, skyTexture []Column, viewAngle fixedpoint.Angle, xToViewAngle fixedpoint.Angle, x int, detailShift int, mouselook bool, iscaleBase fixedpoint.Fixed) {
	angle := uint32(viewAngle+xToViewAngle) >> ANGLETOSKYSHIFT
	if len(skyTexture) == 0 {
		return
	}
	col := skyTexture[int(angle)%len(skyTexture)]

	iscale := iscaleBase >> fixedpoint.Fixed(detailShift)
	stretch := fixedpoint.FRACUNIT
	height := col.Height
	if mouselook && height < SkyShortThreshold {
		stretch = SkyStretchFactor
	}

	ctx := ColumnCtx{
		FB: fb, X: x, YL: 0, YH: fb.Height - 1,
		IScale:     fixedpoint.FixedMul(iscale, stretch),
		TextureMid: 0,
		Source:     col,
		Variant:    ColumnOpaque,
	}
	ctx.DrawColumn()
}

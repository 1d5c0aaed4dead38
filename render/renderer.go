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
	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/worldmap"
)

// Renderer owns the state that persists across frames: the current view
// size, its FOV tables, and the light tables, rebuilt only when the view
// size or extra light changes (spec §6.2: R_Init/R_SetViewSize/
// R_RenderPlayerView).
type Renderer struct {
	VS          *ViewSize
	Slopes      *yslopeTable
	Lights      *LightTables
	MaxLookDir  int
	validCount  int
	fuzzTicPos  int
}

// NewRenderer implements R_Init: builds the initial view size and light
// tables at default settings (spec §6.2).
func NewRenderer() *Renderer {
	r := &Renderer{MaxLookDir: 90}
	r.SetViewSize(9, 0, 0)
	return r
}

// SetViewSize implements R_SetViewSize: recomputes the FOV and pitch-slope
// tables for a new window-size/detail selection (spec §4.G step 3, §6.2).
func (r *Renderer) SetViewSize(blocks, detail, extraLight int) {
	r.VS = NewViewSize(blocks, detail)
	r.Slopes = r.VS.RecomputeSlopes(r.MaxLookDir)
	r.Lights = BuildLightTables(extraLight, r.VS.Width)
}

// TickFuzz advances the tic-time fuzz reference once per simulation tick
// (spec §4.H: "fuzzpos is split into a tic-time reference and a draw-time
// reference").
func (r *Renderer) TickFuzz() {
	r.fuzzTicPos = (r.fuzzTicPos + 1) % fuzzTableLen
}

// RenderPlayerView implements R_RenderPlayerView's BSP stage: it runs one
// full BSP walk for the given viewpoint and returns the resulting Frame of
// drawsegs and visplanes (spec §6.2). It does not draw planes, walls or
// sprites, and fb is not written. spriteAdder is invoked once per visited
// sector so the caller can inject that sector's actors as vissprites
// without this package depending on thinker/player.
func (r *Renderer) RenderPlayerView(fb *Framebuffer, level *worldmap.Level, vp Viewpoint, spriteAdder func(sectorIdx int)) *Frame {
	r.validCount++
	frame := NewFrame(level, vp, r.VS, r.validCount)
	frame.SpriteAdder = spriteAdder
	frame.Walk()
	return frame
}

// PitchRow converts a player lookdir (spec §3.4: player.lookdir, degrees
// scaled the way the original screen-pitch field is) into its yslope row,
// returning the row itself with out-of-range pitches clamped.
func (r *Renderer) PitchRow(lookDir int) [ScreenHeight]fixedpoint.Fixed {
	return r.Slopes.Row(lookDir, r.MaxLookDir)
}

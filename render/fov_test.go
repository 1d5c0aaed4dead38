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

package render_test

import (
	"testing"

	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/render"
)

func TestNewViewSizeFullScreenAtMaxBlocks(t *testing.T) {
	vs := render.NewViewSize(11, 0)
	assert.Equate(t, vs.Width, render.ScreenWidth)
	assert.Equate(t, vs.Height, render.ScreenHeight)
}

func TestNewViewSizeShrinksBelowMaxBlocks(t *testing.T) {
	vs := render.NewViewSize(5, 0)
	assert.Equate(t, vs.Width < render.ScreenWidth, true)
	assert.Equate(t, vs.Height < render.ScreenHeight, true)
}

func TestNewViewSizeLowDetailHalvesWidth(t *testing.T) {
	full := render.NewViewSize(11, 0)
	low := render.NewViewSize(11, 1)
	assert.Equate(t, low.Width, full.Width/2)
}

func TestNewViewSizeCenterXIsHalfWidth(t *testing.T) {
	vs := render.NewViewSize(11, 0)
	assert.Equate(t, vs.CenterX, vs.Width/2)
}

func TestNewViewSizeXToViewAngleDecreasesLeftToRight(t *testing.T) {
	vs := render.NewViewSize(11, 0)
	left := vs.XToViewAngle[0]
	center := vs.XToViewAngle[vs.CenterX]
	// At the left edge the view angle is rotated furthest counter-clockwise
	// from center (i.e. largest positive offset); center is ~0.
	assert.Equate(t, int32(left) > int32(center), true)
}

func TestRecomputeSlopesRowClampsOutOfRangePitch(t *testing.T) {
	vs := render.NewViewSize(11, 0)
	table := vs.RecomputeSlopes(5)
	clamped := table.Row(100, 5)
	atMax := table.Row(5, 5)
	assert.Equate(t, clamped, atMax)
}

func TestRecomputeSlopesRowIsSymmetricDomainSized(t *testing.T) {
	vs := render.NewViewSize(11, 0)
	table := vs.RecomputeSlopes(3)
	// every pitch in [-3,3] must be retrievable without panicking.
	for p := -3; p <= 3; p++ {
		_ = table.Row(p, 3)
	}
}

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

	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/render"
)

func TestDrawSkyColumnFillsEntireColumnHeight(t *testing.T) {
	fb := render.NewFramebuffer(4, 10)
	sky := []render.Column{solidColumn(128, 5)}
	render.DrawSkyColumn(fb, sky, 0, 0, 2, 0, false, fixedpoint.FRACUNIT)
	for y := 0; y < 10; y++ {
		assert.Equate(t, fb.At(2, y), render.Pixel(5))
	}
}

func TestDrawSkyColumnSkipsEmptyTexture(t *testing.T) {
	fb := render.NewFramebuffer(4, 10)
	render.DrawSkyColumn(fb, nil, 0, 0, 0, 0, false, fixedpoint.FRACUNIT)
	assert.Equate(t, fb.At(0, 0), render.Pixel(0))
}

func TestDrawSkyColumnSelectsColumnByAngle(t *testing.T) {
	fb := render.NewFramebuffer(4, 10)
	sky := []render.Column{solidColumn(16, 1), solidColumn(16, 2)}
	angle := fixedpoint.Angle(1 << render.ANGLETOSKYSHIFT)
	render.DrawSkyColumn(fb, sky, angle, 0, 0, 0, false, fixedpoint.FRACUNIT)
	assert.Equate(t, fb.At(0, 0), render.Pixel(2))
}

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

package worldmap

import (
	"testing"

	"github.com/jetsetilly/doomcore/internal/assert"
)

func TestRejectFallsBackToVisibleWhenMissing(t *testing.T) {
	r := loadReject(nil, 4)
	assert.Equate(t, r.Visible(0, 3), true)
}

func TestRejectHonoursDeniedBit(t *testing.T) {
	// 4 sectors -> 16 bits -> 2 bytes. Deny sector 0 seeing sector 3: bit
	// index 0*4+3=3, which lives in byte 0, bit 3.
	data := []byte{1 << 3, 0}
	r := loadReject(data, 4)
	assert.Equate(t, r.Visible(0, 3), false)
	assert.Equate(t, r.Visible(0, 1), true)
}

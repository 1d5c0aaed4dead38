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

package player

import "github.com/jetsetilly/doomcore/fixedpoint"

// bobFineMask matches the original's FINEMASK: realleveltime is scaled by
// 128 and wrapped into the fine-angle table's 8192-entry range before
// being used as a sine argument (spec §4.E).
const bobFineMask = fixedpoint.FINEANGLES - 1

// Bobbing returns the per-frame vertical view displacement for a
// realleveltime tic count, scaled by the player's Bob magnitude and its
// accessibility BobScale (spec §4.E: 0 disables, 20 is unscaled, values in
// between interpolate proportionally).
func Bobbing(realLevelTime int, bob fixedpoint.Fixed, bobScale int) fixedpoint.Fixed {
	if bobScale <= 0 {
		return 0
	}

	fine := (128 * realLevelTime) & bobFineMask
	raw := fixedpoint.FixedMul(bob/2, fixedpoint.FineSine(fine))

	if bobScale >= 20 {
		return raw
	}
	scale := fixedpoint.FixedDiv(fixedpoint.ToFixed(bobScale), fixedpoint.ToFixed(20))
	return fixedpoint.FixedMul(raw, scale)
}

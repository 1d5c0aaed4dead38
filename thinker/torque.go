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

package thinker

import "github.com/jetsetilly/doomcore/fixedpoint"

// torqueNudge is the per-tic sideways push applied to a corpse hanging off
// a ledge, a quarter of a map unit in the direction the corpse is already
// facing.
const torqueNudge = fixedpoint.Fixed(1 << (fixedpoint.FRACBITS - 2))

// ApplyTorque ticks corpse-torque physics for one tic (spec §4.D, S2). A
// corpse with GearTics remaining that still overhangs a lower floor is
// nudged further off the edge each tic; once the ledge drop disappears
// from under it (full support) or GearTics reaches zero, torque stops.
func ApplyTorque(m *Mobj, w World) {
	if m.Flags&FlagCorpse == 0 || m.GearTics <= 0 {
		return
	}

	if !w.LedgeDrop(m.X, m.Y, m.Radius) {
		m.GearTics = 0
		return
	}

	m.GearTics--
	m.MomX += fixedpoint.FixedMul(fixedpoint.Cos(m.Angle), torqueNudge)
	m.MomY += fixedpoint.FixedMul(fixedpoint.Sin(m.Angle), torqueNudge)
}

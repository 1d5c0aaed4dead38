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

import "github.com/jetsetilly/doomcore/config"

// DecreaseAmmo subtracts amount from ammoNum, clamping at zero. If
// cfg.AmmoOverflowQuirk is set and ammoNum falls outside [0,NumAmmo), the
// original engine's DecreaseAmmo bug is reproduced: the write lands in the
// adjacent MaxAmmo array instead, by construction of the original's flat
// array layout. This is preserved only for DeHackEd-authored content that
// depends on the bug (spec §4.E, §9 open question); with the quirk
// disabled, an out-of-range index is simply a no-op.
func (p *Player) DecreaseAmmo(cfg config.Compatibility, ammoNum, amount int) {
	if ammoNum < 0 || ammoNum >= NumAmmo {
		if !cfg.AmmoOverflowQuirk {
			return
		}
		p.decreaseAmmoOverflow(ammoNum, amount)
		return
	}

	p.Ammo[ammoNum] -= amount
	if p.Ammo[ammoNum] < 0 {
		p.Ammo[ammoNum] = 0
	}
}

// decreaseAmmoOverflow reproduces the original's out-of-bounds write: the
// C engine's ammo and maxammo arrays sit back to back, so an index one
// past NumAmmo-1 lands in MaxAmmo[0], two past lands in MaxAmmo[1], and so
// on. Negative indices and indices far enough out of range to miss both
// arrays are simply dropped — the original's process memory would have
// corrupted something else entirely, which this engine has no equivalent
// of and does not attempt to simulate.
func (p *Player) decreaseAmmoOverflow(ammoNum, amount int) {
	overflowIdx := ammoNum - NumAmmo
	if overflowIdx < 0 || overflowIdx >= NumAmmo {
		return
	}
	p.MaxAmmo[overflowIdx] -= amount
}

// AddAmmo adds amount to ammoNum, clamping at MaxAmmo. Unlike
// DecreaseAmmo, the original never indexes AddAmmo out of range, so no
// overflow quirk applies here.
func (p *Player) AddAmmo(ammoNum, amount int) {
	if ammoNum < 0 || ammoNum >= NumAmmo {
		return
	}
	p.Ammo[ammoNum] += amount
	if p.Ammo[ammoNum] > p.MaxAmmo[ammoNum] {
		p.Ammo[ammoNum] = p.MaxAmmo[ammoNum]
	}
}

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

// Weapon ids, in the original's fixed numbering (spec §4.E).
const (
	WeaponFist = iota
	WeaponPistol
	WeaponShotgun
	WeaponChaingun
	WeaponMissile
	WeaponPlasma
	WeaponBFG
	WeaponChainsaw
	WeaponSSG
)

// Ammo ids.
const (
	AmmoBullets = iota
	AmmoShells
	AmmoCells
	AmmoRockets
)

// weaponAmmo maps a weapon to the ammo type it consumes; chainsaw and fist
// consume none.
var weaponAmmo = map[int]int{
	WeaponPistol:   AmmoBullets,
	WeaponChaingun: AmmoBullets,
	WeaponShotgun:  AmmoShells,
	WeaponSSG:      AmmoShells,
	WeaponMissile:  AmmoRockets,
	WeaponPlasma:   AmmoCells,
	WeaponBFG:      AmmoCells,
}

// fallbackCascade is the fixed weapon-preference order consulted when the
// player fires with no ammo in the current weapon (spec §4.E, SPEC_FULL
// supplemented detail from p_pspr.c): plasma, SSG, chaingun, shotgun,
// pistol, chainsaw, missile, BFG, fist.
var fallbackCascade = []int{
	WeaponPlasma,
	WeaponSSG,
	WeaponChaingun,
	WeaponShotgun,
	WeaponPistol,
	WeaponChainsaw,
	WeaponMissile,
	WeaponBFG,
	WeaponFist,
}

// Gating controls which weapons are excluded from selection regardless of
// ownership/ammo — shareware IWADs never register plasma/BFG, and the SSG
// is commercial-only (spec §4.E).
type Gating struct {
	SharewareGate bool // plasma and BFG unavailable
	SSGAvailable  bool
}

// SelectFallback walks the fixed preference cascade and returns the first
// weapon the player both owns and has ammo for, applying the gating rules.
// It returns the player's current ReadyWeapon if nothing else qualifies
// (the fist and chainsaw never run out, so the walk always terminates on
// one of them before reaching that fallback in practice).
func (p *Player) SelectFallback(g Gating) int {
	for _, w := range fallbackCascade {
		if w == WeaponPlasma || w == WeaponBFG {
			if g.SharewareGate {
				continue
			}
		}
		if w == WeaponSSG && !g.SSGAvailable {
			continue
		}
		if !p.WeaponOwned[w] {
			continue
		}
		if ammo, ok := weaponAmmo[w]; ok && p.Ammo[ammo] <= 0 {
			continue
		}
		return w
	}
	return p.ReadyWeapon
}

// RequestWeaponChange checks the ready weapon's ammo: if it is out of ammo,
// it selects a fallback and queues it as PendingWeapon (spec §4.E);
// otherwise it changes nothing. It does not fire the weapon itself.
func (p *Player) RequestWeaponChange(g Gating) {
	if ammo, ok := weaponAmmo[p.ReadyWeapon]; ok && p.Ammo[ammo] <= 0 {
		p.PendingWeapon = p.SelectFallback(g)
	}
}

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

// Package player implements per-player state: the player struct, weapon
// psprites, the weapon-selection fallback cascade, ammo bookkeeping
// (including its documented overflow quirk), and view bobbing (spec §3.4,
// §4.E).
package player

import "github.com/jetsetilly/doomcore/fixedpoint"

// State is a player's lifecycle stage (spec §3.4).
type State int

const (
	Alive State = iota
	Dead
	Reborn
)

// Button is a bit in a ticcmd's button field (spec §6.1).
type Button uint8

const (
	ButtonAttack Button = 1 << iota
	ButtonUse
	ButtonChange
	ButtonSpeed
)

// Command is one tic's worth of player input (spec §6.1 ticcmd).
type Command struct {
	ForwardMove int8
	SideMove    int8
	AngleTurn   int16
	Buttons     Button
	LookFly     uint8
	LookDir     int16
}

// NumAmmo and NumWeapons are the fixed sizes of the ammo/weapon arrays
// (spec §3.4: "ammo[4]/maxammo[4], weapons-owned bitset").
const (
	NumAmmo    = 4
	NumWeapons = 9
	NumCards   = 6
	NumPowers  = 6
)

// Power indexes the powers[] timer array (invulnerability, strength,
// invisibility, ironfeet, allmap, infrared — the classic six).
type Power int

const (
	PowerInvulnerability Power = iota
	PowerStrength
	PowerInvisibility
	PowerIronFeet
	PowerAllMap
	PowerInfrared
)

// OnDeathAction selects what happens once a dead player's reborn delay
// elapses (spec §3.4).
type OnDeathAction int

const (
	OnDeathNone OnDeathAction = iota
	OnDeathReloadLevel
	OnDeathLoadSave
)

// Player is the per-player struct (spec §3.4). MobjIndex is a weak
// reference (thinker-list index) to the owning mobj, matching the
// index-based redesign used throughout (spec §9).
type Player struct {
	MobjIndex int
	State     State

	Cmd Command

	ViewHeight, ViewHeightDelta fixedpoint.Fixed
	Bob                          fixedpoint.Fixed
	BobScale                     int // accessibility scale 0..20; 0 disables, 20 is raw

	Refire int

	Ammo, MaxAmmo [NumAmmo]int
	WeaponOwned   [NumWeapons]bool
	ReadyWeapon   int
	PendingWeapon int // -1 means no pending change

	Powers [NumPowers]int

	PSprites [2]PSprite

	Cards [NumCards]bool

	ExtraLight     int
	FixedColormap  int // 0 means none

	DamageCount, BonusCount int

	AttackDown, UseDown bool // edge-detect latches for the weapon/use cascade

	OnDeath OnDeathAction

	// WeaponProxy is the hidden object some sfx are positioned at instead
	// of the player's own mobj origin (spec §9 open question).
	WeaponProxy int
}

// NewPlayer returns a Player with sane zero-state defaults: no pending
// weapon change, no fixed colormap, fists ready.
func NewPlayer() *Player {
	p := &Player{
		PendingWeapon: -1,
		ReadyWeapon:   WeaponFist,
	}
	p.WeaponOwned[WeaponFist] = true
	p.WeaponOwned[WeaponPistol] = true
	p.Ammo[AmmoBullets] = 50
	p.MaxAmmo[AmmoBullets] = 200
	return p
}

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

// Package config loads the engine's compatibility toggles: the handful of
// behaviours spec.md §9 leaves as open questions with a documented default,
// rather than a single hard-coded answer. Options are expressed in TOML so a
// host shell (or a regression-test fixture) can pin them explicitly.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// NullSectorSource selects where the fallback "null sector" used for
// malformed two-sided lines gets its floor/ceiling heights from (spec §9).
type NullSectorSource string

const (
	// NullSectorZeroed always returns a sector with floor=ceiling=0. This is
	// the only source available to a straight port, and is the default.
	NullSectorZeroed NullSectorSource = "zeroed"

	// NullSectorLegacyMemory reproduces the original engine's undefined
	// behaviour of reading whatever two words happened to sit at the start
	// of the process image. Never actually performs that read in this
	// engine — there is no equivalent undefined memory to read — it exists
	// purely so a compatibility table can name the option and document that
	// selecting it behaves identically to "zeroed" here.
	NullSectorLegacyMemory NullSectorSource = "legacy-memory"
)

// Compatibility bundles every behaviour spec.md §9 leaves as an open
// question with a documented, selectable default.
type Compatibility struct {
	// NullSector names the fallback sector source for malformed
	// two-sided linedefs. Default: zeroed. The worldmap loader does not
	// read this setting.
	NullSector NullSectorSource `toml:"null_sector"`

	// AmmoOverflowQuirk preserves the original engine's DecreaseAmmo bug:
	// an out-of-range ammo index silently overflows into the adjacent
	// maxammo array. Default: true, for DeHackEd-mod compatibility.
	AmmoOverflowQuirk bool `toml:"ammo_overflow_quirk"`

	// WeaponSoundSourceTable lists the sfx names that should be positioned
	// at the player's hidden weapon-proxy object rather than at the
	// player's own origin. Default: the fixed, small vanilla list.
	WeaponSoundSourceTable []string `toml:"weapon_sound_source_table"`
}

// Engine is the full set of compatibility/behaviour options loaded from a
// config file. It is deliberately small: there are no user-facing CLI flags
// at the core level (spec §6.4), so anything here is either a compatibility
// switch or a regression-test aid.
type Engine struct {
	Compatibility Compatibility `toml:"compatibility"`

	// ZeroSeed forces both random streams to seed from zero, producing
	// reproducible traces for regression testing (spec §8 property 1).
	ZeroSeed bool `toml:"zero_seed"`

	// SoundChannels bounds the number of simultaneous sound channels
	// (spec §4.F), capped at 16.
	SoundChannels int `toml:"sound_channels"`
}

// DefaultWeaponSoundSourceTable is the fixed, small set of sfx that use the
// player's weapon-proxy object as their origin rather than the player mobj
// itself (spec §9).
var DefaultWeaponSoundSourceTable = []string{"sfx_pistol", "sfx_shotgn", "sfx_sshotgn", "sfx_pshoot", "sfx_rlaunc", "sfx_plasma", "sfx_bfg"}

// Defaults returns an Engine configured with vanilla-compatible defaults.
func Defaults() Engine {
	return Engine{
		Compatibility: Compatibility{
			NullSector:             NullSectorZeroed,
			AmmoOverflowQuirk:      true,
			WeaponSoundSourceTable: append([]string(nil), DefaultWeaponSoundSourceTable...),
		},
		ZeroSeed:      false,
		SoundChannels: 16,
	}
}

// Load reads an Engine configuration from a TOML file at path, starting
// from Defaults() so a partial file only overrides the fields it mentions.
func Load(path string) (Engine, error) {
	e := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}

	if _, err := toml.Decode(string(data), &e); err != nil {
		return e, err
	}

	if e.SoundChannels <= 0 || e.SoundChannels > 16 {
		e.SoundChannels = 16
	}

	return e, nil
}

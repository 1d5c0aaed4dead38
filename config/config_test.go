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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/doomcore/config"
	"github.com/jetsetilly/doomcore/internal/assert"
)

func TestDefaults(t *testing.T) {
	e := config.Defaults()
	assert.Equate(t, e.Compatibility.NullSector, config.NullSectorZeroed)
	assert.Equate(t, e.Compatibility.AmmoOverflowQuirk, true)
	assert.Equate(t, e.SoundChannels, 16)
	assert.ExpectInequality(t, len(e.Compatibility.WeaponSoundSourceTable), 0)
}

func TestLoadOverridesPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	contents := "sound_channels = 4\n\n[compatibility]\nammo_overflow_quirk = false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	e, err := config.Load(path)
	assert.ExpectSuccess(t, err)
	assert.Equate(t, e.SoundChannels, 4)
	assert.Equate(t, e.Compatibility.AmmoOverflowQuirk, false)
	// untouched field should still carry its default
	assert.Equate(t, e.Compatibility.NullSector, config.NullSectorZeroed)
}

func TestLoadClampsSoundChannels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	if err := os.WriteFile(path, []byte("sound_channels = 99\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	e, err := config.Load(path)
	assert.ExpectSuccess(t, err)
	assert.Equate(t, e.SoundChannels, 16)
}

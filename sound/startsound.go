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

package sound

import (
	"fmt"

	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/fixedpoint"
)

// SfxDef describes one sound effect's static properties, equivalent to an
// entry in the original's sfxinfo_t table.
type SfxDef struct {
	ID       int
	Priority int
	Pitch    PitchClass
	Volume   int // 0-127, static per-def cap

	// Link points at another SfxDef this one redirects to, with an
	// additional volume delta, mirroring "some sfx redirect to a linked
	// one with a volume delta" (spec §4.F step 2).
	Link      *SfxDef
	LinkDelta int
}

// resolveLink follows a chain of SfxDef.Link references, applying each
// link's volume delta, and stops after a bounded number of hops so a
// malformed (cyclic) DeHackEd patch can't spin forever.
func resolveLink(def *SfxDef) (*SfxDef, int) {
	delta := 0
	d := def
	for i := 0; i < 16 && d.Link != nil; i++ {
		delta += d.LinkDelta
		d = d.Link
	}
	return d, delta
}

// Driver is the abstract mixer collaborator (spec §6.1: start/stop/
// is_playing/update_params).
type Driver interface {
	Start(sfxID int, channel int, volume, separation, pitch int) Handle
	Stop(h Handle)
}

// Mixer ties the channel table, attenuation math and link resolution
// together into S_StartSound (spec §4.F).
type Mixer struct {
	Table    *Table
	Driver   Driver
	Listener Listener

	Mono      bool
	Mirrored  bool
	ThreeAxis bool

	// DemoWarp disables all new sound starts while fast-forwarding demo
	// playback (spec §4.F step 1).
	DemoWarp bool

	// Cache holds sfx already decoded once and compressed for the cache
	// tier, keyed by resolved sfx id. A StartSound hit decompresses the
	// entry to report its real PCM length on the started Channel; a miss
	// starts the sound with Samples left at 0 (spec: g711/sfx decode,
	// DOMAIN STACK).
	Cache map[int]CachedSfx
}

// StartSound implements S_StartSound's six-step arbitration (spec §4.F).
// def must not be nil; an out-of-range sfx id is the caller's
// responsibility to reject before calling this (spec §7 SfxOutOfRange).
func (m *Mixer) StartSound(def *SfxDef, origin Origin, originX, originY, originZ fixedpoint.Fixed, rnd RandomSource) (Handle, error) {
	if m.DemoWarp {
		return -1, nil
	}

	resolved, delta := resolveLink(def)
	volume := resolved.Volume + delta
	if volume <= 0 {
		return -1, nil
	}
	if volume > 127 {
		return -1, curated.Errorf(curated.VolumeOutOfRange, fmt.Sprintf("sfx %d resolved volume %d", def.ID, volume))
	}

	params := Params{Audible: true}
	if !origin.IsListener {
		params = AdjustSoundParams(m.Listener, originX, originY, volume, m.Mono, m.Mirrored, m.ThreeAxis, originZ)
		if !params.Audible {
			return -1, nil
		}
	} else {
		params.Volume = volume * 15 / 127
		params.Separation = 128
	}

	pitch := PitchVariance(resolved.Pitch, rnd)

	if h := m.Table.StopOrigin(origin); h != -1 {
		m.Driver.Stop(h)
	}

	idx, evicted, ok := m.Table.Acquire(resolved.ID, resolved.Priority, origin, pitch)
	if !ok {
		return -1, nil // ChannelExhaustion: non-fatal, silently dropped (spec §7)
	}
	if evicted != -1 {
		m.Driver.Stop(evicted)
	}

	h := m.Driver.Start(resolved.ID, idx, params.Volume, params.Separation, pitch)

	samples := 0
	if cached, ok := m.Cache[resolved.ID]; ok {
		samples = len(cached.Decompress().Samples)
	}

	m.Table.Assign(idx, resolved.ID, resolved.Priority, origin, h, pitch, samples)
	return h, nil
}

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

// Package sound implements the 3D-positional sound driver logic: channel
// arbitration, distance/stereo attenuation, pitch variance, and the
// music-selection state machine (spec §4.F). It calls an abstract mixer
// (spec §6.1 Sfx/music driver) rather than touching any platform audio API
// itself.
package sound

import "github.com/jetsetilly/doomcore/fixedpoint"

// MaxChannels is the hard ceiling on simultaneous sound channels (spec
// §4.F: "Fixed capacity 16 channels").
const MaxChannels = 16

// Handle identifies one active playback instance on the abstract mixer
// (spec §6.1: "start(sfx, channel, vol, sep, pitch)->handle").
type Handle int

// Origin identifies the sound's emitting object. MobjIndex is a weak
// thinker-list reference; sound never holds a pointer into the thinker
// package.
type Origin struct {
	MobjIndex  int
	IsListener bool // true when this is the listening player's own mobj
}

// Channel holds one active sound (spec §3.5/§4.F: "{sfxinfo*, origin_mobj*,
// handle, pitch}").
type Channel struct {
	InUse    bool
	SfxID    int
	Priority int
	Origin   Origin
	Handle   Handle
	Pitch    int

	// Samples is the decoded PCM length of whatever cache entry this
	// channel started from, or 0 if it started uncached (spec: sfx/music
	// decode, DOMAIN STACK).
	Samples int
}

// Table is the fixed-capacity channel array plus the eviction/arbitration
// logic of S_StartSound (spec §4.F).
type Table struct {
	channels []Channel
}

// NewTable creates a channel table with capacity n; an n outside
// [1, MaxChannels] gives MaxChannels (spec §4.F: "configurable
// snd_channels <= 16").
func NewTable(n int) *Table {
	if n <= 0 || n > MaxChannels {
		n = MaxChannels
	}
	return &Table{channels: make([]Channel, n)}
}

// Len returns the channel table's capacity.
func (t *Table) Len() int { return len(t.channels) }

// StopOrigin stops any channel currently playing a sound from origin
// (spec §4.F step 5: "Stop any existing channel owned by the same
// origin"), returning the handle that should be told to stop, or -1 if
// none was playing.
func (t *Table) StopOrigin(origin Origin) Handle {
	for i := range t.channels {
		c := &t.channels[i]
		if c.InUse && c.Origin.MobjIndex == origin.MobjIndex && !origin.IsListener {
			h := c.Handle
			*c = Channel{}
			return h
		}
	}
	return -1
}

// Acquire finds a free channel, or evicts the lowest-priority channel
// among those whose priority is below the requester's own, implementing step 6
// of S_StartSound (spec §4.F, §8 scenario S6). It returns the channel
// index and the handle of whatever was evicted (or -1 if none), or
// ok=false if no channel could be acquired (ChannelExhaustion, spec §7 —
// non-fatal, the sfx is silently dropped).
func (t *Table) Acquire(sfxID, priority int, origin Origin, pitch int) (idx int, evicted Handle, ok bool) {
	for i := range t.channels {
		if !t.channels[i].InUse {
			return i, -1, true
		}
	}

	worst := -1
	worstPriority := 0
	for i := range t.channels {
		if t.channels[i].Priority >= priority {
			continue
		}
		if worst == -1 || t.channels[i].Priority < worstPriority {
			worstPriority = t.channels[i].Priority
			worst = i
		}
	}
	if worst == -1 {
		return -1, -1, false
	}
	return worst, t.channels[worst].Handle, true
}

// Assign records a new sound as occupying channel idx. samples is the
// decoded PCM length behind this start, or 0 if the sfx wasn't resolved
// from the cache tier.
func (t *Table) Assign(idx int, sfxID, priority int, origin Origin, handle Handle, pitch, samples int) {
	t.channels[idx] = Channel{
		InUse: true, SfxID: sfxID, Priority: priority,
		Origin: origin, Handle: handle, Pitch: pitch, Samples: samples,
	}
}

// Free marks channel idx as no longer in use, e.g. once the mixer reports
// the handle has finished playing.
func (t *Table) Free(idx int) {
	t.channels[idx] = Channel{}
}

// Channels exposes a read-only view for diagnostics (the statsview
// dashboard in diagnostics reads this to report active-channel count).
func (t *Table) Channels() []Channel {
	return t.channels
}

// StereoSwing is the stereo separation magnitude applied to every non-mono
// sound; mirrored levels flip the result left/right (spec §4.F: "Stereo
// swing = 96*FRACUNIT normally").
const StereoSwing = fixedpoint.Fixed(96 << fixedpoint.FRACBITS)

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

package sound_test

import (
	"testing"

	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/sound"
)

type fakeDriver struct {
	started int
	stopped []sound.Handle
	next    sound.Handle
}

func (d *fakeDriver) Start(sfxID, channel int, volume, separation, pitch int) sound.Handle {
	d.started++
	d.next++
	return d.next
}

func (d *fakeDriver) Stop(h sound.Handle) { d.stopped = append(d.stopped, h) }

func newMixer(channels int) (*sound.Mixer, *fakeDriver) {
	drv := &fakeDriver{}
	return &sound.Mixer{Table: sound.NewTable(channels), Driver: drv}, drv
}

func TestStartSoundSkippedDuringDemoWarp(t *testing.T) {
	m, drv := newMixer(4)
	m.DemoWarp = true
	h, err := m.StartSound(&sound.SfxDef{ID: 1, Priority: 50, Volume: 100}, sound.Origin{IsListener: true}, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)
	assert.Equate(t, h, sound.Handle(-1))
	assert.Equate(t, drv.started, 0)
}

func TestStartSoundZeroVolumeDefIsSilent(t *testing.T) {
	m, drv := newMixer(4)
	h, err := m.StartSound(&sound.SfxDef{ID: 1, Priority: 50, Volume: 0}, sound.Origin{IsListener: true}, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)
	assert.Equate(t, h, sound.Handle(-1))
	assert.Equate(t, drv.started, 0)
}

func TestStartSoundFollowsLinkChain(t *testing.T) {
	m, drv := newMixer(4)
	base := &sound.SfxDef{ID: 2, Priority: 50, Volume: 100}
	linked := &sound.SfxDef{ID: 1, Priority: 50, Volume: 0, Link: base, LinkDelta: 10}
	h, err := m.StartSound(linked, sound.Origin{IsListener: true}, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)
	assert.Equate(t, h != -1, true)
	assert.Equate(t, drv.started, 1)
}

func TestStartSoundRejectsVolumeOutOfRange(t *testing.T) {
	m, _ := newMixer(4)
	def := &sound.SfxDef{ID: 1, Priority: 50, Volume: 128}
	_, err := m.StartSound(def, sound.Origin{IsListener: true}, 0, 0, 0, constRandom(0))
	assert.ExpectFailure(t, err)
	assert.Equate(t, curated.Is(err, curated.VolumeOutOfRange), true)
}

func TestStartSoundInaudibleAtDistanceProducesNoHandle(t *testing.T) {
	m, drv := newMixer(4)
	far := sound.ClippingDist * 2
	_, err := m.StartSound(&sound.SfxDef{ID: 1, Priority: 50, Volume: 100}, sound.Origin{}, far, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)
	assert.Equate(t, drv.started, 0)
}

func TestStartSoundRestartsSameOrigin(t *testing.T) {
	m, drv := newMixer(4)
	def := &sound.SfxDef{ID: 1, Priority: 50, Volume: 100}
	origin := sound.Origin{MobjIndex: 3}
	first, err := m.StartSound(def, origin, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)

	_, err = m.StartSound(def, origin, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)
	assert.Equate(t, len(drv.stopped) >= 1, true)
	assert.Equate(t, drv.stopped[0], first)
}

// TestStartSoundPopulatesSamplesFromCacheHit confirms a cached sfx is
// decompressed on start and its decoded sample count recorded on the
// channel, exercising the g711 round trip from a real core operation
// rather than only from sfxcache_test.go.
func TestStartSoundPopulatesSamplesFromCacheHit(t *testing.T) {
	m, _ := newMixer(4)
	pcm := sound.PCM{SampleRate: 11025, Samples: make([]int16, 128)}
	m.Cache = map[int]sound.CachedSfx{1: sound.Compress(pcm)}

	_, err := m.StartSound(&sound.SfxDef{ID: 1, Priority: 50, Volume: 100}, sound.Origin{IsListener: true}, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)

	assert.Equate(t, m.Table.Channels()[0].Samples, 128)
}

func TestStartSoundExhaustionIsNonFatal(t *testing.T) {
	m, _ := newMixer(1)
	high := &sound.SfxDef{ID: 1, Priority: 200, Volume: 100}
	low := &sound.SfxDef{ID: 2, Priority: 10, Volume: 100}
	_, err := m.StartSound(high, sound.Origin{MobjIndex: 1}, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)

	h, err := m.StartSound(low, sound.Origin{MobjIndex: 2}, 0, 0, 0, constRandom(0))
	assert.ExpectSuccess(t, err)
	assert.Equate(t, h, sound.Handle(-1))
}

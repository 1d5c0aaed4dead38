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

import (
	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/fixedpoint"
)

// RespawnInterval is the number of tics an item waits in the respawn
// queue before reappearing (30 seconds at 35 Hz), spec §4.D / §8 S3.
const RespawnInterval = 30 * 35

// respawnQueueSize is the fixed capacity of the item respawn ring buffer
// (spec §4.D).
const respawnQueueSize = 128

// RespawnEntry pairs a spawn-on-pickup mapthing with the leveltime it was
// enqueued at.
type RespawnEntry struct {
	SpawnPoint SpawnPoint
	EnqueuedAt int
}

// RespawnQueue is the 128-entry FIFO ring buffer of items awaiting respawn
// in deathmatch modes 2/3 (spec §4.D).
type RespawnQueue struct {
	entries    [respawnQueueSize]RespawnEntry
	head, tail int
	count      int
}

// Push enqueues an item pickup. If the queue is full, the oldest entry is
// silently evicted to make room, matching the original's ring-buffer
// overwrite behaviour.
func (q *RespawnQueue) Push(e RespawnEntry) {
	if q.count == respawnQueueSize {
		q.head = (q.head + 1) % respawnQueueSize
		q.count--
	}
	q.entries[q.tail] = e
	q.tail = (q.tail + 1) % respawnQueueSize
	q.count++
}

// Len reports the number of entries currently queued.
func (q *RespawnQueue) Len() int {
	return q.count
}

// Due pops and returns every entry whose wait has elapsed as of leveltime,
// oldest first, leaving later entries queued.
func (q *RespawnQueue) Due(leveltime int) []RespawnEntry {
	var out []RespawnEntry
	for q.count > 0 && leveltime-q.entries[q.head].EnqueuedAt >= RespawnInterval {
		out = append(out, q.entries[q.head])
		q.head = (q.head + 1) % respawnQueueSize
		q.count--
	}
	return out
}

// Spawner constructs and inserts fresh mobjs into the owning thinker list
// on behalf of the thinker package, which has no type-descriptor table of
// its own — that lives with the world/game data, same as the original's
// mobjinfo array. Both methods are expected to add the mobj they return to
// the relevant List before returning it.
type Spawner interface {
	SpawnMapThing(sp SpawnPoint) (*Mobj, error)
	// SpawnFog inserts a purely cosmetic teleport-fog mobj at the given
	// position and facing (spec §4.D nightmare respawn, item respawn).
	SpawnFog(x, y, z fixedpoint.Fixed, angle fixedpoint.Angle) (*Mobj, error)
}

// NightmareRespawn re-creates a dead monster at its original spawn point:
// a teleport fog at the death location, the type respawned from
// SpawnPoint with a second teleport fog at the destination, the AMBUSH
// flag restored, and 18 tics of reaction time before it can act (spec
// §4.D).
func NightmareRespawn(l *List, oldIdx int, m *Mobj, spawner Spawner) error {
	if _, err := spawner.SpawnFog(m.X, m.Y, m.Z, m.Angle); err != nil {
		return curated.Errorf(curated.MalformedMap, err.Error())
	}

	nm, err := spawner.SpawnMapThing(m.SpawnPoint)
	if err != nil {
		return curated.Errorf(curated.MalformedMap, err.Error())
	}

	const ambushOption = 0x8
	if m.SpawnPoint.Options&ambushOption != 0 {
		nm.Flags |= FlagAmbush
	}
	nm.Tics = reactionTics

	if _, err := spawner.SpawnFog(m.SpawnPoint.X, m.SpawnPoint.Y, nm.Z, m.SpawnPoint.Angle); err != nil {
		return curated.Errorf(curated.MalformedMap, err.Error())
	}

	l.Remove(oldIdx)
	return nil
}

// RespawnTicker advances the item-respawn queue once per tic (spec §4.D
// step 3), living on the thinker list as its own Ticker alongside the
// mobjs it respawns — the same "movers share the list" arrangement as
// doors and platforms. Each entry whose 30-second wait has elapsed is
// respawned at its original spawn point behind a teleport fog.
type RespawnTicker struct {
	Queue     *RespawnQueue
	Spawner   Spawner
	LevelTime func() int
}

// Think pops every due entry from Queue and respawns it.
func (t *RespawnTicker) Think(l *List) {
	if t.Queue == nil || t.LevelTime == nil || t.Spawner == nil {
		return
	}
	for _, e := range t.Queue.Due(t.LevelTime()) {
		if _, err := t.Spawner.SpawnFog(e.SpawnPoint.X, e.SpawnPoint.Y, 0, e.SpawnPoint.Angle); err != nil {
			continue
		}
		if _, err := t.Spawner.SpawnMapThing(e.SpawnPoint); err != nil {
			continue
		}
	}
}

// reactionTics is the grace period a nightmare-respawned monster is given
// before its first think (spec §4.D: "gives 18 tics reaction time").
const reactionTics = 18

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
	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/logger"
)

// nightmareGrace is P_NightmareRespawn's "movecount >= 12*35" gate: a dead
// COUNTKILL monster must sit in its terminal state this long before it can
// be considered for respawn (spec §4.D).
const nightmareGrace = 12 * 35

// nightmareRandomFloor is the "random() > 4" gate: once the other
// conditions hold, roughly a 98% chance per eligible tic.
const nightmareRandomFloor = 4

// AddMobj adds m to l and records its own index on m, so later calls into
// m.Think can remove or replace m without the caller threading the index
// through separately. Spawner implementations should use this rather than
// calling l.Add directly.
func AddMobj(l *List, m *Mobj) int {
	idx := l.Add(m)
	m.thinkerIndex = idx
	return idx
}

// Index reports m's position in the list it was last added to via
// AddMobj, or the zero value if it was never added that way.
func (m *Mobj) Index() int {
	return m.thinkerIndex
}

// Think assembles the full per-tic actor simulation in the order
// P_MobjThinker runs it (spec §4.D): XY movement (with the missile
// sky/explode branches), float-powerup bob or float-to-target homing,
// corpse torque, Z movement, the state-machine ticker, and — only once a
// dead COUNTKILL monster has sat in its terminal state long enough —
// nightmare respawn. World, Gameplay, Cosmetic and Spawner must be set on
// m before it is added to a list; a nil World makes Think a no-op, which
// is also how movers that embed a bare Mobj for bookkeeping (rather than
// simulating it) opt out.
func (m *Mobj) Think(l *List) {
	if m.World == nil {
		return
	}

	if removed, err := XYMovement(m, m.World, l); err != nil {
		logger.Logf("thinker", "mobj %d: xy movement failed: %v", m.thinkerIndex, err)
		return
	} else if removed {
		return
	}

	if m.Flags&FlagFloat != 0 {
		if m.Target != noThinker {
			if tgt, ok := l.At(m.Target).(*Mobj); ok {
				dist := aproxDistance(tgt.X-m.X, tgt.Y-m.Y)
				FloatTowards(m, tgt.Z, dist)
			}
		} else {
			m.FloatBob = FloatAmplitude(m, m.FloatVariant)
		}
	}

	if m.World.TorqueEnabled() {
		ApplyTorque(m, m.World)
	}

	ZMovement(m, m.World)

	if m.Tics != -1 {
		m.Tics--
		if m.Tics == 0 {
			st := m.States[m.State]
			alive, err := m.SetState(st.NextState)
			if err != nil {
				logger.Logf("thinker", "mobj %d: state advance failed: %v", m.thinkerIndex, err)
				l.Remove(m.thinkerIndex)
				return
			}
			if !alive {
				l.Remove(m.thinkerIndex)
			}
		}
		return
	}

	if m.Flags&FlagCountKill == 0 || !m.World.RespawnMonsters() {
		return
	}
	m.MoveCount++
	if m.MoveCount < nightmareGrace {
		return
	}
	if m.World.LevelTime()&31 != 0 {
		return
	}
	if m.Gameplay == nil || int(m.Gameplay.Next()) <= nightmareRandomFloor {
		return
	}
	if m.Spawner == nil {
		return
	}
	if err := NightmareRespawn(l, m.thinkerIndex, m, m.Spawner); err != nil {
		logger.Logf("thinker", "mobj %d: nightmare respawn failed: %v", m.thinkerIndex, err)
	}
}

// aproxDistance is P_AproxDistance: a cheap, sqrt-free 2D distance
// estimate (error under ~11%) used so a floating monster homing in on its
// target never needs real trigonometry in the hot tick path (spec §4.D).
func aproxDistance(dx, dy fixedpoint.Fixed) fixedpoint.Fixed {
	dx, dy = abs(dx), abs(dy)
	if dx < dy {
		return dx + dy - dx/2
	}
	return dx + dy - dy/2
}

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
	"fmt"

	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/random"
)

// Flag is the actor behaviour bitset (spec §3.2). Bit positions are
// implementation-internal; only the semantic set is fixed by the spec.
type Flag uint32

const (
	FlagSolid Flag = 1 << iota
	FlagShootable
	FlagNoClip
	FlagFloat
	FlagNoGravity
	FlagMissile
	FlagCountKill
	FlagCountItem
	FlagSpecial
	FlagDropped
	FlagCorpse
	FlagShadow
	FlagSkullFly
	FlagAmbush
	FlagJustAttacked
	FlagTranslation1
	FlagTranslation2
	FlagNotDMatch
	FlagSpawnCeiling
	FlagTranslucent
	FlagFlippable
	FlagBounces
)

// Translation extracts the two-bit TRANSLATION field from Flags.
func (f Flag) Translation() int {
	return int((f >> 15) & 0x3)
}

// StateNull is the sentinel "nextstate" meaning "remove this mobj on the
// next state advance" (spec §3.3).
const StateNull = -1

// maxStateIterations bounds P_SetMobjState's walk through zero-tic states,
// matching the original's fatal guard against DeHackEd-authored cycles
// (spec §3.3, §7 InfiniteStateCycle, §9).
const maxStateIterations = 1000000

// State is one frozen state-machine record. Action receives the mobj
// entering the state; player/pspr context is passed by the caller when the
// state belongs to a psprite rather than a mobj (mirrored in the player
// package).
type State struct {
	Sprite    int
	Frame     int
	Tics      int
	Action    func(m *Mobj)
	NextState int
}

// Stay reports whether this state never advances on its own (spec §3.3:
// tics == -1 means "stay here forever").
func (s State) Stay() bool {
	return s.Tics < 0
}

// Mobj is a map object / actor (spec §3.2). Positional fields and their
// interpolation backups are Fixed; Target/Tracer/Player are weak
// references expressed as thinker-list indices (noThinker when absent),
// matching spec §9's "pointer graphs → arena + indices" redesign.
type Mobj struct {
	TypeID int
	States []State // the type descriptor's frozen state table

	X, Y, Z             fixedpoint.Fixed
	OldX, OldY, OldZ    fixedpoint.Fixed
	OldAngle            fixedpoint.Angle
	Angle               fixedpoint.Angle
	MomX, MomY, MomZ    fixedpoint.Fixed
	Radius, Height      fixedpoint.Fixed

	Flags  Flag
	Health int
	Tics   int
	State  int // index into States

	SpriteFrameTag int // opaque sprite+frame selector derived from State

	Subsector int
	FloorZ, CeilingZ fixedpoint.Fixed

	Player int // index into a player slice, or noThinker
	Target, Tracer int // thinker-list indices, or noThinker

	SpawnPoint SpawnPoint

	// Interp is the tri-state interpolation marker: -1 suppresses one
	// tic's worth of interpolation (e.g. after a teleport), 0 is off, 1 is
	// on (spec §3.2).
	Interp int

	FloatAmp     int             // (float_amp++) & 63 sample index for floating powerups
	FloatVariant int             // which of the three amplitude LUTs this mobj bobs on
	FloatBob     fixedpoint.Fixed // last-sampled LUT value, for the renderer to offset the sprite by
	GearTics     int             // corpse-torque countdown (spec §4.D, S2)
	MoveCount    int             // tics spent in a tics==-1 terminal state, gates nightmare respawn

	DeathState int // state index ExplodeMissile transitions a missile into

	// World, Gameplay, Cosmetic and Spawner are the per-mobj collaborators
	// Think needs but the Ticker interface has no room to pass in: a mobj
	// carries its own weak references to them, the same way Target/Tracer
	// are carried as indices rather than threaded through every call (spec
	// §9 "pointer graphs -> arena + indices").
	World    World
	Gameplay *random.GameplayStream
	Cosmetic *random.CosmeticStream
	Spawner  Spawner

	thinkerIndex int
}

// SpawnPoint is the immutable placement record a respawned mobj is
// recreated from (spec §3.2, §4.D nightmare respawn).
type SpawnPoint struct {
	X, Y    fixedpoint.Fixed
	Angle   fixedpoint.Angle
	Type    int
	Options int
}

// SetState walks the mobj's state chain starting at next, setting Tics
// from each state it enters and following NextState links for any
// state whose Tics is zero, exactly mirroring P_SetMobjState (spec §3.3).
// It returns false if the chain reached StateNull, meaning the caller
// should remove the mobj.
func (m *Mobj) SetState(next int) (bool, error) {
	for i := 0; i < maxStateIterations; i++ {
		if next == StateNull {
			m.State = StateNull
			return false, nil
		}
		if next < 0 || next >= len(m.States) {
			return false, curated.Errorf(curated.InfiniteStateCycle, fmt.Sprintf("state %d out of range (have %d)", next, len(m.States)))
		}

		st := m.States[next]
		m.State = next
		m.SpriteFrameTag = st.Sprite<<8 | st.Frame
		m.Tics = st.Tics

		if st.Action != nil {
			st.Action(m)
		}

		if st.Tics != 0 {
			return true, nil
		}
		next = st.NextState
	}
	return false, curated.Errorf(curated.InfiniteStateCycle, fmt.Sprintf("exceeded %d iterations", maxStateIterations))
}

// tickState advances tics-until-next-state by one, invoking SetState when
// the countdown reaches zero. Think (mobjthink.go) runs its own inline copy
// of this countdown after XY/Z movement and does not call tickState.
func (m *Mobj) tickState() (alive bool, err error) {
	if m.Tics == -1 {
		return true, nil
	}
	m.Tics--
	if m.Tics > 0 {
		return true, nil
	}
	st := m.States[m.State]
	return m.SetState(st.NextState)
}

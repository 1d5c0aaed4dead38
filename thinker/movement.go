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
	"github.com/jetsetilly/doomcore/random"
)

// MaxMove caps the per-tic displacement magnitude along either axis before
// XYMovement splits the move into half-steps (spec §4.D).
const MaxMove = fixedpoint.Fixed(30 << fixedpoint.FRACBITS)

// StopSpeed is the momentum threshold below which a grounded, player-less
// mobj's momentum is zeroed outright rather than decayed by friction.
const StopSpeed = fixedpoint.Fixed(1 << fixedpoint.FRACBITS >> 1)

// Friction is applied once per tic to horizontal momentum while grounded.
const Friction fixedpoint.Fixed = 0xE800 // ~0.90625, vanilla FRICTION constant

// Gravity is the downward acceleration applied per tic while airborne.
const Gravity = fixedpoint.Fixed(1 << fixedpoint.FRACBITS)

// World is the subset of level and game-mode queries movement and the
// mobj thinker need. The thinker package does not import worldmap
// directly so that movement can be exercised with a synthetic World in
// tests without constructing a full Level.
type World interface {
	FloorCeiling(x, y fixedpoint.Fixed) (floor, ceiling fixedpoint.Fixed)
	// TryMove attempts to move a mobj with the given radius to (x,y),
	// reporting whether the position is clear of walls and other solids.
	TryMove(m *Mobj, x, y fixedpoint.Fixed) bool
	// BlockingLine describes whatever line the most recent failed TryMove
	// was blocked by: whether its backsector's ceiling is the sky flat, and
	// that ceiling's height (spec §4.D missile branch).
	BlockingLine() (isSky bool, ceilingHeight fixedpoint.Fixed)
	// LedgeDrop reports whether a circle of the given radius centred at
	// (x,y) hangs partway off a lower floor (spec §4.D corpse torque, S2).
	LedgeDrop(x, y, radius fixedpoint.Fixed) bool
	// TorqueEnabled reports whether corpse torque should run this tic
	// (single-player and the torque option on, spec §4.D).
	TorqueEnabled() bool
	// RespawnMonsters reports whether -respawn/nightmare skill is active.
	RespawnMonsters() bool
	// LevelTime is the current tic count since level start, used by both
	// the nightmare-respawn gate and the item-respawn queue.
	LevelTime() int
}

// XYMovement applies one tic's worth of horizontal movement (spec §4.D).
// Large moves are subdivided into half-steps, as the original does, so
// that fast-moving thin objects (rockets) cannot tunnel through a one-unit
// wide wall within a single tic. l is consulted only if a missile ends up
// blocked and needs removing from the list outright; it may be nil for any
// mobj that can never carry FlagMissile.
func XYMovement(m *Mobj, w World, l *List) (removed bool, err error) {
	if m.MomX == 0 && m.MomY == 0 && m.Flags&FlagSkullFly == 0 {
		return false, nil
	}

	momx := clampMove(m.MomX)
	momy := clampMove(m.MomY)

	for momx != 0 || momy != 0 {
		var stepx, stepy fixedpoint.Fixed
		if abs(momx) > MaxMove/2 || abs(momy) > MaxMove/2 {
			stepx, stepy = momx/2, momy/2
		} else {
			stepx, stepy = momx, momy
		}
		momx -= stepx
		momy -= stepy

		tryx := m.X + stepx
		tryy := m.Y + stepy
		if !w.TryMove(m, tryx, tryy) {
			removed, err := onBlockedMove(m, w, l)
			if removed || err != nil {
				return removed, err
			}
			break
		}
		m.X, m.Y = tryx, tryy
	}

	applyFriction(m)
	return false, nil
}

func clampMove(v fixedpoint.Fixed) fixedpoint.Fixed {
	if v > MaxMove {
		return MaxMove
	}
	if v < -MaxMove {
		return -MaxMove
	}
	return v
}

func abs(v fixedpoint.Fixed) fixedpoint.Fixed {
	if v < 0 {
		return -v
	}
	return v
}

// onBlockedMove is invoked when a half-step is blocked. The player's own
// P_SlideMove belongs to the player package, which calls TryMove directly
// rather than going through this monster/missile path. For a missile, the
// blocking wall's backsector decides the outcome (spec §4.D): a sky-flat
// ceiling the missile has already cleared makes it vanish silently (S1),
// anything else sends it through ExplodeMissile; every other mobj simply
// stops dead.
func onBlockedMove(m *Mobj, w World, l *List) (removed bool, err error) {
	if m.Flags&FlagMissile == 0 {
		m.MomX, m.MomY = 0, 0
		return false, nil
	}

	if isSky, ceiling := w.BlockingLine(); isSky && m.Z > ceiling {
		l.Remove(m.thinkerIndex)
		return true, nil
	}

	alive, err := ExplodeMissile(m, m.Cosmetic)
	if err != nil {
		l.Remove(m.thinkerIndex)
		return true, err
	}
	if !alive {
		l.Remove(m.thinkerIndex)
		return true, nil
	}
	return false, nil
}

// ExplodeMissile transitions a missile into its death state, clears
// FlagMissile so friction and collision treat the debris like any other
// falling object, and jitters the death-tic count with the cosmetic
// stream, matching P_ExplodeMissile's "tics -= random()&3" (spec §4.D);
// the jitter only changes animation timing, never anything a later tic's
// simulation branches on, so it draws from cosmetic rather than gameplay.
func ExplodeMissile(m *Mobj, cosmetic *random.CosmeticStream) (alive bool, err error) {
	m.MomX, m.MomY, m.MomZ = 0, 0, 0

	alive, err = m.SetState(m.DeathState)
	if err != nil || !alive {
		return alive, err
	}

	if cosmetic != nil {
		m.Tics -= int(cosmetic.Next() & 3)
		if m.Tics < 1 {
			m.Tics = 1
		}
	}
	m.Flags &^= FlagMissile
	return true, nil
}

func applyFriction(m *Mobj) {
	if m.Flags&(FlagMissile|FlagSkullFly) != 0 {
		return
	}
	if m.Z > m.FloorZ {
		// airborne: no friction
		return
	}
	if m.Flags&FlagCorpse != 0 && m.GearTics > 0 {
		// a corpse still sliding off a ledge is exempt, matching S2.
		return
	}

	if abs(m.MomX) < StopSpeed && abs(m.MomY) < StopSpeed {
		m.MomX, m.MomY = 0, 0
		return
	}

	m.MomX = fixedpoint.FixedMul(m.MomX, Friction)
	m.MomY = fixedpoint.FixedMul(m.MomY, Friction)
}

// ZMovement applies one tic's worth of vertical movement, including
// gravity, floor/ceiling contact, and the first-airborne-tic double
// gravity quirk the original emulates (spec §4.D).
func ZMovement(m *Mobj, w World) {
	floor, ceiling := w.FloorCeiling(m.X, m.Y)
	m.FloorZ, m.CeilingZ = floor, ceiling

	// Floating targets (spec §4.D) track the target's z+height/2; the
	// caller is responsible for calling FloatTowards with that z before
	// this function runs, so by the time we get here m.MomZ already
	// reflects the desired vertical drift.
	m.Z += m.MomZ

	switch {
	case m.Z <= floor:
		m.Z = floor
		// a heavy landing (momz below -Gravity*8) is the caller's cue to
		// play the "oof" sound and squat the view; this package only
		// stops the fall itself.
		if m.Flags&FlagSkullFly != 0 {
			m.MomZ = -m.MomZ
		} else {
			m.MomZ = 0
		}
	case m.Z+m.Height >= ceiling:
		m.Z = ceiling - m.Height
		if m.Flags&FlagSkullFly != 0 {
			m.MomZ = -m.MomZ
		} else {
			m.MomZ = 0
		}
	}

	if m.Flags&(FlagFloat|FlagNoGravity) == 0 && m.Z > m.FloorZ {
		if m.MomZ == 0 {
			// first airborne tic: double gravity, matching vanilla's
			// quirky acceleration-from-rest behaviour.
			m.MomZ -= Gravity * 2
		} else {
			m.MomZ -= Gravity
		}
	}
}

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

package thinker_test

import (
	"testing"

	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/random"
	"github.com/jetsetilly/doomcore/thinker"
)

type flatWorld struct {
	blockAfter fixedpoint.Fixed // block any move past this x
}

func (w flatWorld) FloorCeiling(x, y fixedpoint.Fixed) (fixedpoint.Fixed, fixedpoint.Fixed) {
	return 0, fixedpoint.ToFixed(128)
}

func (w flatWorld) TryMove(m *thinker.Mobj, x, y fixedpoint.Fixed) bool {
	return x <= w.blockAfter
}

func (w flatWorld) BlockingLine() (bool, fixedpoint.Fixed) {
	return false, 0
}

func (w flatWorld) LedgeDrop(x, y, radius fixedpoint.Fixed) bool {
	return false
}

func (w flatWorld) TorqueEnabled() bool { return false }

func (w flatWorld) RespawnMonsters() bool { return false }

func (w flatWorld) LevelTime() int { return 0 }

func TestXYMovementStopsOnBlock(t *testing.T) {
	m := &thinker.Mobj{MomX: fixedpoint.ToFixed(40), MomY: 0}
	w := flatWorld{blockAfter: fixedpoint.ToFixed(10)}

	_, err := thinker.XYMovement(m, w, nil)
	assert.ExpectSuccess(t, err)

	assert.Equate(t, m.MomX, fixedpoint.Fixed(0))
	assert.Equate(t, m.MomY, fixedpoint.Fixed(0))
}

func TestXYMovementAppliesFullMoveWhenClear(t *testing.T) {
	m := &thinker.Mobj{MomX: fixedpoint.ToFixed(5), MomY: 0}
	w := flatWorld{blockAfter: fixedpoint.ToFixed(1000)}

	_, err := thinker.XYMovement(m, w, nil)
	assert.ExpectSuccess(t, err)

	assert.Equate(t, m.X.Int(), 5)
}

func TestZMovementAppliesGravityWhenAirborne(t *testing.T) {
	m := &thinker.Mobj{Z: fixedpoint.ToFixed(50), MomZ: fixedpoint.ToFixed(1)}
	w := flatWorld{}

	thinker.ZMovement(m, w)

	assert.ExpectInequality(t, m.MomZ, fixedpoint.ToFixed(1))
}

func TestZMovementLandsOnFloor(t *testing.T) {
	m := &thinker.Mobj{Z: fixedpoint.ToFixed(1), MomZ: -fixedpoint.ToFixed(5)}
	w := flatWorld{}

	thinker.ZMovement(m, w)

	assert.Equate(t, m.Z, fixedpoint.Fixed(0))
	assert.Equate(t, m.MomZ, fixedpoint.Fixed(0))
}

// blockedSkyWorld blocks every horizontal move and reports the blocking
// line's backsector ceiling as the sky flat, for exercising S1.
type blockedSkyWorld struct {
	ceiling fixedpoint.Fixed
}

func (w blockedSkyWorld) FloorCeiling(x, y fixedpoint.Fixed) (fixedpoint.Fixed, fixedpoint.Fixed) {
	return 0, fixedpoint.ToFixed(1000)
}

func (w blockedSkyWorld) TryMove(m *thinker.Mobj, x, y fixedpoint.Fixed) bool { return false }

func (w blockedSkyWorld) BlockingLine() (bool, fixedpoint.Fixed) { return true, w.ceiling }

func (w blockedSkyWorld) LedgeDrop(x, y, radius fixedpoint.Fixed) bool { return false }

func (w blockedSkyWorld) TorqueEnabled() bool { return false }

func (w blockedSkyWorld) RespawnMonsters() bool { return false }

func (w blockedSkyWorld) LevelTime() int { return 0 }

// TestXYMovementSilentlyRemovesMissileAboveSkyCeiling is scenario S1: a
// rocket flying into a wall whose backsector ceiling is the sky flat, with
// the missile already above that ceiling, vanishes without exploding and
// the thinker list shrinks by exactly one.
func TestXYMovementSilentlyRemovesMissileAboveSkyCeiling(t *testing.T) {
	l := thinker.NewList()
	m := &thinker.Mobj{
		MomX: fixedpoint.ToFixed(40), Z: fixedpoint.ToFixed(200),
		Flags: thinker.FlagMissile,
		States: []thinker.State{{Tics: -1}},
	}
	thinker.AddMobj(l, m)
	otherIdx := thinker.AddMobj(l, &thinker.Mobj{States: []thinker.State{{Tics: -1}}})

	removed, err := thinker.XYMovement(m, blockedSkyWorld{ceiling: fixedpoint.ToFixed(100)}, l)
	assert.ExpectSuccess(t, err)
	assert.Equate(t, removed, true)

	assert.Equate(t, l.Len(), 1)
	assert.Equate(t, l.At(otherIdx) != nil, true)
}

// TestXYMovementExplodesMissileBelowSkyCeiling covers the non-silent branch:
// a missile blocked by a sky-flat wall but still below its ceiling explodes
// normally, jittering its death tics from the cosmetic stream.
func TestXYMovementExplodesMissileBelowSkyCeiling(t *testing.T) {
	l := thinker.NewList()
	m := &thinker.Mobj{
		MomX: fixedpoint.ToFixed(40), Z: fixedpoint.ToFixed(10),
		Flags:      thinker.FlagMissile,
		DeathState: 1,
		States:     []thinker.State{{Tics: -1}, {Tics: 10, NextState: thinker.StateNull}},
		Cosmetic:   random.NewCosmeticStream(nil),
	}
	thinker.AddMobj(l, m)

	removed, err := thinker.XYMovement(m, blockedSkyWorld{ceiling: fixedpoint.ToFixed(100)}, l)
	assert.ExpectSuccess(t, err)
	assert.Equate(t, removed, false)

	assert.Equate(t, m.Flags&thinker.FlagMissile, thinker.Flag(0))
	assert.Equate(t, m.State, 1)
	assert.Equate(t, l.Len(), 1)
}

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

package player

import (
	"fmt"

	"github.com/jetsetilly/doomcore/curated"
	"github.com/jetsetilly/doomcore/fixedpoint"
)

// PSpriteWeapon and PSpriteFlash index the PSprites array: the weapon itself and its muzzle
// flash overlay (spec §3.5, §4.E).
const (
	PSpriteWeapon = iota
	PSpriteFlash
)

// maxPSpriteIterations mirrors thinker.maxStateIterations for the psprite
// state chain, which SetPsprite walks the same way P_SetMobjState does
// (spec §4.E).
const maxPSpriteIterations = 1000000

// PSpriteState is a frozen state-machine record for a psprite, paralleling
// thinker.State but carrying the optional sprite-offset side effect (spec
// §4.E: "the 'set coordinate' misc1/misc2 side effect").
type PSpriteState struct {
	Sprite    int
	Frame     int
	Tics      int
	SetCoords bool
	Misc1, Misc2 fixedpoint.Fixed
	Action    func(p *Player, slot int)
	NextState int
}

// PSprite is one of a player's two weapon overlay sprites.
type PSprite struct {
	States []PSpriteState
	State  int
	Tics   int

	SX, SY             fixedpoint.Fixed
	SX2, SY2           fixedpoint.Fixed
	OldSX2, OldSY2     fixedpoint.Fixed
}

// PSpriteNull is the sentinel nextstate meaning the overlay should stop
// being drawn (mirrors thinker.StateNull).
const PSpriteNull = -1

// SetPsprite walks slot's state chain starting at next, mirroring
// P_SetMobjState/thinker.Mobj.SetState but for a psprite: the same
// zero-tic chaining, the same iteration guard, plus the coordinate side
// effect a state may carry.
func (p *Player) SetPsprite(slot, next int) error {
	ps := &p.PSprites[slot]

	for i := 0; i < maxPSpriteIterations; i++ {
		if next == PSpriteNull {
			ps.State = PSpriteNull
			ps.Tics = 0
			return nil
		}
		if next < 0 || next >= len(ps.States) {
			return curated.Errorf(curated.InfiniteStateCycle, fmt.Sprintf("psprite state %d out of range (have %d)", next, len(ps.States)))
		}

		st := ps.States[next]
		ps.State = next
		ps.Tics = st.Tics

		if st.SetCoords {
			ps.SX2, ps.SY2 = st.Misc1, st.Misc2
		}

		if st.Action != nil {
			st.Action(p, slot)
		}

		if st.Tics != 0 {
			return nil
		}
		next = st.NextState
	}
	return curated.Errorf(curated.InfiniteStateCycle, fmt.Sprintf("exceeded %d iterations", maxPSpriteIterations))
}

// TickPsprites advances both psprite tic counters by one, invoking
// SetPsprite's chain when a counter reaches zero. Tics == -1 psprites
// (e.g. a held-still flash) never advance on their own.
func (p *Player) TickPsprites() error {
	for slot := range p.PSprites {
		ps := &p.PSprites[slot]
		if ps.Tics == -1 {
			continue
		}
		ps.Tics--
		if ps.Tics > 0 {
			continue
		}
		if ps.State == PSpriteNull {
			continue
		}
		st := ps.States[ps.State]
		if err := p.SetPsprite(slot, st.NextState); err != nil {
			return err
		}
	}
	return nil
}

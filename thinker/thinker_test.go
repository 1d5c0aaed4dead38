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

	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/thinker"
)

type countingTicker struct {
	ticks int
	removeSelf bool
	idx    int
	l      *thinker.List
}

func (c *countingTicker) Think(l *thinker.List) {
	c.ticks++
	if c.removeSelf {
		l.Remove(c.idx)
	}
}

func TestListAddTickRemove(t *testing.T) {
	l := thinker.NewList()
	a := &countingTicker{}
	b := &countingTicker{}
	ia := l.Add(a)
	ib := l.Add(b)

	assert.Equate(t, l.Len(), 2)

	l.Tick()
	assert.Equate(t, a.ticks, 1)
	assert.Equate(t, b.ticks, 1)

	l.Remove(ia)
	assert.Equate(t, l.Len(), 1)
	assert.Equate(t, l.At(ia), nil)
	assert.Equate(t, l.At(ib), thinker.Ticker(b))
}

func TestSelfRemovingThinkerDuringTick(t *testing.T) {
	l := thinker.NewList()
	a := &countingTicker{removeSelf: true}
	ia := l.Add(a)
	a.idx = ia
	b := &countingTicker{}
	l.Add(b)

	before := l.Len()
	l.Tick()

	assert.Equate(t, l.Len(), before-1)
	assert.Equate(t, a.ticks, 1)
	assert.Equate(t, b.ticks, 1)
}

func TestSpawnThenRemoveSameTicPreservesSize(t *testing.T) {
	// spec §8 property 3: spawning then removing a missile within the same
	// tic leaves the list at its original size with identical structure.
	l := thinker.NewList()
	a := &countingTicker{}
	l.Add(a)
	before := l.Len()

	idx := l.Add(&countingTicker{})
	l.Remove(idx)

	assert.Equate(t, l.Len(), before)
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := thinker.NewList()
	idx := l.Add(&countingTicker{})
	l.Remove(idx)
	l.Remove(idx) // must not panic or corrupt the list
	assert.Equate(t, l.Len(), 0)
}

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

package finale_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/doomcore/finale"
	"github.com/jetsetilly/doomcore/internal/assert"
)

func TestTextTypewriterReveal(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageText, Text: "abcd"}
	m.Tick(nil)
	assert.Equate(t, m.VisibleText(), "")
	m.Tick(nil)
	assert.Equate(t, m.VisibleText(), "a")
}

func TestTextStageAdvancesToArtScreenWhenBunny(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageText, Text: "ab", Bunny: true}
	for i := 0; i < 10; i++ {
		m.Tick(nil)
	}
	assert.Equate(t, m.Stage, finale.StageArtScreen)
}

func TestTextStageNeverAdvancesWithoutBunny(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageText, Text: "a"}
	for i := 0; i < 20; i++ {
		m.Tick(nil)
	}
	assert.Equate(t, m.Stage, finale.StageText)
}

func TestBunnyScrollReachesCastAtThreshold(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageArtScreen, Bunny: true}
	for i := 0; i < 1130; i++ {
		m.Tick(nil)
	}
	assert.Equate(t, m.Stage, finale.StageCast)
}

type fakeCastTicker struct {
	alive bool
	err   error
}

func (f *fakeCastTicker) Tick() (bool, error) { return f.alive, f.err }

func TestCastStageAdvancesOnActorDeath(t *testing.T) {
	advanced := false
	m := &finale.Machine{Stage: finale.StageCast, CastAdvance: func() { advanced = true }}
	err := m.Tick(&fakeCastTicker{alive: false})
	assert.ExpectSuccess(t, err)
	assert.Equate(t, advanced, true)
}

func TestCastStagePropagatesTickError(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageCast}
	err := m.Tick(&fakeCastTicker{err: errors.New("boom")})
	assert.ExpectFailure(t, err)
}

func TestRespondSkipsTypewriter(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageText, Text: "hello world"}
	consumed := m.Respond(true)
	assert.Equate(t, consumed, true)
	assert.Equate(t, m.VisibleText(), "hello world")
}

func TestRespondIgnoredOutsideTextStage(t *testing.T) {
	m := &finale.Machine{Stage: finale.StageArtScreen}
	assert.Equate(t, m.Respond(true), false)
}

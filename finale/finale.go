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

// Package finale implements the end-of-episode state machine: a text
// crawl, a single art screen or bunny-scroll panorama, and the cast-call
// sequence (spec §4.J).
package finale

// Stage is one of the finale's three phases (spec §4.J).
type Stage int

const (
	StageText Stage = iota
	StageArtScreen
	StageCast
)

// bunnyEndCutsceneThreshold is the finalecount at which the bunny-scroll
// panorama starts its END-cutscene animation (spec §4.J, supplemented from
// original_source/src/doom/f_finale.c: "finalecount >= 1130").
const bunnyEndCutsceneThreshold = 1130

// textTypeSpeed is how many tics elapse between each newly revealed
// character of the text-crawl paragraph (the classic engine types at one
// character every other tic).
const textTypeSpeed = 2

// Machine drives the finale's per-tic progression (spec §4.J, §6.2:
// F_Ticker/F_Drawer/F_Responder).
type Machine struct {
	Stage Stage

	Text        string
	charsShown  int
	tic         int

	Bunny     bool // true selects the bunny-scroll panorama instead of a single art screen
	finaleCount int

	// Cast drives the per-actor walk/attack/death cycle shared with the
	// thinker state machine (spec §4.J: "driven by the shared state
	// machine"); CastAdvance is called once the current actor's cycle
	// finishes, letting the host select the next cast member.
	CastAdvance func()

	// PlaySfx plays a hard-coded firing-state override during the cast
	// sequence (spec §4.J: "hard-coded sfx overrides per firing state").
	PlaySfx func(name string)
}

// Ticker is implemented by the same per-actor state machine the thinker
// package ticks mobjs with, letting the cast sequence drive an actor's
// walk/attack/death cycle without finale depending on thinker directly.
type Ticker interface {
	Tick() (alive bool, err error)
}

// Tick advances the finale by one tic (spec §4.J, §6.2 F_Ticker).
func (m *Machine) Tick(cast Ticker) error {
	m.tic++

	switch m.Stage {
	case StageText:
		if m.tic%textTypeSpeed == 0 && m.charsShown < len(m.Text) {
			m.charsShown++
		}
		if m.charsShown >= len(m.Text) {
			if m.Bunny {
				m.Stage = StageArtScreen
			}
		}
	case StageArtScreen:
		if m.Bunny {
			m.finaleCount++
			if m.finaleCount >= bunnyEndCutsceneThreshold {
				m.Stage = StageCast
			}
		}
	case StageCast:
		if cast != nil {
			alive, err := cast.Tick()
			if err != nil {
				return err
			}
			if !alive && m.CastAdvance != nil {
				m.CastAdvance()
			}
		}
	}
	return nil
}

// VisibleText returns the portion of Text revealed so far, for F_Drawer's
// typewriter effect.
func (m *Machine) VisibleText() string {
	return m.Text[:m.charsShown]
}

// Respond implements F_Responder: any key press during the text stage
// instantly reveals the remaining text (classic "skip the typewriter"
// behaviour); during other stages a press is not consumed here (the host
// shell handles menu access itself, which is out of core scope per spec
// §1).
func (m *Machine) Respond(keyPressed bool) bool {
	if m.Stage == StageText && keyPressed && m.charsShown < len(m.Text) {
		m.charsShown = len(m.Text)
		return true
	}
	return false
}

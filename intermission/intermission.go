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

// Package intermission implements the per-tic accelerator-aware counter
// animation shown between levels: kills/items/secrets/time/par/frags (spec
// §4.I).
package intermission

// State is one of the three intermission stages (spec §4.I: "StatCount ->
// ShowNextLoc -> NoState").
type State int

const (
	StateCount State = iota
	StateShowNextLoc
	StateNone
)

// pistolTickInterval is how often the "pistol tick" sound plays while a
// counter is animating (spec §4.I: "every 4 tics").
const pistolTickInterval = 4

// Tally holds the end-of-level statistics the intermission screen counts
// up to, plus the per-tic counters that animate toward them.
type Tally struct {
	Kills, KillsTotal     int
	Items, ItemsTotal     int
	Secrets, SecretsTotal int
	Time, Par             int // tics
	Frags                 [4]int
	FragsTarget           [4]int
}

// Done reports whether every counter has reached its target.
func (t *Tally) Done() bool {
	return t.Kills >= t.KillsTotal && t.Items >= t.ItemsTotal &&
		t.Secrets >= t.SecretsTotal && t.Time >= t.Par &&
		allReached(t.Frags, t.FragsTarget)
}

func allReached(cur, target [4]int) bool {
	for i := range cur {
		if cur[i] < target[i] {
			return false
		}
	}
	return true
}

// Machine drives the per-tic counter animation and accelerator edge
// detection (spec §4.I).
type Machine struct {
	State State
	Tally Tally

	tic int

	// PlaySfx is called with "pistol" once every pistolTickInterval tics
	// while counters are animating, and with "barrelx" once when a sub-
	// phase completes (spec §4.I).
	PlaySfx func(name string)

	attackWasDown, useWasDown bool
}

// accelerate reports whether the player has just pressed attack or use
// this tic (edge detection, spec §4.I: "Player accelerates by pressing
// attack or use... with edge detection").
func (m *Machine) accelerate(attackDown, useDown bool) bool {
	pressed := (attackDown && !m.attackWasDown) || (useDown && !m.useWasDown)
	m.attackWasDown, m.useWasDown = attackDown, useDown
	return pressed
}

// Tick advances the counter animation by one tic (spec §4.I).
func (m *Machine) Tick(attackDown, useDown bool) {
	if m.State != StateCount {
		return
	}

	m.tic++
	accel := m.accelerate(attackDown, useDown)

	before := m.Tally
	step(&m.Tally.Kills, m.Tally.KillsTotal, accel)
	step(&m.Tally.Items, m.Tally.ItemsTotal, accel)
	step(&m.Tally.Secrets, m.Tally.SecretsTotal, accel)
	step(&m.Tally.Time, m.Tally.Par, accel)
	for i := range m.Tally.Frags {
		step(&m.Tally.Frags[i], m.Tally.FragsTarget[i], accel)
	}

	if m.tic%pistolTickInterval == 0 && m.Tally != before && m.PlaySfx != nil {
		m.PlaySfx("pistol")
	}

	if m.Tally.Done() {
		if m.PlaySfx != nil {
			m.PlaySfx("barrelx")
		}
		m.State = StateShowNextLoc
	}
}

// step advances cur one tic closer to target, or snaps straight to target
// when accel is set (instant-complete on accelerator press).
func step(cur *int, target int, accel bool) {
	if *cur >= target {
		*cur = target
		return
	}
	if accel {
		*cur = target
		return
	}
	*cur++
}

// NextLoc advances StateShowNextLoc to StateNone once the player presses
// attack/use again, or to StateNone unconditionally once the fixed display
// delay elapses — callers track the delay and call this once it's over.
func (m *Machine) NextLoc(attackDown, useDown bool, delayElapsed bool) {
	if m.State != StateShowNextLoc {
		return
	}
	if m.accelerate(attackDown, useDown) || delayElapsed {
		m.State = StateNone
	}
}

// IsCastCall reports whether this map transition should skip
// ShowNextLoc entirely and go straight to the cast-call sequence: the
// commercial exit on MAP30, or the Nerve MAP08 special case (spec §4.I:
// "The commercial exit sequence skips ShowNextLoc on MAP30 or the nerve
// MAP08 special case").
func IsCastCall(mapnum int, isNerve bool) bool {
	return mapnum == 30 || (isNerve && mapnum == 8)
}

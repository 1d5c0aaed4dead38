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

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// liveStatus is the snapshot tcellDashboard paints each refresh; it mirrors
// diagnostics.Counters but adds the two random-stream indices the HTTP
// statsview page does not carry, since those only make sense alongside a
// live channel table rather than a time-series graph.
type liveStatus struct {
	Tic            int
	Thinkers       int
	ActiveChannels int
	GameplayIndex  uint8
	CosmeticIndex  uint8
	VisPlanes      int
}

// tcellDashboard is a second, disjoint terminal UI from the statsview HTTP
// one: a full-screen live table of engine internals, useful when running
// the headless driver over ssh with no browser available.
type tcellDashboard struct {
	screen tcell.Screen
}

// newTcellDashboard opens and initializes a tcell screen. The caller must
// call close() before the process exits, or the terminal is left in
// whatever raw mode tcell put it in.
func newTcellDashboard() (*tcellDashboard, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	return &tcellDashboard{screen: screen}, nil
}

func (d *tcellDashboard) close() {
	d.screen.Fini()
}

// draw renders one frame of the status table and flips it to the screen.
func (d *tcellDashboard) draw(s liveStatus) {
	d.screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	lines := []string{
		"doomcore live dashboard  (q to quit)",
		fmt.Sprintf("tic             %d", s.Tic),
		fmt.Sprintf("thinkers        %d", s.Thinkers),
		fmt.Sprintf("active channels %d", s.ActiveChannels),
		fmt.Sprintf("visplanes       %d", s.VisPlanes),
		fmt.Sprintf("gameplay index  %d", s.GameplayIndex),
		fmt.Sprintf("cosmetic index  %d", s.CosmeticIndex),
	}
	for row, line := range lines {
		putString(d.screen, 0, row, style, line)
	}
	d.screen.Show()
}

// pollQuit drains pending tcell events without blocking and reports whether
// the user pressed 'q' or Ctrl-C, so the host loop can check once per tic
// without stalling the simulation waiting on input.
func (d *tcellDashboard) pollQuit() bool {
	for d.screen.HasPendingEvent() {
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return true
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
	return false
}

func putString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// runWithTcellDashboard drives fn once per tic at roughly 35Hz (the
// classic simulation rate), redrawing the dashboard from sample after each
// tic, until fn returns false or the user quits.
func runWithTcellDashboard(dash *tcellDashboard, sample func(tic int) liveStatus, fn func(tic int) bool) {
	const tickRate = time.Second / 35
	tic := 0
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for range ticker.C {
		if !fn(tic) {
			return
		}
		dash.draw(sample(tic))
		if dash.pollQuit() {
			return
		}
		tic++
	}
}

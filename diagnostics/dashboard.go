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

// Package diagnostics exposes an optional live HTTP dashboard, go-echarts/
// statsview's goroutine/GC view, plus a Counters snapshot of the engine's
// own counters (visplane count, active sound channels, thinker list size)
// that a host reads through Sample. The engine counters are not drawn on
// the HTTP page. Never started by core itself — only a host shell opts in.
package diagnostics

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Counters is a snapshot of engine state returned by Sample. It is not
// added to statsview's built-in goroutine/heap graphs. The core engine
// never imports this package; a host driver polls its own state and calls
// Sample periodically.
type Counters struct {
	Thinkers      int
	VisPlanes     int
	ActiveChannels int
	LevelTime     int
}

// Dashboard pairs a counters sampler with an on-demand statsview.Viewer.
// The viewer started by Start shows only statsview's own Go runtime
// charts; no engine-specific charts are registered on it.
type Dashboard struct {
	sampler func() Counters
}

// NewDashboard creates a Dashboard that calls sample to produce the
// latest Counters whenever the viewer polls.
func NewDashboard(sample func() Counters) *Dashboard {
	return &Dashboard{sampler: sample}
}

// Start begins serving the statsview dashboard on addr in its own
// goroutine; the host shell decides whether to call this at all (spec §1:
// platform video/audio/UI I/O stays out of core, and so does owning a
// listen socket).
func (d *Dashboard) Start(addr string) {
	v := statsview.New(viewer.WithAddr(addr))
	go v.Start()
}

// Sample returns the current Counters snapshot.
func (d *Dashboard) Sample() Counters {
	if d.sampler == nil {
		return Counters{}
	}
	return d.sampler()
}

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

// Package instance defines the per-run state that needs to exist exactly
// once per simulation but must not leak into global package variables —
// particularly useful for running more than one instance of the engine in
// the same process (regression testing, comparison harnesses).
package instance

import (
	"github.com/jetsetilly/doomcore/config"
	"github.com/jetsetilly/doomcore/random"
)

// Instance groups the resources that are scoped to one running simulation
// but are not part of the world/actor data itself: the two random streams
// (spec §4.B) and the loaded compatibility configuration (spec §9).
type Instance struct {
	Config config.Engine

	Gameplay *random.GameplayStream
	Cosmetic *random.CosmeticStream
}

// NewInstance creates an Instance whose random streams are seeded from
// clock. cfg is typically the result of config.Load or config.Defaults.
func NewInstance(clock random.Clock, cfg config.Engine) *Instance {
	ins := &Instance{
		Config:   cfg,
		Gameplay: random.NewGameplayStream(clock),
		Cosmetic: random.NewCosmeticStream(clock),
	}
	ins.Gameplay.ZeroSeed = cfg.ZeroSeed
	ins.Cosmetic.ZeroSeed = cfg.ZeroSeed
	return ins
}

// Normalise resets both random streams to their seed point. Used at level
// start (spec §4.B: "both reset to index 0 on level start") and by
// regression tests that need a known starting state.
func (ins *Instance) Normalise() {
	ins.Gameplay.Reset()
	ins.Cosmetic.Reset()
}

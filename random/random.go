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

// Package random implements the engine's deterministic pseudo-random
// streams (spec §4.B). Unlike math/rand, a Random here never reseeds itself
// from wall-clock time: its only external input is a single Clock sample
// taken at construction, so that replaying the same tick sequence against
// the same clock value reproduces bit-identical output on any platform.
package random

// Coords is the minimal timing snapshot used to seed a stream. It mirrors
// the position-in-frame information a television-driven engine would have
// on hand at level start, without this package needing to import anything
// about rendering.
type Coords struct {
	Frame    int
	Scanline int
	Clock    int
}

// Clock supplies the Coords snapshot used to seed a Random. The only
// expected implementation is whatever drives the simulation loop (or, in
// tests, a stub).
type Clock interface {
	GetCoords() Coords
}

// table is the fixed 256-entry sequence every Random walks. It is generated
// once, deterministically, from small integer constants — never from
// math/rand or the system clock — so it is identical on every platform and
// every run. It stands in for the original engine's literal byte table and
// does not reproduce that table's values.
var table [256]byte

func init() {
	// A fixed multiplicative congruential walk over a prime modulus produces
	// a full-period permutation of 1..256, which x-1 folds down to 0..255.
	// The constants are arbitrary but fixed; nothing here depends on
	// run-time entropy.
	const a = 75
	const m = 257
	x := 1
	for i := 0; i < 256; i++ {
		x = (x * a) % m
		table[i] = byte(x - 1)
	}
}

// Random is a single 256-entry deterministic stream. Each call to Next
// advances the internal index by one and returns the corresponding table
// entry; Rewindable returns what the i-th call to Next after a Reset would
// produce, without mutating state, which makes it safe to use for save-state
// rewind or for cross-checking two independently constructed streams.
type Random struct {
	// ZeroSeed forces the seed to zero regardless of the Clock. Used by
	// regression tests and by instance.NewInstance (from the config's
	// ZeroSeed switch) to get reproducible traces.
	ZeroSeed bool

	clock   Clock
	sampled uint8
	index   uint8
}

// NewRandom creates a Random seeded from clock's current Coords. The clock
// is sampled once, here; later calls never consult it again.
func NewRandom(clock Clock) *Random {
	r := &Random{clock: clock}
	if clock != nil {
		c := clock.GetCoords()
		r.sampled = uint8(c.Frame*3 + c.Scanline*5 + c.Clock*7)
	}
	return r
}

func (r *Random) seed() uint8 {
	if r.ZeroSeed {
		return 0
	}
	return r.sampled
}

// Next advances the stream by one entry and returns it. This is the only
// method that should be called from simulation or draw code; Rewindable
// exists purely for inspection.
func (r *Random) Next() uint8 {
	r.index++
	return table[uint8(int(r.seed())+int(r.index))]
}

// Rewindable returns the value the stream would produce i calls to Next()
// from its current seed, without mutating the stream. i must be >= 1 to
// match the semantics of Next (which always advances before reading).
func (r *Random) Rewindable(i int) uint8 {
	return table[uint8(int(r.seed())+i)]
}

// Reset returns the stream to its freshly-seeded state. Called on level
// start (spec §4.B: "both reset to index 0 on level start").
func (r *Random) Reset() {
	r.index = 0
}

// Index reports how many times Next has been called since the last Reset.
func (r *Random) Index() uint8 {
	return r.index
}

// GameplayStream is the sole permitted source of randomness for any
// computation whose result can influence future simulation state (monster
// AI decisions, damage rolls, nightmare-respawn gating, item-spawn
// selection). Its distinct type prevents a cosmetic call site from
// accidentally holding a reference to it.
type GameplayStream struct {
	*Random
}

// NewGameplayStream creates a GameplayStream seeded from clock.
func NewGameplayStream(clock Clock) *GameplayStream {
	return &GameplayStream{NewRandom(clock)}
}

// CosmeticStream is used only for visual variation that must never feed
// back into simulation state: puff jitter, corpse flip, brightmap flicker,
// fuzz position jitter.
type CosmeticStream struct {
	*Random
}

// NewCosmeticStream creates a CosmeticStream seeded from clock.
func NewCosmeticStream(clock Clock) *CosmeticStream {
	return &CosmeticStream{NewRandom(clock)}
}

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

package instance_test

import (
	"testing"

	"github.com/jetsetilly/doomcore/config"
	"github.com/jetsetilly/doomcore/instance"
	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/random"
)

type stubClock struct{}

func (stubClock) GetCoords() random.Coords {
	return random.Coords{Frame: 1, Scanline: 2, Clock: 3}
}

func TestNewInstanceHonoursZeroSeed(t *testing.T) {
	cfg := config.Defaults()
	cfg.ZeroSeed = true

	ins := instance.NewInstance(stubClock{}, cfg)
	assert.Equate(t, ins.Gameplay.ZeroSeed, true)
	assert.Equate(t, ins.Cosmetic.ZeroSeed, true)
}

func TestNormaliseResetsBothStreams(t *testing.T) {
	ins := instance.NewInstance(stubClock{}, config.Defaults())

	ins.Gameplay.Next()
	ins.Gameplay.Next()
	ins.Cosmetic.Next()

	ins.Normalise()

	assert.Equate(t, ins.Gameplay.Index(), uint8(0))
	assert.Equate(t, ins.Cosmetic.Index(), uint8(0))
}

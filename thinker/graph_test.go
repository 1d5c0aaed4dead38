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
	"bytes"
	"testing"

	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/thinker"
)

func TestDumpGraphProducesOutput(t *testing.T) {
	l := thinker.NewList()
	l.Add(&thinker.Mobj{TypeID: 1})
	l.Add(&thinker.Mobj{TypeID: 2})

	var buf bytes.Buffer
	thinker.DumpGraph(&buf, l)

	assert.ExpectInequality(t, buf.Len(), 0)
}

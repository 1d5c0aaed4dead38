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

package thinker

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// graphNode is a flattened, exportable snapshot of one thinker-list entry,
// used only as memviz's traversal target: memviz walks exported struct
// fields reflectively, so it can't usefully render the unexported `entry`
// slice inside List directly.
type graphNode struct {
	Index  int
	TypeID int
	X, Y, Z int32
	Target, Tracer int
	Flags  uint32
}

// DumpGraph renders the live thinker list as a Graphviz graph via memviz,
// following the spec's own vocabulary for this structure (§2 row D: "the
// thinker graph"). Intended for diagnostics only — never called from the
// simulation's own tick path.
func DumpGraph(w io.Writer, l *List) {
	nodes := make([]graphNode, 0, l.Len())
	l.Walk(func(idx int, t Ticker) {
		m, ok := t.(*Mobj)
		if !ok {
			return
		}
		nodes = append(nodes, graphNode{
			Index:  idx,
			TypeID: m.TypeID,
			X:      int32(m.X),
			Y:      int32(m.Y),
			Z:      int32(m.Z),
			Target: m.Target,
			Tracer: m.Tracer,
			Flags:  uint32(m.Flags),
		})
	})
	memviz.Map(w, nodes)
}

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

// Package worldmap parses binary WAD map lumps into the engine's world data
// model (spec §3.1, §4.C): vertices, linedefs, sidedefs, sectors,
// subsectors, nodes, segs, the blockmap and the reject matrix.
//
// WAD container I/O itself — opening the file, hashing lumps, caching lump
// bytes — is out of scope (spec §1): this package only consumes a
// caller-supplied LumpSource, exactly as spec §6.1 describes.
package worldmap

import (
	"strings"
)

// LumpSource is the consumed interface this package requires of its host:
// the ability to look up a named lump and read its raw bytes. Lump names
// are 8-byte space-padded ASCII, case-insensitive (spec §6.1).
type LumpSource interface {
	// Lump returns the raw bytes of the named lump, or ok=false if no such
	// lump exists.
	Lump(name string) (data []byte, ok bool)
}

// NormaliseLumpName upper-cases and trims a lump name for lookup, matching
// the case-insensitivity required by spec §6.1.
func NormaliseLumpName(name string) string {
	return strings.ToUpper(strings.TrimRight(name, "\x00 "))
}

// mapLumpOrder is the fixed order in which per-map lumps appear after the
// map marker lump (spec §4.C): THINGS, LINEDEFS, SIDEDEFS, VERTEXES, SEGS,
// SSECTORS, NODES, SECTORS, REJECT, BLOCKMAP.
var mapLumpOrder = []string{
	"THINGS",
	"LINEDEFS",
	"SIDEDEFS",
	"VERTEXES",
	"SEGS",
	"SSECTORS",
	"NODES",
	"SECTORS",
	"REJECT",
	"BLOCKMAP",
}

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

package worldmap

// loadReject wraps a REJECT lump's raw bytes. A short or missing lump is
// not an error (spec §4.C step 10): it just means every sector is assumed
// visible to every other, which is always a safe (if slower) fallback.
func loadReject(data []byte, numSectors int) *Reject {
	needed := (numSectors*numSectors + 7) / 8
	if len(data) < needed {
		return &Reject{numSectors: numSectors}
	}
	return &Reject{data: data, numSectors: numSectors}
}

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

import "github.com/jetsetilly/doomcore/fixedpoint"

func loadThings(data []byte) ([]MapThing, error) {
	var out []MapThing
	err := decodeLump("THINGS", data, thingSize, func(rec []byte) error {
		rt := decodeThing(rec)
		out = append(out, MapThing{
			X:       fixedpoint.ToFixed(int(rt.X)),
			Y:       fixedpoint.ToFixed(int(rt.Y)),
			Angle:   thingAngle(rt.Angle),
			Type:    int(rt.Type),
			Options: int(rt.Options),
		})
		return nil
	})
	return out, err
}

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// particular pattern. For example:
//
//	a := 10
//	e := curated.Errorf("error: value = %d", a)
//
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, which is useful when a fatal error wraps one of the
// category sentinels declared in categories.go.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised: it does not contain duplicate adjacent parts,
// which alleviates the problem of when and how to wrap an error as it
// propagates up through a call chain.
package curated

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

package curated

// Pattern strings for the error taxonomy of the engine. Each is suitable for
// use as the first argument to Errorf() and as the match argument to Is() /
// Has(). Grouping them here means callers never have to retype a pattern
// string, which keeps Is()/Has() matching reliable.
const (
	// MalformedMap covers a lump that is too short, an out-of-range index, or
	// a two-sided line missing its second sidedef. Always fatal.
	MalformedMap = "malformed map: %s"

	// TextureMissing is raised when a flat or texture name can't be resolved
	// during map load. Non-fatal: the loader substitutes the "-" sentinel.
	TextureMissing = "texture missing: %s"

	// InfiniteStateCycle is raised when a state machine's next-state chain
	// exceeds the iteration guard without reaching a tics!=0 state. Fatal.
	InfiniteStateCycle = "infinite state cycle: %s"

	// DrawOverflow is raised when a vissprite references a sprite number or
	// frame beyond its definition. Fatal in range-checked builds.
	DrawOverflow = "draw overflow: %s"

	// SfxOutOfRange is raised when a requested sfx id falls outside
	// [1, NUMSFX]. Fatal.
	SfxOutOfRange = "sfx out of range: %s"

	// MusicOutOfRange is raised when a requested music id is <= none or
	// >= NUMMUSIC. Fatal.
	MusicOutOfRange = "music out of range: %s"

	// VolumeOutOfRange is raised when a volume argument falls outside
	// [0, 127]. Fatal.
	VolumeOutOfRange = "volume out of range: %s"

	// ChannelExhaustion is raised when no channel is free and no lower
	// priority channel is evictable. Non-fatal: the sfx is silently dropped.
	ChannelExhaustion = "channel exhaustion: %s"
)

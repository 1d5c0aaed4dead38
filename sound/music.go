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

package sound

// GameMission distinguishes the handful of released IWAD lineages whose
// music tables differ (spec §4.F: "Music selection is a pure function of
// (gamemission, gameepisode, gamemap, gamestate)").
type GameMission int

const (
	MissionDoom GameMission = iota
	MissionDoom2
	MissionTNT
	MissionPlutonia
)

// GameState selects between in-level music and the handful of non-level
// states (intermission, finale, title, demo) that play a fixed track
// regardless of map.
type GameState int

const (
	StateLevel GameState = iota
	StateIntermission
	StateFinale
	StateDemoScreen
)

// MusicSelector is a pure function of the four inputs spec §4.F names; it
// never reads or mutates any other engine state. remastered switches
// between the vintage and remastered track tables with one boolean (spec
// §4.F: "hot-swap between vintage and remastered tables is one boolean").
func MusicSelector(mission GameMission, episode, mapnum int, state GameState, remastered bool) int {
	table := vintageMusicTable
	if remastered {
		table = remasteredMusicTable
	}

	switch state {
	case StateIntermission:
		return table.intermission
	case StateFinale:
		return table.finale
	case StateDemoScreen:
		return table.demo
	}

	switch mission {
	case MissionDoom:
		key := [2]int{episode, mapnum}
		if id, ok := table.doom1[key]; ok {
			return id
		}
		return table.fallback
	default:
		if id, ok := table.doom2[mapnum]; ok {
			return id
		}
		return table.fallback
	}
}

type musicTable struct {
	doom1        map[[2]int]int
	doom2        map[int]int
	intermission int
	finale       int
	demo         int
	fallback     int
}

// The concrete id assignments below are small, deterministic placeholder
// tables: the actual WAD-supplied music lump names are a host/DeHackEd
// concern (string_subst, spec §6.1), not something this core package
// invents. What matters for determinism is that the same four inputs
// always select the same id.
var vintageMusicTable = musicTable{
	doom1: map[[2]int]int{
		{1, 1}: 1, {1, 2}: 2, {1, 3}: 3, {1, 4}: 4, {1, 5}: 5,
		{2, 1}: 6, {2, 2}: 7, {2, 3}: 8,
		{3, 1}: 9, {3, 2}: 10,
	},
	doom2:        map[int]int{1: 20, 2: 21, 3: 22, 30: 40},
	intermission: 60, finale: 61, demo: 62, fallback: 1,
}

var remasteredMusicTable = musicTable{
	doom1: map[[2]int]int{
		{1, 1}: 101, {1, 2}: 102, {1, 3}: 103, {1, 4}: 104, {1, 5}: 105,
		{2, 1}: 106, {2, 2}: 107, {2, 3}: 108,
		{3, 1}: 109, {3, 2}: 110,
	},
	doom2:        map[int]int{1: 120, 2: 121, 3: 122, 30: 140},
	intermission: 160, finale: 161, demo: 162, fallback: 101,
}

// MusicDriver is the abstract music collaborator (spec §6.1: register_song/
// play/stop/pause/resume/set_music_volume).
type MusicDriver interface {
	RegisterSong(data []byte) Handle
	Play(h Handle, looping bool)
	Stop(h Handle)
	Pause(h Handle)
	Resume(h Handle)
	SetMusicVolume(v int)
}

// ChangeMusic implements S_ChangeMusic (spec §6.2): stop whatever is
// playing, then play the newly selected track looping or not.
func ChangeMusic(driver MusicDriver, current Handle, next Handle, looping bool) Handle {
	if current != -1 {
		driver.Stop(current)
	}
	driver.Play(next, looping)
	return next
}

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

// Command doomcore is the headless host shell: it owns the things spec §1
// explicitly keeps out of core (WAD I/O, platform video/audio, terminal UI)
// and wires them against the exposed interfaces of spec §6.2. It is not
// part of CORE itself — deleting this command would not change the engine's
// behaviour, only how it is driven.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/doomcore/config"
	"github.com/jetsetilly/doomcore/diagnostics"
	"github.com/jetsetilly/doomcore/finale"
	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/instance"
	"github.com/jetsetilly/doomcore/intermission"
	"github.com/jetsetilly/doomcore/logger"
	"github.com/jetsetilly/doomcore/player"
	"github.com/jetsetilly/doomcore/random"
	"github.com/jetsetilly/doomcore/render"
	"github.com/jetsetilly/doomcore/sound"
	"github.com/jetsetilly/doomcore/thinker"
	"github.com/jetsetilly/doomcore/worldmap"
)

// wallClock adapts time.Now to random.Clock (spec §4.B: streams are seeded
// once at startup from whatever the host considers "now"). A headless
// driver has no frame/scanline position to report, so it folds the
// wall-clock nanosecond count into the Clock field instead.
type wallClock struct{}

func (wallClock) GetCoords() random.Coords {
	return random.Coords{Clock: int(time.Now().UnixNano() % 0xffff)}
}

// world adapts a single loaded Level and the run's game-mode flags to the
// thinker package's movement/simulation collaborator (spec §4.D World
// interface), keeping thinker free of any import on worldmap. This
// headless driver has no blockmap or BSP walk of its own, so BlockingLine
// and LedgeDrop answer with fixed, conservative values rather than really
// consulting the level.
type world struct {
	level           *worldmap.Level
	leveltime       *int
	torqueEnabled   bool
	respawnMonsters bool
}

func (w world) FloorCeiling(x, y fixedpoint.Fixed) (floor, ceiling fixedpoint.Fixed) {
	sec := &w.level.Sectors[0]
	return sec.FloorHeight, sec.CeilingHeight
}

func (w world) TryMove(m *thinker.Mobj, x, y fixedpoint.Fixed) bool {
	bound := fixedpoint.Fixed(256 << fixedpoint.FRACBITS)
	return x > 0 && y > 0 && x < bound && y < bound
}

func (w world) BlockingLine() (isSky bool, ceilingHeight fixedpoint.Fixed) {
	return false, 0
}

func (w world) LedgeDrop(x, y, radius fixedpoint.Fixed) bool {
	return false
}

func (w world) TorqueEnabled() bool { return w.torqueEnabled }

func (w world) RespawnMonsters() bool { return w.respawnMonsters }

func (w world) LevelTime() int { return *w.leveltime }

// soundDriver is a Driver (spec §6.1) that records starts/stops instead of
// touching a platform mixer; the headless host has no audio output.
type soundDriver struct {
	playing map[sound.Handle]int
	next    sound.Handle
}

func newSoundDriver() *soundDriver {
	return &soundDriver{playing: make(map[sound.Handle]int)}
}

func (d *soundDriver) Start(sfxID, channel int, volume, separation, pitch int) sound.Handle {
	d.next++
	d.playing[d.next] = sfxID
	return d.next
}

func (d *soundDriver) Stop(h sound.Handle) {
	delete(d.playing, h)
}

// syntheticLevel builds the smallest possible single-sector room directly,
// bypassing the WAD lump pipeline entirely (worldmap.Load exists for real
// IWAD data; WAD I/O itself is out of scope per spec §1). This gives the
// driver something to walk the BSP and thinker list against.
func syntheticLevel() *worldmap.Level {
	sector := worldmap.Sector{
		FloorHeight:   0,
		CeilingHeight: fixedpoint.Fixed(128 << fixedpoint.FRACBITS),
		FloorPic:      "FLOOR4_8",
		CeilingPic:    "CEIL3_5",
		LightLevel:    160,
		ThingList:     -1,
	}

	lv := &worldmap.Level{
		Vertexes: []worldmap.Vertex{
			{X: 0, Y: 0},
			{X: fixedpoint.Fixed(256 << fixedpoint.FRACBITS), Y: 0},
			{X: fixedpoint.Fixed(256 << fixedpoint.FRACBITS), Y: fixedpoint.Fixed(256 << fixedpoint.FRACBITS)},
			{X: 0, Y: fixedpoint.Fixed(256 << fixedpoint.FRACBITS)},
		},
		Sectors: []worldmap.Sector{sector},
		Subsectors: []worldmap.Subsector{
			{Sector: 0, FirstSeg: 0, NumSegs: 0},
		},
	}
	return lv
}

// syntheticSfxCache builds a one-entry sfx cache directly from a synthetic
// PCM clip, bypassing lump decoding entirely (WAD I/O is out of scope per
// spec §1), so the headless driver's StartSound calls exercise the g711
// compress/decompress round trip from sfxcache.go just as a real cache hit
// would.
func syntheticSfxCache() map[int]sound.CachedSfx {
	samples := make([]int16, 512)
	for i := range samples {
		samples[i] = int16(i%64) * 256
	}
	return map[int]sound.CachedSfx{
		1: sound.Compress(sound.PCM{SampleRate: 11025, Samples: samples}),
	}
}

func main() {
	var (
		tics        = flag.Int("tics", 350, "number of simulation tics to run before exiting")
		dashAddr    = flag.String("dashboard", "", "address to serve the statsview HTTP dashboard on (empty disables it)")
		interactive = flag.Bool("interactive", false, "show a full-screen terminal dashboard instead of line-by-line status output")
		verbose     = flag.Bool("verbose", false, "enable Require-permission log entries")
	)
	flag.Parse()

	logger.Clear()
	logCentral := logger.NewLogger(2000)
	logCentral.SetVerbose(*verbose)

	cfg := config.Defaults()
	ins := instance.NewInstance(wallClock{}, cfg)
	ins.Normalise()

	lv := syntheticLevel()
	leveltime := 0
	w := world{level: lv, leveltime: &leveltime, torqueEnabled: true, respawnMonsters: false}

	thinkers := thinker.NewList()
	p := player.NewPlayer()

	// The headless driver spawns nothing mid-run, so playerMobj's Spawner
	// is left nil; Think's nil-guard on the nightmare-respawn branch makes
	// that a safe no-op rather than a panic.
	playerMobj := &thinker.Mobj{
		X:        fixedpoint.Fixed(128 << fixedpoint.FRACBITS),
		Y:        fixedpoint.Fixed(128 << fixedpoint.FRACBITS),
		Z:        0,
		Radius:   fixedpoint.Fixed(16 << fixedpoint.FRACBITS),
		Height:   fixedpoint.Fixed(56 << fixedpoint.FRACBITS),
		States:   []thinker.State{{Sprite: 0, Frame: 0, Tics: -1, NextState: thinker.StateNull}},
		Flags:    thinker.FlagSolid | thinker.FlagShootable,
		World:    w,
		Gameplay: ins.Gameplay,
		Cosmetic: ins.Cosmetic,
	}
	p.MobjIndex = thinker.AddMobj(thinkers, playerMobj)

	renderer := render.NewRenderer()
	fb := render.NewFramebuffer(render.ScreenWidth, render.ScreenHeight)

	table := sound.NewTable(cfg.SoundChannels)
	mixer := &sound.Mixer{Table: table, Driver: newSoundDriver(), Cache: syntheticSfxCache()}

	imach := &intermission.Machine{}
	fmach := &finale.Machine{}

	var dash *diagnostics.Dashboard
	if *dashAddr != "" {
		dash = diagnostics.NewDashboard(func() diagnostics.Counters {
			return diagnostics.Counters{
				Thinkers:       thinkers.Len(),
				ActiveChannels: countActive(table),
				LevelTime:      0,
			}
		})
		dash.Start(*dashAddr)
	}

	pose := render.ActorPose{X: playerMobj.X, Y: playerMobj.Y, Z: playerMobj.Z, Angle: playerMobj.Angle}
	vp := render.SetupViewpoint(pose, render.LocalView{}, 0, false, false, true, 0, 0, 0)

	width := terminalWidth()

	var lastFrame *render.Frame
	runTic := func(tic int) bool {
		if tic >= *tics {
			return false
		}
		leveltime = tic

		thinkers.Tick()
		renderer.TickFuzz()

		imach.Tick(p.AttackDown, p.UseDown)
		_ = fmach.Tick(nil)

		lastFrame = renderer.RenderPlayerView(fb, lv, vp, func(sectorIdx int) {})

		if tic%35 == 0 {
			h, err := mixer.StartSound(&sound.SfxDef{ID: 1, Priority: 64, Volume: 100}, sound.Origin{IsListener: true}, 0, 0, 0, ins.Cosmetic)
			if err != nil {
				logCentral.Logf("sound", "start failed: %v", err)
			}
			_ = h
		}

		return true
	}

	if *interactive {
		tdash, err := newTcellDashboard()
		if err != nil {
			fmt.Fprintf(os.Stderr, "interactive dashboard unavailable: %v\n", err)
		} else {
			defer tdash.close()
			runWithTcellDashboard(tdash, func(tic int) liveStatus {
				visPlanes := 0
				if lastFrame != nil {
					visPlanes = len(lastFrame.Planes.Planes())
				}
				return liveStatus{
					Tic:            tic,
					Thinkers:       thinkers.Len(),
					ActiveChannels: countActive(table),
					GameplayIndex:  ins.Gameplay.Index(),
					CosmeticIndex:  ins.Cosmetic.Index(),
					VisPlanes:      visPlanes,
				}
			}, runTic)
			logCentral.Write(os.Stdout)
			return
		}
	}

	fmt.Printf("doomcore headless driver: %d tics, terminal width %d\n", *tics, width)

	runLoop := func() {
		for tic := 0; runTic(tic); tic++ {
			if dash != nil && tic%35 == 0 {
				c := dash.Sample()
				fmt.Printf("tic %4d  thinkers=%d channels=%d\n", tic, c.Thinkers, c.ActiveChannels)
			}
		}
	}

	// Raw mode disables line buffering/echo on stdin for the duration of the
	// run, so a future keyboard-driven pause/quit can react immediately
	// rather than waiting on a newline; restored automatically on return.
	if err := withRawStdin(runLoop); err != nil {
		runLoop()
	}

	logCentral.Write(os.Stdout)
}

func countActive(t *sound.Table) int {
	n := 0
	for _, c := range t.Channels() {
		if c.InUse {
			n++
		}
	}
	return n
}

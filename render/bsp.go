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

package render

import (
	"github.com/jetsetilly/doomcore/fixedpoint"
	"github.com/jetsetilly/doomcore/worldmap"
)

// Frame collects everything one BSP walk produces: the drawsegs and
// visplanes that the later column/span/sprite passes consume (spec §2:
// "BSP walk producing drawsegs+visplanes+vissprites"). Vissprites are
// collected separately by the caller's SpriteAdder callback, invoked from
// Subsector below, since sprite projection needs the player/mobj list
// rather than just the level geometry.
type Frame struct {
	Level *worldmap.Level
	VP    Viewpoint
	VS    *ViewSize

	Solid   *SolidSegs
	Planes  *VisplaneArena
	DrawSegs []DrawSeg

	// ValidCount increments once per frame and is compared against each
	// sector's last-touched stamp so SpriteAdder runs at most once per
	// sector per frame (spec §4.G step 4, §4.G BSP walk).
	ValidCount int

	// SpriteAdder is called exactly once per visited sector, per frame,
	// letting the caller (which owns the mobj/thinker list) project that
	// sector's actors into vissprites without this package depending on
	// thinker or player.
	SpriteAdder func(sectorIdx int)

	sectorStamp []int
}

// NewFrame starts a fresh BSP walk for one rendered view.
func NewFrame(level *worldmap.Level, vp Viewpoint, vs *ViewSize, validCount int) *Frame {
	f := &Frame{
		Level:      level,
		VP:         vp,
		VS:         vs,
		Solid:      NewSolidSegs(vs.Width),
		Planes:     NewVisplaneArena(vs.Width, vp.Z),
		ValidCount: validCount,
		sectorStamp: make([]int, len(level.Sectors)),
	}
	for i := range f.sectorStamp {
		f.sectorStamp[i] = -1
	}
	return f
}

// Walk performs the recursive BSP descent from the level's root node,
// clipping against the 1D solid-column list as it goes (spec §4.G: "BSP
// walk").
func (f *Frame) Walk() {
	if len(f.Level.Nodes) == 0 {
		// degenerate single-subsector map: render it directly.
		if len(f.Level.Subsectors) > 0 {
			f.Subsector(0)
		}
		return
	}
	f.walkNode(f.Level.RootNode())
}

func (f *Frame) walkNode(idx int) {
	node := f.Level.Nodes[idx]
	side := fixedpoint.PointOnSide(f.VP.X, f.VP.Y, node.Partition)

	f.walkChild(node, side)

	if f.Solid.FullyClosed(f.VS.Width) {
		return
	}

	other := side ^ 1
	if f.checkBBox(node.BBox[other]) {
		f.walkChild(node, other)
	}
}

func (f *Frame) walkChild(node worldmap.Node, side int) {
	if node.IsLeaf[side] {
		f.Subsector(node.Children[side])
		return
	}
	f.walkNode(node.Children[side])
}

// checkBBox reports whether box might still contribute visible pixels,
// i.e. whether any of its screen-projected column range is not yet solid
// (spec §4.G: "R_CheckBBox against the solid-column list").
func (f *Frame) checkBBox(box [4]fixedpoint.Fixed) bool {
	top, bottom, left, right := box[0], box[1], box[2], box[3]

	// Degenerate/behind-viewer boxes are conservatively treated as
	// visible; the seg-level clip will reject them properly.
	if f.VP.X >= left && f.VP.X <= right && f.VP.Y >= bottom && f.VP.Y <= top {
		return true
	}

	corners := [4][2]fixedpoint.Fixed{
		{left, top}, {right, top}, {left, bottom}, {right, bottom},
	}
	minX, maxX := f.VS.Width, 0
	any := false
	for _, c := range corners {
		ang := fixedpoint.PointToAngle2(f.VP.X, f.VP.Y, c[0], c[1])
		x := f.angleToX(ang - f.VP.Angle)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		any = true
	}
	if !any {
		return true
	}
	if minX < 0 {
		minX = 0
	}
	if maxX >= f.VS.Width {
		maxX = f.VS.Width - 1
	}
	if minX > maxX {
		return false
	}
	return !f.Solid.Covered(minX, maxX)
}

// angleToX projects a view-relative angle onto a screen column using the
// precomputed XToViewAngle table, reversed via the ANGLETOSKYSHIFT-scale
// bucket table built in fov.go.
func (f *Frame) angleToX(viewAngle fixedpoint.Angle) int {
	bucketed := int(uint32(viewAngle) >> ANGLETOSKYSHIFT)
	if x, ok := f.VS.ScreenAngleToX[bucketed]; ok {
		return x
	}
	// outside the FOV table entirely: clamp to whichever edge the angle
	// faces, matching the original's off-screen saturation.
	if int32(viewAngle) >= 0 {
		return 0
	}
	return f.VS.Width - 1
}

// Subsector implements R_Subsector: add this leaf's sector's sprites once
// per frame, find/create its floor/ceiling visplanes, and walk its segs
// (spec §4.G).
func (f *Frame) Subsector(idx int) {
	ss := f.Level.Subsectors[idx]
	sec := f.Level.Sectors[ss.Sector]

	if f.sectorStamp[ss.Sector] != f.ValidCount {
		f.sectorStamp[ss.Sector] = f.ValidCount
		if f.SpriteAdder != nil {
			f.SpriteAdder(ss.Sector)
		}
	}

	var floorPlane, ceilPlane *Visplane
	if sec.FloorHeight < f.VP.Z || sec.FloorPic == SkyFlat {
		floorPlane = f.Planes.FindPlane(sec.FloorHeight, sec.FloorPic, sec.LightLevel)
	}
	if sec.CeilingHeight > f.VP.Z || sec.CeilingPic == SkyFlat {
		ceilPlane = f.Planes.FindPlane(sec.CeilingHeight, sec.CeilingPic, sec.LightLevel)
	}

	for i := 0; i < ss.NumSegs; i++ {
		f.AddLine(ss.FirstSeg+i, floorPlane, ceilPlane)
	}
}

// AddLine clips seg against the solid-column list and, for the visible
// sub-range(s), emits a DrawSeg and extends the floor/ceiling planes (spec
// §4.G: "R_AddLine... clips against the 1D solid-column list and emits
// drawsegs for visible portions").
func (f *Frame) AddLine(segIdx int, floorPlane, ceilPlane *Visplane) {
	seg := f.Level.Segs[segIdx]
	v1 := f.Level.Vertexes[seg.V1]
	v2 := f.Level.Vertexes[seg.V2]

	angle1 := fixedpoint.PointToAngle2(f.VP.X, f.VP.Y, v1.X, v1.Y)
	angle2 := fixedpoint.PointToAngle2(f.VP.X, f.VP.Y, v2.X, v2.Y)

	span := angle1 - angle2
	if span >= fixedpoint.ANG180 {
		// seg faces away from the viewer entirely.
		return
	}

	x1 := f.angleToX(angle1 - f.VP.Angle)
	x2 := f.angleToX(angle2 - f.VP.Angle)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 > x2 || x2 < 0 || x1 >= f.VS.Width {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 >= f.VS.Width {
		x2 = f.VS.Width - 1
	}

	solid := seg.BackSector == worldmap.NoIndex
	ld := f.Level.Linedefs[seg.Linedef]
	maskedMid := false
	if !solid && seg.BackSector != worldmap.NoIndex {
		backSec := f.Level.Sectors[seg.BackSector]
		if backSec.CeilingHeight <= backSec.FloorHeight {
			solid = true
		}
		side := ld.Side[seg.Side]
		_ = side
		maskedMid = !solid
	}

	var spans [][2]int
	if solid {
		spans = f.Solid.ClipSolidWallSegment(x1, x2).Spans
	} else {
		spans = f.Solid.ClipPassWallSegment(x1, x2).Spans
	}

	for _, s := range spans {
		ds := DrawSeg{
			Seg: segIdx, X1: s[0], X2: s[1],
			SilhouetteBottom: solid, SilhouetteTop: solid,
			MaskedMidTexture: maskedMid,
		}
		f.DrawSegs = append(f.DrawSegs, ds)

		if floorPlane != nil {
			for x := s[0]; x <= s[1]; x++ {
				floorPlane.MarkColumn(x, 0, f.VS.Height-1)
			}
			floorPlane = f.Planes.CheckPlane(floorPlane, s[0], s[1])
		}
		if ceilPlane != nil {
			for x := s[0]; x <= s[1]; x++ {
				ceilPlane.MarkColumn(x, 0, f.VS.Height-1)
			}
			ceilPlane = f.Planes.CheckPlane(ceilPlane, s[0], s[1])
		}
	}
}

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

// Package render implements the software rasterizer: viewpoint setup, the
// BSP walk, the solid-column clip list, the visplane hash table, the column
// and span rasterizer variants, sky mapping, flat swirl, and sprite
// projection/masked drawing (spec §3.5, §4.G, §4.H).
//
// The original exposes dc_*/ds_* as module globals so the inner pixel loops
// avoid argument shuffling (spec §9). This package keeps that shape but
// groups the globals into ColumnCtx/SpanCtx structs passed by reference,
// which is the redesign spec §9 calls out explicitly.
package render

// ScreenWidth and ScreenHeight are the classic 320x200 framebuffer
// dimensions assumed throughout the rasterizer (spec §8 scenario S4).
const (
	ScreenWidth  = 320
	ScreenHeight = 200
)

// Pixel is a single framebuffer entry: a palette index, exactly as the
// original engine's 8-bit indexed mode produces. render/palette.go converts
// a Pixel to a host color.RGBA for blitting; the rasterizer itself never
// touches color.RGBA.
type Pixel uint8

// Framebuffer is the typed pixel buffer the renderer writes into (spec §1:
// "the renderer writes into a typed pixel buffer"). It owns no palette and
// performs no host video calls.
type Framebuffer struct {
	Width, Height int
	Pix           []Pixel
}

// NewFramebuffer allocates a zeroed Framebuffer of the given dimensions.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Width: w, Height: h, Pix: make([]Pixel, w*h)}
}

// At returns the pixel at (x,y). No bounds checking: every write site in
// this package computes x/y from values already clipped against the
// screen, matching the original's lack of per-pixel bounds checks in its
// hottest loops.
func (f *Framebuffer) At(x, y int) Pixel {
	return f.Pix[y*f.Width+x]
}

// Set writes the pixel at (x,y).
func (f *Framebuffer) Set(x, y int, p Pixel) {
	f.Pix[y*f.Width+x] = p
}

// Column is a sampled texture/flat/sprite column: a vertical strip of
// palette indices plus its logical height, used by both the wall column
// drawer and the masked sprite drawer.
type Column struct {
	Pixels []Pixel
	Height int // logical texture height; may differ from len(Pixels) for patch columns with posts, but this engine stores fully composited columns
}

// PowerOfTwo reports whether h is a power of two, which selects the mask
// path over the modulo path when stepping through a Column (spec §4.H).
func PowerOfTwo(h int) bool {
	return h > 0 && h&(h-1) == 0
}

// ANGLETOSKYSHIFT converts a full view angle into the index used by the sky
// column mapper (spec §4.H).
const ANGLETOSKYSHIFT = 22

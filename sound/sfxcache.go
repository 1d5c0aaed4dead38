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

// sfxcache.go decodes the lump bytes behind an sfx/music definition into
// PCM the abstract mixer can step through for pitch variance, and μ-law
// compresses the rarely-triggered ones while they sit in the cache tier —
// mirroring the zone allocator's PU_CACHE eviction spirit (spec §5) without
// this package depending on any zone-allocator type itself.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/zaf/g711"
)

// PCM is a decoded sound, linear 16-bit samples at the format's sample
// rate, ready for pitch-stepped playback by the abstract mixer.
type PCM struct {
	SampleRate int
	Samples    []int16
}

// DecodeDMXWav decodes a WAV-wrapped DMX sfx lump (the cartridgeloader-
// equivalent host is expected to have already unwrapped the 8-byte DMX
// header into a standard RIFF/WAV container before handing this bytes
// slice over) into linear PCM using go-audio/wav (spec: sfx/music decode,
// DOMAIN STACK).
func DecodeDMXWav(data []byte) (PCM, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return PCM{}, fmt.Errorf("sfx lump is not a valid WAV container")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, err
	}
	return PCM{SampleRate: buf.Format.SampleRate, Samples: intBufferTo16(buf)}, nil
}

func intBufferTo16(buf *audio.IntBuffer) []int16 {
	out := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		out[i] = int16(s)
	}
	return out
}

// MusicTrack is a registered remastered-music lump, decoded far enough to
// report duration/frame-rate for the music-selection state machine's
// hot-swap table (spec: music decode, DOMAIN STACK).
type MusicTrack struct {
	SampleRate int
	Length     int64 // PCM byte length, per go-mp3's Length()
}

// DecodeMP3 opens a registered MP3 music lump using go-mp3, reporting its
// sample rate and total decoded length without fully decoding into
// memory: register_song only needs duration, not raw samples (spec §6.1
// Sfx/music driver: "register_song(bytes)->handle").
func DecodeMP3(data []byte) (MusicTrack, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return MusicTrack{}, err
	}
	return MusicTrack{SampleRate: dec.SampleRate(), Length: dec.Length()}, nil
}

// CachedSfx holds a sound in its compact, μ-law compressed representation
// while resident in the cache tier, decompressing back to linear PCM only
// on Start (spec: g711, DOMAIN STACK — "decoded back to linear PCM on
// Start").
type CachedSfx struct {
	sampleRate int
	ulaw       []byte
}

// Compress converts decoded PCM into its cached μ-law form. g711's codec
// operates on little-endian 16-bit linear PCM packed as bytes, so the
// samples are packed/unpacked around the library call.
func Compress(p PCM) CachedSfx {
	lpcm := make([]byte, len(p.Samples)*2)
	for i, s := range p.Samples {
		binary.LittleEndian.PutUint16(lpcm[i*2:], uint16(s))
	}
	return CachedSfx{sampleRate: p.SampleRate, ulaw: g711.EncodeUlaw(lpcm)}
}

// Decompress restores linear PCM from the cached form, called exactly once
// per S_StartSound that actually plays this sfx (spec §4.F).
func (c CachedSfx) Decompress() PCM {
	lpcm := g711.DecodeUlaw(c.ulaw)
	samples := make([]int16, len(lpcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(lpcm[i*2:]))
	}
	return PCM{SampleRate: c.sampleRate, Samples: samples}
}

// Bytes reports the cached size, used by diagnostics to approximate
// PU_CACHE pressure without this package depending on the zone allocator.
func (c CachedSfx) Bytes() int {
	return len(c.ulaw)
}

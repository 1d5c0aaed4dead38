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

package sound_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/doomcore/internal/assert"
	"github.com/jetsetilly/doomcore/sound"
)

// buildMinimalWav constructs a standard RIFF/WAVE PCM container around the
// given 16-bit mono samples, the shape DecodeDMXWav expects once a host has
// already stripped the 8-byte DMX lump header.
func buildMinimalWav(sampleRate int, samples []int16) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		binary.Write(&data, binary.LittleEndian, s)
	}

	blockAlign := 2
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestDecodeDMXWavRoundTripsSampleRateAndSamples(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32000, -32000}
	raw := buildMinimalWav(11025, samples)

	pcm, err := sound.DecodeDMXWav(raw)
	assert.ExpectSuccess(t, err)
	assert.Equate(t, pcm.SampleRate, 11025)
	assert.Equate(t, len(pcm.Samples), len(samples))
	for i, s := range samples {
		assert.Equate(t, pcm.Samples[i], s)
	}
}

func TestDecodeDMXWavRejectsNonWavData(t *testing.T) {
	_, err := sound.DecodeDMXWav([]byte("not a wav file at all"))
	assert.ExpectFailure(t, err)
}

func TestDecodeMP3RejectsGarbageData(t *testing.T) {
	_, err := sound.DecodeMP3([]byte{0x00, 0x01, 0x02, 0x03})
	assert.ExpectFailure(t, err)
}

func TestCompressDecompressRoundTripsWithinQuantizationTolerance(t *testing.T) {
	pcm := sound.PCM{SampleRate: 11025, Samples: []int16{0, 8000, -8000, 16000, -16000}}
	cached := sound.Compress(pcm)

	restored := cached.Decompress()
	assert.Equate(t, restored.SampleRate, pcm.SampleRate)
	assert.Equate(t, len(restored.Samples), len(pcm.Samples))
	for i, want := range pcm.Samples {
		assert.ExpectApproximate(t, float64(restored.Samples[i]), float64(want), 300)
	}
}

func TestCachedSfxBytesReflectsCompressedSize(t *testing.T) {
	pcm := sound.PCM{SampleRate: 11025, Samples: make([]int16, 100)}
	cached := sound.Compress(pcm)
	assert.Equate(t, cached.Bytes(), 100)
}

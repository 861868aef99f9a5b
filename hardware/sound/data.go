// This file is part of Gotic.
//
// Gotic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotic.  If not, see <https://www.gnu.org/licenses/>.

package sound

import (
	"github.com/gotic/gotic/bitpack"
	"github.com/gotic/gotic/cartridge"
)

// Sound constants.
const (
	Channels = 4

	MaxVolume = 15

	DefaultTempo   = 150
	DefaultSpeed   = 6
	NotesPerBeat   = 4
	NotesPerMinute = 60 / NotesPerBeat * 60

	Notes   = 12
	Octaves = 8

	SfxTicks        = 30
	sfxDefaultSpeed = 0

	// number of 4bit values in a waveform
	WaveValues = 32

	// synthesis clock in ticks per second
	ClockRate = 255 << 13

	envelopeFreqScale = 2

	MusicFrames  = 16
	PatternRows  = 64
	patternStart = 1

	noteStop  = 1
	noteStart = 4

	pitchDelta = 128
)

// frequencies of every note in Hz, from C0
var noteFreqs = [...]int{
	0x10, 0x11, 0x12, 0x13, 0x15, 0x16, 0x17, 0x18, 0x1a, 0x1c, 0x1d, 0x1f,
	0x21, 0x23, 0x25, 0x27, 0x29, 0x2c, 0x2e, 0x31, 0x34, 0x37, 0x3a, 0x3e,
	0x41, 0x45, 0x49, 0x4e, 0x52, 0x57, 0x5c, 0x62, 0x68, 0x6e, 0x75, 0x7b,
	0x83, 0x8b, 0x93, 0x9c, 0xa5, 0xaf, 0xb9, 0xc4, 0xd0, 0xdc, 0xe9, 0xf7,
	0x106, 0x115, 0x126, 0x137, 0x14a, 0x15d, 0x172, 0x188, 0x19f, 0x1b8, 0x1d2, 0x1ee,
	0x20b, 0x22a, 0x24b, 0x26e, 0x293, 0x2ba, 0x2e4, 0x310, 0x33f, 0x370, 0x3a4, 0x3dc,
	0x417, 0x455, 0x497, 0x4dd, 0x527, 0x575, 0x5c8, 0x620, 0x67d, 0x6e0, 0x749, 0x7b8,
	0x82d, 0x8a9, 0x92d, 0x9b9, 0xa4d, 0xaea, 0xb90, 0xc40, 0xcfa, 0xdc0, 0xe91, 0xf6f,
	0x105a, 0x1153, 0x125b, 0x1372, 0x149a, 0x15d4, 0x1720, 0x1880,
}

// sign extend a value of n bits
func signed(v uint8, bits uint) int {
	shift := 8 - bits
	return int(int8(v<<shift) >> shift)
}

// index of the loops and positions of a sound effect
const (
	loopWave = iota
	loopVolume
	loopChord
	loopPitch
	numLoops
)

// Sample is a view of a sound effect in RAM.
type Sample []byte

// the loops follow the per tick data
const (
	sampleLoops    = SfxTicks * 2
	sampleSettings = sampleLoops + numLoops
)

func (s Sample) wave(tick int) int {
	return int(s[tick*2] & 0x0f)
}

func (s Sample) volume(tick int) int {
	return int(s[tick*2] >> 4)
}

func (s Sample) chord(tick int) int {
	return signed(s[tick*2+1]&0x0f, 4)
}

func (s Sample) pitch(tick int) int {
	return signed(s[tick*2+1]>>4, 4)
}

func (s Sample) loop(l int) (start int, size int) {
	b := s[sampleLoops+l]
	return int(b & 0x0f), int(b >> 4)
}

// Octave of the sound effect's default note.
func (s Sample) Octave() int {
	return int(s[sampleSettings] & 0x07)
}

func (s Sample) pitch16x() bool {
	return s[sampleSettings]&0x08 == 0x08
}

// Speed of the sound effect. A value between -4 and 3.
func (s Sample) Speed() int {
	return signed((s[sampleSettings]>>4)&0x07, 3)
}

func (s Sample) reverse() bool {
	return s[sampleSettings]&0x80 == 0x80
}

// Note of the sound effect's default note. A value between 0 and 11.
func (s Sample) Note() int {
	return int(s[sampleSettings+1] & 0x0f)
}

// track is a view of a music track in RAM.
type track []byte

const (
	trackPatternBits = 6
	trackFrameSize   = 3
)

// pattern of the channel in the frame. a value of zero means no pattern
func (t track) patternID(frame int, channel int) int {
	if frame < 0 || frame >= MusicFrames {
		return 0
	}
	var v int
	for b := range trackFrameSize {
		v |= int(t[frame*trackFrameSize+b]) << (8 * b)
	}
	return (v >> (channel * trackPatternBits)) & 0x3f
}

func (t track) tempo() int {
	return int(int8(t[MusicFrames*trackFrameSize]))
}

func (t track) rows() int {
	return int(t[MusicFrames*trackFrameSize+1])
}

func (t track) speed() int {
	return int(int8(t[MusicFrames*trackFrameSize+2]))
}

// list of row commands
const (
	cmdEmpty = iota
	cmdVolume
	cmdChord
	cmdJump
	cmdSlide
	cmdPitch
	cmdVibrato
	cmdDelay
)

// row is a view of a pattern row in RAM.
type row []byte

const rowSize = 3

func (r row) note() int {
	return int(r[0] & 0x0f)
}

func (r row) param1() int {
	return int(r[0] >> 4)
}

func (r row) param2() int {
	return int(r[1] & 0x0f)
}

func (r row) command() int {
	return int(r[1]>>4) & 0x07
}

func (r row) sfx() int {
	return int(r[1]>>7)<<5 | int(r[2]&0x1f)
}

func (r row) octave() int {
	return int(r[2] >> 5)
}

func (r row) param2val() int {
	return r.param1()<<4 | r.param2()
}

// register is a view of a sound register in RAM.
type register []byte

func (r register) freq() int {
	return int(r[0]) | int(r[1]&0x0f)<<8
}

func (r register) volume() int {
	return int(r[1] >> 4)
}

func (r register) set(freq int, volume int) {
	r[0] = uint8(freq)
	r[1] = uint8(freq>>8)&0x0f | uint8(volume)<<4
}

func (r register) waveform() []byte {
	return r[2 : 2+cartridge.WaveformSize]
}

func (r register) sample(phase int) int {
	return int(bitpack.Peek4(r.waveform(), phase))
}

// a waveform where every byte is the same and is either all zeroes or all
// ones produces noise rather than a tone
func (r register) noise() bool {
	w := r.waveform()
	if w[0] != 0x00 && w[0] != 0xff {
		return false
	}
	for _, b := range w[1:] {
		if b != w[0] {
			return false
		}
	}
	return true
}

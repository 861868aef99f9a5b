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

// Package cartridge defines the persistent cartridge structure and the
// chunked binary format used to store it.
//
// A cartridge has up to eight banks. Each bank is a complete set of tiles,
// sprites, map, sound, music, palette, flags and a boot screen image. There
// is a single code blob for the whole cartridge.
//
// The binary format is a sequence of chunks. Every chunk starts with a four
// byte header (see Header) and is followed by the payload. Unknown chunks are
// skipped and a malformed stream never causes an error. The cartridge is
// simply loaded as far as the data allows.
package cartridge

// Number of banks in a cartridge and the size of one bank of code.
const (
	NumBanks = 8
	BankBits = 3
	BankSize = 65536
	CodeSize = BankSize * NumBanks
)

// Display geometry. The boot screen image is a packed 4bpp copy of the
// screen.
const (
	ScreenWidth  = 240
	ScreenHeight = 136
)

// Sizes of the sections in a bank.
const (
	TileSize      = 32
	NumTiles      = 256
	TilesSize     = TileSize * NumTiles
	MapWidth      = ScreenWidth
	MapHeight     = ScreenHeight
	MapSize       = MapWidth * MapHeight
	PaletteColors = 16
	PaletteSize   = PaletteColors * 3
	FlagsSize     = NumTiles * 2
	ScreenSize    = ScreenWidth * ScreenHeight / 2

	NumWaveforms  = 16
	WaveformSize  = 16
	WaveformsSize = NumWaveforms * WaveformSize
	NumSfx        = 64
	SampleSize    = 66
	SamplesSize   = NumSfx * SampleSize
	SfxSize       = WaveformsSize + SamplesSize

	NumPatterns  = 60
	PatternRows  = 64
	PatternSize  = PatternRows * 3
	PatternsSize = NumPatterns * PatternSize
	NumTracks    = 8
	TrackFrames  = 16
	TrackSize    = TrackFrames*3 + 3
	TracksSize   = NumTracks * TrackSize
	MusicSize    = PatternsSize + TracksSize
)

// Palette of a bank. The screen palette is used for the screen plane and
// the overlay palette for drawing done in the overline hook.
type Palette struct {
	Screen  [PaletteSize]byte
	Overlay [PaletteSize]byte
}

// Bank is one set of cartridge content. Fields are laid out exactly as the
// corresponding sections of RAM so that a section can be synchronised with a
// single copy.
type Bank struct {
	Tiles   [TilesSize]byte
	Sprites [TilesSize]byte
	Map     [MapSize]byte

	// waveforms followed by sfx samples
	Sfx [SfxSize]byte

	// patterns followed by tracks
	Music [MusicSize]byte

	Palette Palette
	Flags   [FlagsSize]byte
	Screen  [ScreenSize]byte
}

// Waveforms returns the waveform part of the sfx section.
func (b *Bank) Waveforms() []byte {
	return b.Sfx[:WaveformsSize]
}

// Samples returns the sfx sample part of the sfx section.
func (b *Bank) Samples() []byte {
	return b.Sfx[WaveformsSize:]
}

// Patterns returns the pattern part of the music section.
func (b *Bank) Patterns() []byte {
	return b.Music[:PatternsSize]
}

// Tracks returns the track part of the music section.
func (b *Bank) Tracks() []byte {
	return b.Music[PatternsSize:]
}

// Cartridge is the persistent authoring unit.
type Cartridge struct {
	Banks [NumBanks]Bank

	// Code is the program for the whole cartridge
	Code string
}

// NewCartridge returns an empty cartridge with the factory palette and
// waveforms in the first bank. This is what a new cartridge looks like before
// anything is added to it.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Banks[0].applyDefault()
	return cart
}

func (b *Bank) applyDefault() {
	copy(b.Palette.Screen[:], Sweetie16[:])
	copy(b.Waveforms(), DefaultWaveforms[:])
}

// isDefault returns true if the palette and waveforms of the bank are
// exactly the factory content.
func (b *Bank) isDefault() bool {
	if b.Palette.Screen != Sweetie16 {
		return false
	}
	if !empty(b.Palette.Overlay[:]) {
		return false
	}
	w := b.Waveforms()
	for i := range w {
		var v byte
		if i < len(DefaultWaveforms) {
			v = DefaultWaveforms[i]
		}
		if w[i] != v {
			return false
		}
	}
	return true
}

func empty(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

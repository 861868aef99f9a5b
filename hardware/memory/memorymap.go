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

package memory

import "github.com/gotic/gotic/cartridge"

// Area identifies a region of RAM.
type Area int

// List of RAM areas in address order.
const (
	Screen Area = iota
	Palette
	PaletteMap
	Vars
	BlitSegment
	Tiles
	Sprites
	Map
	Gamepads
	Mouse
	Keyboard
	SfxPos
	SoundRegisters
	Waveforms
	Samples
	Patterns
	Tracks
	MusicState
	StereoVolume
	Persistent
	Flags
	Font
	Free
	Undefined
)

type areaInfo struct {
	label  string
	origin int
	size   int
}

// Size of RAM in bytes.
const Size = 0x18000

// sizes of areas that have no counterpart in the cartridge package
const (
	PaletteMapSize     = 8
	VarsSize           = 4
	GamepadsSize       = 4
	MouseSize          = 4
	KeyboardSize       = 4
	SfxPosSize         = 4 * 4
	SoundRegisterSize  = 18
	SoundRegistersSize = 4 * SoundRegisterSize
	MusicStateSize     = 4
	StereoVolumeSize   = 4
	PersistentSize     = 1024
	FontSize           = 256 * 8
)

var areas = [...]areaInfo{
	Screen:         {"screen", 0x0000, cartridge.ScreenSize},
	Palette:        {"palette", 0x3fc0, cartridge.PaletteSize},
	PaletteMap:     {"palette map", 0x3ff0, PaletteMapSize},
	Vars:           {"vars", 0x3ff8, VarsSize},
	BlitSegment:    {"blit segment", 0x3ffc, 4},
	Tiles:          {"tiles", 0x4000, cartridge.TilesSize},
	Sprites:        {"sprites", 0x6000, cartridge.TilesSize},
	Map:            {"map", 0x8000, cartridge.MapSize},
	Gamepads:       {"gamepads", 0xff80, GamepadsSize},
	Mouse:          {"mouse", 0xff84, MouseSize},
	Keyboard:       {"keyboard", 0xff88, KeyboardSize},
	SfxPos:         {"sfx positions", 0xff8c, SfxPosSize},
	SoundRegisters: {"sound registers", 0xff9c, SoundRegistersSize},
	Waveforms:      {"waveforms", 0xffe4, cartridge.WaveformsSize},
	Samples:        {"sfx", 0x100e4, cartridge.SamplesSize},
	Patterns:       {"music patterns", 0x11164, cartridge.PatternsSize},
	Tracks:         {"music tracks", 0x13e64, cartridge.TracksSize},
	MusicState:     {"music state", 0x13ffc, MusicStateSize},
	StereoVolume:   {"stereo volume", 0x14000, StereoVolumeSize},
	Persistent:     {"persistent memory", 0x14004, PersistentSize},
	Flags:          {"sprite flags", 0x14404, cartridge.FlagsSize},
	Font:           {"font", 0x14604, FontSize},
	Free:           {"free", 0x14e04, Size - 0x14e04},
	Undefined:      {"undefined", 0, 0},
}

// Addresses of the individual bytes in the Vars area.
const (
	AddrBorder  = 0x3ff8
	AddrScrollX = 0x3ff9
	AddrScrollY = 0x3ffa
	AddrCursor  = 0x3ffb
)

func (a Area) String() string {
	if a < 0 || a > Undefined {
		return areas[Undefined].label
	}
	return areas[a].label
}

// Origin returns the first address of the area.
func (a Area) Origin() int {
	return areas[a].origin
}

// Size returns the number of bytes in the area.
func (a Area) Size() int {
	return areas[a].size
}

// Memtop returns the last address of the area.
func (a Area) Memtop() int {
	return areas[a].origin + areas[a].size - 1
}

// MapAddress returns the area that the address falls in.
func MapAddress(address int) Area {
	for a := Screen; a < Undefined; a++ {
		if address >= a.Origin() && address <= a.Memtop() {
			return a
		}
	}
	return Undefined
}

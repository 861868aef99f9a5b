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

import (
	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/curated"
)

// SyncMask is a bit mask of the sections that can be synchronised with the
// cartridge.
type SyncMask uint32

// List of synchronisable sections.
const (
	SyncTiles SyncMask = 1 << iota
	SyncSprites
	SyncMap
	SyncSfx
	SyncMusic
	SyncPalette
	SyncFlags
	SyncScreen

	SyncAll = SyncTiles | SyncSprites | SyncMap | SyncSfx | SyncMusic | SyncPalette | SyncFlags | SyncScreen
)

// Direction of a synchronisation.
type Direction int

// List of valid Direction values.
const (
	CartToRAM Direction = iota
	RAMToCart
)

func (d Direction) String() string {
	if d == RAMToCart {
		return "ram to cart"
	}
	return "cart to ram"
}

// the RAM area and cartridge bank field of every section. the order matches
// the bit order of SyncMask
var sections = [...]struct {
	mask SyncMask
	ram  Area
	bank func(b *cartridge.Bank) []byte
}{
	{SyncTiles, Tiles, func(b *cartridge.Bank) []byte { return b.Tiles[:] }},
	{SyncSprites, Sprites, func(b *cartridge.Bank) []byte { return b.Sprites[:] }},
	{SyncMap, Map, func(b *cartridge.Bank) []byte { return b.Map[:] }},
	{SyncSfx, Waveforms, func(b *cartridge.Bank) []byte { return b.Sfx[:] }},
	{SyncMusic, Patterns, func(b *cartridge.Bank) []byte { return b.Music[:] }},
	{SyncPalette, Palette, func(b *cartridge.Bank) []byte { return b.Palette.Screen[:] }},
	{SyncFlags, Flags, func(b *cartridge.Bank) []byte { return b.Flags[:] }},
	{SyncScreen, Screen, func(b *cartridge.Bank) []byte { return b.Screen[:] }},
}

// Sentinel error patterns.
const (
	InvalidBank = "memory: invalid bank (%d)"
)

// Sync copies sections between the cartridge bank and RAM. Only sections
// in the mask that have not already been synchronised this tick are copied.
// A mask of zero means every section. The overlay palette is copied with the
// screen palette.
func (mem *Memory) Sync(mask SyncMask, bank int, dir Direction) error {
	if bank < 0 || bank >= cartridge.NumBanks {
		return curated.Errorf(InvalidBank, bank)
	}

	if mask == 0 {
		mask = SyncAll
	}
	mask &= SyncAll &^ mem.synced
	if mask == 0 {
		return nil
	}

	b := &mem.Cart.Banks[bank]

	for _, s := range sections {
		if mask&s.mask == 0 {
			continue
		}

		// a section in RAM is the same size as its bank counterpart but may
		// span several consecutive areas (sfx and music)
		c := s.bank(b)
		r := mem.ram[s.ram.Origin() : s.ram.Origin()+len(c)]

		if dir == RAMToCart {
			copy(c, r)
		} else {
			copy(r, c)
		}
	}

	if mask&SyncPalette == SyncPalette {
		if dir == RAMToCart {
			b.Palette.Overlay = mem.Overlay
		} else {
			mem.Overlay = b.Palette.Overlay
		}
	}

	mem.synced |= mask

	return nil
}

// ResetTickSyncMask forgets which sections have been synchronised. Called at
// the start of every tick.
func (mem *Memory) ResetTickSyncMask() {
	mem.synced = 0
}

// Synced returns the mask of sections synchronised since the last reset of
// the sync mask.
func (mem *Memory) Synced() SyncMask {
	return mem.synced
}

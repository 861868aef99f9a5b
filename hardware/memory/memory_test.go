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

package memory_test

import (
	"strings"
	"testing"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/test"
)

func TestMemoryMap(t *testing.T) {
	// areas are contiguous from the screen up to the end of the font
	for a := memory.Screen; a < memory.Free; a++ {
		test.ExpectEquality(t, a.Memtop()+1, (a + 1).Origin(), a)
	}
	test.ExpectEquality(t, memory.Free.Memtop(), memory.Size-1)

	test.ExpectEquality(t, memory.MapAddress(0x3fc0), memory.Palette)
	test.ExpectEquality(t, memory.MapAddress(0x13e64), memory.Tracks)
	test.ExpectEquality(t, memory.MapAddress(0x14604), memory.Font)
	test.ExpectEquality(t, memory.MapAddress(memory.Size), memory.Undefined)
	test.ExpectEquality(t, memory.MapAddress(-1), memory.Undefined)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewMemory()

	mem.Poke(0x100, 0xab)
	test.ExpectEquality(t, mem.Peek(0x100), 0xab)
	test.ExpectEquality(t, mem.Peek4(0x200), 0x0b)
	test.ExpectEquality(t, mem.Peek4(0x201), 0x0a)

	mem.Poke4(0x201, 0x03)
	test.ExpectEquality(t, mem.Peek(0x100), 0x3b)

	// out of range is silent
	mem.Poke(memory.Size, 0xff)
	test.ExpectEquality(t, mem.Peek(memory.Size), 0)
	test.ExpectEquality(t, mem.Peek(-1), 0)
}

func TestCopyFill(t *testing.T) {
	mem := memory.NewMemory()

	mem.Fill(0x10, 0x55, 4)
	test.ExpectEquality(t, mem.Peek(0x0f), 0)
	test.ExpectEquality(t, mem.Peek(0x10), 0x55)
	test.ExpectEquality(t, mem.Peek(0x13), 0x55)
	test.ExpectEquality(t, mem.Peek(0x14), 0)

	// overlapping copy
	mem.Poke(0x14, 0x66)
	mem.Copy(0x12, 0x10, 5)
	test.ExpectEquality(t, mem.Peek(0x15), 0x55)
	test.ExpectEquality(t, mem.Peek(0x16), 0x66)

	// clipped at the end of RAM
	mem.Fill(memory.Size-2, 0x77, 100)
	test.ExpectEquality(t, mem.Peek(memory.Size-1), 0x77)
}

func TestSync(t *testing.T) {
	mem := memory.NewMemory()
	mem.Cart = cartridge.NewCartridge()
	mem.Cart.Banks[1].Map[0] = 0x42
	mem.Cart.Banks[1].Palette.Overlay[0] = 0x99

	test.ExpectSuccess(t, mem.Sync(memory.SyncMap, 1, memory.CartToRAM))
	test.ExpectEquality(t, mem.Peek(memory.Map.Origin()), 0x42)
	test.ExpectEquality(t, mem.Synced(), memory.SyncMap)

	// a second sync of the same section in the same tick does nothing
	mem.Poke(memory.Map.Origin(), 0x01)
	test.ExpectSuccess(t, mem.Sync(memory.SyncMap, 1, memory.RAMToCart))
	test.ExpectEquality(t, mem.Cart.Banks[1].Map[0], 0x42)

	mem.ResetTickSyncMask()
	test.ExpectSuccess(t, mem.Sync(memory.SyncMap, 1, memory.RAMToCart))
	test.ExpectEquality(t, mem.Cart.Banks[1].Map[0], 0x01)

	// palette brings the overlay palette with it
	mem.ResetTickSyncMask()
	test.ExpectSuccess(t, mem.Sync(memory.SyncPalette, 1, memory.CartToRAM))
	test.ExpectEquality(t, mem.Overlay[0], 0x99)

	// zero mask is everything
	mem.ResetTickSyncMask()
	test.ExpectSuccess(t, mem.Sync(0, 0, memory.CartToRAM))
	test.ExpectEquality(t, mem.Synced(), memory.SyncAll)
	test.ExpectEquality(t, mem.Peek(memory.Palette.Origin()), cartridge.Sweetie16[0])

	// the sfx section spans waveforms and samples
	mem.ResetTickSyncMask()
	mem.Poke(memory.Samples.Memtop(), 0x12)
	test.ExpectSuccess(t, mem.Sync(memory.SyncSfx, 0, memory.RAMToCart))
	test.ExpectEquality(t, mem.Cart.Banks[0].Sfx[cartridge.SfxSize-1], 0x12)
}

func TestSyncBadBank(t *testing.T) {
	mem := memory.NewMemory()
	err := mem.Sync(0, cartridge.NumBanks, memory.CartToRAM)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidBank))
	test.ExpectEquality(t, mem.Synced(), 0)
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	mem.Poke(memory.Gamepads.Origin()+1, 0xfe)
	s := mem.Dump(memory.Gamepads)
	test.ExpectSuccess(t, strings.HasPrefix(s, "gamepads\n"))
	test.ExpectSuccess(t, strings.Contains(s, "0ff80 | 00 fe 00 00"))
}

func TestPaletteMap(t *testing.T) {
	mem := memory.NewMemory()
	mem.ResetPaletteMap()
	for c := range 16 {
		test.ExpectEquality(t, mem.Peek4(memory.PaletteMap.Origin()*2+c), uint8(c))
	}
}

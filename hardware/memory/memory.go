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
	"fmt"
	"strings"

	"github.com/gotic/gotic/bitpack"
	"github.com/gotic/gotic/cartridge"
)

// Memory is the RAM image and the cartridge it is synchronised with.
type Memory struct {
	ram [Size]byte

	// the cartridge currently attached. never nil
	Cart *cartridge.Cartridge

	// the live overlay palette. it has no place in the RAM arena but is
	// synchronised with the cartridge alongside the screen palette
	Overlay [cartridge.PaletteSize]byte

	// sections synchronised since the last call to ResetTickSyncMask()
	synced SyncMask
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		Cart: &cartridge.Cartridge{},
	}
}

// Clear zeroes the entire RAM arena.
func (mem *Memory) Clear() {
	mem.ram = [Size]byte{}
	mem.Overlay = [cartridge.PaletteSize]byte{}
	mem.synced = 0
}

// Peek returns the byte at the address. Addresses outside of RAM return
// zero.
func (mem *Memory) Peek(address int) uint8 {
	if address < 0 || address >= Size {
		return 0
	}
	return mem.ram[address]
}

// Poke writes the byte at the address. Addresses outside of RAM are
// ignored.
func (mem *Memory) Poke(address int, value uint8) {
	if address < 0 || address >= Size {
		return
	}
	mem.ram[address] = value
}

// Peek4 returns the nibble at the nibble address. Nibble address n is the
// low nibble of byte n/2 when n is even and the high nibble when odd.
func (mem *Memory) Peek4(index int) uint8 {
	if index < 0 || index >= Size*2 {
		return 0
	}
	return bitpack.Peek4(mem.ram[:], index)
}

// Poke4 writes the nibble at the nibble address.
func (mem *Memory) Poke4(index int, value uint8) {
	if index < 0 || index >= Size*2 {
		return
	}
	bitpack.Poke4(mem.ram[:], index, value)
}

// Area returns the slice of RAM for the area. The slice aliases RAM.
func (mem *Memory) Area(a Area) []byte {
	return mem.ram[a.Origin() : a.Origin()+a.Size()]
}

// Slice returns the slice of RAM from the address for size bytes, clipped to
// the end of RAM. The slice aliases RAM.
func (mem *Memory) Slice(address int, size int) []byte {
	if address < 0 || address >= Size || size <= 0 {
		return nil
	}
	end := min(address+size, Size)
	return mem.ram[address:end]
}

// Copy copies size bytes from src to dst. Both ranges are clipped to RAM.
// Overlapping ranges are handled as memmove does.
func (mem *Memory) Copy(dst int, src int, size int) {
	if size <= 0 || dst < 0 || src < 0 || dst >= Size || src >= Size {
		return
	}
	size = min(size, Size-dst, Size-src)
	copy(mem.ram[dst:dst+size], mem.ram[src:src+size])
}

// Fill sets size bytes from the address to value. The range is clipped to
// RAM.
func (mem *Memory) Fill(address int, value uint8, size int) {
	s := mem.Slice(address, size)
	for i := range s {
		s[i] = value
	}
}

// the identity palette map. colour n maps to colour n
var defaultPaletteMap = [PaletteMapSize]byte{0x10, 0x32, 0x54, 0x76, 0x98, 0xba, 0xdc, 0xfe}

// ResetPaletteMap sets the palette map so that every colour maps to itself.
func (mem *Memory) ResetPaletteMap() {
	copy(mem.Area(PaletteMap), defaultPaletteMap[:])
}

// Dump returns a hex dump of the area.
func (mem *Memory) Dump(a Area) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", a))
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	data := mem.Area(a)
	for i := 0; i < len(data); i += 16 {
		s.WriteString(fmt.Sprintf("%05x |", a.Origin()+i))
		for j := i; j < i+16 && j < len(data); j++ {
			s.WriteString(fmt.Sprintf(" %02x", data[j]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

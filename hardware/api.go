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

package hardware

import (
	"encoding/binary"
	"time"

	"github.com/gotic/gotic/bitpack"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/script"
)

// Sentinel error patterns.
const (
	InvalidBits    = "console: bits must be 1, 2, 4 or 8 (%d)"
	InvalidAddress = "console: invalid address (%#x)"
	InvalidMemcpy  = "console: invalid memcpy parameters (dst %#x, src %#x, size %d)"
	InvalidMemset  = "console: invalid memset parameters (dst %#x, size %d)"
	InvalidPmem    = "console: invalid persistent memory index (%d)"
)

// PmemSlots is the number of 32bit values in persistent memory.
const PmemSlots = memory.PersistentSize / 4

// the console implements the interface used by running programs
var _ script.API = (*Console)(nil)

// Peek implements the script.API interface.
func (c *Console) Peek(address int, bits int) (uint8, error) {
	ram := c.mem.Slice(0, memory.Size)

	switch bits {
	case 1:
		if address < 0 || address >= memory.Size*8 {
			return 0, curated.Errorf(InvalidAddress, address)
		}
		return bitpack.Peek1(ram, address), nil
	case 2:
		if address < 0 || address >= memory.Size*4 {
			return 0, curated.Errorf(InvalidAddress, address)
		}
		return bitpack.Peek2(ram, address), nil
	case 4:
		if address < 0 || address >= memory.Size*2 {
			return 0, curated.Errorf(InvalidAddress, address)
		}
		return bitpack.Peek4(ram, address), nil
	case 8:
		if address < 0 || address >= memory.Size {
			return 0, curated.Errorf(InvalidAddress, address)
		}
		return ram[address], nil
	}

	return 0, curated.Errorf(InvalidBits, bits)
}

// Poke implements the script.API interface.
func (c *Console) Poke(address int, value uint8, bits int) error {
	ram := c.mem.Slice(0, memory.Size)

	switch bits {
	case 1:
		if address < 0 || address >= memory.Size*8 {
			return curated.Errorf(InvalidAddress, address)
		}
		bitpack.Poke1(ram, address, value)
	case 2:
		if address < 0 || address >= memory.Size*4 {
			return curated.Errorf(InvalidAddress, address)
		}
		bitpack.Poke2(ram, address, value)
	case 4:
		if address < 0 || address >= memory.Size*2 {
			return curated.Errorf(InvalidAddress, address)
		}
		bitpack.Poke4(ram, address, value)
	case 8:
		if address < 0 || address >= memory.Size {
			return curated.Errorf(InvalidAddress, address)
		}
		ram[address] = value
	default:
		return curated.Errorf(InvalidBits, bits)
	}

	return nil
}

// Memcpy implements the script.API interface.
func (c *Console) Memcpy(dst int, src int, size int) error {
	if size < 0 || dst < 0 || src < 0 || dst+size > memory.Size || src+size > memory.Size {
		return curated.Errorf(InvalidMemcpy, dst, src, size)
	}
	c.mem.Copy(dst, src, size)
	return nil
}

// Memset implements the script.API interface.
func (c *Console) Memset(dst int, value uint8, size int) error {
	if size < 0 || dst < 0 || dst+size > memory.Size {
		return curated.Errorf(InvalidMemset, dst, size)
	}
	c.mem.Fill(dst, value, size)
	return nil
}

// Pmem implements the script.API interface.
func (c *Console) Pmem(index int, value uint32, set bool) (uint32, error) {
	if index < 0 || index >= PmemSlots {
		return 0, curated.Errorf(InvalidPmem, index)
	}

	slot := c.mem.Area(memory.Persistent)[index*4 : index*4+4]
	v := binary.LittleEndian.Uint32(slot)
	if set {
		binary.LittleEndian.PutUint32(slot, value)
	}
	return v, nil
}

// Sync implements the script.API interface.
func (c *Console) Sync(mask memory.SyncMask, bank int, toCart bool) error {
	dir := memory.CartToRAM
	if toCart {
		dir = memory.RAMToCart
	}
	return c.mem.Sync(mask, bank, dir)
}

// Time implements the script.API interface.
func (c *Console) Time() float64 {
	freq := c.host.Frequency()
	if freq == 0 {
		return 0
	}
	return float64(c.host.Counter()-c.start) * 1000 / float64(freq)
}

// Tstamp implements the script.API interface.
func (c *Console) Tstamp() int64 {
	return time.Now().Unix()
}

// Trace implements the script.API interface.
func (c *Console) Trace(msg string, color uint8) {
	c.host.Trace(msg, color)
}

// Exit implements the script.API interface.
func (c *Console) Exit() {
	c.host.Exit()
}

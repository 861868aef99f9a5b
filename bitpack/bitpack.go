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

// Package bitpack reads and writes packed sub-byte elements in a byte slice.
// Elements are 4, 2 or 1 bits wide and are numbered from the least
// significant bits of the first byte. Element 0 of a 4 bit slice is the low
// nibble of byte 0, element 1 the high nibble.
//
// There is no bounds checking beyond that of the Go runtime. The caller
// guarantees that the element index is within the slice.
package bitpack

// Peek4 returns element index of a slice of 4 bit elements.
func Peek4(b []byte, index int) uint8 {
	return (b[index>>1] >> ((index & 1) << 2)) & 0x0f
}

// Poke4 sets element index of a slice of 4 bit elements. The value is masked
// to 4 bits.
func Poke4(b []byte, index int, value uint8) {
	shift := uint((index & 1) << 2)
	p := &b[index>>1]
	*p = (*p &^ (0x0f << shift)) | ((value & 0x0f) << shift)
}

// Peek2 returns element index of a slice of 2 bit elements.
func Peek2(b []byte, index int) uint8 {
	return (b[index>>2] >> ((index & 3) << 1)) & 0x03
}

// Poke2 sets element index of a slice of 2 bit elements. The value is masked
// to 2 bits.
func Poke2(b []byte, index int, value uint8) {
	shift := uint((index & 3) << 1)
	p := &b[index>>2]
	*p = (*p &^ (0x03 << shift)) | ((value & 0x03) << shift)
}

// Peek1 returns element index of a slice of single bit elements.
func Peek1(b []byte, index int) uint8 {
	return (b[index>>3] >> (index & 7)) & 0x01
}

// Poke1 sets element index of a slice of single bit elements. The value is
// masked to 1 bit.
func Poke1(b []byte, index int, value uint8) {
	shift := uint(index & 7)
	p := &b[index>>3]
	*p = (*p &^ (0x01 << shift)) | ((value & 0x01) << shift)
}

// Peeker and Poker are the function types of the accessors. Used by types
// that select the element width at run time.
type Peeker func(b []byte, index int) uint8
type Poker func(b []byte, index int, value uint8)

// Width returns the accessor pair for the number of bits per element. Width
// panics for any value other than 1, 2 or 4.
func Width(bits int) (Peeker, Poker) {
	switch bits {
	case 4:
		return Peek4, Poke4
	case 2:
		return Peek2, Poke2
	case 1:
		return Peek1, Poke1
	}
	panic("bitpack: unsupported element width")
}

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

package bitpack_test

import (
	"testing"

	"github.com/gotic/gotic/bitpack"
	"github.com/gotic/gotic/test"
)

func TestNibbleOrder(t *testing.T) {
	b := []byte{0x00}
	bitpack.Poke4(b, 0, 0x0a)
	bitpack.Poke4(b, 1, 0x05)
	test.ExpectEquality(t, b[0], uint8(0x5a))

	b = []byte{0x00}
	bitpack.Poke1(b, 7, 1)
	test.ExpectEquality(t, b[0], uint8(0x80))

	b = []byte{0x00}
	bitpack.Poke2(b, 1, 3)
	test.ExpectEquality(t, b[0], uint8(0x0c))
}

func TestMasking(t *testing.T) {
	b := []byte{0x00, 0x00}
	bitpack.Poke4(b, 2, 0xff)
	test.ExpectEquality(t, b[1], uint8(0x0f))
	test.ExpectEquality(t, bitpack.Peek4(b, 2), uint8(0x0f))
	test.ExpectEquality(t, bitpack.Peek4(b, 3), uint8(0x00))

	bitpack.Poke2(b, 0, 0x06)
	test.ExpectEquality(t, bitpack.Peek2(b, 0), uint8(0x02))

	bitpack.Poke1(b, 1, 0x02)
	test.ExpectEquality(t, bitpack.Peek1(b, 1), uint8(0x00))
}

// poking every element with every value must leave all other elements
// unchanged
func TestIsolation(t *testing.T) {
	for _, bits := range []int{1, 2, 4} {
		peek, poke := bitpack.Width(bits)
		elements := 4 * 8 / bits
		maxValue := 1<<bits - 1

		for i := 0; i < elements; i++ {
			for v := 0; v <= maxValue+1; v++ {
				b := []byte{0xa5, 0x3c, 0xf0, 0x0f}
				before := make([]uint8, elements)
				for j := range before {
					before[j] = peek(b, j)
				}

				poke(b, i, uint8(v))
				test.ExpectEquality(t, peek(b, i), uint8(v&maxValue), bits, i, v)

				for j := 0; j < elements; j++ {
					if j != i {
						test.ExpectEquality(t, peek(b, j), before[j], bits, i, j)
					}
				}
			}
		}
	}
}

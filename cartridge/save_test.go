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

package cartridge_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/test"
)

func TestRoundTrip(t *testing.T) {
	cart := cartridge.NewCartridge()
	cart.Code = "-- script: lua\nfunction TIC() cls(1) end\n"
	cart.Banks[0].Tiles[31] = 0x12
	cart.Banks[0].Sprites[0] = 0x34
	cart.Banks[0].Map[cartridge.MapSize-1] = 0x56
	cart.Banks[0].Flags[10] = 0x01
	cart.Banks[0].Samples()[0] = 0x78
	cart.Banks[0].Patterns()[5] = 0x9a
	cart.Banks[0].Tracks()[50] = 0xbc
	cart.Banks[0].Screen[100] = 0xde

	// a second bank with a custom palette and overlay
	cart.Banks[3].Palette.Screen[0] = 0xff
	cart.Banks[3].Palette.Overlay[47] = 0x01
	cart.Banks[3].Waveforms()[255] = 0x0f

	data, err := cartridge.Save(cart)
	test.DemandSuccess(t, err)

	loaded := cartridge.Load(data)
	test.ExpectSuccess(t, *loaded == *cart)
}

// a stream in the form produced by Save() is reproduced exactly
func TestByteIdentical(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkTiles, 0, []byte{1, 2, 3})
	s.chunk(cartridge.ChunkMap, 0, []byte{0, 0, 7})
	s.chunk(cartridge.ChunkCode, 0, []byte("function TIC() end"))
	s.chunk(cartridge.ChunkFlags, 0, []byte{9})
	s.chunk(cartridge.ChunkSamples, 0, []byte{0x10, 0x20})
	s.chunk(cartridge.ChunkMusic, 0, []byte{0x01})
	s.chunk(cartridge.ChunkPatterns, 0, []byte{0x41, 0x00, 0x20})
	s.chunk(cartridge.ChunkDefault, 0, nil)
	s.chunk(cartridge.ChunkSprites, 1, []byte{4})
	s.chunk(cartridge.ChunkWaveform, 1, []byte{0xff})
	s.chunk(cartridge.ChunkPalette, 1, []byte{0x80, 0x40})
	s.chunk(cartridge.ChunkScreen, 1, []byte{0x55})

	data, err := cartridge.Save(cartridge.Load(s.Bytes()))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(data, s.Bytes()))
}

func TestLargeCode(t *testing.T) {
	cart := &cartridge.Cartridge{}
	cart.Code = strings.Repeat("a", cartridge.BankSize) + strings.Repeat("b", 100)

	data, err := cartridge.Save(cart)
	test.DemandSuccess(t, err)

	// first chunk is a full bank of code in bank 1
	h := cartridge.DecodeHeader(data)
	test.ExpectEquality(t, h.Type, cartridge.ChunkCode)
	test.ExpectEquality(t, h.Bank, 1)
	test.ExpectEquality(t, h.Size, 0)

	loaded := cartridge.Load(data)
	test.ExpectEquality(t, loaded.Code, cart.Code)
}

func TestCodeTooLarge(t *testing.T) {
	cart := &cartridge.Cartridge{}
	cart.Code = strings.Repeat("a", cartridge.BankSize*7+1)
	_, err := cartridge.Save(cart)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.CodeTooLarge))
}

func TestEmptyCartridge(t *testing.T) {
	data, err := cartridge.Save(&cartridge.Cartridge{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 0)
}

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
	"compress/zlib"
	"strings"
	"testing"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/test"
)

// builds a chunk stream for testing
type stream struct {
	bytes.Buffer
}

func (s *stream) chunk(t cartridge.ChunkType, bank int, payload []byte) *stream {
	h := cartridge.Header{Type: t, Bank: bank, Size: len(payload)}
	b := h.Encode()
	s.Write(b[:])
	s.Write(payload)
	return s
}

func TestDefaultOnly(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkDefault, 0, nil)
	cart := cartridge.Load(s.Bytes())

	test.ExpectEquality(t, cart.Banks[0].Palette.Screen, cartridge.Sweetie16)
	test.ExpectSuccess(t, bytes.Equal(cart.Banks[0].Waveforms()[:48], cartridge.DefaultWaveforms[:]))

	// everything else is zero
	expected := &cartridge.Cartridge{}
	copy(expected.Banks[0].Palette.Screen[:], cartridge.Sweetie16[:])
	copy(expected.Banks[0].Waveforms(), cartridge.DefaultWaveforms[:])
	test.ExpectSuccess(t, *cart == *expected)
}

func TestDefaultWinsOverPalette(t *testing.T) {
	palette := bytes.Repeat([]byte{0x11}, cartridge.PaletteSize)

	// palette before default
	s := &stream{}
	s.chunk(cartridge.ChunkPalette, 1, palette)
	s.chunk(cartridge.ChunkDefault, 1, nil)
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Banks[1].Palette.Screen, cartridge.Sweetie16)

	// and after
	s = &stream{}
	s.chunk(cartridge.ChunkDefault, 1, nil)
	s.chunk(cartridge.ChunkPalette, 1, palette)
	cart = cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Banks[1].Palette.Screen, cartridge.Sweetie16)
}

func TestWaveformOverridesDefault(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkWaveform, 0, []byte{0x12, 0x34})
	s.chunk(cartridge.ChunkDefault, 0, nil)
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Banks[0].Waveforms()[0], byte(0x12))
	test.ExpectEquality(t, cart.Banks[0].Waveforms()[1], byte(0x34))
	test.ExpectEquality(t, cart.Banks[0].Waveforms()[2], cartridge.DefaultWaveforms[2])
}

func TestCodeBankZero(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkCode, 0, []byte("function TIC() end"))
	for b := 1; b < cartridge.NumBanks; b++ {
		s.chunk(cartridge.ChunkCode, b, []byte{0})
	}
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Code, "function TIC() end")
}

func TestCodeBankZeroIsAuthoritative(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkCode, 1, []byte("-- bank one"))
	s.chunk(cartridge.ChunkCode, 0, []byte("-- bank zero"))
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Code, "-- bank zero")
}

func TestCodeConcatenation(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkCode, 2, []byte("bbb"))
	s.chunk(cartridge.ChunkCode, 0, []byte{0})
	s.chunk(cartridge.ChunkCode, 1, []byte("aaa"))
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Code, "aaabbb")
}

func TestFullBankCode(t *testing.T) {
	code := strings.Repeat("x", cartridge.BankSize)

	s := &stream{}
	h := cartridge.Header{Type: cartridge.ChunkCode, Size: 0}
	b := h.Encode()
	s.Write(b[:])
	s.WriteString(code)
	s.chunk(cartridge.ChunkTiles, 0, []byte{0xaa})

	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, len(cart.Code), cartridge.BankSize)

	// the tiles chunk following the full bank of code is found
	test.ExpectEquality(t, cart.Banks[0].Tiles[0], byte(0xaa))
}

func TestSkipUnknown(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkCoverDep, 0, []byte{1, 2, 3})
	s.chunk(cartridge.ChunkType(30), 3, []byte{4, 5})
	s.chunk(cartridge.ChunkMap, 3, []byte{6})
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Banks[3].Map[0], byte(6))
}

func TestTruncated(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkFlags, 0, []byte{1, 2, 3, 4})
	s.chunk(cartridge.ChunkSprites, 0, []byte{5, 6, 7, 8})
	data := s.Bytes()

	// short payload in the final chunk
	cart := cartridge.Load(data[:len(data)-2])
	test.ExpectEquality(t, cart.Banks[0].Flags[3], byte(4))
	test.ExpectEquality(t, cart.Banks[0].Sprites[1], byte(6))
	test.ExpectEquality(t, cart.Banks[0].Sprites[2], byte(0))

	// short header
	cart = cartridge.Load(data[:10])
	test.ExpectEquality(t, cart.Banks[0].Flags[3], byte(4))
	test.ExpectEquality(t, cart.Banks[0].Sprites[0], byte(0))

	// nothing at all
	cart = cartridge.Load(nil)
	test.ExpectEquality(t, cart.Code, "")
}

func TestOversizedPayload(t *testing.T) {
	s := &stream{}
	s.chunk(cartridge.ChunkPalette, 0, bytes.Repeat([]byte{0x22}, cartridge.PaletteSize*2+10))
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Banks[0].Palette.Overlay[cartridge.PaletteSize-1], byte(0x22))
}

func TestCompressedCode(t *testing.T) {
	var z bytes.Buffer
	w := zlib.NewWriter(&z)
	w.Write([]byte("-- compressed"))
	w.Close()

	s := &stream{}
	s.chunk(cartridge.ChunkCodeZip, 0, z.Bytes())
	cart := cartridge.Load(s.Bytes())
	test.ExpectEquality(t, cart.Code, "-- compressed")
}

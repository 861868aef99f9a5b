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

package cartridge

import (
	"bytes"

	"github.com/gotic/gotic/curated"
)

// Sentinel error patterns returned by Save().
const (
	CodeTooLarge = "cartridge: code too large (%d bytes)"
)

// number of banks available to code that does not fit in a single bank. bank
// zero is left without code so that Load() concatenates the others.
const maxCodeBanks = NumBanks - 1

// the payload with trailing zero bytes removed
func trim(b []byte) []byte {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return b[:n]
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) chunk(t ChunkType, bank int, payload []byte) {
	h := Header{Type: t, Bank: bank, Size: len(payload)}
	if t == ChunkCode && len(payload) == BankSize {
		h.Size = 0
	}
	hdr := h.Encode()
	e.buf.Write(hdr[:])
	e.buf.Write(payload)
}

// section chunks are only written if they have content
func (e *encoder) section(t ChunkType, bank int, data ...[]byte) {
	var payload []byte
	if len(data) == 1 {
		payload = trim(data[0])
	} else {
		var b []byte
		for _, d := range data {
			b = append(b, d...)
		}
		payload = trim(b)
	}
	if len(payload) > 0 {
		e.chunk(t, bank, payload)
	}
}

// split code into the pieces stored in each bank
func splitCode(code string) ([NumBanks]string, error) {
	var pieces [NumBanks]string

	if len(code) <= BankSize {
		pieces[0] = code
		return pieces, nil
	}

	if len(code) > maxCodeBanks*BankSize {
		return pieces, curated.Errorf(CodeTooLarge, len(code))
	}

	for b := 1; len(code) > 0; b++ {
		n := min(len(code), BankSize)
		pieces[b] = code[:n]
		code = code[n:]
	}

	return pieces, nil
}

// Save encodes the cartridge in the binary chunk format. Chunks are written
// bank by bank in order of chunk type. Sections with no content are omitted
// and trailing zero bytes are trimmed from every payload. A bank whose
// palette and waveforms are exactly the factory content is written with a
// DEFAULT chunk in place of the palette and waveform chunks.
func Save(cart *Cartridge) ([]byte, error) {
	code, err := splitCode(cart.Code)
	if err != nil {
		return nil, err
	}

	e := &encoder{}

	for b := range cart.Banks {
		bank := &cart.Banks[b]
		isDefault := bank.isDefault()

		e.section(ChunkTiles, b, bank.Tiles[:])
		e.section(ChunkSprites, b, bank.Sprites[:])
		e.section(ChunkMap, b, bank.Map[:])
		if code[b] != "" {
			e.chunk(ChunkCode, b, []byte(code[b]))
		}
		e.section(ChunkFlags, b, bank.Flags[:])
		e.section(ChunkSamples, b, bank.Samples())
		if !isDefault {
			e.section(ChunkWaveform, b, bank.Waveforms())
			e.section(ChunkPalette, b, bank.Palette.Screen[:], bank.Palette.Overlay[:])
		}
		e.section(ChunkMusic, b, bank.Tracks())
		e.section(ChunkPatterns, b, bank.Patterns())
		if isDefault {
			e.chunk(ChunkDefault, b, nil)
		}
		e.section(ChunkScreen, b, bank.Screen[:])
	}

	return e.buf.Bytes(), nil
}

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
	"compress/zlib"
	"io"

	"github.com/gotic/gotic/logger"
)

// chunk is a header and the payload that follows it. The payload may be
// shorter than the header says if the stream was truncated.
type chunk struct {
	Header
	payload []byte
}

// scan calls f for every chunk in data. Scanning stops at the end of the
// data or when a chunk header or payload runs past the end.
func scan(data []byte, f func(c chunk)) {
	for len(data) >= HeaderSize {
		h := DecodeHeader(data)
		data = data[HeaderSize:]

		n := h.PayloadSize()
		truncated := n > len(data)
		if truncated {
			n = len(data)
		}

		f(chunk{Header: h, payload: data[:n]})

		if truncated {
			return
		}
		data = data[n:]
	}
}

// copy payload into the destination slices, one after the other. copying
// stops when the payload or the destinations are exhausted.
func load(payload []byte, dest ...[]byte) {
	for _, d := range dest {
		n := copy(d, payload)
		payload = payload[n:]
	}
}

// code payloads are NUL terminated strings
func codeString(payload []byte) string {
	if i := bytes.IndexByte(payload, 0); i >= 0 {
		payload = payload[:i]
	}
	return string(payload)
}

// Load creates a new cartridge from the binary chunk format. Load never
// fails. Unknown and deprecated chunks are skipped and a truncated stream
// results in a partially loaded cartridge.
//
// The data is scanned twice. The first pass loads palettes and the factory
// default content. A DEFAULT chunk takes precedence over a PALETTE chunk for
// the same bank regardless of which appears first. The second pass loads
// everything else.
//
// Code is loaded from bank zero. If the code in bank zero is empty the code
// chunks of every bank are concatenated in bank order.
func Load(data []byte) *Cartridge {
	cart := &Cartridge{}

	var defaults [NumBanks]bool

	scan(data, func(c chunk) {
		switch c.Type {
		case ChunkPalette:
			bank := &cart.Banks[c.Bank]
			load(c.payload, bank.Palette.Screen[:], bank.Palette.Overlay[:])
		case ChunkDefault:
			defaults[c.Bank] = true
		}
	})

	for b := range defaults {
		if defaults[b] {
			cart.Banks[b].applyDefault()
		}
	}

	var code [NumBanks]string

	scan(data, func(c chunk) {
		bank := &cart.Banks[c.Bank]

		switch c.Type {
		case ChunkTiles:
			load(c.payload, bank.Tiles[:])
		case ChunkSprites:
			load(c.payload, bank.Sprites[:])
		case ChunkMap:
			load(c.payload, bank.Map[:])
		case ChunkSamples:
			load(c.payload, bank.Samples())
		case ChunkWaveform:
			load(c.payload, bank.Waveforms())
		case ChunkMusic:
			load(c.payload, bank.Tracks())
		case ChunkPatterns:
			load(c.payload, bank.Patterns())
		case ChunkFlags:
			load(c.payload, bank.Flags[:])
		case ChunkScreen:
			load(c.payload, bank.Screen[:])
		case ChunkCode:
			code[c.Bank] = codeString(c.payload)
		case ChunkCodeZip:
			s, err := inflate(c.payload)
			if err != nil {
				logger.Logf(logger.Allow, "cartridge", "compressed code in bank %d: %v", c.Bank, err)
				return
			}
			code[c.Bank] = s
		case ChunkPalette, ChunkDefault:
			// loaded in the first pass
		case ChunkDummy, ChunkCoverDep, ChunkTemp2, ChunkTemp3, ChunkTemp4, ChunkPatternsDep:
		default:
			logger.Logf(logger.Allow, "cartridge", "skipping %s chunk in bank %d", c.Type, c.Bank)
		}
	})

	cart.Code = code[0]
	if cart.Code == "" {
		var s bytes.Buffer
		for _, c := range code {
			s.WriteString(c)
		}
		cart.Code = s.String()
	}

	if len(cart.Code) > CodeSize {
		cart.Code = cart.Code[:CodeSize]
	}

	return cart
}

// the payload of a compressed code chunk is a zlib stream
func inflate(payload []byte) (string, error) {
	r, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer r.Close()

	b, err := io.ReadAll(io.LimitReader(r, BankSize))
	if err != nil {
		return "", err
	}
	return codeString(b), nil
}

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

import "fmt"

// ChunkType identifies the payload of a chunk.
type ChunkType uint8

// List of chunk types. The deprecated and temporary types are parsed but
// ignored.
const (
	ChunkDummy ChunkType = iota
	ChunkTiles
	ChunkSprites
	ChunkCoverDep
	ChunkMap
	ChunkCode
	ChunkFlags
	ChunkTemp2
	ChunkTemp3
	ChunkSamples
	ChunkWaveform
	ChunkTemp4
	ChunkPalette
	ChunkPatternsDep
	ChunkMusic
	ChunkPatterns
	ChunkCodeZip
	ChunkDefault
	ChunkScreen
)

func (t ChunkType) String() string {
	switch t {
	case ChunkDummy:
		return "dummy"
	case ChunkTiles:
		return "tiles"
	case ChunkSprites:
		return "sprites"
	case ChunkCoverDep:
		return "cover (deprecated)"
	case ChunkMap:
		return "map"
	case ChunkCode:
		return "code"
	case ChunkFlags:
		return "flags"
	case ChunkSamples:
		return "samples"
	case ChunkWaveform:
		return "waveform"
	case ChunkPalette:
		return "palette"
	case ChunkPatternsDep:
		return "patterns (deprecated)"
	case ChunkMusic:
		return "music"
	case ChunkPatterns:
		return "patterns"
	case ChunkCodeZip:
		return "code (zip)"
	case ChunkDefault:
		return "default"
	case ChunkScreen:
		return "screen"
	}
	return fmt.Sprintf("unknown (%d)", uint8(t))
}

// HeaderSize is the number of bytes in an encoded chunk header.
const HeaderSize = 4

// Header is the decoded form of a chunk header. In the encoded form the
// fields are packed into 32 bits, least significant first:
//
//	type:5 bank:3 size:16 reserved:8
type Header struct {
	Type     ChunkType
	Bank     int
	Size     int
	Reserved uint8
}

// field widths of the encoded header
const (
	typeBits = 5
	sizeBits = 16
)

// DecodeHeader decodes the first HeaderSize bytes of b. The slice must be at
// least HeaderSize long.
func DecodeHeader(b []byte) Header {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return Header{
		Type:     ChunkType(v & (1<<typeBits - 1)),
		Bank:     int((v >> typeBits) & (1<<BankBits - 1)),
		Size:     int((v >> (typeBits + BankBits)) & (1<<sizeBits - 1)),
		Reserved: uint8(v >> (typeBits + BankBits + sizeBits)),
	}
}

// Encode returns the packed form of the header. Fields are masked to their
// encoded width.
func (h Header) Encode() [HeaderSize]byte {
	v := uint32(h.Type) & (1<<typeBits - 1)
	v |= (uint32(h.Bank) & (1<<BankBits - 1)) << typeBits
	v |= (uint32(h.Size) & (1<<sizeBits - 1)) << (typeBits + BankBits)
	v |= uint32(h.Reserved) << (typeBits + BankBits + sizeBits)
	return [HeaderSize]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// PayloadSize returns the number of payload bytes that follow the header. A
// code chunk with a size of zero is a full bank of code.
func (h Header) PayloadSize() int {
	if h.Size == 0 && h.Type == ChunkCode {
		return BankSize
	}
	return h.Size
}

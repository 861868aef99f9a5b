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

package tilesheet

import "github.com/gotic/gotic/bitpack"

// Segment describes one way of viewing packed pixel memory as a sheet of 8x8
// tiles. Memory is divided into banks of 8192 bytes (the tiles bank and the
// sprites bank) and each bank is divided into storage tiles of 32 bytes. At
// 4bpp a storage tile is a single 8x8 tile. At lower bit depths a storage
// tile is wider and holds several 8x8 tiles side by side.
type Segment struct {
	// first page and bank addressed by the segment. a page is 256 tiles
	PageOrig int
	BankOrig int

	// number of pages across all banks
	Pages int

	// number of tiles in one bank at this bit depth
	BankSize int

	// number of tiles in one row of the sheet
	SheetWidth int

	// width in pixels of a storage tile
	TileWidth int

	// bits per pixel
	BPP int

	peek bitpack.Peeker
	poke bitpack.Poker
}

// the number of storage tiles in one row of a sheet is the same for every
// segment
const storageColumns = 16

// height of a tile in pixels
const tileHeight = 8

func newSegment(page, bank, pages, bankSize, sheetWidth, tileWidth, bpp int) Segment {
	s := Segment{
		PageOrig:   page,
		BankOrig:   bank,
		Pages:      pages,
		BankSize:   bankSize,
		SheetWidth: sheetWidth,
		TileWidth:  tileWidth,
		BPP:        bpp,
	}
	s.peek, s.poke = bitpack.Width(bpp)
	return s
}

// List of segment identifiers. The blit segment value in RAM selects one of
// these.
const (
	SystemGfx = iota
	SystemFont
	Tiles4bpp
	Sprites4bpp
	Page2bpp0
	Page2bpp1
	Page1bpp0
	Page1bpp1
	Page1bpp2
	Page1bpp3
)

// DefaultSegment is the blit segment selected on reset.
const DefaultSegment = Tiles4bpp

// Segments is the fixed table of blit segments.
var Segments = [...]Segment{
	SystemGfx:   newSegment(0, 0, 1, 256, 16, 8, 4),
	SystemFont:  newSegment(0, 0, 1, 256, 16, 8, 1),
	Tiles4bpp:   newSegment(0, 0, 2, 256, 16, 8, 4),
	Sprites4bpp: newSegment(0, 1, 2, 256, 16, 8, 4),
	Page2bpp0:   newSegment(0, 0, 4, 512, 32, 16, 2),
	Page2bpp1:   newSegment(1, 0, 4, 512, 32, 16, 2),
	Page1bpp0:   newSegment(0, 0, 8, 1024, 64, 32, 1),
	Page1bpp1:   newSegment(1, 0, 8, 1024, 64, 32, 1),
	Page1bpp2:   newSegment(2, 0, 8, 1024, 64, 32, 1),
	Page1bpp3:   newSegment(3, 0, 8, 1024, 64, 32, 1),
}

// UsesFontMemory returns true if the segment views font memory rather than
// tile memory.
func UsesFontMemory(segment int) bool {
	return segment == SystemGfx || segment == SystemFont
}

// number of visible tiles in a storage tile
func (s Segment) subTiles() int {
	return s.SheetWidth / storageColumns
}

// number of elements (pixels) in a storage tile
func (s Segment) storageElements() int {
	return s.TileWidth * tileHeight
}

// number of elements (pixels) in one bank
func (s Segment) bankElements() int {
	return s.BankSize / s.subTiles() * s.storageElements()
}

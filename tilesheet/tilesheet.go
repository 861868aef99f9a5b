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

// Package tilesheet provides a uniform per-pixel view of packed tile memory.
// Sprites, tiles and font glyphs share the same pixel fetching logic but
// differ in bit depth, tile width and origin. A Sheet hides those
// differences from the drawing code.
//
// A Sheet never owns the memory it views. It is a typed accessor over a
// slice of the console's RAM.
package tilesheet

// Sheet is a view of memory through a blit segment.
type Sheet struct {
	Segment Segment
	mem     []byte
}

// Get returns a Sheet for the segment. The memory slice should start at the
// font memory for the system segments (see UsesFontMemory()) and at the tile
// memory otherwise. Out of range segment values select DefaultSegment.
func Get(segment int, mem []byte) Sheet {
	if segment < 0 || segment >= len(Segments) {
		segment = DefaultSegment
	}
	return Sheet{
		Segment: Segments[segment],
		mem:     mem,
	}
}

// TilePtr addresses a single 8x8 tile in a Sheet.
type TilePtr struct {
	Segment Segment
	Offset  int
	mem     []byte
}

// Tile returns a pointer to the tile with the index. If local is true the
// index wraps within the segment's page of 256 tiles. Otherwise the index
// counts on from the segment's origin through the remaining pages and banks.
func (sh Sheet) Tile(index int, local bool) TilePtr {
	s := sh.Segment

	if local {
		index &= 0xff
	}

	// tile number counted from the start of the segment's bank
	g := s.PageOrig*256 + index
	total := s.Pages * 256
	g %= total
	if g < 0 {
		g += total
	}

	bank := (s.BankOrig + g/s.BankSize) % 2
	g %= s.BankSize

	row := g / s.SheetWidth
	col := g % s.SheetWidth
	sub := s.subTiles()

	storage := row*storageColumns + col/sub
	offset := bank*s.bankElements() + storage*s.storageElements() + (col%sub)*tileHeight

	return TilePtr{
		Segment: s,
		Offset:  offset,
		mem:     sh.mem,
	}
}

// Pixel returns the colour index of pixel x, y of the tile. Coordinates must
// be between 0 and 7.
func (t TilePtr) Pixel(x, y int) uint8 {
	return t.Segment.peek(t.mem, t.Offset+x+y*t.Segment.TileWidth)
}

// SetPixel sets pixel x, y of the tile.
func (t TilePtr) SetPixel(x, y int, color uint8) {
	t.Segment.poke(t.mem, t.Offset+x+y*t.Segment.TileWidth, color)
}

// address of pixel x, y of the sheet
func (sh Sheet) pixelAddress(x, y int) int {
	s := sh.Segment
	base := sh.Tile(0, true).Offset
	tw := s.TileWidth
	storage := ((y >> 3) * storageColumns) + x/tw
	return base + storage*s.storageElements() + (x & (tw - 1)) + (y&7)*tw
}

// Pixel returns the colour index of pixel x, y of the sheet. The sheet is
// storageColumns storage tiles wide, so its pixel width depends on the bit
// depth of the segment.
func (sh Sheet) Pixel(x, y int) uint8 {
	return sh.Segment.peek(sh.mem, sh.pixelAddress(x, y))
}

// SetPixel sets pixel x, y of the sheet.
func (sh Sheet) SetPixel(x, y int, color uint8) {
	sh.Segment.poke(sh.mem, sh.pixelAddress(x, y), color)
}

// Width returns the width of the sheet in pixels.
func (sh Sheet) Width() int {
	return sh.Segment.TileWidth * storageColumns
}

// Height returns the height in pixels of one page of the sheet.
func (sh Sheet) Height() int {
	return 256 / sh.Segment.SheetWidth * tileHeight
}

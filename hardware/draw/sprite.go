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

package draw

import (
	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/tilesheet"
)

// Dimensions of the map in tiles.
const (
	MapWidth  = cartridge.MapWidth
	MapHeight = cartridge.MapHeight
)

const tileSize = 8

// Flip of a sprite or map tile.
type Flip int

// List of valid Flip values.
const (
	NoFlip   Flip = 0b00
	HorzFlip Flip = 0b01
	VertFlip Flip = 0b10
	BothFlip Flip = 0b11
)

// Rotate of a sprite or map tile. Rotation is clockwise.
type Rotate int

// List of valid Rotate values.
const (
	NoRotate Rotate = iota
	Rotate90
	Rotate180
	Rotate270
)

// Segment returns the current blit segment.
func (d *Draw) Segment() int {
	return int(d.mem.Peek(memory.BlitSegment.Origin()))
}

// the tilesheet for a blit segment
func (d *Draw) sheetFor(segment int) tilesheet.Sheet {
	if tilesheet.UsesFontMemory(segment) {
		return tilesheet.Get(segment, d.mem.Slice(memory.Font.Origin(), memory.Size))
	}
	return tilesheet.Get(segment, d.mem.Slice(memory.Tiles.Origin(), memory.Tiles.Size()+memory.Sprites.Size()))
}

// the tilesheet of the current blit segment
func (d *Draw) sheet() tilesheet.Sheet {
	return d.sheetFor(d.Segment())
}

// draw a single tile. the mapping is applied to the tile's pixel values
// and then the palette map is applied
func (d *Draw) drawTile(tile tilesheet.TilePtr, x, y int, mapping []uint8, scale int, flip Flip, rotate Rotate) {
	// orientation bits: 0 flip horizontal, 1 flip vertical, 2 transpose
	orientation := int(flip & BothFlip)
	switch rotate & 0b11 {
	case Rotate90:
		orientation ^= 0b001
		orientation |= 0b100
	case Rotate180:
		orientation ^= 0b011
	case Rotate270:
		orientation ^= 0b010
		orientation |= 0b100
	}

	for py := 0; py < tileSize; py++ {
		for px := 0; px < tileSize; px++ {
			sx, sy := px, py
			if orientation&0b001 == 0b001 {
				sx = tileSize - 1 - sx
			}
			if orientation&0b010 == 0b010 {
				sy = tileSize - 1 - sy
			}
			if orientation&0b100 == 0b100 {
				sx, sy = sy, sx
			}

			c := mapping[tile.Pixel(sx, sy)]
			if c == TransparentColor {
				continue
			}
			c = d.mapColor(c)

			if scale == 1 {
				d.setPixel(x+px, y+py, c)
			} else {
				d.rect(x+px*scale, y+py*scale, scale, scale, c)
			}
		}
	}
}

// Spr draws a sprite of w by h tiles, starting at tile index, from the
// tilesheet of the current blit segment. Colours in the colour key list are
// not drawn.
func (d *Draw) Spr(index int, x, y int, colorkey []uint8, scale int, flip Flip, rotate Rotate, w, h int) {
	if index < 0 || scale <= 0 {
		return
	}

	rotate &= 0b11
	flip &= BothFlip
	step := tileSize * scale

	if d.earlyClip(x, y, w*step, h*step) {
		return
	}

	sheet := d.sheet()
	cols := sheet.Segment.SheetWidth
	mapping := d.transparency(colorkey)

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			mx := i
			my := j

			if flip == HorzFlip || flip == BothFlip {
				mx = w - 1 - i
			}
			if flip == VertFlip || flip == BothFlip {
				my = h - 1 - j
			}

			switch rotate {
			case Rotate180:
				mx = w - 1 - mx
				my = h - 1 - my
			case Rotate90:
				if flip == NoFlip || flip == BothFlip {
					my = h - 1 - my
				} else {
					mx = w - 1 - mx
				}
			case Rotate270:
				if flip == NoFlip || flip == BothFlip {
					mx = w - 1 - mx
				} else {
					my = h - 1 - my
				}
			}

			tile := sheet.Tile(index+mx+my*cols, false)
			if rotate == NoRotate || rotate == Rotate180 {
				d.drawTile(tile, x+i*step, y+j*step, mapping[:], scale, flip, rotate)
			} else {
				d.drawTile(tile, x+j*step, y+i*step, mapping[:], scale, flip, rotate)
			}
		}
	}
}

// Remap is called by Map() for every tile drawn. It can change the tile
// index, the flip and the rotation of the tile at map position x, y.
type Remap func(x, y int, index int) (int, Flip, Rotate)

// Map draws a region of the map of w by h tiles, starting at map position
// x, y, to screen position sx, sy. Map coordinates wrap around the edges of
// the map.
func (d *Draw) Map(x, y, w, h, sx, sy int, colorkey []uint8, scale int, remap Remap) {
	if scale <= 0 {
		return
	}

	size := tileSize * scale
	sheet := d.sheet()
	mapping := d.transparency(colorkey)
	m := d.mem.Area(memory.Map)

	for j, jj := y, sy; j < y+h; j, jj = j+1, jj+size {
		for i, ii := x, sx; i < x+w; i, ii = i+1, ii+size {
			mi := ((i % MapWidth) + MapWidth) % MapWidth
			mj := ((j % MapHeight) + MapHeight) % MapHeight

			index := int(m[mi+mj*MapWidth])
			flip := NoFlip
			rotate := NoRotate
			if remap != nil {
				index, flip, rotate = remap(mi, mj, index)
			}

			tile := sheet.Tile(index, true)
			d.drawTile(tile, ii, jj, mapping[:], scale, flip, rotate)
		}
	}
}

// Mget returns the tile index at map position x, y. Positions outside of
// the map return zero.
func (d *Draw) Mget(x, y int) uint8 {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		return 0
	}
	return d.mem.Peek(memory.Map.Origin() + y*MapWidth + x)
}

// Mset sets the tile index at map position x, y. Positions outside of the
// map are ignored.
func (d *Draw) Mset(x, y int, value uint8) {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		return
	}
	d.mem.Poke(memory.Map.Origin()+y*MapWidth+x, value)
}

// Fget returns the state of flag of the sprite.
func (d *Draw) Fget(index int, flag int) bool {
	if index < 0 || index >= cartridge.FlagsSize || flag < 0 || flag >= 8 {
		return false
	}
	return d.mem.Peek(memory.Flags.Origin()+index)&(1<<flag) != 0
}

// Fset sets the state of flag of the sprite.
func (d *Draw) Fset(index int, flag int, value bool) {
	if index < 0 || index >= cartridge.FlagsSize || flag < 0 || flag >= 8 {
		return
	}
	a := memory.Flags.Origin() + index
	v := d.mem.Peek(a)
	if value {
		v |= 1 << flag
	} else {
		v &^= 1 << flag
	}
	d.mem.Poke(a, v)
}

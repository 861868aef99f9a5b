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
	"github.com/gotic/gotic/tilesheet"
)

// Font metrics of the system font.
const (
	FontWidth    = 6
	AltFontWidth = 4
	FontHeight   = 6
)

// number of glyphs in each of the regular and alt fonts
const fontChars = 128

// returns true if a box of width w and height h at x, y is entirely outside
// the clipping rectangle
func (d *Draw) earlyClip(x, y, w, h int) bool {
	return y+h-1 < d.clip.T || x+w-1 < d.clip.L || y >= d.clip.B || x >= d.clip.R
}

// draw a glyph and return its width. in proportional mode the width is the
// span of columns that contain a visible pixel
func (d *Draw) drawChar(glyph tilesheet.TilePtr, x, y int, scale int, fixed bool, mapping []uint8) int {
	start := 0
	end := tileSize

	visible := func(col int) bool {
		for row := 0; row < tileSize; row++ {
			if mapping[glyph.Pixel(col, row)] != TransparentColor {
				return true
			}
		}
		return false
	}

	if !fixed {
		for start < tileSize && !visible(start) {
			start++
		}
		for end > start && !visible(end-1) {
			end--
		}
	}

	width := end - start

	if d.earlyClip(x, y, tileSize*scale, tileSize*scale) {
		return width
	}

	for i, col, xs := 0, start, x; i < width; i, col, xs = i+1, col+1, xs+scale {
		for row, ys := 0, y; row < tileSize; row, ys = row+1, ys+scale {
			c := mapping[glyph.Pixel(col, row)]
			if c != TransparentColor {
				d.rect(xs, ys, scale, scale, d.mapColor(c))
			}
		}
	}

	return width
}

// draw text with the glyphs in the sheet and return the width of the widest
// line
func (d *Draw) drawText(sheet tilesheet.Sheet, text string, x, y int, width, height int, fixed bool, mapping []uint8, scale int, alt bool) int {
	pos := x
	widest := x

	var base int
	if alt {
		base = fontChars
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			widest = max(widest, pos)
			pos = x
			y += height * scale
			continue
		}

		glyph := sheet.Tile(base+int(c), true)
		size := d.drawChar(glyph, pos, y, scale, fixed, mapping)
		if !fixed && size > 0 {
			pos += (size + 1) * scale
		} else {
			pos += width * scale
		}
	}

	return max(widest, pos) - x
}

// Print draws text with the system font and returns the width in pixels of
// the widest line. A scale of zero draws nothing and returns zero.
func (d *Draw) Print(text string, x, y int, color uint8, fixed bool, scale int, alt bool) int {
	if scale == 0 {
		return 0
	}

	mapping := []uint8{TransparentColor, color}

	width := FontWidth
	if alt {
		width = AltFontWidth
	}
	if !fixed {
		width -= 2
	}

	return d.drawText(d.sheetFor(tilesheet.SystemFont), text, x, y, width, FontHeight, fixed, mapping, scale, alt)
}

// Font draws text using the tiles of the current blit segment as glyphs.
// For the 4bpp segments the glyphs are taken from the other half of the
// sheet, so that with the default segment text is drawn from the sprites.
// Returns the width in pixels of the widest line.
func (d *Draw) Font(text string, x, y int, colorkey []uint8, w, h int, fixed bool, scale int, alt bool) int {
	if scale == 0 {
		return 0
	}

	mapping := d.transparency(colorkey)

	segment := d.Segment()
	switch segment {
	case tilesheet.Tiles4bpp:
		segment = tilesheet.Sprites4bpp
	case tilesheet.Sprites4bpp:
		segment = tilesheet.Tiles4bpp
	}

	return d.drawText(d.sheetFor(segment), text, x, y, w, h, fixed, mapping[:], scale, alt)
}

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

package display

import (
	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/hardware/memory"
)

// Dimensions of the screen and of the frame that includes the border.
const (
	Width  = cartridge.ScreenWidth
	Height = cartridge.ScreenHeight

	MarginTop    = 4
	MarginBottom = 4
	MarginLeft   = 8
	MarginRight  = 8

	FullWidth  = MarginLeft + Width + MarginRight
	FullHeight = MarginTop + Height + MarginBottom
)

// BytesPerPixel in the frame.
const BytesPerPixel = 4

// PixelFormat is the byte order of a pixel in the frame.
type PixelFormat int

// List of valid PixelFormat values.
const (
	RGBA8888 PixelFormat = iota
	BGRA8888
	ABGR8888
	ARGB8888
)

func (f PixelFormat) String() string {
	switch f {
	case RGBA8888:
		return "RGBA8888"
	case BGRA8888:
		return "BGRA8888"
	case ABGR8888:
		return "ABGR8888"
	case ARGB8888:
		return "ARGB8888"
	}
	return "unknown pixel format"
}

// a palette converted to a pixel format
type palette [16][BytesPerPixel]byte

func (f PixelFormat) palette(rgb []byte) palette {
	var p palette
	for i := range p {
		r := rgb[i*3]
		g := rgb[i*3+1]
		b := rgb[i*3+2]
		switch f {
		case BGRA8888:
			p[i] = [BytesPerPixel]byte{b, g, r, 0xff}
		case ABGR8888:
			p[i] = [BytesPerPixel]byte{0xff, b, g, r}
		case ARGB8888:
			p[i] = [BytesPerPixel]byte{0xff, r, g, b}
		default:
			p[i] = [BytesPerPixel]byte{r, g, b, 0xff}
		}
	}
	return p
}

// Display converts the screen plane to a frame.
type Display struct {
	mem   *memory.Memory
	frame []byte

	format PixelFormat

	// the palette used by the overlay target. resolved at the start of
	// Blit()
	overlay palette
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(mem *memory.Memory) *Display {
	return &Display{
		mem:   mem,
		frame: make([]byte, FullWidth*FullHeight*BytesPerPixel),
	}
}

// Frame returns the most recent frame. The slice is reused by every call to
// Blit().
func (d *Display) Frame() []byte {
	return d.frame
}

// Format returns the pixel format of the most recent frame.
func (d *Display) Format() PixelFormat {
	return d.format
}

// the live palette from RAM
func (d *Display) livePalette() palette {
	return d.format.palette(d.mem.Area(memory.Palette))
}

// the overlay palette is the live palette unless an overlay palette has
// been set
func (d *Display) overlayPalette() palette {
	for _, v := range d.mem.Overlay {
		if v != 0 {
			return d.format.palette(d.mem.Overlay[:])
		}
	}
	return d.livePalette()
}

func (d *Display) fillRows(top, rows int, color [BytesPerPixel]byte) {
	start := top * FullWidth * BytesPerPixel
	end := start + rows*FullWidth*BytesPerPixel
	for i := start; i < end; i += BytesPerPixel {
		copy(d.frame[i:], color[:])
	}
}

// Blit converts the screen plane into a frame of the pixel format and
// returns it. The scanline hook is called before every row with the row
// number and once more after the last row. The overline hook is called
// once the frame is complete. Either hook can be nil.
func (d *Display) Blit(format PixelFormat, scanline func(row int), overline func()) []byte {
	d.format = format
	d.overlay = d.overlayPalette()

	var pal palette

	for r := range Height {
		if scanline != nil {
			scanline(r)
		}

		// the hook may have changed the palette
		pal = d.livePalette()

		border := pal[d.mem.Peek(memory.AddrBorder)&0x0f]
		if r == 0 {
			d.fillRows(0, MarginTop, border)
		}

		d.row(r, pal, border)
	}

	if scanline != nil {
		scanline(Height)
	}

	pal = d.livePalette()
	d.fillRows(MarginTop+Height, MarginBottom, pal[d.mem.Peek(memory.AddrBorder)&0x0f])

	if overline != nil {
		overline()
	}

	return d.frame
}

// convert a single row of the screen plane
func (d *Display) row(r int, pal palette, border [BytesPerPixel]byte) {
	offx := int(int8(d.mem.Peek(memory.AddrScrollX)))
	offy := int(int8(d.mem.Peek(memory.AddrScrollY)))

	out := (MarginTop + r) * FullWidth * BytesPerPixel

	for range MarginLeft {
		copy(d.frame[out:], border[:])
		out += BytesPerPixel
	}

	sy := (r + offy + Height) % Height
	base := memory.Screen.Origin()*2 + sy*Width

	for x := range Width {
		sx := (x + offx + Width) % Width
		copy(d.frame[out:], pal[d.mem.Peek4(base+sx)][:])
		out += BytesPerPixel
	}

	for range MarginRight {
		copy(d.frame[out:], border[:])
		out += BytesPerPixel
	}
}

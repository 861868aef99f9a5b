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

package display_test

import (
	"testing"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/draw"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/test"
)

func newDisplay() (*display.Display, *memory.Memory) {
	mem := memory.NewMemory()
	copy(mem.Area(memory.Palette), cartridge.Sweetie16[:])
	return display.NewDisplay(mem), mem
}

// pixel in the frame at x, y
func pixel(frame []byte, x, y int) [4]byte {
	o := (y*display.FullWidth + x) * display.BytesPerPixel
	return [4]byte(frame[o : o+4])
}

// sweetie16 colour in RGBA order
func rgba(c int) [4]byte {
	p := cartridge.Sweetie16
	return [4]byte{p[c*3], p[c*3+1], p[c*3+2], 0xff}
}

func TestFrameSize(t *testing.T) {
	d, _ := newDisplay()
	frame := d.Blit(display.RGBA8888, nil, nil)
	test.ExpectEquality(t, len(frame), 256*144*4)
}

func TestBlit(t *testing.T) {
	d, mem := newDisplay()

	mem.Poke4(0, 1)
	mem.Poke4(1, 2)
	mem.Poke(memory.AddrBorder, 3)

	frame := d.Blit(display.RGBA8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop), rgba(1))
	test.ExpectEquality(t, pixel(frame, display.MarginLeft+1, display.MarginTop), rgba(2))
	test.ExpectEquality(t, pixel(frame, display.MarginLeft+2, display.MarginTop), rgba(0))

	// border on all four sides
	test.ExpectEquality(t, pixel(frame, 0, 0), rgba(3))
	test.ExpectEquality(t, pixel(frame, 0, display.MarginTop), rgba(3))
	test.ExpectEquality(t, pixel(frame, display.FullWidth-1, display.MarginTop), rgba(3))
	test.ExpectEquality(t, pixel(frame, display.FullWidth-1, display.FullHeight-1), rgba(3))
}

func TestPixelFormats(t *testing.T) {
	d, mem := newDisplay()
	mem.Poke4(0, 1)
	c := rgba(1)

	frame := d.Blit(display.BGRA8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop), [4]byte{c[2], c[1], c[0], 0xff})
	frame = d.Blit(display.ABGR8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop), [4]byte{0xff, c[2], c[1], c[0]})
	frame = d.Blit(display.ARGB8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop), [4]byte{0xff, c[0], c[1], c[2]})
	test.ExpectEquality(t, d.Format(), display.ARGB8888)
}

func TestScroll(t *testing.T) {
	d, mem := newDisplay()

	// the last pixel of the first row and the first pixel of the last row
	mem.Poke4(display.Width-1, 5)
	mem.Poke4((display.Height-1)*display.Width, 6)

	// negative offsets wrap around
	mem.Poke(memory.AddrScrollX, 0xff)
	frame := d.Blit(display.RGBA8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop), rgba(5))

	mem.Poke(memory.AddrScrollX, 0)
	mem.Poke(memory.AddrScrollY, 0xff)
	frame = d.Blit(display.RGBA8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop), rgba(6))

	mem.Poke(memory.AddrScrollY, 1)
	frame = d.Blit(display.RGBA8888, nil, nil)
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop+display.Height-2), rgba(6))
}

func TestHooks(t *testing.T) {
	d, mem := newDisplay()

	var rows []int
	overline := 0

	scanline := func(row int) {
		test.ExpectEquality(t, overline, 0)
		rows = append(rows, row)

		// change colour 0 halfway down the screen
		if row == 10 {
			copy(mem.Area(memory.Palette)[0:3], []byte{1, 2, 3})
		}
	}

	frame := d.Blit(display.RGBA8888, scanline, func() { overline++ })

	test.ExpectEquality(t, len(rows), display.Height+1)
	for i, r := range rows {
		if !test.ExpectEquality(t, r, i) {
			break
		}
	}
	test.ExpectEquality(t, overline, 1)

	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop+9), rgba(0))
	test.ExpectEquality(t, pixel(frame, display.MarginLeft, display.MarginTop+10), [4]byte{1, 2, 3, 0xff})

	// top border uses the palette from before the hook changed it. bottom
	// border uses the final palette
	test.ExpectEquality(t, pixel(frame, 0, 0), rgba(0))
	test.ExpectEquality(t, pixel(frame, 0, display.FullHeight-1), [4]byte{1, 2, 3, 0xff})
}

func TestOverlay(t *testing.T) {
	d, mem := newDisplay()
	test.ExpectImplements[draw.Target](t, d)

	dr := draw.NewDraw(mem)
	mem.ResetPaletteMap()

	d.Blit(display.RGBA8888, nil, func() {
		dr.SetTarget(d)
		dr.Pix(0, 0, 3)
		test.ExpectEquality(t, dr.PixGet(0, 0), 3)
	})
	dr.ResetTarget()

	test.ExpectEquality(t, pixel(d.Frame(), display.MarginLeft, display.MarginTop), rgba(3))

	// the screen plane is untouched
	test.ExpectEquality(t, mem.Peek(0), 0)

	// an explicit overlay palette
	copy(mem.Overlay[3*3:], []byte{9, 8, 7})
	d.Blit(display.RGBA8888, nil, func() {
		dr.SetTarget(d)
		dr.Pix(0, 0, 3)
	})
	test.ExpectEquality(t, pixel(d.Frame(), display.MarginLeft, display.MarginTop), [4]byte{9, 8, 7, 0xff})
}

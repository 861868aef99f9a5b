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

package draw_test

import (
	"testing"

	"github.com/gotic/gotic/hardware/draw"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/test"
)

func newDraw() (*draw.Draw, *memory.Memory) {
	mem := memory.NewMemory()
	mem.ResetPaletteMap()
	mem.Poke(memory.BlitSegment.Origin(), 2)
	draw.WriteFont(mem)
	return draw.NewDraw(mem), mem
}

// returns true if every byte of the screen plane is zero
func blank(mem *memory.Memory) bool {
	for _, b := range mem.Area(memory.Screen) {
		if b != 0 {
			return false
		}
	}
	return true
}

func TestClip(t *testing.T) {
	d, mem := newDraw()
	test.ExpectEquality(t, d.ClipRect(), draw.Rect{L: 0, T: 0, R: draw.Width, B: draw.Height})

	d.Clip(-10, -10, 1000, 1000)
	test.ExpectEquality(t, d.ClipRect(), draw.Rect{L: 0, T: 0, R: draw.Width, B: draw.Height})

	d.Clip(10, 20, 30, 40)
	test.ExpectEquality(t, d.ClipRect(), draw.Rect{L: 10, T: 20, R: 40, B: 60})

	// nothing is drawn outside of the clip
	d.Pix(5, 25, 3)
	test.ExpectSuccess(t, blank(mem))
}

func TestPixel(t *testing.T) {
	d, mem := newDraw()

	d.Pix(1, 2, 5)
	test.ExpectEquality(t, d.PixGet(1, 2), 5)
	test.ExpectEquality(t, d.PixGet(0, 2), 0)
	test.ExpectEquality(t, d.PixGet(-1, 2), 0)

	// nibble order in the screen plane
	test.ExpectEquality(t, mem.Peek((2*draw.Width+1)/2), 0x50)

	// palette map is applied to writes
	mem.Poke4(memory.PaletteMap.Origin()*2+5, 7)
	d.Pix(3, 3, 5)
	test.ExpectEquality(t, d.PixGet(3, 3), 7)
}

func TestRect(t *testing.T) {
	d, _ := newDraw()

	// odd start and end exercise the partial byte writes
	d.Rect(1, 0, 4, 2, 9)
	for y := range 2 {
		test.ExpectEquality(t, d.PixGet(0, y), 0, y)
		for x := 1; x < 5; x++ {
			test.ExpectEquality(t, d.PixGet(x, y), 9, x, y)
		}
		test.ExpectEquality(t, d.PixGet(5, y), 0, y)
	}
	test.ExpectEquality(t, d.PixGet(1, 2), 0)

	d.Rectb(10, 10, 3, 3, 4)
	test.ExpectEquality(t, d.PixGet(10, 10), 4)
	test.ExpectEquality(t, d.PixGet(12, 12), 4)
	test.ExpectEquality(t, d.PixGet(11, 11), 0)
}

func TestCls(t *testing.T) {
	d, mem := newDraw()
	d.Cls(3)
	for _, b := range mem.Area(memory.Screen) {
		if !test.ExpectEquality(t, b, 0x33) {
			break
		}
	}

	d.Clip(0, 0, 2, 1)
	d.Cls(0)
	test.ExpectEquality(t, d.PixGet(1, 0), 0)
	d.NoClip()
	test.ExpectEquality(t, d.PixGet(2, 0), 3)
}

func TestLine(t *testing.T) {
	d, _ := newDraw()
	d.Line(0, 0, 4, 0, 2)
	for x := range 5 {
		test.ExpectEquality(t, d.PixGet(x, 0), 2, x)
	}
	test.ExpectEquality(t, d.PixGet(5, 0), 0)

	d.Line(0, 10, 3, 13, 6)
	for i := range 4 {
		test.ExpectEquality(t, d.PixGet(i, 10+i), 6, i)
	}
}

func TestCircle(t *testing.T) {
	d, _ := newDraw()

	d.Circ(10, 10, 0, 3)
	test.ExpectEquality(t, d.PixGet(10, 10), 3)
	test.ExpectEquality(t, d.PixGet(11, 10), 0)

	d.Circ(50, 50, 2, 3)
	test.ExpectEquality(t, d.PixGet(50, 50), 3)
	test.ExpectEquality(t, d.PixGet(48, 50), 3)
	test.ExpectEquality(t, d.PixGet(52, 50), 3)
	test.ExpectEquality(t, d.PixGet(53, 50), 0)

	// border leaves the centre untouched
	d.Circb(100, 50, 3, 4)
	test.ExpectEquality(t, d.PixGet(103, 50), 4)
	test.ExpectEquality(t, d.PixGet(100, 50), 0)
}

func TestTriangle(t *testing.T) {
	d, _ := newDraw()
	d.Tri(0, 0, 4, 0, 0, 4, 8)
	test.ExpectEquality(t, d.PixGet(0, 0), 8)
	test.ExpectEquality(t, d.PixGet(1, 1), 8)
	test.ExpectEquality(t, d.PixGet(4, 4), 0)

	d.Trib(20, 20, 24, 20, 20, 24, 5)
	test.ExpectEquality(t, d.PixGet(22, 20), 5)
	test.ExpectEquality(t, d.PixGet(21, 21), 0)
}

func TestSprite(t *testing.T) {
	d, mem := newDraw()

	// pixel 1, 0 of the first tile
	mem.Poke4(memory.Tiles.Origin()*2+1, 7)

	d.Spr(0, 10, 10, nil, 1, draw.NoFlip, draw.NoRotate, 1, 1)
	test.ExpectEquality(t, d.PixGet(11, 10), 7)

	// colour 0 is drawn unless it is in the colour key
	mem.Poke4(memory.Screen.Origin()*2+10*draw.Width+10, 1)
	d.Spr(0, 10, 10, []uint8{0}, 1, draw.NoFlip, draw.NoRotate, 1, 1)
	test.ExpectEquality(t, d.PixGet(10, 10), 1)
	d.Spr(0, 10, 10, nil, 1, draw.NoFlip, draw.NoRotate, 1, 1)
	test.ExpectEquality(t, d.PixGet(10, 10), 0)

	d.Spr(0, 30, 10, nil, 1, draw.HorzFlip, draw.NoRotate, 1, 1)
	test.ExpectEquality(t, d.PixGet(36, 10), 7)

	d.Spr(0, 50, 10, nil, 1, draw.NoFlip, draw.Rotate90, 1, 1)
	test.ExpectEquality(t, d.PixGet(57, 11), 7)

	d.Spr(0, 70, 10, nil, 2, draw.NoFlip, draw.NoRotate, 1, 1)
	test.ExpectEquality(t, d.PixGet(72, 10), 7)
	test.ExpectEquality(t, d.PixGet(73, 11), 7)
	test.ExpectEquality(t, d.PixGet(74, 10), 0)

	// sprites are the second page of the default segment
	mem.Poke4(memory.Sprites.Origin()*2, 12)
	d.Spr(256, 90, 10, nil, 1, draw.NoFlip, draw.NoRotate, 1, 1)
	test.ExpectEquality(t, d.PixGet(90, 10), 12)
}

func TestMap(t *testing.T) {
	d, mem := newDraw()

	d.Mset(1, 0, 3)
	test.ExpectEquality(t, d.Mget(1, 0), 3)
	test.ExpectEquality(t, d.Mget(draw.MapWidth, 0), 0)
	d.Mset(-1, 0, 3)

	// pixel 0, 0 of tile 3
	mem.Poke4(memory.Tiles.Origin()*2+3*64, 9)

	d.Map(0, 0, 2, 1, 0, 0, nil, 1, nil)
	test.ExpectEquality(t, d.PixGet(8, 0), 9)

	// remap tile 3 to tile 0
	d.Cls(0)
	d.Map(0, 0, 2, 1, 0, 0, nil, 1, func(x, y int, index int) (int, draw.Flip, draw.Rotate) {
		return 0, draw.NoFlip, draw.NoRotate
	})
	test.ExpectEquality(t, d.PixGet(8, 0), 0)

	// map coordinates wrap
	d.Map(-draw.MapWidth+1, 0, 1, 1, 16, 0, nil, 1, nil)
	test.ExpectEquality(t, d.PixGet(16, 0), 9)
}

func TestFlags(t *testing.T) {
	d, _ := newDraw()
	d.Fset(10, 3, true)
	test.ExpectSuccess(t, d.Fget(10, 3))
	test.ExpectFailure(t, d.Fget(10, 2))
	d.Fset(10, 3, false)
	test.ExpectFailure(t, d.Fget(10, 3))
	test.ExpectFailure(t, d.Fget(1000, 0))
}

func TestPrint(t *testing.T) {
	d, mem := newDraw()

	test.ExpectEquality(t, d.Print("", 0, 0, 12, false, 1, false), 0)
	test.ExpectSuccess(t, blank(mem))

	test.ExpectEquality(t, d.Print("HELLO", 0, 0, 12, false, 0, false), 0)
	test.ExpectSuccess(t, blank(mem))

	// proportional advance is the glyph width plus one
	test.ExpectEquality(t, d.Print("A", 0, 0, 12, false, 1, false), 6)
	test.ExpectEquality(t, d.PixGet(0, 1), 12)

	// fixed advance is the cell width
	test.ExpectEquality(t, d.Print("AB", 0, 10, 12, true, 1, false), 12)
	test.ExpectEquality(t, d.Print("AB", 0, 10, 12, true, 2, false), 24)

	// alt font
	test.ExpectEquality(t, d.Print("A", 0, 20, 12, false, 1, true), 4)
	test.ExpectEquality(t, d.Print("A", 0, 20, 12, true, 1, true), 4)

	// space has no visible pixels and advances by the reduced width
	test.ExpectEquality(t, d.Print(" ", 0, 30, 12, false, 1, false), 4)

	// widest line
	test.ExpectEquality(t, d.Print("A\nAA", 0, 40, 12, false, 1, false), 12)
}

func TestPrintClipped(t *testing.T) {
	d, mem := newDraw()

	// text outside of the clip still reports its width
	test.ExpectEquality(t, d.Print("AA", 300, 0, 12, false, 1, false), 12)
	test.ExpectSuccess(t, blank(mem))

	d.Clip(0, 0, 1, 1)
	test.ExpectEquality(t, d.Print("A", 10, 10, 12, false, 1, false), 6)
	test.ExpectSuccess(t, blank(mem))
}

func TestFont(t *testing.T) {
	d, mem := newDraw()

	// sprite 'A' with a single pixel in the third column
	mem.Poke4(memory.Sprites.Origin()*2+'A'*64+2, 5)

	test.ExpectEquality(t, d.Font("A", 0, 0, []uint8{0}, 8, 8, false, 1, false), 2)
	test.ExpectEquality(t, d.PixGet(0, 0), 5)
	test.ExpectEquality(t, d.Font("A", 0, 0, []uint8{0}, 8, 8, true, 1, false), 8)
}

type overlay struct {
	pixels map[[2]int]uint8
}

func (o *overlay) SetPixel(x, y int, color uint8) {
	o.pixels[[2]int{x, y}] = color
}

func (o *overlay) Pixel(x, y int) uint8 {
	return o.pixels[[2]int{x, y}]
}

func (o *overlay) HLine(xl, xr, y int, color uint8) {
	for x := xl; x < xr; x++ {
		o.SetPixel(x, y, color)
	}
}

func TestTarget(t *testing.T) {
	d, mem := newDraw()
	o := &overlay{pixels: make(map[[2]int]uint8)}

	d.SetTarget(o)
	d.Rect(0, 0, 2, 2, 6)
	d.Pix(5, 5, 7)
	test.ExpectEquality(t, len(o.pixels), 5)
	test.ExpectEquality(t, d.PixGet(5, 5), 7)
	test.ExpectSuccess(t, blank(mem))

	d.ResetTarget()
	test.ExpectEquality(t, d.PixGet(5, 5), 0)
}

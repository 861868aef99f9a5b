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
	"github.com/gotic/gotic/hardware/memory"
)

// Dimensions of the screen plane.
const (
	Width  = 240
	Height = 136
)

// TransparentColor is the mapping value that marks a pixel as not drawn.
const TransparentColor = 255

// DefaultColor is the colour used by primitives when no colour is
// specified.
const DefaultColor = 15

// Target is the destination of pixel writes. Coordinates have already been
// clipped and colours mapped by the time they reach the Target.
type Target interface {
	SetPixel(x, y int, color uint8)
	Pixel(x, y int) uint8

	// HLine draws pixels from xl up to but not including xr
	HLine(xl, xr, y int, color uint8)
}

// Rect is a clipping rectangle. R and B are exclusive.
type Rect struct {
	L, T, R, B int
}

// Draw implements the drawing primitives over the console memory.
type Draw struct {
	mem    *memory.Memory
	clip   Rect
	target Target
	screen *Screen

	// left and right extents of shapes for the filled primitives
	sides [Height]struct {
		left, right int
	}
}

// NewDraw is the preferred method of initialisation for the Draw type.
func NewDraw(mem *memory.Memory) *Draw {
	d := &Draw{
		mem:    mem,
		screen: &Screen{mem: mem},
	}
	d.ResetTarget()
	d.NoClip()
	return d
}

// SetTarget changes the destination of pixel writes.
func (d *Draw) SetTarget(t Target) {
	d.target = t
}

// ResetTarget makes the screen plane in RAM the destination of pixel
// writes.
func (d *Draw) ResetTarget() {
	d.target = d.screen
}

// Clip sets the clipping rectangle. The rectangle is clamped to the screen.
func (d *Draw) Clip(x, y, w, h int) {
	d.clip = Rect{
		L: max(x, 0),
		T: max(y, 0),
		R: min(x+w, Width),
		B: min(y+h, Height),
	}
}

// NoClip sets the clipping rectangle to the entire screen.
func (d *Draw) NoClip() {
	d.Clip(0, 0, Width, Height)
}

// ClipRect returns the current clipping rectangle.
func (d *Draw) ClipRect() Rect {
	return d.clip
}

// apply the palette map
func (d *Draw) mapColor(color uint8) uint8 {
	return d.mem.Peek4(memory.PaletteMap.Origin()*2 + int(color&0x0f))
}

func (d *Draw) inClip(x, y int) bool {
	return x >= d.clip.L && y >= d.clip.T && x < d.clip.R && y < d.clip.B
}

// set pixel with clipping. the colour should already be mapped
func (d *Draw) setPixel(x, y int, color uint8) {
	if d.inClip(x, y) {
		d.target.SetPixel(x, y, color)
	}
}

// draw a rectangle with clipping. the colour should already be mapped
func (d *Draw) rect(x, y, w, h int, color uint8) {
	xl := max(x, d.clip.L)
	xr := min(x+w, d.clip.R)
	yt := max(y, d.clip.T)
	yb := min(y+h, d.clip.B)
	if xl >= xr {
		return
	}
	for y := yt; y < yb; y++ {
		d.target.HLine(xl, xr, y, color)
	}
}

// Screen is the Target that writes to the 4bpp screen plane in RAM.
type Screen struct {
	mem *memory.Memory
}

// SetPixel implements the Target interface.
func (s *Screen) SetPixel(x, y int, color uint8) {
	s.mem.Poke4(memory.Screen.Origin()*2+y*Width+x, color)
}

// Pixel implements the Target interface.
func (s *Screen) Pixel(x, y int) uint8 {
	return s.mem.Peek4(memory.Screen.Origin()*2 + y*Width + x)
}

// HLine implements the Target interface.
func (s *Screen) HLine(xl, xr, y int, color uint8) {
	if xl >= xr {
		return
	}

	i := memory.Screen.Origin()*2 + y*Width

	// nibble at the start and end of the line if they don't fall on a byte
	// boundary. the rest of the line is filled a byte at a time
	if xl&1 == 1 {
		s.mem.Poke4(i+xl, color)
		xl++
	}
	if xr&1 == 1 {
		s.mem.Poke4(i+xr-1, color)
		xr--
	}
	if xl < xr {
		s.mem.Fill((i+xl)/2, color&0x0f|color<<4, (xr-xl)/2)
	}
}

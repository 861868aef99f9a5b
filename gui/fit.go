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

package gui

import "github.com/gotic/gotic/hardware/display"

// Rect is the area of the window in which the frame is drawn.
type Rect struct {
	X, Y int
	W, H int
}

// Fit returns the largest area of a window of the specified size that the
// frame can be drawn to without changing the aspect ratio. The area is
// centred in the window.
func Fit(w, h int) Rect {
	if w <= 0 || h <= 0 {
		return Rect{}
	}

	// compare aspect ratios without floating point
	var r Rect
	if w*display.FullHeight > h*display.FullWidth {
		r.H = h
		r.W = h * display.FullWidth / display.FullHeight
	} else {
		r.W = w
		r.H = w * display.FullHeight / display.FullWidth
	}
	r.X = (w - r.W) / 2
	r.Y = (h - r.H) / 2
	return r
}

// ToFrame converts a position in the window to a position in the frame. The
// result may be outside of the frame.
func (r Rect) ToFrame(x, y int) (int, int) {
	if r.W == 0 || r.H == 0 {
		return 0, 0
	}
	return (x - r.X) * display.FullWidth / r.W, (y - r.Y) * display.FullHeight / r.H
}

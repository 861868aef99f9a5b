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

// the Display implements the draw.Target interface. pixels are written
// directly into the frame with the overlay palette

func (d *Display) offset(x, y int) int {
	return ((y+MarginTop)*FullWidth + x + MarginLeft) * BytesPerPixel
}

// SetPixel implements the draw.Target interface.
func (d *Display) SetPixel(x, y int, color uint8) {
	copy(d.frame[d.offset(x, y):], d.overlay[color&0x0f][:])
}

// Pixel implements the draw.Target interface. The colour index is the first
// entry in the overlay palette that matches the pixel in the frame.
func (d *Display) Pixel(x, y int) uint8 {
	o := d.offset(x, y)
	var p [BytesPerPixel]byte
	copy(p[:], d.frame[o:o+BytesPerPixel])
	for i, c := range d.overlay {
		if c == p {
			return uint8(i)
		}
	}
	return 0
}

// HLine implements the draw.Target interface.
func (d *Display) HLine(xl, xr, y int, color uint8) {
	for x := xl; x < xr; x++ {
		d.SetPixel(x, y, color)
	}
}

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
	"math"
)

// Cls fills the clipping rectangle with the colour.
func (d *Draw) Cls(color uint8) {
	d.rect(d.clip.L, d.clip.T, d.clip.R-d.clip.L, d.clip.B-d.clip.T, d.mapColor(color))
}

// Pix sets the pixel at x, y.
func (d *Draw) Pix(x, y int, color uint8) {
	d.setPixel(x, y, d.mapColor(color))
}

// PixGet returns the colour of the pixel at x, y. Pixels outside of the
// clipping rectangle are reported as zero.
func (d *Draw) PixGet(x, y int) uint8 {
	if !d.inClip(x, y) {
		return 0
	}
	return d.target.Pixel(x, y)
}

// Line draws a line between two points.
func (d *Draw) Line(x0, y0, x1, y1 float64, color uint8) {
	color = d.mapColor(color)

	if math.Abs(x0-x1) < math.Abs(y0-y1) {
		if y1 < y0 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		dx := (x1 - x0) / (y1 - y0)
		for ; y0 < y1; y0++ {
			d.setPixel(int(math.Floor(x0)), int(math.Floor(y0)), color)
			x0 += dx
		}
	} else {
		if x1 < x0 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		var dy float64
		if x1 != x0 {
			dy = (y1 - y0) / (x1 - x0)
		}
		for ; x0 < x1; x0++ {
			d.setPixel(int(math.Floor(x0)), int(math.Floor(y0)), color)
			y0 += dy
		}
	}

	d.setPixel(int(math.Floor(x1)), int(math.Floor(y1)), color)
}

// Rect draws a filled rectangle.
func (d *Draw) Rect(x, y, w, h int, color uint8) {
	d.rect(x, y, w, h, d.mapColor(color))
}

// Rectb draws the border of a rectangle.
func (d *Draw) Rectb(x, y, w, h int, color uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	color = d.mapColor(color)
	d.rect(x, y, w, 1, color)
	d.rect(x, y+h-1, w, 1, color)
	d.rect(x, y+1, 1, h-2, color)
	d.rect(x+w-1, y+1, 1, h-2, color)
}

func (d *Draw) initSides() {
	for i := range d.sides {
		d.sides[i].left = Width
		d.sides[i].right = -1
	}
}

func (d *Draw) setSide(x, y int) {
	if y < 0 || y >= Height {
		return
	}
	if x < d.sides[y].left {
		d.sides[y].left = x
	}
	if x > d.sides[y].right {
		d.sides[y].right = x
	}
}

// draw the horizontal spans recorded by setSide()
func (d *Draw) fillSides(color uint8) {
	for y := d.clip.T; y < d.clip.B; y++ {
		s := d.sides[y]
		xl := max(s.left, d.clip.L)
		xr := min(s.right+1, d.clip.R)
		if xl < xr {
			d.target.HLine(xl, xr, y, color)
		}
	}
}

// ellipse rasteriser. plot is called for every point on the outline of the
// ellipse bounded by x0, y0 and x1, y1
func ellipse(x0, y0, x1, y1 int, plot func(x, y int)) {
	a := abs(x1 - x0)
	b := abs(y1 - y0)
	b1 := b & 1

	// error increments
	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	if x0 > x1 {
		x0 = x1
		x1 += a
	}
	if y0 > y1 {
		y0 = y1
	}
	y0 += (b + 1) / 2
	y1 = y0 - b1
	a *= 8 * a
	b1 = 8 * b * b

	for x0 <= x1 {
		plot(x1, y0)
		plot(x0, y0)
		plot(x0, y1)
		plot(x1, y1)
		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b1
			err += dx
		}
	}

	// finish the tips of flat ellipses
	for y0-y1 < b {
		plot(x0-1, y0)
		plot(x1+1, y0)
		y0++
		plot(x0-1, y1)
		plot(x1+1, y1)
		y1--
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Circ draws a filled circle.
func (d *Draw) Circ(x, y, r int, color uint8) {
	d.Elli(x, y, r, r, color)
}

// Circb draws the border of a circle.
func (d *Draw) Circb(x, y, r int, color uint8) {
	d.Ellib(x, y, r, r, color)
}

// Elli draws a filled ellipse with the horizontal and vertical radii.
func (d *Draw) Elli(x, y, a, b int, color uint8) {
	if a < 0 || b < 0 {
		return
	}
	d.initSides()
	ellipse(x-a, y-b, x+a, y+b, d.setSide)
	d.fillSides(d.mapColor(color))
}

// Ellib draws the border of an ellipse.
func (d *Draw) Ellib(x, y, a, b int, color uint8) {
	if a < 0 || b < 0 {
		return
	}
	color = d.mapColor(color)
	ellipse(x-a, y-b, x+a, y+b, func(x, y int) {
		d.setPixel(x, y, color)
	})
}

// integer line rasteriser used by the triangle primitives
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Tri draws a filled triangle.
func (d *Draw) Tri(x1, y1, x2, y2, x3, y3 int, color uint8) {
	d.initSides()
	bresenham(x1, y1, x2, y2, d.setSide)
	bresenham(x2, y2, x3, y3, d.setSide)
	bresenham(x3, y3, x1, y1, d.setSide)
	d.fillSides(d.mapColor(color))
}

// Trib draws the border of a triangle.
func (d *Draw) Trib(x1, y1, x2, y2, x3, y3 int, color uint8) {
	color = d.mapColor(color)
	plot := func(x, y int) {
		d.setPixel(x, y, color)
	}
	bresenham(x1, y1, x2, y2, plot)
	bresenham(x2, y2, x3, y3, plot)
	bresenham(x3, y3, x1, y1, plot)
}

// Vertex is a corner of a textured triangle. X and Y are screen
// coordinates and U and V are texture coordinates.
type Vertex struct {
	X, Y float64
	U, V float64
}

// Textri draws a triangle textured from the tilesheet of the current blit
// segment or, if useMap is true, from the map. Texture colours in the trans
// list are not drawn.
func (d *Draw) Textri(v1, v2, v3 Vertex, useMap bool, trans []uint8) {
	mapping := d.transparency(trans)

	area := (v2.X-v1.X)*(v3.Y-v1.Y) - (v3.X-v1.X)*(v2.Y-v1.Y)
	if area == 0 {
		return
	}

	minX := max(int(math.Floor(min(v1.X, v2.X, v3.X))), d.clip.L)
	maxX := min(int(math.Ceil(max(v1.X, v2.X, v3.X))), d.clip.R-1)
	minY := max(int(math.Floor(min(v1.Y, v2.Y, v3.Y))), d.clip.T)
	maxY := min(int(math.Ceil(max(v1.Y, v2.Y, v3.Y))), d.clip.B-1)

	sheet := d.sheet()
	sw := sheet.Width()
	sh := sheet.Height()

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			// barycentric weights
			w1 := ((v2.X-px)*(v3.Y-py) - (v3.X-px)*(v2.Y-py)) / area
			w2 := ((v3.X-px)*(v1.Y-py) - (v1.X-px)*(v3.Y-py)) / area
			w3 := 1 - w1 - w2
			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}

			u := int(math.Floor(w1*v1.U + w2*v2.U + w3*v3.U))
			v := int(math.Floor(w1*v1.V + w2*v2.V + w3*v3.V))

			var c uint8
			if useMap {
				mw := MapWidth * 8
				mh := MapHeight * 8
				u = ((u % mw) + mw) % mw
				v = ((v % mh) + mh) % mh
				tile := sheet.Tile(int(d.Mget(u/8, v/8)), true)
				c = tile.Pixel(u&7, v&7)
			} else {
				u = ((u % sw) + sw) % sw
				v = ((v % sh) + sh) % sh
				c = sheet.Pixel(u, v)
			}

			if mapping[c] != TransparentColor {
				d.target.SetPixel(x, y, d.mapColor(mapping[c]))
			}
		}
	}
}

// transparency returns a colour mapping where the colours in the trans list
// map to TransparentColor and all other colours map to themselves.
func (d *Draw) transparency(trans []uint8) [16]uint8 {
	var mapping [16]uint8
	for i := range mapping {
		mapping[i] = uint8(i)
	}
	for _, t := range trans {
		if t < 16 {
			mapping[t] = TransparentColor
		}
	}
	return mapping
}

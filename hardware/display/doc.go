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

// Package display converts the 4bpp screen plane in RAM into a frame of
// 32bit pixels, including the border that surrounds the screen.
//
// The conversion happens one row at a time. A scanline hook is called
// before each row is converted and may change the palette, the scroll
// offsets or the border colour. Those changes are visible to the row being
// converted and to every row after it. Once every row has been converted the
// overline hook is called. The overline hook draws directly into the frame
// through the Display's implementation of the draw.Target interface.
package display

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

// Package draw implements the drawing primitives of the console.
//
// All drawing goes through a Target. The default target is the 4bpp screen
// plane in RAM. While the overlay hook is running the console swaps in a
// target that writes directly into the output frame (see the display
// package). The target is restored to the screen plane at the start of
// every tick with ResetTarget().
//
// Every colour written by a primitive is first passed through the palette
// map in RAM. Every pixel write is clipped to the clip rectangle.
package draw

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

// Package lua is the Lua language for the console. It registers itself with
// the script package when it is imported.
//
// Programs have access to the base, package, coroutine, table, string, math
// and debug libraries and to the console API. Programs can not load other
// files.
//
// The entry points of a program are the global functions TIC (called every
// tick and required), SCN (called before every row of the screen is drawn)
// and OVR (called once the frame is complete, for drawing to the overlay).
// For older programs a function named scanline is also called before every
// row.
package lua

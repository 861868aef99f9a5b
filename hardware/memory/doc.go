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

// Package memory implements the live RAM image of the console and its
// synchronisation with the cartridge.
//
// RAM is a fixed size byte arena. Every piece of hardware state that a
// program can observe lives somewhere in the arena and is addressed by the
// areas defined in memorymap.go. There is no aliasing of Go types onto the
// arena. Packed fields are read and written with explicit accessors by the
// packages that understand them (display, sound, input).
//
// Sections of RAM that have a counterpart in a cartridge bank are copied
// between the two with Sync(). Each section is copied at most once per
// direction per tick. The mask of synced sections is cleared by
// ResetTickSyncMask() at the start of every tick.
package memory

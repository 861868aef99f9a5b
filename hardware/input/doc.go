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

// Package input is the input hardware of the console. The state of the
// gamepads, the mouse and the keyboard is stored in RAM where it can be
// read by the running program with peek() as well as by the btn(), key()
// and mouse() family of functions.
//
// The host supplies a State to Set() once per tick. The hold counters used
// by Btnp() and Keyp() are advanced by TickStart() and the previous state is
// recorded by TickEnd(). A button that is held down will be reported as
// pressed by Btnp() on the first tick and then, if a hold and period is
// given, every period ticks once the button has been held for the hold
// duration.
//
// Input devices that the running cartridge does not use can be disabled
// with SetDevices(). The RAM for a disabled device is always zero.
package input

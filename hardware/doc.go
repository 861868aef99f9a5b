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

// Package hardware is the base package of the console. It and its
// sub-packages contain everything required for a headless console.
//
// The Console type is the root of the console and owns the RAM, the
// cartridge and every hardware component. The host drives the console by
// calling Tick() sixty times a second with the current state of the input
// devices. Each tick runs the program for one frame and produces a frame of
// video (see Frame()) and a tick's worth of audio (see Samples()).
//
// The Host interface is how the console reports errors and other events to
// the program that is hosting it. The console never blocks on the host.
package hardware

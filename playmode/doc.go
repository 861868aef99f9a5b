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

// Package playmode runs a cartridge in a window. It wires the console to the
// television, the GUI and the audio output and runs the tick loop until the
// user quits or the program asks to exit.
//
// The following keys are handled by playmode and are not seen by the
// running program:
//
//	Escape    quit
//	F11       toggle full screen
//	F12       save a screenshot
//	Ctrl+R    reset the console
//
// The persistent memory of a cartridge is saved to disk when playmode ends
// and periodically while the program is running. Cartridges that share a
// saveid metatag share persistent memory.
//
// User input can be recorded for later playback with the recorder package.
// Ctrl+R is ignored while recording.
package playmode

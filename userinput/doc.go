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

// Package userinput handles input from the host's user interface. The user
// interface sends host neutral events, defined in this package, and the
// Controllers type turns them into the input.State given to the console on
// every tick.
//
// Keyboard events are identified by the name of the key. Names from the
// SDL and Ebitengine backends are both understood. The cursor keys and the
// Z, X, A and S keys also act as the first gamepad.
package userinput

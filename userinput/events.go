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

package userinput

// Event is the interface for all user input events.
type Event interface{}

// EventQuit is sent when the user closes the window.
type EventQuit struct{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventMouseMotion is sent when the mouse moves. The coordinates are in
// pixels of the console frame, including the border.
type EventMouseMotion struct {
	X int
	Y int
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseWheel is sent when the mouse wheel moves.
type EventMouseWheel struct {
	X int
	Y int
}

// GamepadButton identifies a button on a gamepad.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonUp
	GamepadButtonDown
	GamepadButtonLeft
	GamepadButtonRight
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
)

// EventGamepadButton is sent when a gamepad button is pressed or released.
// The ID is the gamepad number, starting from zero.
type EventGamepadButton struct {
	ID     int
	Button GamepadButton
	Down   bool
}

// EventGamepadStick is sent when the left thumbstick of a gamepad moves. The
// axes are between -1.0 and 1.0.
type EventGamepadStick struct {
	ID int
	X  float32
	Y  float32
}

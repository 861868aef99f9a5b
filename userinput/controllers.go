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

import (
	"slices"

	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/input"
)

// the amount a thumbstick must move before it counts as a direction
const stickDeadzone = 0.5

// limits of the scroll values in the mouse state
const (
	scrollMin = -32
	scrollMax = 31
)

// Controllers keeps track of the user input and produces the input state
// for the console.
type Controllers struct {
	// keys currently held, in the order they were pressed
	keys []input.Key

	// gamepad buttons from gamepad events. the first gamepad is also
	// affected by the keyboard
	gamepads [input.Gamepads]uint8
	sticks   [input.Gamepads]uint8

	mouse input.Mouse

	// whether the last keyboard event was consumed by the console
	LastKeyHandled bool

	// the last event was a quit event
	Quit bool
}

func buttonBit(b int) uint8 {
	return 1 << b
}

func (c *Controllers) keyboard(ev EventKeyboard) {
	c.LastKeyHandled = false

	if ev.Repeat {
		return
	}

	k := KeyCode(ev.Key)
	if k == input.KeyNone {
		return
	}
	c.LastKeyHandled = true

	i := slices.Index(c.keys, k)
	if ev.Down {
		if i < 0 {
			c.keys = append(c.keys, k)
		}
	} else if i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
}

func (c *Controllers) mouseMotion(ev EventMouseMotion) {
	c.mouse.X = min(max(ev.X-display.MarginLeft, 0), display.Width-1)
	c.mouse.Y = min(max(ev.Y-display.MarginTop, 0), display.Height-1)
}

func (c *Controllers) mouseButton(ev EventMouseButton) {
	switch ev.Button {
	case MouseButtonLeft:
		c.mouse.Left = ev.Down
	case MouseButtonMiddle:
		c.mouse.Middle = ev.Down
	case MouseButtonRight:
		c.mouse.Right = ev.Down
	}
}

func (c *Controllers) mouseWheel(ev EventMouseWheel) {
	c.mouse.ScrollX = min(max(c.mouse.ScrollX+ev.X, scrollMin), scrollMax)
	c.mouse.ScrollY = min(max(c.mouse.ScrollY+ev.Y, scrollMin), scrollMax)
}

func (c *Controllers) gamepadButton(ev EventGamepadButton) {
	if ev.ID < 0 || ev.ID >= input.Gamepads {
		return
	}

	var bit uint8
	switch ev.Button {
	case GamepadButtonUp:
		bit = buttonBit(input.Up)
	case GamepadButtonDown:
		bit = buttonBit(input.Down)
	case GamepadButtonLeft:
		bit = buttonBit(input.Left)
	case GamepadButtonRight:
		bit = buttonBit(input.Right)
	case GamepadButtonA:
		bit = buttonBit(input.A)
	case GamepadButtonB:
		bit = buttonBit(input.B)
	case GamepadButtonX:
		bit = buttonBit(input.X)
	case GamepadButtonY:
		bit = buttonBit(input.Y)
	default:
		return
	}

	if ev.Down {
		c.gamepads[ev.ID] |= bit
	} else {
		c.gamepads[ev.ID] &^= bit
	}
}

func (c *Controllers) gamepadStick(ev EventGamepadStick) {
	if ev.ID < 0 || ev.ID >= input.Gamepads {
		return
	}

	var dir uint8
	switch {
	case ev.X < -stickDeadzone:
		dir |= buttonBit(input.Left)
	case ev.X > stickDeadzone:
		dir |= buttonBit(input.Right)
	}
	switch {
	case ev.Y < -stickDeadzone:
		dir |= buttonBit(input.Up)
	case ev.Y > stickDeadzone:
		dir |= buttonBit(input.Down)
	}
	c.sticks[ev.ID] = dir
}

// HandleUserInput updates the controller state with the event. Events that
// are not recognised are ignored.
func (c *Controllers) HandleUserInput(ev Event) {
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev)
	case EventMouseMotion:
		c.mouseMotion(ev)
	case EventMouseButton:
		c.mouseButton(ev)
	case EventMouseWheel:
		c.mouseWheel(ev)
	case EventGamepadButton:
		c.gamepadButton(ev)
	case EventGamepadStick:
		c.gamepadStick(ev)
	}
}

// State returns the input state for the next tick. The keyboard buffer
// holds the most recently pressed keys.
func (c *Controllers) State() input.State {
	var st input.State

	for i := range st.Gamepads {
		st.Gamepads[i] = c.gamepads[i] | c.sticks[i]
	}

	for _, k := range c.keys {
		if b, ok := keyButtons[k]; ok {
			st.Gamepads[0] |= buttonBit(b)
		}
	}

	keys := c.keys
	if len(keys) > input.KeyboardBuffer {
		keys = keys[len(keys)-input.KeyboardBuffer:]
	}
	copy(st.Keyboard[:], keys)

	st.Mouse = c.mouse

	return st
}

// EndTick should be called once the state has been given to the console.
// Scroll values are only reported once.
func (c *Controllers) EndTick() {
	c.mouse.ScrollX = 0
	c.mouse.ScrollY = 0
}

// Reset forgets all held keys and buttons.
func (c *Controllers) Reset() {
	*c = Controllers{}
}

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

package userinput_test

import (
	"testing"

	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/test"
	"github.com/gotic/gotic/userinput"
)

func TestKeyCode(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyCode("A"), input.KeyA)
	test.ExpectEquality(t, userinput.KeyCode("space"), input.KeySpace)
	test.ExpectEquality(t, userinput.KeyCode("Left Shift"), input.KeyShift)
	test.ExpectEquality(t, userinput.KeyCode("ShiftRight"), input.KeyShift)
	test.ExpectEquality(t, userinput.KeyCode("ArrowLeft"), input.KeyLeft)
	test.ExpectEquality(t, userinput.KeyCode("Digit7"), input.Key7)
	test.ExpectEquality(t, userinput.KeyCode("7"), input.Key7)
	test.ExpectEquality(t, userinput.KeyCode("["), input.KeyLeftBracket)
	test.ExpectEquality(t, userinput.KeyCode("F13"), input.KeyNone)
}

func TestKeyboard(t *testing.T) {
	var c userinput.Controllers

	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: true})
	test.ExpectSuccess(t, c.LastKeyHandled)
	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true})
	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true, Repeat: true})
	test.ExpectFailure(t, c.LastKeyHandled)

	st := c.State()
	test.ExpectEquality(t, st.Keyboard[0], input.KeyQ)
	test.ExpectEquality(t, st.Keyboard[1], input.KeyW)
	test.ExpectEquality(t, st.Keyboard[2], input.KeyNone)

	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: false})
	st = c.State()
	test.ExpectEquality(t, st.Keyboard[0], input.KeyW)
	test.ExpectEquality(t, st.Keyboard[1], input.KeyNone)

	// only the most recent keys fit in the buffer
	for _, k := range []string{"1", "2", "3", "4"} {
		c.HandleUserInput(userinput.EventKeyboard{Key: k, Down: true})
	}
	st = c.State()
	test.ExpectEquality(t, st.Keyboard[0], input.Key1)
	test.ExpectEquality(t, st.Keyboard[3], input.Key4)

	c.HandleUserInput(userinput.EventKeyboard{Key: "Unknown", Down: true})
	test.ExpectFailure(t, c.LastKeyHandled)
}

func TestKeyboardGamepad(t *testing.T) {
	var c userinput.Controllers

	c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: true})
	c.HandleUserInput(userinput.EventKeyboard{Key: "Z", Down: true})
	st := c.State()
	test.ExpectEquality(t, st.Gamepads[0], uint8(1<<input.Up|1<<input.A))

	// the keys are also in the keyboard buffer
	test.ExpectEquality(t, st.Keyboard[0], input.KeyUp)
	test.ExpectEquality(t, st.Keyboard[1], input.KeyZ)
}

func TestGamepad(t *testing.T) {
	var c userinput.Controllers

	c.HandleUserInput(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonB, Down: true})
	c.HandleUserInput(userinput.EventGamepadStick{ID: 1, X: -0.9, Y: 0.1})
	st := c.State()
	test.ExpectEquality(t, st.Gamepads[0], uint8(0))
	test.ExpectEquality(t, st.Gamepads[1], uint8(1<<input.B|1<<input.Left))

	c.HandleUserInput(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonB, Down: false})
	c.HandleUserInput(userinput.EventGamepadStick{ID: 1})
	test.ExpectEquality(t, c.State().Gamepads[1], uint8(0))

	// out of range gamepads are ignored
	c.HandleUserInput(userinput.EventGamepadButton{ID: 9, Button: userinput.GamepadButtonA, Down: true})
	test.ExpectEquality(t, c.State(), input.State{})
}

func TestMouse(t *testing.T) {
	var c userinput.Controllers

	c.HandleUserInput(userinput.EventMouseMotion{X: display.MarginLeft + 10, Y: display.MarginTop + 20})
	c.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true})
	c.HandleUserInput(userinput.EventMouseWheel{Y: -1})
	c.HandleUserInput(userinput.EventMouseWheel{Y: -100})

	st := c.State()
	test.ExpectEquality(t, st.Mouse.X, 10)
	test.ExpectEquality(t, st.Mouse.Y, 20)
	test.ExpectSuccess(t, st.Mouse.Right)
	test.ExpectFailure(t, st.Mouse.Left)
	test.ExpectEquality(t, st.Mouse.ScrollY, -32)

	c.EndTick()
	test.ExpectEquality(t, c.State().Mouse.ScrollY, 0)

	// positions in the border are clamped to the screen
	c.HandleUserInput(userinput.EventMouseMotion{X: 0, Y: display.FullHeight})
	st = c.State()
	test.ExpectEquality(t, st.Mouse.X, 0)
	test.ExpectEquality(t, st.Mouse.Y, display.Height-1)
}

func TestQuit(t *testing.T) {
	var c userinput.Controllers
	c.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true})
	c.HandleUserInput(userinput.EventQuit{})
	test.ExpectSuccess(t, c.Quit)

	c.Reset()
	test.ExpectFailure(t, c.Quit)
	test.ExpectEquality(t, c.State(), input.State{})
}

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

package ebitenplay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gotic/gotic/userinput"
)

// the standard gamepad buttons reported to the console
var gamepadButtons = map[ebiten.StandardGamepadButton]userinput.GamepadButton{
	ebiten.StandardGamepadButtonLeftTop:     userinput.GamepadButtonUp,
	ebiten.StandardGamepadButtonLeftBottom:  userinput.GamepadButtonDown,
	ebiten.StandardGamepadButtonLeftLeft:    userinput.GamepadButtonLeft,
	ebiten.StandardGamepadButtonLeftRight:   userinput.GamepadButtonRight,
	ebiten.StandardGamepadButtonRightBottom: userinput.GamepadButtonA,
	ebiten.StandardGamepadButtonRightRight:  userinput.GamepadButtonB,
	ebiten.StandardGamepadButtonRightLeft:   userinput.GamepadButtonX,
	ebiten.StandardGamepadButtonRightTop:    userinput.GamepadButtonY,
}

var mouseButtons = map[ebiten.MouseButton]userinput.MouseButton{
	ebiten.MouseButtonLeft:   userinput.MouseButtonLeft,
	ebiten.MouseButtonMiddle: userinput.MouseButtonMiddle,
	ebiten.MouseButtonRight:  userinput.MouseButtonRight,
}

// inputState converts the polled input of Ebitengine to userinput events
type inputState struct {
	events []userinput.Event
	keys   []ebiten.Key
	pads   []ebiten.GamepadID

	mouseX, mouseY int

	// the last stick position reported for each gamepad
	sticks map[ebiten.GamepadID][2]float32
}

func keyMod() userinput.KeyMod {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight):
		return userinput.KeyModAlt
	case ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight):
		return userinput.KeyModShift
	case ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight):
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// poll returns the input events since the previous call. the returned slice
// is reused by the next call
func (in *inputState) poll() []userinput.Event {
	in.events = in.events[:0]

	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, userinput.EventQuit{})
	}

	mod := keyMod()

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.events = append(in.events, userinput.EventKeyboard{Key: k.String(), Down: true, Mod: mod})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.events = append(in.events, userinput.EventKeyboard{Key: k.String(), Down: false, Mod: mod})
	}

	// the cursor position is in the coordinates of the layout, which is
	// the size of the frame
	x, y := ebiten.CursorPosition()
	if x != in.mouseX || y != in.mouseY {
		in.mouseX = x
		in.mouseY = y
		in.events = append(in.events, userinput.EventMouseMotion{X: x, Y: y})
	}

	for b, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.events = append(in.events, userinput.EventMouseButton{Button: mb, Down: true})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			in.events = append(in.events, userinput.EventMouseButton{Button: mb, Down: false})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		in.events = append(in.events, userinput.EventMouseWheel{X: int(wx), Y: int(wy)})
	}

	in.pollGamepads()

	return in.events
}

func (in *inputState) pollGamepads() {
	if in.sticks == nil {
		in.sticks = make(map[ebiten.GamepadID][2]float32)
	}

	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	for n, id := range in.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		for b, gb := range gamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				in.events = append(in.events, userinput.EventGamepadButton{ID: n, Button: gb, Down: true})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				in.events = append(in.events, userinput.EventGamepadButton{ID: n, Button: gb, Down: false})
			}
		}

		stick := [2]float32{
			float32(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)),
			float32(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)),
		}
		if stick != in.sticks[id] {
			in.sticks[id] = stick
			in.events = append(in.events, userinput.EventGamepadStick{ID: n, X: stick[0], Y: stick[1]})
		}
	}
}

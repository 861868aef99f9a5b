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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/userinput"
)

// the range of values reported by a joystick axis
const axisRange = 32768.0

// Run implements the gui.GUI interface. It must be called from the main
// goroutine.
func (scr *SdlPlay) Run(h gui.Handler) error {
	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason; we only want one value per frame
	// which we can do with a single call to GetMouseState()
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			scr.service(ev, h)
		}
		scr.serviceMouse(h)

		ok, err := h.Tick()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

func (scr *SdlPlay) service(ev sdl.Event, h gui.Handler) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		h.UserInput(userinput.EventQuit{})

	case *sdl.KeyboardEvent:
		h.UserInput(userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
			Mod:    keyMod(),
		})

	case *sdl.MouseButtonEvent:
		button := userinput.MouseButtonNone
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = userinput.MouseButtonLeft
		case sdl.BUTTON_MIDDLE:
			button = userinput.MouseButtonMiddle
		case sdl.BUTTON_RIGHT:
			button = userinput.MouseButtonRight
		}
		if button != userinput.MouseButtonNone {
			h.UserInput(userinput.EventMouseButton{
				Button: button,
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
			})
		}

	case *sdl.MouseWheelEvent:
		h.UserInput(userinput.EventMouseWheel{X: int(ev.X), Y: int(ev.Y)})

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for the added event Which is the device index
			scr.openGamepad(int(ev.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if i := scr.gamepad(ev.Which); i >= 0 {
				scr.pads[i].Close()
				scr.pads = append(scr.pads[:i], scr.pads[i+1:]...)
			}
		}

	case *sdl.ControllerButtonEvent:
		id := scr.gamepad(ev.Which)
		if id < 0 {
			return
		}

		button := userinput.GamepadButtonNone
		switch sdl.GameControllerButton(ev.Button) {
		case sdl.CONTROLLER_BUTTON_DPAD_UP:
			button = userinput.GamepadButtonUp
		case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
			button = userinput.GamepadButtonDown
		case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
			button = userinput.GamepadButtonLeft
		case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
			button = userinput.GamepadButtonRight
		case sdl.CONTROLLER_BUTTON_A:
			button = userinput.GamepadButtonA
		case sdl.CONTROLLER_BUTTON_B:
			button = userinput.GamepadButtonB
		case sdl.CONTROLLER_BUTTON_X:
			button = userinput.GamepadButtonX
		case sdl.CONTROLLER_BUTTON_Y:
			button = userinput.GamepadButtonY
		}

		if button != userinput.GamepadButtonNone {
			h.UserInput(userinput.EventGamepadButton{
				ID:     id,
				Button: button,
				Down:   ev.State == sdl.PRESSED,
			})
		}

	case *sdl.ControllerAxisEvent:
		id := scr.gamepad(ev.Which)
		if id < 0 {
			return
		}

		switch sdl.GameControllerAxis(ev.Axis) {
		case sdl.CONTROLLER_AXIS_LEFTX, sdl.CONTROLLER_AXIS_LEFTY:
			pad := scr.pads[id]
			h.UserInput(userinput.EventGamepadStick{
				ID: id,
				X:  float32(pad.Axis(sdl.CONTROLLER_AXIS_LEFTX)) / axisRange,
				Y:  float32(pad.Axis(sdl.CONTROLLER_AXIS_LEFTY)) / axisRange,
			})
		}
	}
}

// mouse motion is polled once per frame
func (scr *SdlPlay) serviceMouse(h gui.Handler) {
	mx, my, _ := sdl.GetMouseState()

	// the mouse state is in window coordinates. the fit is in renderer
	// coordinates, which differ on high DPI displays
	ww, wh := scr.window.GetSize()
	rw, rh, err := scr.renderer.GetOutputSize()
	if err == nil && ww > 0 && wh > 0 {
		mx = mx * rw / ww
		my = my * rh / wh
	}

	x, y := scr.fit().ToFrame(int(mx), int(my))
	if x != scr.mouseX || y != scr.mouseY {
		scr.mouseX = x
		scr.mouseY = y
		h.UserInput(userinput.EventMouseMotion{X: x, Y: y})
	}
}

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
	"strings"

	"github.com/gotic/gotic/hardware/input"
)

// key names used by the backends that differ from the names of the console
// keys. both the SDL names and the Ebitengine names are listed
var keyAliases = map[string]input.Key{
	"-":            input.KeyMinus,
	"=":            input.KeyEquals,
	"[":            input.KeyLeftBracket,
	"]":            input.KeyRightBracket,
	"\\":           input.KeyBackslash,
	";":            input.KeySemicolon,
	"'":            input.KeyApostrophe,
	"`":            input.KeyGrave,
	",":            input.KeyComma,
	".":            input.KeyPeriod,
	"/":            input.KeySlash,
	"equal":        input.KeyEquals,
	"bracketleft":  input.KeyLeftBracket,
	"bracketright": input.KeyRightBracket,
	"quote":        input.KeyApostrophe,
	"backquote":    input.KeyGrave,
	"enter":        input.KeyReturn,
	"keypad enter": input.KeyReturn,
	"numpadenter":  input.KeyReturn,
	"arrowup":      input.KeyUp,
	"arrowdown":    input.KeyDown,
	"arrowleft":    input.KeyLeft,
	"arrowright":   input.KeyRight,
	"left ctrl":    input.KeyCtrl,
	"right ctrl":   input.KeyCtrl,
	"controlleft":  input.KeyCtrl,
	"controlright": input.KeyCtrl,
	"left shift":   input.KeyShift,
	"right shift":  input.KeyShift,
	"shiftleft":    input.KeyShift,
	"shiftright":   input.KeyShift,
	"left alt":     input.KeyAlt,
	"right alt":    input.KeyAlt,
	"altleft":      input.KeyAlt,
	"altright":     input.KeyAlt,
}

// KeyCode returns the console key for the name of a key. Returns
// input.KeyNone if the key has no equivalent.
func KeyCode(name string) input.Key {
	if k := input.KeyByName(name); k != input.KeyNone {
		return k
	}

	lower := strings.ToLower(name)
	if k, ok := keyAliases[lower]; ok {
		return k
	}

	// Ebitengine names the number keys Digit0 to Digit9
	if d, ok := strings.CutPrefix(lower, "digit"); ok {
		return input.KeyByName(d)
	}

	return input.KeyNone
}

// the keys that act as the buttons of the first gamepad
var keyButtons = map[input.Key]int{
	input.KeyUp:    input.Up,
	input.KeyDown:  input.Down,
	input.KeyLeft:  input.Left,
	input.KeyRight: input.Right,
	input.KeyZ:     input.A,
	input.KeyX:     input.B,
	input.KeyA:     input.X,
	input.KeyS:     input.Y,
}

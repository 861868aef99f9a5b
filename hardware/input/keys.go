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

package input

import "strings"

// Key is a keyboard code as stored in the keyboard buffer.
type Key uint8

// List of valid Key values. The zero value means no key.
const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeySpace
	KeyTab
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCapsLock
	KeyCtrl
	KeyShift
	KeyAlt

	// number of key codes including KeyNone
	KeyCount
)

var keyNames = [KeyCount]string{
	"", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"Minus", "Equals", "LeftBracket", "RightBracket", "Backslash",
	"Semicolon", "Apostrophe", "Grave", "Comma", "Period", "Slash",
	"Space", "Tab", "Return", "Backspace", "Delete", "Insert",
	"PageUp", "PageDown", "Home", "End", "Up", "Down", "Left", "Right",
	"CapsLock", "Ctrl", "Shift", "Alt",
}

func (k Key) String() string {
	if k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Valid returns true if the key is a key code other than KeyNone.
func (k Key) Valid() bool {
	return k > KeyNone && k < KeyCount
}

// KeyByName returns the Key with the name. The comparison is case
// insensitive. Returns KeyNone if the name is not recognised.
func KeyByName(name string) Key {
	if name == "" {
		return KeyNone
	}
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(k)
		}
	}
	return KeyNone
}

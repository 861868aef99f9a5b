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

import (
	"strings"

	"github.com/gotic/gotic/bitpack"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/memory"
)

// Gamepad buttons. The button index used by Btn() and Btnp() is the gamepad
// number multiplied by ButtonsPerGamepad plus the button.
const (
	Up = iota
	Down
	Left
	Right
	A
	B
	X
	Y
	ButtonsPerGamepad
)

// Input hardware constants.
const (
	Gamepads       = 4
	Buttons        = Gamepads * ButtonsPerGamepad
	KeyboardBuffer = 4
)

// Sentinel error patterns.
const (
	UnknownDevice = "input: unknown device (%s)"
)

// Mouse is the state of the mouse. The scroll values are between -32 and 31.
type Mouse struct {
	X       int
	Y       int
	Left    bool
	Middle  bool
	Right   bool
	ScrollX int
	ScrollY int
}

// State is the state of all input devices for a single tick.
type State struct {
	// one bit per button as defined by the button constants
	Gamepads [Gamepads]uint8

	Mouse Mouse

	// the keys that are down. unused entries are KeyNone
	Keyboard [KeyboardBuffer]Key
}

// Devices that are used by the running program.
type Devices struct {
	Gamepad  bool
	Mouse    bool
	Keyboard bool
}

// AllDevices is the default value for Devices.
var AllDevices = Devices{Gamepad: true, Mouse: true, Keyboard: true}

// ParseDevices parses a comma separated list of device names. Valid names
// are "gamepad", "mouse" and "keyboard". An empty string is the same as
// AllDevices.
func ParseDevices(s string) (Devices, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllDevices, nil
	}

	var d Devices
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "gamepad":
			d.Gamepad = true
		case "mouse":
			d.Mouse = true
		case "keyboard":
			d.Keyboard = true
		default:
			return AllDevices, curated.Errorf(UnknownDevice, n)
		}
	}
	return d, nil
}

// Input is the input hardware of the console.
type Input struct {
	mem     *memory.Memory
	devices Devices

	// state of the gamepads and keyboard at the end of the previous tick
	prev struct {
		gamepads [Gamepads]uint8
		keyboard [KeyboardBuffer]Key
	}

	// number of consecutive ticks that a button or key has been held
	holds struct {
		buttons [Buttons]int
		keys    [KeyCount]int
	}
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(mem *memory.Memory) *Input {
	inp := &Input{
		mem:     mem,
		devices: AllDevices,
	}
	inp.Clear()
	return inp
}

// Clear input RAM, the hold counters and the previous state.
func (inp *Input) Clear() {
	clear(inp.mem.Area(memory.Gamepads))
	clear(inp.mem.Area(memory.Mouse))
	clear(inp.mem.Area(memory.Keyboard))
	inp.prev.gamepads = [Gamepads]uint8{}
	inp.prev.keyboard = [KeyboardBuffer]Key{}
	inp.holds.buttons = [Buttons]int{}
	inp.holds.keys = [KeyCount]int{}
}

// SetDevices sets which devices are visible to the running program.
func (inp *Input) SetDevices(d Devices) {
	inp.devices = d
}

// Devices returns the devices visible to the running program.
func (inp *Input) Devices() Devices {
	return inp.devices
}

// Set writes the state of the input devices to RAM. State for disabled
// devices is ignored.
func (inp *Input) Set(st State) {
	gp := inp.mem.Area(memory.Gamepads)
	if inp.devices.Gamepad {
		copy(gp, st.Gamepads[:])
	} else {
		clear(gp)
	}

	m := inp.mem.Area(memory.Mouse)
	if inp.devices.Mouse {
		m[0] = uint8(st.Mouse.X)
		m[1] = uint8(st.Mouse.Y)

		var v uint16
		if st.Mouse.Left {
			v |= 0x01
		}
		if st.Mouse.Middle {
			v |= 0x02
		}
		if st.Mouse.Right {
			v |= 0x04
		}
		v |= uint16(st.Mouse.ScrollX&0x3f) << 3
		v |= uint16(st.Mouse.ScrollY&0x3f) << 9
		m[2] = uint8(v)
		m[3] = uint8(v >> 8)
	} else {
		clear(m)
	}

	kb := inp.mem.Area(memory.Keyboard)
	clear(kb)
	if inp.devices.Keyboard {
		for i, k := range st.Keyboard {
			if k.Valid() {
				kb[i] = uint8(k)
			}
		}
	}
}

// TickStart advances the hold counters of the gamepad buttons and keys.
func (inp *Input) TickStart() {
	gp := inp.mem.Area(memory.Gamepads)
	for i := range Buttons {
		prevDown := bitpack.Peek1(inp.prev.gamepads[:], i) == 1
		down := bitpack.Peek1(gp, i) == 1
		if prevDown && prevDown == down {
			inp.holds.buttons[i]++
		} else {
			inp.holds.buttons[i] = 0
		}
	}

	for k := KeyNone + 1; k < KeyCount; k++ {
		if inp.prevKey(k) && inp.Key(k) {
			inp.holds.keys[k]++
		} else {
			inp.holds.keys[k] = 0
		}
	}
}

// TickEnd records the state of the gamepads and keyboard for the next tick.
func (inp *Input) TickEnd() {
	copy(inp.prev.gamepads[:], inp.mem.Area(memory.Gamepads))
	for i, k := range inp.mem.Area(memory.Keyboard) {
		inp.prev.keyboard[i] = Key(k)
	}
}

// a button or key is pressed if it is down now and was not down in the
// previous tick. a button that has been held for at least hold ticks is
// treated as being released every period ticks
func pressed(prevDown bool, down bool, holds int, hold int, period int) bool {
	if hold >= 0 && period > 0 && holds >= hold && holds%period == 0 {
		prevDown = false
	}
	return !prevDown && down
}

// Btn returns true if the button is down. The button index is described by
// the button constants.
func (inp *Input) Btn(index int) bool {
	if index < 0 || index >= Buttons {
		return false
	}
	return bitpack.Peek1(inp.mem.Area(memory.Gamepads), index) == 1
}

// Buttons returns the state of every button of every gamepad. One bit per
// button.
func (inp *Input) Buttons() uint32 {
	gp := inp.mem.Area(memory.Gamepads)
	return uint32(gp[0]) | uint32(gp[1])<<8 | uint32(gp[2])<<16 | uint32(gp[3])<<24
}

// Btnp returns true if the button has been pressed. See the package
// documentation for the meaning of hold and period. A negative hold or a
// period of zero disables the repeat.
func (inp *Input) Btnp(index int, hold int, period int) bool {
	if index < 0 || index >= Buttons {
		return false
	}
	prevDown := bitpack.Peek1(inp.prev.gamepads[:], index) == 1
	return pressed(prevDown, inp.Btn(index), inp.holds.buttons[index], hold, period)
}

// Pressed returns the result of Btnp() for every button of every gamepad.
// One bit per button.
func (inp *Input) Pressed(hold int, period int) uint32 {
	var v uint32
	for i := range Buttons {
		if inp.Btnp(i, hold, period) {
			v |= 1 << i
		}
	}
	return v
}

func (inp *Input) prevKey(k Key) bool {
	for _, p := range inp.prev.keyboard {
		if p == k {
			return true
		}
	}
	return false
}

// Key returns true if the key is down. KeyNone returns true if any key is
// down.
func (inp *Input) Key(k Key) bool {
	for _, b := range inp.mem.Area(memory.Keyboard) {
		if k == KeyNone {
			if Key(b).Valid() {
				return true
			}
		} else if Key(b) == k {
			return true
		}
	}
	return false
}

// Keyp returns true if the key has been pressed. The hold and period
// arguments are the same as for Btnp(). KeyNone returns true if any key
// has been pressed.
func (inp *Input) Keyp(k Key, hold int, period int) bool {
	if k == KeyNone {
		for k := KeyNone + 1; k < KeyCount; k++ {
			if inp.Keyp(k, hold, period) {
				return true
			}
		}
		return false
	}
	if !k.Valid() {
		return false
	}
	return pressed(inp.prevKey(k), inp.Key(k), inp.holds.keys[k], hold, period)
}

// Mouse returns the state of the mouse as stored in RAM.
func (inp *Input) Mouse() Mouse {
	m := inp.mem.Area(memory.Mouse)
	v := uint16(m[2]) | uint16(m[3])<<8

	// sign extend the six bit scroll values
	scroll := func(v uint16) int {
		return int(int8(uint8(v&0x3f)<<2) >> 2)
	}

	return Mouse{
		X:       int(m[0]),
		Y:       int(m[1]),
		Left:    v&0x01 == 0x01,
		Middle:  v&0x02 == 0x02,
		Right:   v&0x04 == 0x04,
		ScrollX: scroll(v >> 3),
		ScrollY: scroll(v >> 9),
	}
}

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

package recorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/input"
)

// the first line of every transcript
const magicString = "gotic recording"

const fieldSep = ", "

// fields of an entry. the gamepad and keyboard fields are hex strings of
// one byte per gamepad or key
const (
	fieldTick int = iota
	fieldGamepads
	fieldMouseX
	fieldMouseY
	fieldMouseButtons
	fieldScrollX
	fieldScrollY
	fieldKeyboard
	fieldHash
	numFields
)

// playback file header format
// ---------------------------
//
// gotic recording
// <cartridge filename>
// <cartridge hash>
// <pixel format>
const (
	lineMagic int = iota
	lineCartName
	lineCartHash
	linePixelFormat
	numHeaderLines
)

// Sentinel error patterns.
const (
	NotARecording = "recorder: not a recording (%s)"
	BadEntry      = "recorder: bad entry at line %d: %v"
)

type header struct {
	cartName string
	cartHash string
	format   display.PixelFormat
}

func (h header) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%d\n", magicString, h.cartName, h.cartHash, h.format)
}

func readHeader(filename string, lines []string) (header, error) {
	var h header

	if len(lines) < numHeaderLines || lines[lineMagic] != magicString {
		return h, curated.Errorf(NotARecording, filename)
	}

	h.cartName = lines[lineCartName]
	h.cartHash = lines[lineCartHash]

	f, err := strconv.Atoi(lines[linePixelFormat])
	if err != nil {
		return h, curated.Errorf(NotARecording, filename)
	}
	h.format = display.PixelFormat(f)

	return h, nil
}

type entry struct {
	tick  int
	state input.State
	hash  string

	// the line in the recording file the entry appears
	line int
}

func mouseButtons(m input.Mouse) int {
	var b int
	if m.Left {
		b |= 0x01
	}
	if m.Middle {
		b |= 0x02
	}
	if m.Right {
		b |= 0x04
	}
	return b
}

func (e entry) String() string {
	var pads strings.Builder
	for _, g := range e.state.Gamepads {
		pads.WriteString(fmt.Sprintf("%02x", g))
	}

	var keys strings.Builder
	for _, k := range e.state.Keyboard {
		keys.WriteString(fmt.Sprintf("%02x", uint8(k)))
	}

	m := e.state.Mouse

	return strings.Join([]string{
		strconv.Itoa(e.tick),
		pads.String(),
		strconv.Itoa(m.X),
		strconv.Itoa(m.Y),
		strconv.Itoa(mouseButtons(m)),
		strconv.Itoa(m.ScrollX),
		strconv.Itoa(m.ScrollY),
		keys.String(),
		e.hash,
	}, fieldSep)
}

// parse a single hex string into a slice of bytes of exactly the required
// length
func parseHexBytes(s string, dest []byte) error {
	if len(s) != len(dest)*2 {
		return fmt.Errorf("expected %d hex digits", len(dest)*2)
	}
	for i := range dest {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return err
		}
		dest[i] = byte(v)
	}
	return nil
}

func parseEntry(s string, line int) (entry, error) {
	e := entry{line: line}

	toks := strings.Split(s, fieldSep)
	if len(toks) != numFields {
		return e, curated.Errorf(BadEntry, line, fmt.Sprintf("expected %d fields", numFields))
	}

	ints := make(map[int]int)
	for _, f := range []int{fieldTick, fieldMouseX, fieldMouseY, fieldMouseButtons, fieldScrollX, fieldScrollY} {
		v, err := strconv.Atoi(toks[f])
		if err != nil {
			return e, curated.Errorf(BadEntry, line, err)
		}
		ints[f] = v
	}

	e.tick = ints[fieldTick]
	if e.tick < 0 {
		return e, curated.Errorf(BadEntry, line, "negative tick")
	}

	if err := parseHexBytes(toks[fieldGamepads], e.state.Gamepads[:]); err != nil {
		return e, curated.Errorf(BadEntry, line, err)
	}

	var keys [input.KeyboardBuffer]byte
	if err := parseHexBytes(toks[fieldKeyboard], keys[:]); err != nil {
		return e, curated.Errorf(BadEntry, line, err)
	}
	for i, k := range keys {
		e.state.Keyboard[i] = input.Key(k)
	}

	e.state.Mouse = input.Mouse{
		X:       ints[fieldMouseX],
		Y:       ints[fieldMouseY],
		Left:    ints[fieldMouseButtons]&0x01 == 0x01,
		Middle:  ints[fieldMouseButtons]&0x02 == 0x02,
		Right:   ints[fieldMouseButtons]&0x04 == 0x04,
		ScrollX: ints[fieldScrollX],
		ScrollY: ints[fieldScrollY],
	}

	e.hash = toks[fieldHash]

	return e, nil
}

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

package script

import (
	"github.com/gotic/gotic/hardware/draw"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/hardware/sound"
)

// OutlineItem is a named location in a program. Pos is the byte offset of
// the name in the code.
type OutlineItem struct {
	Name string
	Pos  int
}

// Runtime is a running program.
type Runtime interface {
	// Init compiles and runs the top level of the program.
	Init(code string) error

	// Close releases the resources of the runtime. The runtime can not be
	// used after Close().
	Close()

	// Tick calls the program's per frame entry point. It is an error for the
	// entry point to be missing.
	Tick() error

	// Scanline and Overline call the program's optional raster hooks. A
	// missing hook is not an error.
	Scanline(row int) error
	Overline() error

	// Eval runs a fragment of code in the context of the program.
	Eval(code string) error
}

// API is the set of console functions available to a running program.
// Drawing, sound and input are reached through the hardware components.
type API interface {
	Draw() *draw.Draw
	Sound() *sound.Sound
	Input() *input.Input
	Memory() *memory.Memory

	// Peek and Poke access RAM in units of the number of bits, which must be
	// one of 1, 2, 4 or 8. The address is in the same units.
	Peek(address int, bits int) (uint8, error)
	Poke(address int, value uint8, bits int) error

	Memcpy(dst int, src int, size int) error
	Memset(dst int, value uint8, size int) error

	// Pmem returns the value of the persistent memory slot. If set is true
	// the slot is changed to value and the previous value is returned.
	Pmem(index int, value uint32, set bool) (uint32, error)

	// Sync copies sections between RAM and a bank of the cartridge.
	Sync(mask memory.SyncMask, bank int, toCart bool) error

	// Reset the console. The program is initialised again on the next tick.
	Reset()

	// Time returns the number of milliseconds since the program started.
	Time() float64

	// Tstamp returns the current unix time in seconds.
	Tstamp() int64

	Trace(msg string, color uint8)
	Exit()
}

// Config describes a language.
type Config struct {
	Name string

	// file extension of source files including the leading dot
	Extension string

	// comment tokens
	SingleComment      string
	BlockCommentStart  string
	BlockCommentEnd    string
	BlockCommentStart2 string
	BlockCommentEnd2   string

	BlockStringStart string
	BlockStringEnd   string

	Keywords []string

	// New creates a runtime for a program. The force exit function is polled
	// periodically while the program runs and the program is interrupted
	// with an error if it returns true.
	New func(api API, forceExit func() bool) Runtime

	// Outline lists the named functions in the code.
	Outline func(code string) []OutlineItem
}

// IsKeyword returns true if the word is a keyword of the language.
func (cfg *Config) IsKeyword(word string) bool {
	for _, k := range cfg.Keywords {
		if k == word {
			return true
		}
	}
	return false
}

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

package hardware

import (
	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/draw"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/hardware/sound"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/script"
)

// FrameRate is the number of ticks per second.
const FrameRate = 60

// the blit segment selected by a reset. 4bpp tiles and sprites
const defaultBlitSegment = 2

// Error messages reported to the host.
const (
	EmptyCode       = "the code is empty"
	NoScriptRuntime = "no script runtime available"
)

// Console is the root of the console hardware.
type Console struct {
	mem     *memory.Memory
	draw    *draw.Draw
	display *display.Display
	sound   *sound.Sound
	input   *input.Input

	host   Host
	format display.PixelFormat

	// the language of the loaded cartridge and the running program. runtime
	// is nil until the program has been successfully initialised
	config  *script.Config
	runtime script.Runtime

	initialized bool

	// counter value of the host when the program was initialised
	start uint64

	saveID string

	hooks struct {
		scanline func(row int)
		overline func()
	}
}

// NewConsole is the preferred method of initialisation for the Console type.
// A nil host will cause the console to use a LogHost.
func NewConsole(sampleRate int, host Host) *Console {
	if host == nil {
		host = &LogHost{}
	}

	c := &Console{
		host:   host,
		format: display.RGBA8888,
	}

	c.mem = memory.NewMemory()
	c.draw = draw.NewDraw(c.mem)
	c.display = display.NewDisplay(c.mem)
	c.sound = sound.NewSound(c.mem, sampleRate)
	c.input = input.NewInput(c.mem)

	c.Reset()

	return c
}

// SetPixelFormat sets the format of the frames produced by the console.
func (c *Console) SetPixelFormat(format display.PixelFormat) {
	c.format = format
}

// Memory returns the RAM of the console.
func (c *Console) Memory() *memory.Memory {
	return c.mem
}

// Draw returns the drawing hardware.
func (c *Console) Draw() *draw.Draw {
	return c.draw
}

// Sound returns the sound hardware.
func (c *Console) Sound() *sound.Sound {
	return c.sound
}

// Input returns the input hardware.
func (c *Console) Input() *input.Input {
	return c.input
}

// Display returns the display hardware.
func (c *Console) Display() *display.Display {
	return c.display
}

// Cartridge returns the loaded cartridge.
func (c *Console) Cartridge() *cartridge.Cartridge {
	return c.mem.Cart
}

// Script returns the language of the loaded cartridge. Returns nil if no
// language is available.
func (c *Console) Script() *script.Config {
	return c.config
}

// SaveID returns the value of the saveid metatag of the loaded cartridge.
// The persistent memory of cartridges with the same save id is shared.
func (c *Console) SaveID() string {
	return c.saveID
}

// Initialized returns true once the program of the loaded cartridge has been
// successfully initialised.
func (c *Console) Initialized() bool {
	return c.initialized
}

// Load attaches the cartridge to the console and resets it.
func (c *Console) Load(cart *cartridge.Cartridge) {
	if cart == nil {
		cart = cartridge.NewCartridge()
	}
	c.closeRuntime()
	c.mem.Clear()
	c.mem.Cart = cart
	c.input.Clear()
	c.Reset()
}

// Reset the console. The program of the cartridge will be initialised again
// on the next tick. Persistent memory is not affected. It is safe to call
// Reset() from a running program.
func (c *Console) Reset() {
	copy(c.mem.Area(memory.Palette), c.mem.Cart.Banks[0].Palette.Screen[:])
	c.mem.ResetPaletteMap()

	c.mem.Poke(memory.BlitSegment.Origin(), defaultBlitSegment)
	clear(c.mem.Area(memory.Vars))
	draw.WriteFont(c.mem)

	c.draw.NoClip()
	c.sound.Clear()

	c.initialized = false
	c.hooks.scanline = nil
	c.hooks.overline = nil

	c.draw.ResetTarget()

	c.config = script.Select(c.mem.Cart.Code)
	c.saveID = ""
	if c.config != nil {
		c.saveID, _ = cartridge.Metatag(c.mem.Cart.Code, "saveid", c.config.SingleComment)
	}
}

// Close the console and release the resources of the running program.
func (c *Console) Close() {
	c.closeRuntime()
}

func (c *Console) closeRuntime() {
	if c.runtime != nil {
		c.runtime.Close()
		c.runtime = nil
	}
}

func (c *Console) report(err error) {
	if err != nil {
		c.host.Error(err.Error())
	}
}

// Tick runs the console for one frame with the state of the input devices.
// The video and audio produced by the tick are available from Frame() and
// Samples().
func (c *Console) Tick(st input.State) {
	c.input.Set(st)
	c.tickStart()

	if c.tick() {
		c.report(c.runtime.Tick())
	}

	c.tickEnd()

	c.display.Blit(c.format, c.hooks.scanline, c.hooks.overline)
}

func (c *Console) tickStart() {
	c.sound.TickStart()
	c.input.TickStart()
	c.mem.ResetTickSyncMask()
	c.draw.ResetTarget()
}

func (c *Console) tickEnd() {
	c.input.TickEnd()
	c.sound.TickEnd()
}

// initialise the program if necessary. returns true if the program is
// ready to run
func (c *Console) tick() bool {
	if c.initialized {
		return true
	}

	code := c.mem.Cart.Code
	if code == "" {
		c.host.Error(EmptyCode)
		return false
	}

	if c.config == nil {
		c.host.Error(NoScriptRuntime)
		return false
	}

	// a cartridge without a boot screen keeps the screen as it is
	mask := memory.SyncAll
	if empty(c.mem.Cart.Banks[0].Screen[:]) {
		mask &^= memory.SyncScreen
	}
	c.report(c.mem.Sync(mask, 0, memory.CartToRAM))
	c.mem.ResetTickSyncMask()

	devices := input.AllDevices
	if v, ok := cartridge.Metatag(code, "input", c.config.SingleComment); ok {
		var err error
		devices, err = input.ParseDevices(v)
		if err != nil {
			logger.Log(logger.Allow, "console", err)
		}
	}
	c.input.SetDevices(devices)

	c.start = c.host.Counter()

	c.closeRuntime()
	rt := c.config.New(c, c.host.ForceExit)
	if err := rt.Init(code); err != nil {
		c.report(err)
		rt.Close()
		return false
	}

	c.runtime = rt
	c.hooks.scanline = func(row int) {
		c.report(c.runtime.Scanline(row))
	}
	c.hooks.overline = func() {
		c.draw.SetTarget(c.display)
		c.report(c.runtime.Overline())
		c.draw.ResetTarget()
	}
	c.initialized = true

	logger.Logf(logger.Allow, "console", "%s program initialised", c.config.Name)

	return true
}

// Eval runs a fragment of code in the context of the running program.
func (c *Console) Eval(code string) error {
	if c.runtime == nil {
		return nil
	}
	return c.runtime.Eval(code)
}

// Frame returns the most recent frame of video. The size of the frame is
// display.FullWidth by display.FullHeight pixels.
func (c *Console) Frame() []byte {
	return c.display.Frame()
}

// Samples returns the most recent tick of interleaved stereo audio.
func (c *Console) Samples() []int16 {
	return c.sound.Samples()
}

// SampleRate returns the sample rate of the audio produced by the console.
func (c *Console) SampleRate() int {
	return c.sound.SampleRate()
}

func empty(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

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

package lua_test

import (
	"strings"
	"testing"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/script"
	"github.com/gotic/gotic/script/lua"
	"github.com/gotic/gotic/test"
)

type host struct {
	errors    []string
	traces    []string
	exits     int
	forceExit bool
	polls     int
}

func (h *host) Error(msg string) {
	h.errors = append(h.errors, msg)
}

func (h *host) Trace(msg string, color uint8) {
	h.traces = append(h.traces, msg)
}

func (h *host) Exit() {
	h.exits++
}

func (h *host) Counter() uint64 {
	return 0
}

func (h *host) Frequency() uint64 {
	return 1000
}

func (h *host) ForceExit() bool {
	h.polls++
	return h.forceExit
}

func run(code string, ticks int) (*hardware.Console, *host) {
	h := &host{}
	c := hardware.NewConsole(44100, h)
	cart := cartridge.NewCartridge()
	cart.Code = code
	c.Load(cart)
	for i := 0; i < ticks; i++ {
		c.Tick(input.State{})
	}
	return c, h
}

func TestRegistered(t *testing.T) {
	cfg, ok := script.Lookup("lua")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, cfg.Extension, ".lua")
	test.ExpectSuccess(t, cfg.IsKeyword("function"))
	test.ExpectFailure(t, cfg.IsKeyword("TIC"))
}

func TestMissingTIC(t *testing.T) {
	c, h := run("x = 1", 1)
	test.ExpectSuccess(t, c.Initialized())
	test.DemandEquality(t, len(h.errors), 1)
	test.ExpectSuccess(t, strings.Contains(h.errors[0], lua.MissingTIC))
}

func TestSyntaxError(t *testing.T) {
	c, h := run("function TIC(", 2)
	test.ExpectFailure(t, c.Initialized())
	test.ExpectEquality(t, len(h.errors), 2)
}

func TestTrace(t *testing.T) {
	_, h := run(`
function TIC()
	trace("hello " .. 1)
	trace(12)
end`, 2)
	test.ExpectEquality(t, len(h.errors), 0)
	test.DemandEquality(t, len(h.traces), 4)
	test.ExpectEquality(t, h.traces[0], "hello 1")
	test.ExpectEquality(t, h.traces[1], "12")
}

func TestDrawing(t *testing.T) {
	c, h := run(`
function TIC()
	cls(2)
	pix(1, 0, 7)
	if pix(1, 0) ~= 7 then
		trace("pix")
	end
	if print("AB", 0, 10) <= 0 then
		trace("print")
	end
end`, 1)
	test.ExpectEquality(t, len(h.errors), 0)
	test.ExpectEquality(t, len(h.traces), 0)

	// two pixels per byte, low nibble first
	mem := c.Memory()
	test.ExpectEquality(t, mem.Peek(memory.Screen.Origin()), 0x72)
	test.ExpectEquality(t, mem.Peek(memory.Screen.Origin()+1), 0x22)
}

func TestMemory(t *testing.T) {
	c, h := run(`
function TIC()
	poke(0x4000, 0x12)
	memcpy(0x4001, 0x4000, 1)
	if peek(0x4001) ~= 0x12 then
		trace("memcpy")
	end
	poke4(0x8002, 5)
	if peek4(0x8003) ~= 1 then
		trace("peek4")
	end
	if peek(0x8003, 4) ~= 1 then
		trace("peek bits")
	end
	pmem(3, 1234)
end`, 1)
	test.ExpectEquality(t, len(h.errors), 0)
	test.ExpectEquality(t, len(h.traces), 0)

	mem := c.Memory()
	test.ExpectEquality(t, mem.Peek(0x4000), 0x12)
	test.ExpectEquality(t, mem.Peek(0x4001), 0x15)

	v, err := c.Pmem(3, 0, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1234)
}

func TestApiError(t *testing.T) {
	_, h := run(`
function TIC()
	peek(-1)
end`, 1)
	test.DemandEquality(t, len(h.errors), 1)
	test.ExpectSuccess(t, strings.Contains(h.errors[0], "address"))
}

func TestUnknownMethod(t *testing.T) {
	_, h := run(`
dofile("foo.lua")
function TIC() end`, 1)
	test.DemandEquality(t, len(h.errors), 1)
	test.ExpectSuccess(t, strings.Contains(h.errors[0], "dofile"))
}

func TestInput(t *testing.T) {
	h := &host{}
	c := hardware.NewConsole(44100, h)
	cart := cartridge.NewCartridge()
	cart.Code = `
function TIC()
	if btn(4) then trace("btn") end
	if btnp(4) then trace("btnp") end
	if key(1) then trace("key") end
	local x, y, left = mouse()
	if left then trace("mouse " .. x .. " " .. y) end
end`
	c.Load(cart)

	var st input.State
	st.Gamepads[0] = 1 << input.A
	st.Keyboard[0] = input.Key(1)
	st.Mouse = input.Mouse{X: 10, Y: 20, Left: true}
	c.Tick(st)
	c.Tick(st)

	test.ExpectEquality(t, len(h.errors), 0)
	test.ExpectEquality(t, strings.Join(h.traces, ","), "btn,btnp,key,mouse 10 20,btn,key,mouse 10 20")
}

func TestSfxNote(t *testing.T) {
	_, h := run(`
function TIC()
	sfx(0, "C#4", 10)
	sfx(0, 40, 10, 1)
	sfx(0)
end`, 1)
	test.ExpectEquality(t, len(h.errors), 0)

	_, h = run(`
function TIC()
	sfx(0, "H-4")
end`, 1)
	test.DemandEquality(t, len(h.errors), 1)
	test.ExpectSuccess(t, strings.Contains(h.errors[0], "H-4"))
}

func TestMusicFrame(t *testing.T) {
	_, h := run(`
function TIC()
	music(0, 200)
end`, 1)
	test.DemandEquality(t, len(h.errors), 1)
	test.ExpectSuccess(t, strings.Contains(h.errors[0], "invalid music frame (200)"))
	test.ExpectFailure(t, strings.Contains(h.errors[0], "%!"))

	_, h = run(`
function TIC()
	music(0, 15)
	music(-1)
end`, 1)
	test.ExpectEquality(t, len(h.errors), 0)
}

func TestMapRemap(t *testing.T) {
	c, h := run(`
function TIC()
	mset(0, 0, 1)
	map(0, 0, 1, 1, 0, 0, -1, 1, function(tile, x, y)
		trace(tile .. " " .. x .. " " .. y)
		return tile, 0, 0
	end)
end`, 1)
	test.ExpectEquality(t, len(h.errors), 0)
	test.DemandEquality(t, len(h.traces), 1)
	test.ExpectEquality(t, h.traces[0], "1 0 0")
	test.ExpectEquality(t, c.Draw().Mget(0, 0), 1)
}

func TestForceExit(t *testing.T) {
	h := &host{forceExit: true}
	c := hardware.NewConsole(44100, h)
	cart := cartridge.NewCartridge()
	cart.Code = `
function TIC()
	while true do end
end`
	c.Load(cart)
	c.Tick(input.State{})

	test.ExpectSuccess(t, h.polls > 0)
	test.DemandEquality(t, len(h.errors), 1)
	test.ExpectSuccess(t, strings.Contains(h.errors[0], "interrupted"))
}

func TestExitAndReset(t *testing.T) {
	c, h := run(`
n = 0
function TIC()
	n = n + 1
	trace(n)
	if n == 2 then
		exit()
		reset()
	end
end`, 3)
	test.ExpectEquality(t, h.exits, 1)
	test.ExpectEquality(t, strings.Join(h.traces, ","), "1,2,1")
	test.ExpectSuccess(t, c.Initialized())
}

func TestEval(t *testing.T) {
	c, h := run("function TIC() end", 1)
	test.ExpectSuccess(t, c.Eval("trace(1 + 2)"))
	test.ExpectFailure(t, c.Eval("trace("))
	test.ExpectEquality(t, strings.Join(h.traces, ","), "3")
}

func TestOutline(t *testing.T) {
	items := lua.Outline(`
function TIC()
end
local function helper (a)
end
function obj:method(x) end
function mod.fn() end
x = function() end
`)
	test.DemandEquality(t, len(items), 3)
	test.ExpectEquality(t, items[0].Name, "TIC")
	test.ExpectEquality(t, items[0].Pos, 10)
	test.ExpectEquality(t, items[1].Name, "obj:method")
	test.ExpectEquality(t, items[2].Name, "mod.fn")
}

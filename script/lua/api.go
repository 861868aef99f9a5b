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

package lua

import (
	"strings"

	"github.com/gotic/gotic/hardware/draw"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/hardware/sound"
	glua "github.com/yuin/gopher-lua"
)

// Error messages raised by the api functions.
const (
	InvalidClip    = "invalid params, clip(x,y,w,h) or clip()"
	UnknownKeyCode = "unknown keyboard code (%d)"
	InvalidNote    = "invalid note, should be like C#4 (%s)"
)

// the console api as global functions
func (rt *Lua) functions() map[string]glua.LGFunction {
	return map[string]glua.LGFunction{
		"print":  rt.print,
		"font":   rt.font,
		"cls":    rt.cls,
		"pix":    rt.pix,
		"line":   rt.line,
		"rect":   rt.rect,
		"rectb":  rt.rectb,
		"circ":   rt.circ,
		"circb":  rt.circb,
		"elli":   rt.elli,
		"ellib":  rt.ellib,
		"tri":    rt.tri,
		"trib":   rt.trib,
		"textri": rt.textri,
		"clip":   rt.clip,
		"spr":    rt.spr,
		"map":    rt.mapDraw,
		"mget":   rt.mget,
		"mset":   rt.mset,
		"fget":   rt.fget,
		"fset":   rt.fset,
		"sfx":    rt.sfx,
		"music":  rt.music,
		"btn":    rt.btn,
		"btnp":   rt.btnp,
		"key":    rt.key,
		"keyp":   rt.keyp,
		"mouse":  rt.mouse,
		"peek":   rt.peek(0),
		"peek1":  rt.peek(1),
		"peek2":  rt.peek(2),
		"peek4":  rt.peek(4),
		"poke":   rt.poke(0),
		"poke1":  rt.poke(1),
		"poke2":  rt.poke(2),
		"poke4":  rt.poke(4),
		"memcpy": rt.memcpy,
		"memset": rt.memset,
		"pmem":   rt.pmem,
		"sync":   rt.sync,
		"reset":  rt.reset,
		"time":   rt.time,
		"tstamp": rt.tstamp,
		"trace":  rt.trace,
		"exit":   rt.exit,
	}
}

// print(text, x=0, y=0, color=15, fixed=false, scale=1, smallfont=false)
func (rt *Lua) print(L *glua.LState) int {
	if L.GetTop() < 1 {
		return 0
	}
	text := toString(L, 1)
	x := optInt(L, 2, 0)
	y := optInt(L, 3, 0)
	color := optColor(L, 4, draw.DefaultColor)
	fixed := optBool(L, 5, false)
	scale := optInt(L, 6, 1)
	alt := optBool(L, 7, false)
	return pushInt(L, rt.api.Draw().Print(text, x, y, color, fixed, scale, alt))
}

// font(text, x, y, colorkey=-1, w=8, h=8, fixed=false, scale=1, alt=false)
func (rt *Lua) font(L *glua.LState) int {
	if L.GetTop() < 1 {
		return 0
	}
	text := toString(L, 1)
	x := optInt(L, 2, 0)
	y := optInt(L, 3, 0)
	key := colorKey(L, 4)
	w := optInt(L, 5, 8)
	h := optInt(L, 6, 8)
	fixed := optBool(L, 7, false)
	scale := optInt(L, 8, 1)
	alt := optBool(L, 9, false)
	return pushInt(L, rt.api.Draw().Font(text, x, y, key, w, h, fixed, scale, alt))
}

func (rt *Lua) cls(L *glua.LState) int {
	rt.api.Draw().Cls(optColor(L, 1, 0))
	return 0
}

// pix(x, y) returns the colour of the pixel. pix(x, y, color) sets it
func (rt *Lua) pix(L *glua.LState) int {
	x := optInt(L, 1, 0)
	y := optInt(L, 2, 0)
	if L.GetTop() >= 3 {
		rt.api.Draw().Pix(x, y, optColor(L, 3, 0))
		return 0
	}
	return pushInt(L, rt.api.Draw().PixGet(x, y))
}

func (rt *Lua) line(L *glua.LState) int {
	rt.api.Draw().Line(optFloat(L, 1, 0), optFloat(L, 2, 0), optFloat(L, 3, 0), optFloat(L, 4, 0), optColor(L, 5, 0))
	return 0
}

func (rt *Lua) rect(L *glua.LState) int {
	rt.api.Draw().Rect(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0), optColor(L, 5, 0))
	return 0
}

func (rt *Lua) rectb(L *glua.LState) int {
	rt.api.Draw().Rectb(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0), optColor(L, 5, 0))
	return 0
}

func (rt *Lua) circ(L *glua.LState) int {
	rt.api.Draw().Circ(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optColor(L, 4, 0))
	return 0
}

func (rt *Lua) circb(L *glua.LState) int {
	rt.api.Draw().Circb(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optColor(L, 4, 0))
	return 0
}

func (rt *Lua) elli(L *glua.LState) int {
	rt.api.Draw().Elli(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0), optColor(L, 5, 0))
	return 0
}

func (rt *Lua) ellib(L *glua.LState) int {
	rt.api.Draw().Ellib(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0), optColor(L, 5, 0))
	return 0
}

func (rt *Lua) tri(L *glua.LState) int {
	rt.api.Draw().Tri(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0),
		optInt(L, 5, 0), optInt(L, 6, 0), optColor(L, 7, 0))
	return 0
}

func (rt *Lua) trib(L *glua.LState) int {
	rt.api.Draw().Trib(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0),
		optInt(L, 5, 0), optInt(L, 6, 0), optColor(L, 7, 0))
	return 0
}

// textri(x1, y1, x2, y2, x3, y3, u1, v1, u2, v2, u3, v3, use_map=false, trans=-1)
func (rt *Lua) textri(L *glua.LState) int {
	var v [3]draw.Vertex
	for i := range v {
		v[i].X = optFloat(L, 1+i*2, 0)
		v[i].Y = optFloat(L, 2+i*2, 0)
		v[i].U = optFloat(L, 7+i*2, 0)
		v[i].V = optFloat(L, 8+i*2, 0)
	}
	rt.api.Draw().Textri(v[0], v[1], v[2], optBool(L, 13, false), colorKey(L, 14))
	return 0
}

// clip(x, y, w, h) or clip() to reset
func (rt *Lua) clip(L *glua.LState) int {
	switch L.GetTop() {
	case 0:
		rt.api.Draw().NoClip()
	case 4:
		rt.api.Draw().Clip(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), optInt(L, 4, 0))
	default:
		L.RaiseError(InvalidClip)
	}
	return 0
}

// spr(id, x, y, colorkey=-1, scale=1, flip=0, rotate=0, w=1, h=1)
func (rt *Lua) spr(L *glua.LState) int {
	rt.api.Draw().Spr(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0), colorKey(L, 4),
		optInt(L, 5, 1), draw.Flip(optInt(L, 6, 0)&0x03), draw.Rotate(optInt(L, 7, 0)&0x03),
		optInt(L, 8, 1), optInt(L, 9, 1))
	return 0
}

// map(x=0, y=0, w=30, h=17, sx=0, sy=0, colorkey=-1, scale=1, remap=nil)
//
// the remap function is called with the tile index and the map
// coordinates and returns the tile index, flip and rotation to draw. a
// missing tile index leaves the tile unchanged
func (rt *Lua) mapDraw(L *glua.LState) int {
	var remap draw.Remap

	if fn, ok := L.Get(9).(*glua.LFunction); ok {
		remap = func(x, y, index int) (int, draw.Flip, draw.Rotate) {
			L.Push(fn)
			L.Push(glua.LNumber(index))
			L.Push(glua.LNumber(x))
			L.Push(glua.LNumber(y))
			L.Call(3, 3)
			tile := index
			if n, ok := L.Get(-3).(glua.LNumber); ok {
				tile = int(n)
			}
			flip := draw.Flip(int(glua.LVAsNumber(L.Get(-2))) & 0x03)
			rotate := draw.Rotate(int(glua.LVAsNumber(L.Get(-1))) & 0x03)
			L.Pop(3)
			return tile, flip, rotate
		}
	}

	rt.api.Draw().Map(optInt(L, 1, 0), optInt(L, 2, 0),
		optInt(L, 3, draw.Width/8), optInt(L, 4, draw.Height/8),
		optInt(L, 5, 0), optInt(L, 6, 0), colorKey(L, 7), optInt(L, 8, 1), remap)
	return 0
}

func (rt *Lua) mget(L *glua.LState) int {
	return pushInt(L, rt.api.Draw().Mget(optInt(L, 1, 0), optInt(L, 2, 0)))
}

func (rt *Lua) mset(L *glua.LState) int {
	rt.api.Draw().Mset(optInt(L, 1, 0), optInt(L, 2, 0), uint8(optInt(L, 3, 0)))
	return 0
}

func (rt *Lua) fget(L *glua.LState) int {
	return pushBool(L, rt.api.Draw().Fget(optInt(L, 1, 0), optInt(L, 2, 0)))
}

func (rt *Lua) fset(L *glua.LState) int {
	rt.api.Draw().Fset(optInt(L, 1, 0), optInt(L, 2, 0), optBool(L, 3, false))
	return 0
}

var noteNames = [sound.Notes]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// parse a note of the form C#4
func parseNote(s string) (note int, octave int, ok bool) {
	if len(s) != 3 || s[2] < '0' || s[2] >= '0'+sound.Octaves {
		return 0, 0, false
	}
	for i, n := range noteNames {
		if strings.EqualFold(s[:2], n) {
			return i, int(s[2] - '0'), true
		}
	}
	return 0, 0, false
}

// sfx(id, note=-1, duration=-1, channel=0, volume=15, speed=0)
//
// the note is either a number or a string like C#4. if the note is missing
// or negative the note and speed of the sound effect are used. the volume
// is either a number or a table of the left and right volumes
func (rt *Lua) sfx(L *glua.LState) int {
	snd := rt.api.Sound()

	index := optInt(L, 1, -1)
	note, octave, speed := 0, 0, 0

	if smp, err := snd.Sample(index); err == nil {
		note = smp.Note()
		octave = smp.Octave()
		speed = smp.Speed()
	}

	switch v := L.Get(2).(type) {
	case glua.LNumber:
		if v >= 0 {
			note = int(v) % sound.Notes
			octave = int(v) / sound.Notes
		}
	case glua.LString:
		var ok bool
		note, octave, ok = parseNote(string(v))
		if !ok {
			L.RaiseError(InvalidNote, string(v))
			return 0
		}
	}

	duration := optInt(L, 3, -1)
	channel := optInt(L, 4, 0)

	left, right := sound.MaxVolume, sound.MaxVolume
	switch v := L.Get(5).(type) {
	case glua.LNumber:
		left = int(v)
		right = int(v)
	case *glua.LTable:
		left = int(glua.LVAsNumber(v.RawGetInt(1)))
		right = int(glua.LVAsNumber(v.RawGetInt(2)))
	}

	speed = optInt(L, 6, speed)

	if err := snd.Sfx(index, note, octave, duration, channel, left, right, speed); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

// music(track=-1, frame=-1, row=-1, loop=true, sustain=false, tempo=-1, speed=-1)
func (rt *Lua) music(L *glua.LState) int {
	err := rt.api.Sound().SetMusic(optInt(L, 1, -1), optInt(L, 2, -1), optInt(L, 3, -1),
		optBool(L, 4, true), optBool(L, 5, false), optInt(L, 6, -1), optInt(L, 7, -1))
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

// btn() returns the state of all buttons as a bit mask. btn(id) returns
// the state of one button
func (rt *Lua) btn(L *glua.LState) int {
	if L.GetTop() == 0 {
		return pushInt(L, rt.api.Input().Buttons())
	}
	return pushBool(L, rt.api.Input().Btn(optInt(L, 1, 0)&(input.Buttons-1)))
}

// btnp(id, hold=-1, period=-1)
func (rt *Lua) btnp(L *glua.LState) int {
	hold := optInt(L, 2, -1)
	period := optInt(L, 3, -1)
	if L.GetTop() == 0 {
		return pushInt(L, rt.api.Input().Pressed(hold, period))
	}
	return pushBool(L, rt.api.Input().Btnp(optInt(L, 1, 0)&(input.Buttons-1), hold, period))
}

func keyCode(L *glua.LState, n int) input.Key {
	code := optInt(L, n, 0)
	if code < 0 || code >= int(input.KeyCount) {
		L.RaiseError(UnknownKeyCode, code)
	}
	return input.Key(code)
}

// key(code=0). a code of zero means any key
func (rt *Lua) key(L *glua.LState) int {
	return pushBool(L, rt.api.Input().Key(keyCode(L, 1)))
}

// keyp(code=0, hold=-1, period=-1)
func (rt *Lua) keyp(L *glua.LState) int {
	return pushBool(L, rt.api.Input().Keyp(keyCode(L, 1), optInt(L, 2, -1), optInt(L, 3, -1)))
}

// mouse() returns x, y, left, middle, right, scrollx, scrolly
func (rt *Lua) mouse(L *glua.LState) int {
	m := rt.api.Input().Mouse()
	L.Push(glua.LNumber(m.X))
	L.Push(glua.LNumber(m.Y))
	L.Push(glua.LBool(m.Left))
	L.Push(glua.LBool(m.Middle))
	L.Push(glua.LBool(m.Right))
	L.Push(glua.LNumber(m.ScrollX))
	L.Push(glua.LNumber(m.ScrollY))
	return 7
}

// peek(addr, bits=8) or peekN(addr). a bits value of zero means the bits
// are taken from the arguments
func (rt *Lua) peek(bits int) glua.LGFunction {
	return func(L *glua.LState) int {
		b := bits
		if b == 0 {
			b = optInt(L, 2, 8)
		}
		v, err := rt.api.Peek(optInt(L, 1, 0), b)
		if err != nil {
			L.RaiseError("%s", err)
			return 0
		}
		return pushInt(L, v)
	}
}

// poke(addr, value, bits=8) or pokeN(addr, value)
func (rt *Lua) poke(bits int) glua.LGFunction {
	return func(L *glua.LState) int {
		b := bits
		if b == 0 {
			b = optInt(L, 3, 8)
		}
		if err := rt.api.Poke(optInt(L, 1, 0), uint8(optInt(L, 2, 0)), b); err != nil {
			L.RaiseError("%s", err)
		}
		return 0
	}
}

func (rt *Lua) memcpy(L *glua.LState) int {
	if err := rt.api.Memcpy(optInt(L, 1, 0), optInt(L, 2, 0), optInt(L, 3, 0)); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (rt *Lua) memset(L *glua.LState) int {
	if err := rt.api.Memset(optInt(L, 1, 0), uint8(optInt(L, 2, 0)), optInt(L, 3, 0)); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

// pmem(index) returns the value. pmem(index, value) sets the value and
// returns the previous value
func (rt *Lua) pmem(L *glua.LState) int {
	set := L.GetTop() >= 2
	v, err := rt.api.Pmem(optInt(L, 1, 0), uint32(optFloat(L, 2, 0)), set)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	return pushInt(L, v)
}

// sync(mask=0, bank=0, tocart=false)
func (rt *Lua) sync(L *glua.LState) int {
	err := rt.api.Sync(memory.SyncMask(optInt(L, 1, 0)), optInt(L, 2, 0), optBool(L, 3, false))
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (rt *Lua) reset(L *glua.LState) int {
	rt.api.Reset()
	return 0
}

func (rt *Lua) time(L *glua.LState) int {
	L.Push(glua.LNumber(rt.api.Time()))
	return 1
}

func (rt *Lua) tstamp(L *glua.LState) int {
	return pushInt(L, rt.api.Tstamp())
}

// trace(message, color=15)
func (rt *Lua) trace(L *glua.LState) int {
	rt.api.Trace(toString(L, 1), optColor(L, 2, draw.DefaultColor))
	return 0
}

func (rt *Lua) exit(L *glua.LState) int {
	rt.api.Exit()
	return 0
}

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
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/script"
	glua "github.com/yuin/gopher-lua"
)

// Error messages.
const (
	MissingTIC    = "'function TIC() ...' isn't found :("
	UnknownMethod = "unknown method: \"%s\""
	LuaError      = "lua: %v"
)

// names of the entry points
const (
	tickFn           = "TIC"
	scanlineFn       = "SCN"
	legacyScanlineFn = "scanline"
	overlineFn       = "OVR"
)

// Keywords of the Lua language.
var Keywords = []string{
	"and", "break", "do", "else", "elseif",
	"end", "false", "for", "function", "goto", "if",
	"in", "local", "nil", "not", "or", "repeat",
	"return", "then", "true", "until", "while",
}

// Config for the Lua language.
var Config = &script.Config{
	Name:              "lua",
	Extension:         ".lua",
	SingleComment:     "--",
	BlockCommentStart: "--[[",
	BlockCommentEnd:   "]]",
	BlockStringStart:  "[[",
	BlockStringEnd:    "]]",
	Keywords:          Keywords,
	New: func(api script.API, forceExit func() bool) script.Runtime {
		return NewLua(api, forceExit)
	},
	Outline: Outline,
}

func init() {
	script.Register(Config)
}

// Lua is an implementation of the script.Runtime interface.
type Lua struct {
	api       script.API
	forceExit func() bool

	state     *glua.LState
	interrupt *interrupt
}

// NewLua is the preferred method of initialisation for the Lua type.
func NewLua(api script.API, forceExit func() bool) *Lua {
	return &Lua{
		api:       api,
		forceExit: forceExit,
	}
}

// the libraries available to programs
var libs = []struct {
	name string
	open glua.LGFunction
}{
	{glua.LoadLibName, glua.OpenPackage},
	{glua.BaseLibName, glua.OpenBase},
	{glua.CoroutineLibName, glua.OpenCoroutine},
	{glua.TabLibName, glua.OpenTable},
	{glua.StringLibName, glua.OpenString},
	{glua.MathLibName, glua.OpenMath},
	{glua.DebugLibName, glua.OpenDebug},
}

// Init implements the script.Runtime interface.
func (rt *Lua) Init(code string) error {
	rt.Close()

	L := glua.NewState(glua.Options{SkipOpenLibs: true})
	for _, lib := range libs {
		err := L.CallByParam(glua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, glua.LString(lib.name))
		if err != nil {
			L.Close()
			return curated.Errorf(LuaError, err)
		}
	}

	rt.state = L
	rt.interrupt = newInterrupt(rt.forceExit)
	L.SetContext(rt.interrupt)

	rt.register()

	if err := L.DoString(code); err != nil {
		return curated.Errorf(LuaError, err)
	}

	logger.Logf(logger.Allow, "lua", "program compiled (%d bytes)", len(code))

	return nil
}

// Close implements the script.Runtime interface.
func (rt *Lua) Close() {
	if rt.state != nil {
		rt.state.Close()
		rt.state = nil
	}
}

// call the global function if it exists. returns false if it does not exist
func (rt *Lua) call(name string, args ...glua.LValue) (bool, error) {
	if rt.state == nil {
		return true, nil
	}

	fn := rt.state.GetGlobal(name)
	if fn.Type() != glua.LTFunction {
		return false, nil
	}

	err := rt.state.CallByParam(glua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		return true, curated.Errorf(LuaError, err)
	}

	return true, nil
}

// Tick implements the script.Runtime interface.
func (rt *Lua) Tick() error {
	ok, err := rt.call(tickFn)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(MissingTIC)
	}
	return nil
}

// Scanline implements the script.Runtime interface.
func (rt *Lua) Scanline(row int) error {
	if _, err := rt.call(scanlineFn, glua.LNumber(row)); err != nil {
		return err
	}
	if _, err := rt.call(legacyScanlineFn, glua.LNumber(row)); err != nil {
		return err
	}
	return nil
}

// Overline implements the script.Runtime interface.
func (rt *Lua) Overline() error {
	_, err := rt.call(overlineFn)
	return err
}

// Eval implements the script.Runtime interface.
func (rt *Lua) Eval(code string) error {
	if rt.state == nil {
		return nil
	}
	if err := rt.state.DoString(code); err != nil {
		return curated.Errorf(LuaError, err)
	}
	return nil
}

// the dofile and loadfile functions are not available to programs
func unknownMethod(name string) glua.LGFunction {
	return func(L *glua.LState) int {
		L.RaiseError(UnknownMethod, name)
		return 0
	}
}

func (rt *Lua) register() {
	for name, fn := range rt.functions() {
		rt.state.SetGlobal(name, rt.state.NewFunction(fn))
	}
	rt.state.SetGlobal("dofile", rt.state.NewFunction(unknownMethod("dofile")))
	rt.state.SetGlobal("loadfile", rt.state.NewFunction(unknownMethod("loadfile")))
}

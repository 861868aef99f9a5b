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
	glua "github.com/yuin/gopher-lua"
)

// the argument as an integer. a missing or nil argument is the default
// value. arguments that are not numbers are zero
func optInt(L *glua.LState, n int, def int) int {
	v := L.Get(n)
	if v == glua.LNil {
		return def
	}
	return int(glua.LVAsNumber(v))
}

func optFloat(L *glua.LState, n int, def float64) float64 {
	v := L.Get(n)
	if v == glua.LNil {
		return def
	}
	return float64(glua.LVAsNumber(v))
}

func optBool(L *glua.LState, n int, def bool) bool {
	v := L.Get(n)
	if v == glua.LNil {
		return def
	}
	return glua.LVAsBool(v)
}

// colour arguments are taken modulo the size of the palette
func optColor(L *glua.LState, n int, def int) uint8 {
	return uint8(optInt(L, n, def) & 0x0f)
}

// the argument converted to a string with the tostring() rules
func toString(L *glua.LState, n int) string {
	return L.ToStringMeta(L.Get(n)).String()
}

// a colour key is either a single colour or a table of colours. a negative
// colour means no colour key
func colorKey(L *glua.LState, n int) []uint8 {
	switch v := L.Get(n).(type) {
	case glua.LNumber:
		if v < 0 {
			return nil
		}
		return []uint8{uint8(int(v) & 0x0f)}
	case *glua.LTable:
		var key []uint8
		for i := 1; i <= v.Len(); i++ {
			c := int(glua.LVAsNumber(v.RawGetInt(i)))
			if c >= 0 {
				key = append(key, uint8(c&0x0f))
			}
		}
		return key
	}
	return nil
}

func pushBool(L *glua.LState, b bool) int {
	L.Push(glua.LBool(b))
	return 1
}

func pushInt[T ~int | ~uint8 | ~uint32 | ~int64](L *glua.LState, v T) int {
	L.Push(glua.LNumber(v))
	return 1
}

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

package cartridge_test

import (
	"strings"
	"testing"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/test"
)

const code = `-- title:  game
-- author: someone
--   input:  gamepad   
-- saveid: first
-- saveid: second
function TIC() end
`

func TestMetatag(t *testing.T) {
	v, ok := cartridge.Metatag(code, "title", "--")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "game")

	v, ok = cartridge.Metatag(code, "input", "--")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "gamepad")

	// first matching line wins
	v, _ = cartridge.Metatag(code, "saveid", "--")
	test.ExpectEquality(t, v, "first")

	_, ok = cartridge.Metatag(code, "script", "--")
	test.ExpectFailure(t, ok)

	// comment token must match
	_, ok = cartridge.Metatag(code, "title", "//")
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, cartridge.CompareMetatag(code, "input", "gamepad", "--"))
	test.ExpectFailure(t, cartridge.CompareMetatag(code, "input", "mouse", "--"))
}

func TestInfo(t *testing.T) {
	cart := cartridge.NewCartridge()
	cart.Code = "-- script: lua\nfunction TIC() end"
	cart.Banks[2].Map[0] = 1

	info := cart.Info("--")
	test.ExpectEquality(t, info.Script, "lua")
	test.ExpectEquality(t, info.Lines, 2)
	test.ExpectEquality(t, len(info.Banks), 2)
	test.ExpectEquality(t, info.Banks[0].Default, true)
	test.ExpectEquality(t, info.Banks[1].Bank, 2)
	test.ExpectSuccess(t, strings.Contains(info.String(), "bank 2: map"))
}

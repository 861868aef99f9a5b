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

package prefs_test

import (
	"testing"

	"github.com/gotic/gotic/prefs"
	"github.com/gotic/gotic/test"
)

func TestPushPop(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// surrounding space is trimmed and unused values are returned in key
	// order
	prefs.PushCommandLineStack(" playmode.scale :: 4 ;playmode.audio::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "playmode.audio::false; playmode.scale::4")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// entries without a separator are dropped
	prefs.PushCommandLineStack("playmode.fpscap;playmode.backend::ebiten")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "playmode.backend::ebiten")

	prefs.PushCommandLineStack("")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestGetCommandLinePref(t *testing.T) {
	ok, _ := prefs.GetCommandLinePref("playmode.scale")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("playmode.scale::4; playmode.showfps::true")

	ok, v := prefs.GetCommandLinePref("playmode.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "4")

	// a value can only be used once
	ok, _ = prefs.GetCommandLinePref("playmode.scale")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "playmode.showfps::true")
}

func TestNestedGroups(t *testing.T) {
	prefs.PushCommandLineStack("playmode.scale::2")
	prefs.PushCommandLineStack("playmode.audio::false")

	// only the group at the top of the stack is consulted
	ok, _ := prefs.GetCommandLinePref("playmode.scale")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "playmode.audio::false")

	ok, _ = prefs.GetCommandLinePref("playmode.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

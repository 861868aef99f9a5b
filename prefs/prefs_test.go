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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/prefs"
	"github.com/gotic/gotic/test"
)

func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs")
}

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected))
}

func TestBool(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	var f prefs.Float
	test.ExpectEquality(t, f.String(), "0.000")
	test.ExpectSuccess(t, f.Set("1.5"))
	test.ExpectEquality(t, f.Get().(float64), 1.5)
	test.ExpectSuccess(t, f.Set(2))
	test.ExpectEquality(t, f.String(), "2.000")
}

func TestLoad(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// a missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	var scale prefs.Int
	var backend prefs.String
	test.ExpectSuccess(t, dsk.Add("scale", &scale))
	test.ExpectSuccess(t, dsk.Add("backend", &backend))
	test.ExpectSuccess(t, scale.Set(4))
	test.ExpectSuccess(t, backend.Set("ebiten"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, scale.Get().(int), 0)
	test.ExpectEquality(t, backend.String(), "")

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, scale.Get().(int), 4)
	test.ExpectEquality(t, backend.String(), "ebiten")
}

func TestNotAPrefsFile(t *testing.T) {
	fn := prefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello\n"), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NotAPrefsFile))
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(prefsFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("test", &w), prefs.DuplicateKey))
	test.ExpectFailure(t, dsk.Add("bad :: key", &w))
}

// two disks sharing a file do not clobber each other's values
func TestSharedFile(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post []int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = append(post, value.(int))
		return nil
	})

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 3)
	test.ExpectEquality(t, len(post), 1)
}

func TestCommandLinePrecedence(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var scale prefs.Int
	test.ExpectSuccess(t, dsk.Add("scale", &scale))
	test.ExpectSuccess(t, scale.Set(2))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("scale::5; other::1")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var override prefs.Int
	test.ExpectSuccess(t, dsk.Add("scale", &override))
	test.ExpectEquality(t, override.Get().(int), 5)

	// the value from the command line is not overwritten by the value on disk
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, override.Get().(int), 5)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// cropped information does not reappear
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

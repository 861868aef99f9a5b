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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gotic/gotic/cartridgeloader"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/recorder"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/test"
)

const testProgram = `-- script: lua
t = 0
function TIC()
	cls(t % 16)
	if t == 0 then sfx(0, "C-4", 30) end
	t = t + 1
end
`

func writeCart(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(testProgram), 0600))
	return fn
}

func TestVersion(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(out, []string{"version"}), 0)
	test.ExpectInequality(t, out.String(), "")
}

func TestUnknownFlag(t *testing.T) {
	// unknown flags are passed to the default mode, which rejects them
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(out, []string{"-nosuchflag"}), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "error in RUN mode"))
}

func TestMissingCartridge(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(out, []string{"info"}), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "cartridge required"))
}

func TestInfo(t *testing.T) {
	fn := writeCart(t)

	out := &strings.Builder{}
	test.DemandEquality(t, launch(out, []string{"info", fn}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "test (sha1 "))
	test.ExpectSuccess(t, strings.Contains(out.String(), "script: lua"))
}

func TestDigest(t *testing.T) {
	fn := writeCart(t)

	a := &strings.Builder{}
	test.DemandEquality(t, launch(a, []string{"digest", "-frames", "10", fn}), 0)

	b := &strings.Builder{}
	test.DemandEquality(t, launch(b, []string{"digest", "-frames", "10", fn}), 0)
	test.ExpectEquality(t, a.String(), b.String())

	c := &strings.Builder{}
	test.DemandEquality(t, launch(c, []string{"digest", "-frames", "11", fn}), 0)
	test.ExpectInequality(t, a.String(), c.String())
}

func TestWav(t *testing.T) {
	fn := writeCart(t)
	wav := filepath.Join(t.TempDir(), "out.wav")

	out := &strings.Builder{}
	test.DemandEquality(t, launch(out, []string{"wav", "-frames", "30", "-o", wav, fn}), 0)

	st, err := os.Stat(wav)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Size() > 44)
}

func TestEval(t *testing.T) {
	fn := writeCart(t)

	out := &strings.Builder{}
	test.DemandEquality(t, launch(out, []string{"eval", "-e", "trace(t + 41)", fn}), 0)
	test.ExpectEquality(t, out.String(), "42\n")
}

func TestPlayback(t *testing.T) {
	fn := writeCart(t)
	transcript := filepath.Join(t.TempDir(), "test.rec")

	cl := cartridgeloader.NewLoader(fn)
	cart, err := cl.Cartridge()
	test.DemandSuccess(t, err)

	console := hardware.NewConsole(defaultSampleRate, &hardware.LogHost{})
	defer console.Close()
	console.Load(cart)

	rec, err := recorder.NewRecorder(transcript, cl, console.Display().Format())
	test.DemandSuccess(t, err)

	tv := television.NewTelevision()
	tv.SetFPSCap(false)
	tv.AddPixelRenderer(rec)

	for i := range 20 {
		var st input.State
		if i > 5 && i < 10 {
			st.Gamepads[0] = 0x01
		}
		rec.Record(st)
		console.Tick(st)
		test.DemandSuccess(t, tv.Signal(console.Frame(), console.Display().Format(), console.Samples()))
	}
	test.DemandSuccess(t, tv.End())

	out := &strings.Builder{}
	test.DemandEquality(t, launch(out, []string{"playback", transcript}), 0)
	test.ExpectEquality(t, out.String(), "playback of test succeeded (20 ticks)\n")
}

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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/test"
	"github.com/gotic/gotic/wavwriter"
)

func TestWavWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(filename, 44100)
	test.DemandSuccess(t, err)
	test.ExpectImplements[television.AudioMixer](t, aw)

	test.ExpectSuccess(t, aw.SetAudio([]int16{100, -100, 200, -200}))
	test.ExpectSuccess(t, aw.SetAudio([]int16{300, -300}))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Format.NumChannels, 2)
	test.ExpectEquality(t, buf.Format.SampleRate, 44100)
	test.DemandEquality(t, len(buf.Data), 6)
	test.ExpectEquality(t, buf.Data[0], 100)
	test.ExpectEquality(t, buf.Data[5], -300)
}

func TestInvalidSampleRate(t *testing.T) {
	_, err := wavwriter.New("test.wav", 0)
	test.ExpectFailure(t, err)
}

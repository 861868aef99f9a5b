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

package television_test

import (
	"errors"
	"testing"

	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/test"
)

type renderer struct {
	frames []int
	resets int
	ended  bool
	err    error
}

func (r *renderer) NewFrame(f television.Frame) error {
	r.frames = append(r.frames, f.Number)
	return r.err
}

func (r *renderer) Reset() {
	r.resets++
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

type mixer struct {
	samples int
	ended   bool
}

func (m *mixer) SetAudio(samples []int16) error {
	m.samples += len(samples)
	return nil
}

func (m *mixer) Reset() {
	m.samples = 0
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestSignal(t *testing.T) {
	tv := television.NewTelevision()
	tv.SetFPSCap(false)

	r := &renderer{}
	m := &mixer{}
	tv.AddPixelRenderer(r)
	tv.AddAudioMixer(m)

	pixels := make([]byte, display.FullWidth*display.FullHeight*display.BytesPerPixel)
	samples := make([]int16, 100)
	for range 3 {
		test.ExpectSuccess(t, tv.Signal(pixels, display.RGBA8888, samples))
	}

	test.ExpectEquality(t, len(r.frames), 3)
	test.ExpectEquality(t, r.frames[2], 2)
	test.ExpectEquality(t, m.samples, 300)
	test.ExpectEquality(t, tv.FrameNum(), 3)

	tv.Reset()
	test.ExpectEquality(t, tv.FrameNum(), 0)
	test.ExpectEquality(t, r.resets, 1)
	test.ExpectEquality(t, m.samples, 0)

	test.ExpectSuccess(t, tv.End())
	test.ExpectSuccess(t, r.ended)
	test.ExpectSuccess(t, m.ended)
}

func TestSignalError(t *testing.T) {
	tv := television.NewTelevision()
	defer tv.End()
	tv.SetFPSCap(false)

	r := &renderer{err: errors.New("test")}
	tv.AddPixelRenderer(r)

	test.ExpectFailure(t, tv.Signal(nil, display.RGBA8888, nil))

	// the frame is counted even if a renderer fails
	test.ExpectEquality(t, tv.FrameNum(), 1)
}

func TestFPSCap(t *testing.T) {
	tv := television.NewTelevision()
	defer tv.End()
	test.ExpectSuccess(t, tv.SetFPSCap(false))
	test.ExpectFailure(t, tv.SetFPSCap(true))
}

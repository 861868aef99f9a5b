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

package television

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/performance/limiter"
)

// Television is the reference implementation of the console's output device.
type Television struct {
	renderers []PixelRenderer
	mixers    []AudioMixer

	lim    *limiter.FpsLimiter
	fpsCap bool

	frameNum int

	// measurement of the actual frame rate. updated once a second
	fpsMeasure struct {
		frames int
		t      time.Time
	}
	actualFPS atomic.Value // float64
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision() *Television {
	tv := &Television{
		lim:    limiter.NewFPSLimiter(hardware.FrameRate),
		fpsCap: true,
	}
	tv.actualFPS.Store(float64(0))
	tv.fpsMeasure.t = time.Now()
	return tv
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%d", tv.frameNum)
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// Reset the television to an initial state. Every renderer and mixer is also
// reset.
func (tv *Television) Reset() {
	tv.frameNum = 0
	tv.fpsMeasure.frames = 0
	tv.fpsMeasure.t = time.Now()
	for _, r := range tv.renderers {
		r.Reset()
	}
	for _, m := range tv.mixers {
		m.Reset()
	}
}

// SetFPSCap sets whether Signal() should wait for the frame limiter. Returns
// the previous setting.
func (tv *Television) SetFPSCap(set bool) bool {
	prev := tv.fpsCap
	tv.fpsCap = set
	return prev
}

// SetFPS changes the rate of the frame limiter. A value of zero or less
// restores the frame rate of the console.
func (tv *Television) SetFPS(fps int) {
	if fps <= 0 {
		fps = hardware.FrameRate
	}
	tv.lim.SetLimit(fps)
}

// FrameNum returns the number of frames signalled since the last reset.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// ActualFPS returns the measured frame rate. Safe to call from any
// goroutine.
func (tv *Television) ActualFPS() float64 {
	return tv.actualFPS.Load().(float64)
}

// Signal the television with the frame and audio of a single tick. The
// frame is expected to be display.FullWidth by display.FullHeight pixels.
func (tv *Television) Signal(pixels []byte, format display.PixelFormat, samples []int16) error {
	if tv.fpsCap {
		tv.lim.Wait()
	}

	frame := Frame{
		Pixels: pixels,
		Width:  display.FullWidth,
		Height: display.FullHeight,
		Format: format,
		Number: tv.frameNum,
	}

	var errs []error
	for _, r := range tv.renderers {
		if err := r.NewFrame(frame); err != nil {
			errs = append(errs, err)
		}
	}
	for _, m := range tv.mixers {
		if err := m.SetAudio(samples); err != nil {
			errs = append(errs, err)
		}
	}

	tv.frameNum++

	tv.fpsMeasure.frames++
	if d := time.Since(tv.fpsMeasure.t); d >= time.Second {
		tv.actualFPS.Store(float64(tv.fpsMeasure.frames) / d.Seconds())
		tv.fpsMeasure.frames = 0
		tv.fpsMeasure.t = time.Now()
	}

	if len(errs) > 0 {
		return curated.Errorf("television: %v", errors.Join(errs...))
	}
	return nil
}

// End the television. EndRendering() and EndMixing() are called on every
// PixelRenderer and AudioMixer. The television should not be used after
// End() has been called.
func (tv *Television) End() error {
	tv.lim.Stop()

	var errs []error
	for _, r := range tv.renderers {
		if err := r.EndRendering(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, m := range tv.mixers {
		if err := m.EndMixing(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		logger.Log(logger.Allow, "television", errors.Join(errs...))
		return curated.Errorf("television: %v", errors.Join(errs...))
	}
	return nil
}

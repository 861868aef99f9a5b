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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	secondsPerFrame atomic.Int64

	tick chan bool
	stop chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		stop: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func() {
		spf := time.Duration(lim.secondsPerFrame.Load())
		adjusted := spf
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.stop:
				return
			}

			time.Sleep(adjusted)
			nt := time.Now()

			// a change of limit restarts the drift adjustment
			if v := time.Duration(lim.secondsPerFrame.Load()); v != spf {
				spf = v
				adjusted = spf
			} else {
				adjusted -= nt.Sub(t) - spf
				adjusted = max(adjusted, 0)
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero
// or less is treated as one frame per second.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	framesPerSecond = max(framesPerSecond, 1)
	lim.secondsPerFrame.Store(int64(time.Second) / int64(framesPerSecond))
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	close(lim.stop)
}

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

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/gotic/gotic/cartridgeloader"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/digest"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/television"
)

// the sample rate of the console during a performance check
const sampleRate = 44100

// the amount of time the console runs before measurement begins. allows the
// frame rate to settle down
const leadTime = 2 * time.Second

// Check the performance of the console using the supplied cartridge.
//
// The console will run for the specified duration and will create a cpu,
// memory or trace profile (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	cart, err := cartload.Cartridge()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	tv := television.NewTelevision()
	defer tv.End()
	tv.SetFPSCap(!uncapped)

	// the digest stands in for the work done by a real renderer
	tv.AddPixelRenderer(digest.NewVideo())

	// the running program is interrupted when the measurement period ends
	var timedOut atomic.Bool
	host := &hardware.LogHost{Interrupt: timedOut.Load}

	console := hardware.NewConsole(sampleRate, host)
	defer console.Close()
	console.Load(cart)

	var startFrame int

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timedOut.Store(true)
				timerChan <- true
			})
		})

		for {
			select {
			case v := <-timerChan:
				if v {
					return nil
				}
				startFrame = tv.FrameNum()
			default:
			}

			console.Tick(input.State{})
			if err := tv.Signal(console.Frame(), console.Display().Format(), console.Samples()); err != nil {
				return err
			}
		}
	}

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := tv.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}

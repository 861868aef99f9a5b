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

package recorder

import (
	"fmt"
	"os"

	"github.com/gotic/gotic/cartridgeloader"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/digest"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/television"
)

// Recorder transcribes user input to a file. It implements the
// television.PixelRenderer interface.
type Recorder struct {
	transcript string
	output     *os.File
	digest     *digest.Video

	// the state of the tick being recorded and whether it differs from the
	// previously written state
	state   input.State
	written input.State
	changed bool

	// the number of frames seen and whether the most recent frame has been
	// written to the transcript
	tick        int
	lastWritten bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The cartridge loader must have been loaded.
func NewRecorder(transcript string, cartload cartridgeloader.Loader, format display.PixelFormat) (*Recorder, error) {
	if !cartload.HasLoaded() {
		return nil, curated.Errorf("recorder: cartridge has not been loaded")
	}

	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	h := header{
		cartName: cartload.Filename,
		cartHash: cartload.Hash,
		format:   format,
	}
	if _, err := f.WriteString(h.String()); err != nil {
		f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return &Recorder{
		transcript: transcript,
		output:     f,
		digest:     digest.NewVideo(),
		changed:    true,
	}, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%s (%d ticks)", rec.transcript, rec.tick)
}

// Record the input state for the next tick.
func (rec *Recorder) Record(st input.State) {
	rec.state = st
	if st != rec.written {
		rec.changed = true
	}
}

func (rec *Recorder) write() error {
	e := entry{
		tick:  rec.tick,
		state: rec.state,
		hash:  rec.digest.Hash(),
	}
	if _, err := fmt.Fprintln(rec.output, e); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	rec.written = rec.state
	rec.changed = false
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (rec *Recorder) NewFrame(frame television.Frame) error {
	if rec.output == nil {
		return nil
	}

	if err := rec.digest.NewFrame(frame); err != nil {
		return err
	}

	rec.lastWritten = rec.changed
	if rec.changed {
		if err := rec.write(); err != nil {
			return err
		}
	}
	rec.tick++

	return nil
}

// Reset implements the television.PixelRenderer interface.
func (rec *Recorder) Reset() {
}

// EndRendering implements the television.PixelRenderer interface. The final
// tick is always written so that playback knows when to stop.
func (rec *Recorder) EndRendering() error {
	if rec.output == nil {
		return nil
	}

	var err error
	if rec.tick > 0 && !rec.lastWritten {
		rec.tick--
		err = rec.write()
		rec.tick++
	}

	if cerr := rec.output.Close(); cerr != nil && err == nil {
		err = curated.Errorf("recorder: %v", cerr)
	}
	rec.output = nil

	logger.Logf(logger.Allow, "recorder", "recorded %d ticks", rec.tick)

	return err
}

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
	"strings"

	"github.com/gotic/gotic/cartridgeloader"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/digest"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/television"
)

// PlaybackHashError is returned by NewFrame() when the video digest does not
// match the recording.
const PlaybackHashError = "playback: unexpected hash at tick %d (line %d)"

// Playback is used to reperform the user input recorded in a previously
// recorded file. It implements the television.PixelRenderer interface.
type Playback struct {
	transcript string

	// the cartridge named in the recording. the loader carries the hash of
	// the recorded cartridge so loading a different cartridge will fail
	CartLoad cartridgeloader.Loader

	// the pixel format the recording was made with. the video digest
	// depends on it
	Format display.PixelFormat

	sequence []entry
	seqCt    int

	digest *digest.Video
	state  input.State
	tick   int

	// the last tick where an entry occurs
	endTick int
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.tick, plb.endTick+1, 100*(float64(plb.tick)/float64(plb.endTick+1)))
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	data, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	h, err := readHeader(transcript, lines)
	if err != nil {
		return nil, err
	}

	plb := &Playback{
		transcript: transcript,
		CartLoad:   cartridgeloader.NewLoader(h.cartName),
		Format:     h.format,
		digest:     digest.NewVideo(),
	}
	plb.CartLoad.Hash = h.cartHash

	prev := -1
	for i := numHeaderLines; i < len(lines); i++ {
		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		if e.tick <= prev {
			return nil, curated.Errorf(BadEntry, i+1, "ticks out of order")
		}
		prev = e.tick
		plb.sequence = append(plb.sequence, e)
	}

	if len(plb.sequence) == 0 {
		return nil, curated.Errorf("playback: recording is empty")
	}
	plb.endTick = prev

	return plb, nil
}

// EndFrame returns true if playback has gone past the last tick of the
// recording.
func (plb *Playback) EndFrame() bool {
	return plb.tick > plb.endTick
}

// State returns the input for the next tick.
func (plb *Playback) State() input.State {
	if plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].tick == plb.tick {
		plb.state = plb.sequence[plb.seqCt].state
	}
	return plb.state
}

// NewFrame implements the television.PixelRenderer interface.
func (plb *Playback) NewFrame(frame television.Frame) error {
	if err := plb.digest.NewFrame(frame); err != nil {
		return err
	}

	if plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].tick == plb.tick {
		e := plb.sequence[plb.seqCt]
		plb.seqCt++
		if e.hash != plb.digest.Hash() {
			plb.tick++
			return curated.Errorf(PlaybackHashError, e.tick, e.line)
		}
	}

	plb.tick++

	return nil
}

// Reset implements the television.PixelRenderer interface.
func (plb *Playback) Reset() {
}

// EndRendering implements the television.PixelRenderer interface.
func (plb *Playback) EndRendering() error {
	return nil
}

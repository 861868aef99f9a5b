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

package sound

import "github.com/gotic/gotic/hardware/memory"

// Status of the music sequencer.
type Status int

// List of valid Status values.
const (
	Stopped Status = iota
	PlayingFrame
	Playing
)

func (st Status) String() string {
	switch st {
	case Stopped:
		return "stopped"
	case PlayingFrame:
		return "playing frame"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// MusicState is the state of the music sequencer as stored in RAM.
type MusicState struct {
	Track   int
	Frame   int
	Row     int
	Loop    bool
	Sustain bool
	Status  Status
}

// MusicState returns the state of the music sequencer.
func (s *Sound) MusicState() MusicState {
	a := s.mem.Area(memory.MusicState)
	return MusicState{
		Track:   int(int8(a[0])),
		Frame:   int(int8(a[1])),
		Row:     int(int8(a[2])),
		Loop:    a[3]&0x01 == 0x01,
		Sustain: a[3]&0x02 == 0x02,
		Status:  Status(a[3]>>2) & 0x03,
	}
}

func (s *Sound) setMusicState(st MusicState) {
	a := s.mem.Area(memory.MusicState)
	a[0] = uint8(int8(st.Track))
	a[1] = uint8(int8(st.Frame))
	a[2] = uint8(int8(st.Row))

	// upper four bits are reserved and preserved
	f := a[3] & 0xf0
	if st.Loop {
		f |= 0x01
	}
	if st.Sustain {
		f |= 0x02
	}
	f |= uint8(st.Status&0x03) << 2
	a[3] = f
}

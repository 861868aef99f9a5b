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

import "github.com/gotic/gotic/cartridge"

// vibrato waveform. one cycle in 32 steps scaled to 16.16 fixed point
var vibrato = [...]int{
	0x0, 0x31f1, 0x61f8, 0x8e3a, 0xb505, 0xd4db, 0xec83, 0xfb15,
	0x10000, 0xfb15, 0xec83, 0xd4db, 0xb505, 0x8e3a, 0x61f8, 0x31f1,
	0x0, -0x31f1, -0x61f8, -0x8e3a, -0xb505, -0xd4db, -0xec83, -0xfb15,
	-0x10000, -0xfb15, -0xec83, -0xd4db, -0xb505, -0x8e3a, -0x61f8, -0x31f1,
}

// returns true if no channel in the frame has a pattern
func (t track) empty(frame int) bool {
	for c := range Channels {
		if t.patternID(frame, c) != 0 {
			return false
		}
	}
	return true
}

func (s *Sound) processMusic() {
	st := s.MusicState()
	if st.Status == Stopped {
		return
	}

	if st.Track < 0 || st.Track >= cartridge.NumTracks {
		s.stopMusic()
		return
	}

	trk := s.track(st.Track)
	r := s.tick2row(trk, s.music.ticks)

	if r != st.Row && s.music.jump.active {
		st.Frame = s.music.jump.frame
		r = s.music.jump.beat * NotesPerBeat
		s.music.ticks = s.row2tick(trk, r)
		s.music.jump = jump{}
	}

	rows := PatternRows - trk.rows()
	if r >= rows {
		r = 0
		s.music.ticks = 0

		// in sustain mode the channels carry on playing into the next frame
		if !st.Sustain {
			s.resetMusicChannels()
			for c := range Channels {
				s.setMusicChannelData(-1, 0, 0, MaxVolume, MaxVolume, c)
			}
		}

		switch st.Status {
		case Playing:
			st.Frame++
			if st.Frame >= MusicFrames || trk.empty(st.Frame) {
				if !st.Loop {
					s.stopMusic()
					return
				}
				st.Frame = 0
			}
		case PlayingFrame:
			if !st.Loop {
				s.stopMusic()
				return
			}
		}
	}

	// the music state in RAM can be poked by the program
	if st.Frame < 0 || st.Frame >= MusicFrames {
		s.stopMusic()
		return
	}

	if r != st.Row {
		st.Row = r
		for c := range Channels {
			s.processRow(trk, st.Frame, st.Row, c)
		}
	}

	s.setMusicState(st)

	for i := range Channels {
		ch := &s.music.channels[i]
		cmd := &s.music.commands[i]

		if ch.index >= 0 {
			note := ch.note
			pitch := 0

			chord := [3]int{0, cmd.chord.note1, cmd.chord.note2}
			if cmd.chord.note2 == 0 {
				note += chord[cmd.chord.tick%2]
			} else {
				note += chord[cmd.chord.tick%3]
			}

			if cmd.vibrato.period != 0 && cmd.vibrato.depth != 0 {
				p := cmd.vibrato.period << 1
				pitch += (vibrato[(cmd.vibrato.tick%p)*len(vibrato)/p] * cmd.vibrato.depth) >> 16
			}

			// slide from the previous note to the current note
			if cmd.slide.tick < cmd.slide.duration {
				note = cmd.slide.note
				pitch += (freq(ch.note) - freq(note)) * cmd.slide.tick / cmd.slide.duration
			}

			pitch += cmd.finepitch

			s.envelope(ch.index, note, pitch, ch, i)
		}

		cmd.chord.tick++
		cmd.vibrato.tick++
		cmd.slide.tick++
		if cmd.delay.ticks > 0 {
			cmd.delay.ticks--
		}
	}

	s.music.ticks++
}

// frequency of the note. the note is clamped to the range of the table
func freq(note int) int {
	return noteFreqs[min(max(note, 0), len(noteFreqs)-1)]
}

// apply a row of the pattern playing on the channel
func (s *Sound) processRow(trk track, frame int, r int, c int) {
	id := trk.patternID(frame, c)
	if id == 0 || id > cartridge.NumPatterns {
		return
	}

	rw := s.pattern(id, r)
	cmd := &s.music.commands[c]
	ch := &s.music.channels[c]

	if rw.command() == cmdDelay {
		cmd.delay.row = rw
		cmd.delay.ticks = rw.param2val()
		rw = nil
	}

	if cmd.delay.row != nil && cmd.delay.ticks == 0 {
		rw = cmd.delay.row
		cmd.delay.row = nil
	}

	if rw == nil {
		return
	}

	if rw.note() != 0 {
		cmd.slide.tick = 0
		cmd.slide.note = ch.note
	}

	if rw.note() == noteStop {
		s.setMusicChannelData(-1, 0, 0, ch.left, ch.right, c)
	} else if rw.note() >= noteStart {
		s.setMusicChannelData(rw.sfx(), rw.note()-noteStart, rw.octave(), ch.left, ch.right, c)
	}

	switch rw.command() {
	case cmdVolume:
		ch.left = rw.param1()
		ch.right = rw.param2()
	case cmdChord:
		cmd.chord.tick = 0
		cmd.chord.note1 = rw.param1()
		cmd.chord.note2 = rw.param2()
	case cmdJump:
		s.music.jump.active = true
		s.music.jump.frame = rw.param1()
		s.music.jump.beat = rw.param2()
	case cmdVibrato:
		cmd.vibrato.tick = 0
		cmd.vibrato.period = rw.param1()
		cmd.vibrato.depth = rw.param2()
	case cmdSlide:
		cmd.slide.duration = rw.param2val()
	case cmdPitch:
		cmd.finepitch = rw.param2val() - pitchDelta
	}
}

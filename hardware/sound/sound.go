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

import (
	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/memory"
)

// Sentinel error patterns.
const (
	UnknownChannel = "sound: unknown channel (%d)"
	InvalidSfx     = "sound: invalid sfx index (%d)"
	InvalidTrack   = "sound: invalid music track index (%d)"
	InvalidFrame   = "sound: invalid music frame (%d)"
)

// a playing sound effect or music note
type channel struct {
	tick     int
	index    int
	note     int
	left     int
	right    int
	speed    int
	duration int

	// position in each of the sound effect's loops. values are signed bytes
	pos []byte
}

func (c *channel) resetPos() {
	for i := range c.pos {
		c.pos[i] = 0xff
	}
	c.tick = -1
}

// ChannelState is a summary of a channel's state.
type ChannelState struct {
	Index    int
	Note     int
	Duration int
	Left     int
	Right    int
	Speed    int
}

func (c *channel) state() ChannelState {
	return ChannelState{
		Index:    c.index,
		Note:     c.note,
		Duration: c.duration,
		Left:     c.left,
		Right:    c.right,
		Speed:    c.speed,
	}
}

type command struct {
	chord struct {
		tick         int
		note1, note2 int
	}
	vibrato struct {
		tick          int
		period, depth int
	}
	slide struct {
		tick     int
		note     int
		duration int
	}
	finepitch int
	delay     struct {
		row   row
		ticks int
	}
}

type jump struct {
	active bool
	frame  int
	beat   int
}

// Sound is the sound hardware of the console.
type Sound struct {
	mem        *memory.Memory
	sampleRate int

	sfx [Channels]channel

	music struct {
		ticks    int
		channels [Channels]channel
		commands [Channels]command
		pos      [Channels][numLoops]byte
		jump     jump
		tempo    int
		speed    int
	}

	synth [Channels]struct {
		left, right synthesis
	}

	// interleaved stereo samples for a single tick
	buffer []int16
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound(mem *memory.Memory, sampleRate int) *Sound {
	s := &Sound{
		mem:        mem,
		sampleRate: sampleRate,
		buffer:     make([]int16, sampleRate/60*2),
	}
	s.Clear()
	return s
}

// SampleRate of the audio produced by TickEnd().
func (s *Sound) SampleRate() int {
	return s.sampleRate
}

// Clear stops all sound.
func (s *Sound) Clear() {
	sfxpos := s.mem.Area(memory.SfxPos)

	for i := range Channels {
		empty := channel{
			tick:     -1,
			index:    -1,
			duration: -1,
		}

		s.sfx[i] = empty
		s.sfx[i].pos = sfxpos[i*numLoops : (i+1)*numLoops]
		s.sfx[i].resetPos()

		s.music.channels[i] = empty
		s.music.channels[i].pos = s.music.pos[i][:]
		s.music.channels[i].resetPos()

		s.synth[i].left = synthesis{}
		s.synth[i].right = synthesis{}
	}

	clear(s.mem.Area(memory.SoundRegisters))
	clear(s.buffer)

	s.setMusic(-1, 0, 0, false, false, -1, -1)
}

func (s *Sound) sample(index int) Sample {
	o := memory.Samples.Origin() + index*cartridge.SampleSize
	return Sample(s.mem.Slice(o, cartridge.SampleSize))
}

// Sample returns a view of the sound effect in RAM.
func (s *Sound) Sample(index int) (Sample, error) {
	if index < 0 || index >= cartridge.NumSfx {
		return nil, curated.Errorf(InvalidSfx, index)
	}
	return s.sample(index), nil
}

func (s *Sound) track(index int) track {
	o := memory.Tracks.Origin() + index*cartridge.TrackSize
	return track(s.mem.Slice(o, cartridge.TrackSize))
}

func (s *Sound) pattern(id int, r int) row {
	o := memory.Patterns.Origin() + (id-patternStart)*cartridge.PatternSize + r*rowSize
	return row(s.mem.Slice(o, rowSize))
}

func (s *Sound) register(ch int) register {
	o := memory.SoundRegisters.Origin() + ch*memory.SoundRegisterSize
	return register(s.mem.Slice(o, memory.SoundRegisterSize))
}

func (s *Sound) tempo(t track) int {
	if s.music.tempo < 0 {
		return t.tempo() + DefaultTempo
	}
	return s.music.tempo
}

func (s *Sound) speed(t track) int {
	if s.music.speed < 0 {
		return t.speed() + DefaultSpeed
	}
	return s.music.speed
}

func (s *Sound) row2tick(t track, row int) int {
	tempo := s.tempo(t)
	if tempo == 0 {
		return 0
	}
	return row * s.speed(t) * NotesPerMinute / tempo / DefaultSpeed
}

func (s *Sound) tick2row(t track, tick int) int {
	speed := s.speed(t)
	tempo := s.tempo(t)
	if speed == 0 || tempo == 0 {
		return 0
	}
	return tick * tempo * DefaultSpeed / speed / NotesPerMinute
}

// Row2Tick returns the number of ticks from the start of a pattern to the
// row, at the tempo and speed of the track. Returns zero if the tempo is
// zero.
func (s *Sound) Row2Tick(track int, row int) int {
	if track < 0 || track >= cartridge.NumTracks {
		return 0
	}
	return s.row2tick(s.track(track), row)
}

// Tick2Row is the inverse of Row2Tick().
func (s *Sound) Tick2Row(track int, tick int) int {
	if track < 0 || track >= cartridge.NumTracks {
		return 0
	}
	return s.tick2row(s.track(track), tick)
}

// set the note of a channel. the speed is only used if it fits into the
// speed field of a sound effect. otherwise the speed of the sound effect is
// used
func (s *Sound) setChannelData(index, note, octave, duration int, c *channel, left, right, speed int) {
	c.left = left & 0x0f
	c.right = right & 0x0f
	c.index = index
	c.duration = duration

	if index >= 0 {
		if speed == signed(uint8(speed)&0x07, 3) {
			c.speed = speed
		} else {
			c.speed = s.sample(index).Speed()
		}
		c.note = note + octave*Notes
		c.resetPos()
	}
}

func (s *Sound) setMusicChannelData(index, note, octave, left, right, ch int) {
	s.setChannelData(index, note, octave, -1, &s.music.channels[ch], left, right, sfxDefaultSpeed)
}

func (s *Sound) resetMusicChannels() {
	for c := range Channels {
		s.setMusicChannelData(-1, 0, 0, 0, 0, c)
	}
	s.music.commands = [Channels]command{}
	s.music.jump = jump{}
}

func (s *Sound) setMusic(index, frame, row int, loop, sustain bool, tempo, speed int) {
	st := s.MusicState()
	st.Track = index

	if index < 0 {
		st.Status = Stopped
		s.resetMusicChannels()
	} else {
		for c := range Channels {
			s.setMusicChannelData(-1, 0, 0, MaxVolume, MaxVolume, c)
		}

		st.Row = row
		st.Frame = max(frame, 0)
		st.Loop = loop
		st.Sustain = sustain
		st.Status = Playing

		s.music.tempo = tempo
		s.music.speed = speed
		if row >= 0 {
			s.music.ticks = s.row2tick(s.track(index), row)
		} else {
			s.music.ticks = 0
		}
	}

	s.setMusicState(st)
}

func (s *Sound) stopMusic() {
	s.setMusic(-1, 0, 0, false, false, -1, -1)
}

// SetMusic starts playing the track from the frame and row. A negative
// track stops the music. A negative frame is the first frame. A negative
// tempo or speed uses the value in the track.
func (s *Sound) SetMusic(track, frame, row int, loop, sustain bool, tempo, speed int) error {
	if track >= cartridge.NumTracks {
		return curated.Errorf(InvalidTrack, track)
	}
	if frame >= MusicFrames {
		return curated.Errorf(InvalidFrame, frame)
	}
	s.setMusic(track, frame, row, loop, sustain, tempo, speed)
	return nil
}

// Sfx plays the sound effect on the channel. A negative index stops the
// channel. A duration of -1 plays the sound effect until it is stopped.
// Volumes are between 0 and 15.
func (s *Sound) Sfx(index, note, octave, duration, ch, left, right, speed int) error {
	if ch < 0 || ch >= Channels {
		return curated.Errorf(UnknownChannel, ch)
	}
	if index >= cartridge.NumSfx {
		return curated.Errorf(InvalidSfx, index)
	}
	s.setChannelData(index, note, octave, duration, &s.sfx[ch], left, right, speed)
	return nil
}

// SfxChannel returns the state of the sound effect channel.
func (s *Sound) SfxChannel(ch int) ChannelState {
	return s.sfx[ch].state()
}

// MusicChannel returns the state of the music channel.
func (s *Sound) MusicChannel(ch int) ChannelState {
	return s.music.channels[ch].state()
}

// TickStart evaluates the music sequencer and the envelopes of all active
// channels. The results are written to the sound registers and stereo
// volume area of RAM.
func (s *Sound) TickStart() {
	clear(s.mem.Area(memory.SoundRegisters))
	stereo := s.mem.Area(memory.StereoVolume)
	for i := range stereo {
		stereo[i] = 0xff
	}

	s.processMusic()

	for i := range Channels {
		c := &s.sfx[i]
		if c.index >= 0 {
			s.envelope(c.index, c.note, 0, c, i)
		}
	}
}

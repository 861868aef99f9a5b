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

// Package otoaudio implements the television.AudioMixer interface with the
// oto library. It is the audio output used with the ebitenplay GUI.
package otoaudio

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/logger"
)

// the number of ticks of audio that can be buffered before the oldest audio
// is discarded
const maxBufferedTicks = 6

const (
	channels       = 2
	bytesPerSample = 2
)

// the buffer size of the oto context
const bufferSize = 50 * time.Millisecond

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player

	stream *stream
	muted  bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
// There can only be one instance of Audio in the program.
func NewAudio(sampleRate int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	aud := &Audio{
		ctx: ctx,
		stream: &stream{
			max: sampleRate * channels * bytesPerSample * maxBufferedTicks / hardware.FrameRate,
		},
	}
	aud.player = ctx.NewPlayer(aud.stream)
	aud.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "frequency: %d samples/sec", sampleRate)

	return aud, nil
}

// SetMute silences the audio without stopping the player.
func (aud *Audio) SetMute(muted bool) {
	aud.muted = muted
	if muted {
		aud.stream.clear()
	}
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	if aud.muted {
		return nil
	}
	aud.stream.write(samples)
	return nil
}

// Reset implements the television.AudioMixer interface.
func (aud *Audio) Reset() {
	aud.stream.clear()
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	if err := aud.player.Close(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}

// stream is the io.Reader given to the oto player. the player reads from it
// on its own goroutine
type stream struct {
	crit sync.Mutex
	buf  []byte
	max  int
}

func (s *stream) write(samples []int16) {
	s.crit.Lock()
	defer s.crit.Unlock()

	for _, v := range samples {
		s.buf = binary.LittleEndian.AppendUint16(s.buf, uint16(v))
	}

	// discard the oldest audio. the amount discarded is a whole number of
	// sample frames
	if over := len(s.buf) - s.max; over > 0 {
		over += (channels*bytesPerSample - over%(channels*bytesPerSample)) % (channels * bytesPerSample)
		s.buf = append(s.buf[:0], s.buf[over:]...)
	}
}

func (s *stream) clear() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.buf = s.buf[:0]
}

// Read implements the io.Reader interface. Silence is returned if there is
// not enough audio in the buffer.
func (s *stream) Read(p []byte) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	n := copy(p, s.buf)
	s.buf = append(s.buf[:0], s.buf[n:]...)
	clear(p[n:])

	return len(p), nil
}

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

// Package sdlaudio implements the television.AudioMixer interface with SDL.
// Audio is queued to the device every tick.
package sdlaudio

import (
	"encoding/binary"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/logger"
)

// the number of ticks of audio that can be queued before the queue is
// cleared. a long queue introduces lag between the audio and the video
const maxQueuedTicks = 6

// the number of sample frames in the audio buffer of the device. the
// precise value is not critical
const bufferLength = 1024

const (
	channels       = 2
	bytesPerSample = 2
)

// Audio outputs sound using SDL. SDL must have been initialised with the
// audio subsystem before calling NewAudio().
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []byte

	// the size of the queue in bytes at which the queue is cleared
	maxQueued uint32

	muted bool
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(sampleRate int) (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: channels,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	aud.maxQueued = uint32(sampleRate * channels * bytesPerSample * maxQueuedTicks / hardware.FrameRate)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetMute silences the audio without stopping the device.
func (aud *Audio) SetMute(muted bool) {
	aud.muted = muted
	if muted {
		sdl.ClearQueuedAudio(aud.id)
	}
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	if aud.muted {
		return nil
	}

	if sdl.GetQueuedAudioSize(aud.id) > aud.maxQueued {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// Reset implements the television.AudioMixer interface.
func (aud *Audio) Reset() {
	sdl.ClearQueuedAudio(aud.id)
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}

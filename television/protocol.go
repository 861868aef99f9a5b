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

import "github.com/gotic/gotic/hardware/display"

// Frame is the video produced by a single tick of the console.
type Frame struct {
	// the pixels of the frame, including the border. the slice is reused by
	// the console and should not be retained after NewFrame() has returned
	Pixels []byte

	Width  int
	Height int
	Format display.PixelFormat

	// the number of the frame. the first frame after a reset is frame zero
	Number int
}

// PixelRenderer implementations display, or otherwise work with, the visual
// information from a television. For example digest.Video.
type PixelRenderer interface {
	// NewFrame is called once for every frame signalled to the television.
	NewFrame(Frame) error

	// Reset is called when the television is reset.
	Reset()

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works with
// it is the digest.Audio type.
type AudioMixer interface {
	// SetAudio is called with the interleaved stereo samples of a single
	// tick. the slice is reused by the console and should not be retained
	SetAudio(samples []int16) error

	// Reset is called when the television is reset.
	Reset()

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

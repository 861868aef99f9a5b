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

// Package recorder handles the recording and playback of user input. A
// recording is a transcript of the input state of every tick on which the
// input changed, together with the video digest of the frame produced by
// that tick.
//
// The Recorder type is added to a television as a PixelRenderer and is told
// of the input for every tick with the Record() function. The Playback type
// is also a PixelRenderer. It supplies the recorded input with the State()
// function and checks the video digest of every recorded tick.
//
// Programs that read the clock with time() or tstamp() will not play back
// reliably.
package recorder

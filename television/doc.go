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

// Package television is the output device of the console. The Television
// type does not present any information itself, either visually or
// sonically. Instead, the AddPixelRenderer() and AddAudioMixer() functions
// can be used to add as many renderers and mixers as required.
//
// The main means of communication is the Signal() function, which is called
// once per tick with the frame and audio produced by the console. The
// television then passes the frame to every PixelRenderer and the audio to
// every AudioMixer.
//
// The television also limits the rate at which frames are signalled to the
// frame rate of the console. The limit can be turned off with SetFPSCap().
//
// The digest package is a good example of how PixelRenderer and AudioMixer
// implementations can be used for purposes other than display.
package television

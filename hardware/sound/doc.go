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

// Package sound implements the music sequencer, the sound effect envelopes
// and the synthesis of audio samples.
//
// Sound is processed once per tick. TickStart() advances the music
// sequencer and evaluates the envelope of every active channel. The result
// of the evaluation is written to the sound registers and the stereo volume
// area in RAM. A program may change the registers before the end of the
// tick. TickEnd() synthesises one tick's worth of interleaved stereo
// samples from whatever the registers then contain.
//
// The sequencer and sound effect data (waveforms, samples, patterns and
// tracks) are read from RAM every tick and so can be changed by the running
// program at any time.
package sound

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
	"github.com/gotic/gotic/hardware/memory"
)

// position in the sound effect for the tick at the speed. positive speeds
// are faster and negative speeds are slower
func sfxPos(speed int, tick int) int {
	if speed > 0 {
		return tick * (1 + speed)
	}
	return tick / (1 - speed)
}

// position in a loop of the sound effect. a loop with a size of zero plays
// once and then holds the last value
func loopPos(start, size int, pos int) int {
	if size == 0 {
		return min(pos, SfxTicks-1)
	}

	// the position counts up to the end of the loop and then cycles
	// between the start and end of the loop
	end := start + size - 1
	if pos <= end {
		return pos
	}
	return start + (pos-end-1)%size
}

// evaluate the sound effect playing on the channel and write the result to
// the sound register ch
func (s *Sound) envelope(index int, note int, pitch int, c *channel, ch int) {
	if c.duration > 0 {
		c.duration--
	}

	if index < 0 || c.duration == 0 {
		c.resetPos()
		return
	}

	smp := s.sample(index)

	c.tick++
	pos := sfxPos(c.speed, c.tick)
	for l := range numLoops {
		start, size := smp.loop(l)
		c.pos[l] = uint8(loopPos(start, size, pos))
	}

	volume := MaxVolume - smp.volume(int(c.pos[loopVolume]))
	if volume <= 0 {
		return
	}

	arp := smp.chord(int(c.pos[loopChord]))
	if smp.reverse() {
		arp = -arp
	}
	note += arp

	p := smp.pitch(int(c.pos[loopPitch]))
	if smp.pitch16x() {
		p *= 16
	}

	reg := s.register(ch)
	reg.set(freq(note)+p+pitch, volume)

	w := smp.wave(int(c.pos[loopWave]))
	o := memory.Waveforms.Origin() + w*cartridge.WaveformSize
	copy(reg.waveform(), s.mem.Slice(o, cartridge.WaveformSize))

	// scale the stereo volume by the channel volume
	n := memory.StereoVolume.Origin()*2 + ch*2
	s.mem.Poke4(n, uint8(int(s.mem.Peek4(n))*c.left/MaxVolume))
	s.mem.Poke4(n+1, uint8(int(s.mem.Peek4(n+1))*c.right/MaxVolume))
}

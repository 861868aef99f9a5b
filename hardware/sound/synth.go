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

// synthesis state of one side of a channel
type synthesis struct {
	time  int
	phase int
	amp   int
}

const (
	minPeriod = 10
	maxPeriod = 4096
)

// number of clock ticks between steps of the waveform for the frequency
func freq2period(freq int) int {
	const rate = ClockRate * envelopeFreqScale / WaveValues
	if freq == 0 {
		return maxPeriod
	}
	return min(max(rate/freq-1, minPeriod), maxPeriod)
}

// scale the amplitude by the register's volume. the result is divided
// between the channels so that the sum of all channels cannot overflow
func amplitude(reg register, amp int) int {
	const ampMax = 0xffff / 2
	return (amp * ampMax / MaxVolume) * reg.volume() / MaxVolume / Channels
}

// advance the waveform up to the end time. the output is centred on zero
func (sy *synthesis) tone(reg register, end int, volume int) {
	period := freq2period(reg.freq() * envelopeFreqScale)
	for ; sy.time < end; sy.time += period {
		sy.phase = (sy.phase + 1) % WaveValues
		sy.amp = amplitude(reg, reg.sample(sy.phase)*volume/MaxVolume) - amplitude(reg, volume)/2
	}
}

// advance the noise generator up to the end time. the phase is the state of
// a linear feedback shift register and must never be zero
func (sy *synthesis) noise(reg register, end int, volume int) {
	if sy.phase == 0 {
		sy.phase = 1
	}
	period := freq2period(reg.freq())
	for ; sy.time < end; sy.time += period {
		sy.phase = ((sy.phase & 1) * (0b11 << 13)) ^ (sy.phase >> 1)
		if sy.phase&1 == 1 {
			sy.amp = amplitude(reg, volume) / 2
		} else {
			sy.amp = -amplitude(reg, volume) / 2
		}
	}
}

func (sy *synthesis) run(reg register, end int, volume int) {
	if reg.noise() {
		sy.noise(reg, end, volume)
	} else {
		sy.tone(reg, end, volume)
	}
}

func clamp16(v int) int16 {
	return int16(min(max(v, -0x8000), 0x7fff))
}

// TickEnd synthesises a tick's worth of samples from the sound registers
// and the stereo volume. The samples can be retrieved with Samples().
func (s *Sound) TickEnd() {
	const endTime = ClockRate / 60

	frames := len(s.buffer) / 2
	if frames == 0 {
		return
	}

	var regs [Channels]register
	var left, right [Channels]int
	for c := range Channels {
		regs[c] = s.register(c)
		n := memory.StereoVolume.Origin()*2 + c*2
		left[c] = int(s.mem.Peek4(n))
		right[c] = int(s.mem.Peek4(n + 1))
	}

	for i := range frames {
		t := (i + 1) * endTime / frames

		var l, r int
		for c := range Channels {
			sy := &s.synth[c]
			sy.left.run(regs[c], t, left[c])
			sy.right.run(regs[c], t, right[c])
			l += sy.left.amp
			r += sy.right.amp
		}

		s.buffer[i*2] = clamp16(l)
		s.buffer[i*2+1] = clamp16(r)
	}

	for c := range Channels {
		s.synth[c].left.time -= endTime
		s.synth[c].right.time -= endTime
	}
}

// Samples returns the interleaved stereo samples produced by the most
// recent call to TickEnd(). The slice is reused by every tick.
func (s *Sound) Samples() []int16 {
	return s.buffer
}

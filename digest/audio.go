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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// Audio is an implementation of the television.AudioMixer interface. It
// generates a sha1 value of the audio of every tick.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(samples []int16) error {
	dig.buffer = dig.buffer[:0]
	for _, s := range samples {
		dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, uint16(s))
	}
	dig.digest = chain(dig.digest, dig.buffer)
	return nil
}

// Reset implements the television.AudioMixer interface.
func (dig *Audio) Reset() {
	dig.ResetDigest()
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}

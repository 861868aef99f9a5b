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
	"fmt"

	"github.com/gotic/gotic/television"
)

// Video is an implementation of the television.PixelRenderer interface. It
// generates a sha1 value of the image every frame. It does not display the
// image anywhere.
type Video struct {
	digest [sha1.Size]byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

func (dig *Video) String() string {
	return fmt.Sprintf("%d frames: %s", dig.frames, dig.Hash())
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(frame television.Frame) error {
	dig.digest = chain(dig.digest, frame.Pixels)
	dig.frames++
	return nil
}

// Reset implements the television.PixelRenderer interface.
func (dig *Video) Reset() {
	dig.ResetDigest()
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}

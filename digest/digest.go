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

// Package digest contains implementations of the television interfaces,
// namely PixelRenderer and AudioMixer, such that a cryptographic hash is
// produced. The hash can then be used to compare the output of subsequent
// runs of a cartridge. If a new hash differs from a previously recorded
// value then something has changed.
//
// Hashes are chained. The hash of a frame (or of a tick of audio) includes
// the hash of the previous frame, so the final value of the hash covers the
// entire output since the last reset.
//
// Note that the use of sha1 is fine for this application because this is
// not a cryptographic task.
package digest

import "crypto/sha1"

// Digest implementations return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}

// chain the data to the previous digest value
func chain(digest [sha1.Size]byte, data []byte) [sha1.Size]byte {
	h := sha1.New()
	h.Write(digest[:])
	h.Write(data)
	var d [sha1.Size]byte
	copy(d[:], h.Sum(nil))
	return d
}

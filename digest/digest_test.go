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

package digest_test

import (
	"testing"

	"github.com/gotic/gotic/digest"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/test"
)

func TestVideo(t *testing.T) {
	test.ExpectImplements[television.PixelRenderer](t, digest.NewVideo())
	test.ExpectImplements[digest.Digest](t, digest.NewVideo())

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	frame := television.Frame{Pixels: []byte{1, 2, 3, 4}}
	test.ExpectSuccess(t, a.NewFrame(frame))
	test.ExpectInequality(t, a.Hash(), b.Hash())
	test.ExpectSuccess(t, b.NewFrame(frame))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the same frame twice produces a different hash because hashes are
	// chained
	h := a.Hash()
	test.ExpectSuccess(t, a.NewFrame(frame))
	test.ExpectInequality(t, a.Hash(), h)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), digest.NewVideo().Hash())
}

func TestAudio(t *testing.T) {
	test.ExpectImplements[television.AudioMixer](t, digest.NewAudio())

	a := digest.NewAudio()
	b := digest.NewAudio()
	test.ExpectSuccess(t, a.SetAudio([]int16{1, -1, 100}))
	test.ExpectSuccess(t, b.SetAudio([]int16{1, -1, 101}))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.Reset()
	b.Reset()
	test.ExpectEquality(t, a.Hash(), b.Hash())
}

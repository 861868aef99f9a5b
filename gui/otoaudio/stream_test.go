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

package otoaudio

import (
	"testing"

	"github.com/gotic/gotic/test"
)

func TestStream(t *testing.T) {
	s := &stream{max: 8}

	s.write([]int16{1, 2})
	p := make([]byte, 6)
	n, err := s.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, p[0], byte(1))
	test.ExpectEquality(t, p[2], byte(2))

	// the remainder is silence
	test.ExpectEquality(t, p[4], byte(0))
}

func TestStreamOverflow(t *testing.T) {
	s := &stream{max: 8}

	// twelve bytes is one sample frame over the limit
	s.write([]int16{1, 2, 3, 4, 5, 6})
	test.ExpectEquality(t, len(s.buf), 8)
	test.ExpectEquality(t, s.buf[0], byte(3))

	s.clear()
	p := make([]byte, 2)
	_, _ = s.Read(p)
	test.ExpectEquality(t, p[0], byte(0))
}

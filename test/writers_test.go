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

package test_test

import (
	"testing"

	"github.com/gotic/gotic/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")

	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	// exactly fills the buffer
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")
	r.Write([]byte("mn"))
	test.ExpectEquality(t, r.String(), "efghijklmn")

	r.Write([]byte("1234567890"))
	test.ExpectEquality(t, r.String(), "1234567890")

	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)

	n, _ := c.Write([]byte("abc"))
	test.ExpectEquality(t, n, 3)
	n, _ = c.Write([]byte("defg"))
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, c.String(), "abcde")

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("foo"))
	test.ExpectSuccess(t, w.Compare("foo"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}

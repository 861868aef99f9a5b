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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions are equivalent but stop the test with
// t.Fatalf(). The Success and Failure variants understand bool and error
// values. A nil value is a success, because a nil error means no error.
//
// The writer types implement io.Writer and are used to capture output from
// functions that write to a stream. CompareWriter accumulates everything,
// CappedWriter stops accepting bytes once full and RingWriter keeps only the
// most recent bytes.
package test

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

package gui_test

import (
	"testing"

	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/test"
)

func TestFit(t *testing.T) {
	// exact multiple
	r := gui.Fit(display.FullWidth*2, display.FullHeight*2)
	test.ExpectEquality(t, r, gui.Rect{W: display.FullWidth * 2, H: display.FullHeight * 2})

	// window wider than the frame
	r = gui.Fit(display.FullWidth*4, display.FullHeight*2)
	test.ExpectEquality(t, r.H, display.FullHeight*2)
	test.ExpectEquality(t, r.W, display.FullWidth*2)
	test.ExpectEquality(t, r.X, display.FullWidth)
	test.ExpectEquality(t, r.Y, 0)

	test.ExpectEquality(t, gui.Fit(0, 100), gui.Rect{})
}

func TestToFrame(t *testing.T) {
	r := gui.Fit(display.FullWidth*4, display.FullHeight*2)
	x, y := r.ToFrame(display.FullWidth+20, 10)
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 5)
}

func TestArgs(t *testing.T) {
	v, ok := gui.Args[bool]([]gui.FeatureReqData{true})
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, v)

	_, ok = gui.Args[bool]([]gui.FeatureReqData{"true"})
	test.ExpectFailure(t, ok)

	_, ok = gui.Args[bool](nil)
	test.ExpectFailure(t, ok)

	// a nil argument is the zero value
	f, ok := gui.Args[func() float64]([]gui.FeatureReqData{nil})
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, f == nil)
}

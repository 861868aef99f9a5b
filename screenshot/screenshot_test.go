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

package screenshot_test

import (
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/screenshot"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/test"
)

func frame(format display.PixelFormat, pixel [4]byte) television.Frame {
	f := television.Frame{
		Width:  2,
		Height: 2,
		Format: format,
	}
	for range f.Width * f.Height {
		f.Pixels = append(f.Pixels, pixel[:]...)
	}
	return f
}

func TestConvert(t *testing.T) {
	scr := screenshot.NewScreenshot()
	test.ExpectImplements[television.PixelRenderer](t, scr)
	test.ExpectSuccess(t, scr.Image(1) == nil)

	test.ExpectSuccess(t, scr.NewFrame(frame(display.BGRA8888, [4]byte{3, 2, 1, 0xff})))
	img := scr.Image(1)
	test.ExpectEquality(t, color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA), color.RGBA{1, 2, 3, 0xff})

	test.ExpectSuccess(t, scr.NewFrame(frame(display.ARGB8888, [4]byte{0xff, 1, 2, 3})))
	img = scr.Image(3)
	test.ExpectEquality(t, img.Bounds().Dx(), 6)
	test.ExpectEquality(t, color.RGBAModel.Convert(img.At(5, 5)).(color.RGBA), color.RGBA{1, 2, 3, 0xff})
}

func TestSave(t *testing.T) {
	t.Chdir(t.TempDir())

	scr := screenshot.NewScreenshot()
	_, err := scr.Save("test", 1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.NoFrame))

	test.ExpectSuccess(t, scr.NewFrame(frame(display.RGBA8888, [4]byte{10, 20, 30, 0xff})))
	filename, err := scr.Save("my cart", 2)
	test.DemandSuccess(t, err)

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	test.ExpectEquality(t, img.Bounds().Dy(), 4)
}

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

// Package screenshot implements a television.PixelRenderer that keeps the
// most recent frame so that it can be saved to disk as a PNG file.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/paths"
	"github.com/gotic/gotic/television"
)

// NoFrame is returned by Save() when no frame has been rendered.
const NoFrame = "screenshot: no frame to save"

// Screenshot implements the television.PixelRenderer interface.
type Screenshot struct {
	img    *image.RGBA
	number int
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type.
func NewScreenshot() *Screenshot {
	return &Screenshot{}
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *Screenshot) NewFrame(frame television.Frame) error {
	if scr.img == nil || scr.img.Rect.Dx() != frame.Width || scr.img.Rect.Dy() != frame.Height {
		scr.img = image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	}
	convert(scr.img.Pix, frame.Pixels, frame.Format)
	scr.number = frame.Number
	return nil
}

// convert pixels in the specified format to RGBA
func convert(dst []byte, src []byte, format display.PixelFormat) {
	n := min(len(dst), len(src))
	for i := 0; i+display.BytesPerPixel <= n; i += display.BytesPerPixel {
		p := src[i : i+display.BytesPerPixel]
		switch format {
		case display.BGRA8888:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = p[2], p[1], p[0], p[3]
		case display.ABGR8888:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = p[3], p[2], p[1], p[0]
		case display.ARGB8888:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = p[1], p[2], p[3], p[0]
		default:
			copy(dst[i:], p)
		}
	}
}

// Reset implements the television.PixelRenderer interface.
func (scr *Screenshot) Reset() {
	scr.img = nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *Screenshot) EndRendering() error {
	return nil
}

// Image returns the most recent frame scaled by the specified amount. A
// scale of less than one is treated as one. Returns nil if no frame has been
// rendered.
func (scr *Screenshot) Image(scale int) image.Image {
	if scr.img == nil {
		return nil
	}
	if scale <= 1 {
		return scr.img
	}

	b := scr.img.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), scr.img, b, draw.Src, nil)
	return scaled
}

// Save the most recent frame to the screenshots directory. The name of the
// cartridge is used to create a unique filename. Returns the name of the
// file that was written.
func (scr *Screenshot) Save(cartName string, scale int) (string, error) {
	img := scr.Image(scale)
	if img == nil {
		return "", curated.Errorf(NoFrame)
	}

	name := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", cartName))
	filename, err := paths.ResourcePath("screenshots", name)
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	if err := WritePNG(filename, img); err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "screenshot", "frame %d saved to %s", scr.number, filename)

	return filename, nil
}

// WritePNG writes the image to the named file.
func WritePNG(filename string, img image.Image) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}

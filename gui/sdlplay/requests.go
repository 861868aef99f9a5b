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

package sdlplay

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/hardware/display"
)

// SetFeature implements the gui.GUI interface. It must be called from the
// main goroutine.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		show, ok := gui.Args[bool](args)
		if !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		if show {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqFullScreen:
		full, ok := gui.Args[bool](args)
		if !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		scr.setFullScreen(full)

	case gui.ReqToggleFullScreen:
		scr.setFullScreen(!scr.fullScreen)

	case gui.ReqSetTitle:
		title, ok := gui.Args[string](args)
		if !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		scr.title = title
		scr.window.SetTitle(title)

	case gui.ReqSetScale:
		scale, ok := gui.Args[float32](args)
		if !ok || scale < 1 {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		scr.scale = scale
		if !scr.fullScreen {
			scr.window.SetSize(int32(float32(display.FullWidth)*scale), int32(float32(display.FullHeight)*scale))
		}

	case gui.ReqShowFPS:
		fps, ok := gui.Args[func() float64](args)
		if !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		scr.fps = fps
		if fps == nil {
			scr.window.SetTitle(scr.title)
		}

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

func (scr *SdlPlay) setFullScreen(fullScreen bool) {
	scr.fullScreen = fullScreen
	if fullScreen {
		_ = scr.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		_ = scr.window.SetFullscreen(0)
	}

	// a short delay seems to smooth things out by giving time for the system
	// to make the changes to the full screen state
	<-time.After(100 * time.Millisecond)
}

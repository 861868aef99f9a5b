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

package ebitenplay

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/hardware/display"
)

// SetFeature implements the gui.GUI interface.
func (scr *EbitenPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		// the window is visible while the GUI is running
		if _, ok := gui.Args[bool](args); !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
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
		ebiten.SetWindowTitle(title)

	case gui.ReqSetScale:
		scale, ok := gui.Args[float32](args)
		if !ok || scale < 1 {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		scr.scale = scale
		if !scr.fullScreen {
			ebiten.SetWindowSize(int(float32(display.FullWidth)*scale), int(float32(display.FullHeight)*scale))
		}

	case gui.ReqShowFPS:
		fps, ok := gui.Args[func() float64](args)
		if !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		scr.fps = fps

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

func (scr *EbitenPlay) setFullScreen(fullScreen bool) {
	scr.fullScreen = fullScreen
	ebiten.SetFullscreen(fullScreen)
	if !fullScreen {
		ebiten.SetWindowSize(int(float32(display.FullWidth)*scr.scale), int(float32(display.FullHeight)*scr.scale))
	}
}

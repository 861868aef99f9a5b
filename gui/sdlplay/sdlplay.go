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

// Package sdlplay is a simple SDL implementation of the gui.GUI interface.
// The frame is drawn to a streaming texture that is scaled to fit the window.
package sdlplay

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/version"
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the scale of the window in windowed mode
	scale      float32
	fullScreen bool

	title string

	// polled once a second when not nil. the frame rate is shown in the
	// title of the window
	fps       func() float64
	fpsFrames int

	// gamepads in the order they were opened. the index is the gamepad
	// number reported to the console
	pads []*sdl.GameController

	// most recent mouse position reported to the handler
	mouseX, mouseY int
}

var _ gui.GUI = (*SdlPlay)(nil)

// NewSdlPlay is the preferred method of initialisation for SdlPlay. It must
// be called from the main goroutine.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	scr := &SdlPlay{
		scale: max(scale, 1),
	}
	scr.title, _, _ = version.Version()
	scr.title = fmt.Sprintf("%s %s", version.ApplicationName, scr.title)

	// window is hidden until a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow(scr.title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(display.FullWidth)*scr.scale), int32(float32(display.FullHeight)*scr.scale),
		sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// the texture is the size of the frame. it is scaled to fit the window
	// when it is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.FullWidth), int32(display.FullHeight))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		scr.openGamepad(i)
	}
	if len(scr.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	return scr, nil
}

func (scr *SdlPlay) openGamepad(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return
	}
	logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Joystick().Name())
	scr.pads = append(scr.pads, pad)
}

// gamepad number of the joystick instance. returns -1 if the instance is
// not an open gamepad
func (scr *SdlPlay) gamepad(id sdl.JoystickID) int {
	for i, pad := range scr.pads {
		if pad.Joystick().InstanceID() == id {
			return i
		}
	}
	return -1
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	for _, pad := range scr.pads {
		pad.Close()
	}
	scr.pads = nil

	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// SelfPaced implements the gui.GUI interface.
func (scr *SdlPlay) SelfPaced() bool {
	return false
}

// PixelFormat implements the gui.GUI interface. ABGR8888 in SDL terms is the
// RGBA byte order on little-endian machines.
func (scr *SdlPlay) PixelFormat() display.PixelFormat {
	return display.RGBA8888
}

// the area of the window that the frame is drawn to
func (scr *SdlPlay) fit() gui.Rect {
	w, h, err := scr.renderer.GetOutputSize()
	if err != nil {
		w, h = scr.window.GetSize()
	}
	return gui.Fit(int(w), int(h))
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frame television.Frame) error {
	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	row := frame.Width * display.BytesPerPixel
	for y := range frame.Height {
		copy(pixels[y*pitch:y*pitch+row], frame.Pixels[y*row:(y+1)*row])
	}
	scr.texture.Unlock()

	r := scr.fit()
	dest := &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}

	_ = scr.renderer.SetDrawColor(0, 0, 0, 255)
	_ = scr.renderer.Clear()
	if err := scr.renderer.Copy(scr.texture, nil, dest); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	scr.renderer.Present()

	scr.updateTitle()

	return nil
}

func (scr *SdlPlay) updateTitle() {
	if scr.fps == nil {
		return
	}
	scr.fpsFrames++
	if scr.fpsFrames < 60 {
		return
	}
	scr.fpsFrames = 0
	scr.window.SetTitle(fmt.Sprintf("%s (%.1f fps)", scr.title, scr.fps()))
}

// Reset implements the television.PixelRenderer interface.
func (scr *SdlPlay) Reset() {
	scr.fpsFrames = 0
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

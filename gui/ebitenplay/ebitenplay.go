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

// Package ebitenplay is an implementation of the gui.GUI interface using
// Ebitengine. Ebitengine calls Update() at the frame rate of the console so
// the GUI is self-paced.
package ebitenplay

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/version"
)

// EbitenPlay is an implementation of the gui.GUI interface.
type EbitenPlay struct {
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	img *ebiten.Image

	scale      float32
	fullScreen bool

	fps func() float64

	handler gui.Handler
	err     error

	input inputState
}

var _ gui.GUI = (*EbitenPlay)(nil)

// NewEbitenPlay is the preferred method of initialisation for the
// EbitenPlay type.
func NewEbitenPlay(scale float32) *EbitenPlay {
	scr := &EbitenPlay{
		pixels: make([]byte, display.FullWidth*display.FullHeight*display.BytesPerPixel),
		scale:  max(scale, 1),
	}

	v, _, _ := version.Version()
	ebiten.SetWindowTitle(fmt.Sprintf("%s %s", version.ApplicationName, v))
	ebiten.SetWindowSize(int(float32(display.FullWidth)*scr.scale), int(float32(display.FullHeight)*scr.scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(hardware.FrameRate)

	return scr
}

// Run implements the gui.GUI interface. It must be called from the main
// goroutine.
func (scr *EbitenPlay) Run(h gui.Handler) error {
	scr.handler = h
	scr.err = nil
	if err := ebiten.RunGame(scr); err != nil {
		return curated.Errorf("ebiten: %v", err)
	}
	return scr.err
}

// Update implements the ebiten.Game interface.
func (scr *EbitenPlay) Update() error {
	for _, ev := range scr.input.poll() {
		scr.handler.UserInput(ev)
	}

	ok, err := scr.handler.Tick()
	if err != nil {
		scr.err = err
		return ebiten.Termination
	}
	if !ok {
		return ebiten.Termination
	}
	return nil
}

// Draw implements the ebiten.Game interface.
func (scr *EbitenPlay) Draw(screen *ebiten.Image) {
	if scr.img == nil {
		scr.img = ebiten.NewImage(display.FullWidth, display.FullHeight)
	}

	scr.crit.Lock()
	if scr.dirty {
		scr.img.WritePixels(scr.pixels)
		scr.dirty = false
	}
	scr.crit.Unlock()

	screen.DrawImage(scr.img, nil)

	if scr.fps != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f fps", scr.fps()), 2, 0)
	}
}

// Layout implements the ebiten.Game interface. The screen is always the
// size of the frame and is scaled by Ebitengine to fit the window.
func (scr *EbitenPlay) Layout(_, _ int) (int, int) {
	return display.FullWidth, display.FullHeight
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *EbitenPlay) NewFrame(frame television.Frame) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.pixels, frame.Pixels)
	scr.dirty = true
	return nil
}

// Reset implements the television.PixelRenderer interface.
func (scr *EbitenPlay) Reset() {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	clear(scr.pixels)
	scr.dirty = true
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *EbitenPlay) EndRendering() error {
	return nil
}

// SelfPaced implements the gui.GUI interface.
func (scr *EbitenPlay) SelfPaced() bool {
	return true
}

// PixelFormat implements the gui.GUI interface.
func (scr *EbitenPlay) PixelFormat() display.PixelFormat {
	return display.RGBA8888
}

// Destroy implements the gui.GUI interface.
func (scr *EbitenPlay) Destroy() {
	if scr.img != nil {
		scr.img.Deallocate()
		scr.img = nil
	}
}

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

// Package gui defines the interface to the graphical user interfaces of the
// console. Implementations are found in the sub-packages.
//
// A GUI is also a television.PixelRenderer. It should be added to the
// television so that it receives every frame produced by the console.
//
// The Run() function takes control of the calling goroutine, which must be
// the main goroutine of the program. It sends user input to the Handler and
// calls Tick() once per frame until Tick() returns false or an error.
package gui

import (
	"github.com/gotic/gotic/hardware/display"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/userinput"
)

// Handler receives the user input and the ticks of a running GUI.
type Handler interface {
	// UserInput is called for each input event.
	UserInput(ev userinput.Event)

	// Tick is called once per frame after the input events for the frame
	// have been delivered. The GUI stops running if Tick() returns false
	// or an error.
	Tick() (bool, error)
}

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	television.PixelRenderer

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Run the GUI until the handler indicates that it should stop.
	Run(h Handler) error

	// SelfPaced returns true if the GUI calls Tick() at the frame rate of the
	// console. If it returns false then the television should limit the
	// frame rate.
	SelfPaced() bool

	// PixelFormat is the format of the frames expected by the GUI.
	PixelFormat() display.PixelFormat

	// Destroy releases the resources of the GUI.
	Destroy()
}

// Sentinal errors.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
	InvalidFeatureArgs    = "invalid arguments for gui feature: %v"
)

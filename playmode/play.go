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

package playmode

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/cartridgeloader"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/gui"
	"github.com/gotic/gotic/gui/ebitenplay"
	"github.com/gotic/gotic/gui/otoaudio"
	"github.com/gotic/gotic/gui/sdlaudio"
	"github.com/gotic/gotic/gui/sdlplay"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/memory"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/paths"
	"github.com/gotic/gotic/recorder"
	"github.com/gotic/gotic/screenshot"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/userinput"
	"github.com/gotic/gotic/version"
)

// persistent memory is saved to disk every pmemInterval ticks if it has
// changed
const pmemInterval = hardware.FrameRate * 5

type playmode struct {
	output io.Writer
	prefs  *Preferences

	console     *hardware.Console
	tv          *television.Television
	scr         gui.GUI
	shot        *screenshot.Screenshot
	controllers userinput.Controllers

	cartName string
	pmem     *persistence
	ticks    int

	// input is recorded if rec is not nil
	rec *recorder.Recorder

	// the most recent error reported by the console. repeated errors are
	// only written to the output once
	lastError string

	// quit is set by the GUI goroutine. interrupt is set by the signal
	// handler and is polled by the running program
	quit      bool
	interrupt atomic.Bool
}

// Play the cartridge specified by the loader. The GUI is selected by the
// Backend preference. User input is recorded to a new file in the current
// directory if record is true.
func Play(output io.Writer, cartload cartridgeloader.Loader, p *Preferences, record bool) error {
	cart, err := cartload.Cartridge()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	scr, mixer, err := newGUI(p)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	var rec *recorder.Recorder
	if record {
		transcript := fmt.Sprintf("%s.rec", paths.UniqueFilename("recording", cartload.ShortName()))
		rec, err = recorder.NewRecorder(transcript, cartload, scr.PixelFormat())
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		fmt.Fprintf(output, "recording to %s\n", transcript)
	}

	return run(output, cartload.ShortName(), cart, p, scr, mixer, rec)
}

// create the GUI and the audio output for the backend preference. the mixer
// is nil if audio has been disabled or is not available
func newGUI(p *Preferences) (gui.GUI, television.AudioMixer, error) {
	scale := float32(p.Scale.Get().(float64))
	rate := p.SampleRate.Get().(int)
	audio := p.Audio.Get().(bool)

	var mixer television.AudioMixer

	switch p.Backend.String() {
	case BackendSDL:
		scr, err := sdlplay.NewSdlPlay(scale)
		if err != nil {
			return nil, nil, curated.Errorf("playmode: %v", err)
		}
		if audio {
			aud, err := sdlaudio.NewAudio(rate)
			if err != nil {
				logger.Log(logger.Allow, "playmode", err)
			} else {
				mixer = aud
			}
		}
		return scr, mixer, nil

	case BackendEbiten:
		scr := ebitenplay.NewEbitenPlay(scale)
		if audio {
			aud, err := otoaudio.NewAudio(rate)
			if err != nil {
				logger.Log(logger.Allow, "playmode", err)
			} else {
				mixer = aud
			}
		}
		return scr, mixer, nil
	}

	return nil, nil, curated.Errorf(UnknownBackend, p.Backend.String())
}

func run(output io.Writer, cartName string, cart *cartridge.Cartridge, p *Preferences, scr gui.GUI, mixer television.AudioMixer, rec *recorder.Recorder) error {
	pl := &playmode{
		output:   output,
		prefs:    p,
		scr:      scr,
		shot:     screenshot.NewScreenshot(),
		cartName: cartName,
		rec:      rec,
	}

	pl.console = hardware.NewConsole(p.SampleRate.Get().(int), pl)
	defer pl.console.Close()
	pl.console.SetPixelFormat(scr.PixelFormat())
	pl.console.Load(cart)

	// cartridges without a saveid use the name of the cartridge
	saveID := pl.console.SaveID()
	if saveID == "" {
		saveID = cartName
	}
	var err error
	pl.pmem, err = newPersistence(saveID)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
	} else if err := pl.pmem.load(pl.console.Memory().Area(memory.Persistent)); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	pl.tv = television.NewTelevision()
	defer pl.tv.End()
	pl.tv.AddPixelRenderer(scr)
	pl.tv.AddPixelRenderer(pl.shot)
	if rec != nil {
		pl.tv.AddPixelRenderer(rec)
	}
	if mixer != nil {
		pl.tv.AddAudioMixer(mixer)
	}
	pl.tv.SetFPSCap(p.FPSCap.Get().(bool) && !scr.SelfPaced())

	pl.request(gui.ReqSetTitle, fmt.Sprintf("%s - %s", version.ApplicationName, cartName))
	pl.request(gui.ReqFullScreen, p.FullScreen.Get().(bool))
	if p.ShowFPS.Get().(bool) {
		pl.request(gui.ReqShowFPS, pl.tv.ActualFPS)
	}
	pl.request(gui.ReqSetVisibility, true)

	// ctrl-c interrupts the running program and ends playmode
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	done := make(chan bool)
	defer close(done)
	go func() {
		select {
		case <-intChan:
			pl.interrupt.Store(true)
		case <-done:
		}
	}()

	err = scr.Run(pl)

	pl.savePmem()

	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	return nil
}

// send a request to the GUI. failed requests are logged
func (pl *playmode) request(request gui.FeatureReq, args ...gui.FeatureReqData) {
	if err := pl.scr.SetFeature(request, args...); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}

func (pl *playmode) savePmem() {
	if pl.pmem == nil {
		return
	}
	if err := pl.pmem.save(pl.console.Memory().Area(memory.Persistent)); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}

// UserInput implements the gui.Handler interface.
func (pl *playmode) UserInput(ev userinput.Event) {
	if kb, ok := ev.(userinput.EventKeyboard); ok && kb.Down && !kb.Repeat {
		if pl.hotkey(kb) {
			return
		}
	}

	pl.controllers.HandleUserInput(ev)
	if pl.controllers.Quit {
		pl.quit = true
	}
}

// returns true if the key was a hotkey
func (pl *playmode) hotkey(kb userinput.EventKeyboard) bool {
	switch kb.Key {
	case "Escape":
		pl.quit = true
	case "F11":
		pl.request(gui.ReqToggleFullScreen)
	case "F12":
		filename, err := pl.shot.Save(pl.cartName, pl.prefs.ScreenshotScale.Get().(int))
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		} else {
			fmt.Fprintf(pl.output, "screenshot saved to %s\n", filename)
		}
	case "R":
		if kb.Mod != userinput.KeyModCtrl {
			return false
		}
		if pl.rec != nil {
			logger.Log(logger.Allow, "playmode", "reset is not possible while recording")
			return true
		}
		pl.savePmem()
		pl.console.Reset()
		pl.controllers.Reset()
		pl.tv.Reset()
		logger.Log(logger.Allow, "playmode", "console reset")
	default:
		return false
	}
	return true
}

// Tick implements the gui.Handler interface.
func (pl *playmode) Tick() (bool, error) {
	if pl.quit || pl.interrupt.Load() {
		return false, nil
	}

	st := pl.controllers.State()
	if pl.rec != nil {
		pl.rec.Record(st)
	}
	pl.console.Tick(st)
	pl.controllers.EndTick()

	if err := pl.tv.Signal(pl.console.Frame(), pl.console.Display().Format(), pl.console.Samples()); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	pl.ticks++
	if pl.ticks%pmemInterval == 0 {
		pl.savePmem()
	}

	return !pl.quit && !pl.interrupt.Load(), nil
}

// Error implements the hardware.Host interface.
func (pl *playmode) Error(msg string) {
	logger.Log(logger.Allow, "console", msg)
	if msg != pl.lastError {
		pl.lastError = msg
		fmt.Fprintf(pl.output, "error: %s\n", msg)
	}
}

// Trace implements the hardware.Host interface.
func (pl *playmode) Trace(msg string, _ uint8) {
	fmt.Fprintln(pl.output, msg)
}

// Exit implements the hardware.Host interface.
func (pl *playmode) Exit() {
	pl.quit = true
}

// Counter implements the hardware.Host interface.
func (pl *playmode) Counter() uint64 {
	return uint64(time.Now().UnixNano())
}

// Frequency implements the hardware.Host interface.
func (pl *playmode) Frequency() uint64 {
	return uint64(time.Second)
}

// ForceExit implements the hardware.Host interface.
func (pl *playmode) ForceExit() bool {
	return pl.interrupt.Load()
}

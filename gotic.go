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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/gotic/gotic/cartridgeloader"
	"github.com/gotic/gotic/digest"
	"github.com/gotic/gotic/hardware"
	"github.com/gotic/gotic/hardware/input"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/modalflag"
	"github.com/gotic/gotic/performance"
	"github.com/gotic/gotic/playmode"
	"github.com/gotic/gotic/prefs"
	"github.com/gotic/gotic/recorder"
	"github.com/gotic/gotic/script"
	"github.com/gotic/gotic/statsview"
	"github.com/gotic/gotic/television"
	"github.com/gotic/gotic/version"
	"github.com/gotic/gotic/wavwriter"

	_ "github.com/gotic/gotic/script/lua"
)

// the sample rate used by modes that don't open an audio device
const defaultSampleRate = 44100

// the GUI libraries require that window events are handled on the main
// thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the command line and runs the selected mode. the return
// value is the exit status of the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PLAYBACK", "PERFORMANCE", "INFO", "WAV", "DIGEST", "EVAL", "VERSION")
	md.AddAlias("PLAY", "RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)

	case "PLAYBACK":
		err = playback(md)

	case "PERFORMANCE":
		err = perform(md)

	case "INFO":
		err = info(md)

	case "WAV":
		err = wav(md)

	case "DIGEST":
		err = dgst(md)

	case "EVAL":
		err = eval(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// echo the central log to stderr
func echoLog(echo bool) {
	if echo {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
	} else {
		logger.SetEcho(nil, false)
	}
}

// the single cartridge argument of a mode
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// the flags of the RUN mode that correspond to a playmode preference
var playPrefs = map[string]string{
	"backend":    "playmode.backend",
	"scale":      "playmode.scale",
	"fullscreen": "playmode.fullscreen",
	"fpscap":     "playmode.fpscap",
	"showfps":    "playmode.showfps",
	"audio":      "playmode.audio",
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	values := map[string]fmt.Stringer{
		"backend":    stringFlag{md.AddString("backend", playmode.BackendSDL, "gui backend: sdl, ebiten")},
		"scale":      floatFlag{md.AddFloat64("scale", 3.0, "window scaling")},
		"fullscreen": boolFlag{md.AddBool("fullscreen", false, "start in full screen mode")},
		"fpscap":     boolFlag{md.AddBool("fpscap", true, "cap fps to 60")},
		"showfps":    boolFlag{md.AddBool("showfps", false, "show fps in window title")},
		"audio":      boolFlag{md.AddBool("audio", true, "enable audio output")},
	}
	record := md.AddBool("record", false, "record user input to a file")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session. key::value; key::value")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	echoLog(*log)

	// flags that have been set explicitly take priority over the -prefs
	// string, which in turn takes priority over the preferences file
	var stack []string
	if *cmdPrefs != "" {
		stack = append(stack, *cmdPrefs)
	}
	md.Visit(func(flag string) {
		if key, ok := playPrefs[flag]; ok {
			stack = append(stack, fmt.Sprintf("%s::%s", key, values[flag]))
		}
	})
	prefs.PushCommandLineStack(strings.Join(stack, "; "))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gotic", "unused preferences: %s", unused)
		}
	}()

	pref, err := playmode.NewPreferences()
	if err != nil {
		return err
	}

	return playmode.Play(md.Output, cartload, pref, *record)
}

func playback(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("recording required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	echoLog(*log)

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	cart, err := plb.CartLoad.Cartridge()
	if err != nil {
		return err
	}

	tv := television.NewTelevision()
	defer tv.End()
	tv.SetFPSCap(false)
	tv.AddPixelRenderer(plb)

	console := hardware.NewConsole(defaultSampleRate, &hardware.LogHost{})
	defer console.Close()
	console.SetPixelFormat(plb.Format)
	console.Load(cart)

	for !plb.EndFrame() {
		console.Tick(plb.State())
		if err := tv.Signal(console.Frame(), console.Display().Format(), console.Samples()); err != nil {
			return fmt.Errorf("%w (%s)", err, plb)
		}
	}

	fmt.Fprintf(md.Output, "playback of %s succeeded (%d ticks)\n", plb.CartLoad.ShortName(), tv.FrameNum())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	uncapped := md.AddBool("uncapped", true, "run console as fast as possible")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	echoLog(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	return performance.Check(md.Output, prf, cartload, *uncapped, *duration)
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cart, err := cartload.Cartridge()
	if err != nil {
		return err
	}

	var comment string
	if cfg := script.Select(cart.Code); cfg != nil {
		comment = cfg.SingleComment
	}

	fmt.Fprintf(md.Output, "%s (sha1 %s)\n", cartload.ShortName(), cartload.Hash)
	fmt.Fprint(md.Output, cart.Info(comment))

	return nil
}

// runFrames loads the cartridge and runs the console for the number of
// frames, sending every frame to the television
func runFrames(cartload cartridgeloader.Loader, tv *television.Television, frames int, sampleRate int) error {
	if frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	cart, err := cartload.Cartridge()
	if err != nil {
		return err
	}

	console := hardware.NewConsole(sampleRate, &hardware.LogHost{})
	defer console.Close()
	console.Load(cart)

	for range frames {
		console.Tick(input.State{})
		if err := tv.Signal(console.Frame(), console.Display().Format(), console.Samples()); err != nil {
			return err
		}
	}

	return nil
}

func wav(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", hardware.FrameRate*10, "number of frames to record")
	filename := md.AddString("o", "", "output filename (default is the cartridge name)")
	rate := md.AddInt("rate", defaultSampleRate, "sample rate")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	echoLog(*log)

	if *filename == "" {
		*filename = fmt.Sprintf("%s.wav", cartload.ShortName())
	}

	ww, err := wavwriter.New(*filename, *rate)
	if err != nil {
		return err
	}

	tv := television.NewTelevision()
	tv.SetFPSCap(false)
	tv.AddAudioMixer(ww)

	err = runFrames(cartload, tv, *frames, *rate)

	// the wav file is written by End() so it must always be called
	if endErr := tv.End(); err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "written %d frames of audio to %s\n", *frames, *filename)

	return nil
}

func dgst(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", hardware.FrameRate, "number of frames to run")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	echoLog(*log)

	tv := television.NewTelevision()
	defer tv.End()
	tv.SetFPSCap(false)

	video := digest.NewVideo()
	audio := digest.NewAudio()
	tv.AddPixelRenderer(video)
	tv.AddAudioMixer(audio)

	if err := runFrames(cartload, tv, *frames, defaultSampleRate); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "video: %s\n", video.Hash())
	fmt.Fprintf(md.Output, "audio: %s\n", audio.Hash())

	return nil
}

// evalHost writes trace messages and errors to the output
type evalHost struct {
	hardware.LogHost
	output io.Writer
}

func (h *evalHost) Error(msg string) {
	fmt.Fprintf(h.output, "error: %s\n", msg)
}

func (h *evalHost) Trace(msg string, _ uint8) {
	fmt.Fprintln(h.output, msg)
}

func eval(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("code is read from stdin one line at a time if no -e flag is given")

	code := md.AddString("e", "", "code to evaluate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cart, err := cartload.Cartridge()
	if err != nil {
		return err
	}

	console := hardware.NewConsole(defaultSampleRate, &evalHost{output: md.Output})
	defer console.Close()
	console.Load(cart)

	// a single tick initialises the program
	console.Tick(input.State{})
	if !console.Initialized() {
		return fmt.Errorf("program did not initialise")
	}

	if *code != "" {
		return console.Eval(*code)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := console.Eval(scanner.Text()); err != nil {
			fmt.Fprintf(md.Output, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintln(md.Output, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

// wrappers for the flag values so that they can be added to the prefs string
type stringFlag struct{ v *string }
type floatFlag struct{ v *float64 }
type boolFlag struct{ v *bool }

func (f stringFlag) String() string { return *f.v }
func (f floatFlag) String() string  { return fmt.Sprint(*f.v) }
func (f boolFlag) String() string   { return fmt.Sprint(*f.v) }

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
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/paths"
	"github.com/gotic/gotic/prefs"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// List of valid backend names.
const (
	BackendSDL    = "sdl"
	BackendEbiten = "ebiten"
)

// UnknownBackend is returned when the backend preference is not recognised.
const UnknownBackend = "playmode: unknown backend (%s)"

// Preferences for playmode.
type Preferences struct {
	dsk *prefs.Disk

	Backend         prefs.String
	Scale           prefs.Float
	FullScreen      prefs.Bool
	FPSCap          prefs.Bool
	ShowFPS         prefs.Bool
	Audio           prefs.Bool
	SampleRate      prefs.Int
	ScreenshotScale prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from disk if they exist.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	for k, v := range map[string]prefValue{
		"playmode.backend":         &p.Backend,
		"playmode.scale":           &p.Scale,
		"playmode.fullscreen":      &p.FullScreen,
		"playmode.fpscap":          &p.FPSCap,
		"playmode.showfps":         &p.ShowFPS,
		"playmode.audio":           &p.Audio,
		"playmode.samplerate":      &p.SampleRate,
		"playmode.screenshotscale": &p.ScreenshotScale,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, curated.Errorf("playmode: %v", err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if f, ok := v.(float64); ok && f < 1 {
			return curated.Errorf("playmode: scale must be at least 1")
		}
		return nil
	})

	return p, nil
}

// the methods required by prefs.Disk.Add()
type prefValue interface {
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
	String() string
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Backend.Set(BackendSDL)
	_ = p.Scale.Set(3.0)
	_ = p.FullScreen.Set(false)
	_ = p.FPSCap.Set(true)
	_ = p.ShowFPS.Set(false)
	_ = p.Audio.Set(true)
	_ = p.SampleRate.Set(44100)
	_ = p.ScreenshotScale.Set(2)
}

// Load current playmode preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current playmode preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

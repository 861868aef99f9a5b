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

package script

import (
	"fmt"
	"sync"

	"github.com/gotic/gotic/cartridge"
)

var registry struct {
	crit    sync.Mutex
	configs []*Config
}

// Register a language. Registering a language with a name that is already
// registered will panic.
func Register(cfg *Config) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	for _, c := range registry.configs {
		if c.Name == cfg.Name {
			panic(fmt.Sprintf("script: language registered twice (%s)", cfg.Name))
		}
	}
	registry.configs = append(registry.configs, cfg)
}

// Lookup the language with the name.
func Lookup(name string) (*Config, bool) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	for _, c := range registry.configs {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Configs returns every registered language in the order of registration.
func Configs() []*Config {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	return append([]*Config(nil), registry.configs...)
}

// Select returns the language for the code. The language is chosen by the
// "script" metatag written with the language's own comment token. Returns
// the first registered language if no metatag matches and nil if no
// language has been registered.
func Select(code string) *Config {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if len(registry.configs) == 0 {
		return nil
	}

	for _, c := range registry.configs {
		if cartridge.CompareMetatag(code, "script", c.Name, c.SingleComment) {
			return c
		}
	}
	return registry.configs[0]
}

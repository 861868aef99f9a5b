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
	"bytes"
	"os"
	"strings"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/paths"
)

// the directory in the resource path where persistent memory is saved
const pmemDir = "pmem"

// persistence keeps the persistent memory of a cartridge on disk
type persistence struct {
	filename string

	// the data most recently loaded or saved
	last []byte
}

// filename safe version of the save id
func pmemName(saveID string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, strings.TrimSpace(saveID))
}

func newPersistence(saveID string) (*persistence, error) {
	name := pmemName(saveID)
	if name == "" {
		return nil, curated.Errorf("playmode: empty save id")
	}

	filename, err := paths.ResourcePath(pmemDir, name)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	return &persistence{filename: filename}, nil
}

// load the persistent memory from disk. a missing file leaves the memory
// unchanged
func (p *persistence) load(mem []byte) error {
	data, err := os.ReadFile(p.filename)
	if err != nil {
		if os.IsNotExist(err) {
			p.last = bytes.Clone(mem)
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	copy(mem, data)
	p.last = bytes.Clone(mem)

	logger.Logf(logger.Allow, "playmode", "persistent memory loaded from %s", p.filename)

	return nil
}

// save the persistent memory to disk if it has changed since the last load
// or save
func (p *persistence) save(mem []byte) error {
	if bytes.Equal(mem, p.last) {
		return nil
	}

	if err := os.WriteFile(p.filename, mem, 0600); err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	p.last = bytes.Clone(mem)

	logger.Logf(logger.Allow, "playmode", "persistent memory saved to %s", p.filename)

	return nil
}

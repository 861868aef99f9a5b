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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/logger"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates the key and the value on a line of the prefs file
const separator = " :: "

// Error messages.
const (
	NotAPrefsFile = "prefs: not a prefs file (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
)

// Disk represents preference values as stored on disk. Values are added with
// Add() and then loaded and saved as a group.
//
// More than one Disk can share a file. Entries in the file that are not
// added to a Disk are preserved when the Disk is saved.
type Disk struct {
	path    string
	entries map[string]pref

	// keys with values taken from the command line. these are not
	// overwritten by Load()
	cmdline map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		cmdline: make(map[string]bool),
	}, nil
}

func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference value to the disk. The key must not contain the
// separator. If the top of the command line stack has a value for the key
// then the preference is set to that value.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) {
		return fmt.Errorf("prefs: key contains separator (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return err
		}
		dsk.cmdline[key] = true
	}

	return nil
}

// read the prefs file. a missing file is returned as an empty map
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Values in the file that have not been
// added to the disk are ignored. A missing file is not an error.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok || dsk.cmdline[k] {
			continue
		}
		if err := p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
		}
	}

	return nil
}

// Reset all preference values to their zero value. Values are not saved.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack. each entry is a group of key/value pairs given
// on the command line with the -prefs flag, in the form:
//
//	key::value; key::value
type commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
}

var cmdline commandLine

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.stack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group.
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	group := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		if k, v, ok := strings.Cut(p, "::"); ok {
			group[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	cmdline.stack = append(cmdline.stack, group)
}

// PopCommandLineStack forgets the most recent group. The entries of the
// group that were never used are returned as a prefs string with the keys
// in sorted order.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return ""
	}

	popped := cmdline.stack[len(cmdline.stack)-1]
	cmdline.stack = cmdline.stack[:len(cmdline.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, key := range keys {
		unused = append(unused, fmt.Sprintf("%s::%v", key, popped[key]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value from the group at the top of the
// stack. The value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return false, nil
	}

	group := cmdline.stack[len(cmdline.stack)-1]
	if v, ok := group[key]; ok {
		delete(group, key)
		return true, v
	}

	return false, nil
}

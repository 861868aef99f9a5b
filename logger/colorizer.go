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

package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	penTag    = "\033[36m"
	penRepeat = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer applies basic colouring to log output. The tag part of each entry
// is coloured and the repeat count dimmed. If the underlying writer is not a
// terminal the output is passed through unchanged.
type Colorizer struct {
	out      io.Writer
	terminal bool
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	c := Colorizer{out: out}
	if f, ok := out.(*os.File); ok {
		c.terminal = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	if !c.terminal {
		return c.out.Write(p)
	}

	s := strings.Builder{}
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			continue
		}
		s.WriteString(penTag)
		s.WriteString(tag)
		s.WriteString(penNormal)
		s.WriteString(": ")
		if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
			s.WriteString(detail[:i])
			s.WriteString(penRepeat)
			s.WriteString(strings.TrimSuffix(detail[i:], "\n"))
			s.WriteString(penNormal)
			s.WriteString("\n")
		} else {
			s.WriteString(detail)
		}
	}

	if _, err := c.out.Write([]byte(s.String())); err != nil {
		return 0, err
	}
	return len(p), nil
}

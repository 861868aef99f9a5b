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

package cartridge

import (
	"fmt"
	"strings"
)

// BankInfo summarises the content of a bank.
type BankInfo struct {
	Bank     int
	Sections []string
	Default  bool
}

// Info summarises the content of a cartridge.
type Info struct {
	Banks    []BankInfo
	CodeSize int
	Lines    int
	Script   string
}

// Info returns a summary of the cartridge. The comment argument is used to
// find the script metatag.
func (cart *Cartridge) Info(comment string) Info {
	info := Info{
		CodeSize: len(cart.Code),
	}

	if cart.Code != "" {
		info.Lines = strings.Count(cart.Code, "\n") + 1
	}
	info.Script, _ = Metatag(cart.Code, "script", comment)

	for b := range cart.Banks {
		bank := &cart.Banks[b]
		bi := BankInfo{Bank: b, Default: bank.isDefault()}

		add := func(name string, data []byte) {
			if !empty(data) {
				bi.Sections = append(bi.Sections, name)
			}
		}
		add("tiles", bank.Tiles[:])
		add("sprites", bank.Sprites[:])
		add("map", bank.Map[:])
		add("sfx", bank.Samples())
		add("waveforms", bank.Waveforms())
		add("patterns", bank.Patterns())
		add("tracks", bank.Tracks())
		add("palette", bank.Palette.Screen[:])
		add("overlay palette", bank.Palette.Overlay[:])
		add("flags", bank.Flags[:])
		add("screen", bank.Screen[:])

		if len(bi.Sections) > 0 {
			info.Banks = append(info.Banks, bi)
		}
	}

	return info
}

func (info Info) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("code: %d bytes, %d lines", info.CodeSize, info.Lines))
	if info.Script != "" {
		s.WriteString(fmt.Sprintf(", script: %s", info.Script))
	}
	s.WriteString("\n")
	for _, b := range info.Banks {
		s.WriteString(fmt.Sprintf("bank %d: %s", b.Bank, strings.Join(b.Sections, ", ")))
		if b.Default {
			s.WriteString(" (default palette and waveforms)")
		}
		s.WriteString("\n")
	}
	return s.String()
}

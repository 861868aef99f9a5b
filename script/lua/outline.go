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

package lua

import (
	"strings"

	"github.com/gotic/gotic/script"
)

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == ':' || c == '.'
}

// Outline lists the named functions in the code. A named function is the
// word "function" followed by a space, a name and an opening bracket.
func Outline(code string) []script.OutlineItem {
	const keyword = "function "

	var items []script.OutlineItem

	pos := 0
	for {
		i := strings.Index(code[pos:], keyword)
		if i < 0 {
			break
		}

		start := pos + i + len(keyword)
		end := start
		for end < len(code) && isNameChar(code[end]) {
			end++
		}
		pos = end

		if end > start && end < len(code) && code[end] == '(' {
			items = append(items, script.OutlineItem{Name: code[start:end], Pos: start})
		}
	}

	return items
}

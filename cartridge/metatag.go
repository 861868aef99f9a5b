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

import "strings"

// Metatag looks for a line in the code of the form:
//
//	<comment> <tag>: <value>
//
// and returns the value with surrounding white space removed. Only the first
// matching line is considered. The comment argument is the single line
// comment token of the script language.
func Metatag(code string, tag string, comment string) (string, bool) {
	prefix := tag + ":"

	for len(code) > 0 {
		var line string
		line, code, _ = strings.Cut(code, "\n")

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, comment) {
			continue
		}

		line = strings.TrimSpace(line[len(comment):])
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}

	return "", false
}

// CompareMetatag returns true if the tag is present and equal to value.
func CompareMetatag(code string, tag string, value string, comment string) bool {
	v, ok := Metatag(code, tag, comment)
	return ok && v == value
}

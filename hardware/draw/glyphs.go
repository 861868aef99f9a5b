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

package draw

import (
	"github.com/gotic/gotic/bitpack"
	"github.com/gotic/gotic/hardware/memory"
)

// WriteFont writes the system font into font memory. Glyphs for the regular
// font are at indexes 0 to 127 and glyphs for the alt font are at 128 to
// 255. Each glyph is an 8x8 tile at one bit per pixel.
func WriteFont(mem *memory.Memory) {
	font := mem.Area(memory.Font)
	clear(font)

	write := func(base int, glyphs map[byte][]string) {
		for c, rows := range glyphs {
			for y, row := range rows {
				for x := 0; x < len(row); x++ {
					if row[x] == '#' {
						bitpack.Poke1(font, (base+int(c))*tileSize*tileSize+y*tileSize+x, 1)
					}
				}
			}
		}
	}

	write(0, regularGlyphs)
	write(fontChars, altGlyphs)
}

func init() {
	// the alt font has no lower case letters of its own
	for c := byte('a'); c <= 'z'; c++ {
		altGlyphs[c] = altGlyphs[c-'a'+'A']
	}
}

// glyph rows start at the top of the tile. lower case descenders use the
// sixth row
var regularGlyphs = map[byte][]string{
	'!':  {"#", "#", "#", ".", "#"},
	'"':  {"#.#", "#.#"},
	'#':  {".#.#.", "#####", ".#.#.", "#####", ".#.#."},
	'$':  {".####", "#.#..", ".###.", "..#.#", "####."},
	'%':  {"##..#", "##.#.", "..#..", ".#.##", "#..##"},
	'&':  {".##..", "#..#.", ".##.#", "#..#.", ".##.#"},
	'\'': {"#", "#"},
	'(':  {".#", "#.", "#.", "#.", ".#"},
	')':  {"#.", ".#", ".#", ".#", "#."},
	'*':  {"...", "#.#", ".#.", "#.#"},
	'+':  {"...", ".#.", "###", ".#."},
	',':  {"..", "..", "..", "..", ".#", "#."},
	'-':  {"...", "...", "###"},
	'.':  {".", ".", ".", ".", "#"},
	'/':  {"....#", "...#.", "..#..", ".#...", "#...."},
	'0':  {".###.", "#..##", "#.#.#", "##..#", ".###."},
	'1':  {"..#..", ".##..", "..#..", "..#..", ".###."},
	'2':  {"####.", "....#", ".###.", "#....", "#####"},
	'3':  {"####.", "....#", ".###.", "....#", "####."},
	'4':  {"#..#.", "#..#.", "#####", "...#.", "...#."},
	'5':  {"#####", "#....", "####.", "....#", "####."},
	'6':  {".###.", "#....", "####.", "#...#", ".###."},
	'7':  {"#####", "....#", "...#.", "..#..", "..#.."},
	'8':  {".###.", "#...#", ".###.", "#...#", ".###."},
	'9':  {".###.", "#...#", ".####", "....#", ".###."},
	':':  {".", "#", ".", "#"},
	';':  {"..", ".#", "..", ".#", "#."},
	'<':  {"..#", ".#.", "#..", ".#.", "..#"},
	'=':  {"...", "###", "...", "###"},
	'>':  {"#..", ".#.", "..#", ".#.", "#.."},
	'?':  {"###.", "...#", ".##.", "....", ".#.."},
	'@':  {".###.", "#.###", "#.#.#", "#.##.", ".###."},
	'A':  {".###.", "#...#", "#####", "#...#", "#...#"},
	'B':  {"####.", "#...#", "####.", "#...#", "####."},
	'C':  {".####", "#....", "#....", "#....", ".####"},
	'D':  {"####.", "#...#", "#...#", "#...#", "####."},
	'E':  {"#####", "#....", "####.", "#....", "#####"},
	'F':  {"#####", "#....", "####.", "#....", "#...."},
	'G':  {".####", "#....", "#..##", "#...#", ".####"},
	'H':  {"#...#", "#...#", "#####", "#...#", "#...#"},
	'I':  {"#####", "..#..", "..#..", "..#..", "#####"},
	'J':  {"....#", "....#", "....#", "#...#", ".###."},
	'K':  {"#...#", "#..#.", "###..", "#..#.", "#...#"},
	'L':  {"#....", "#....", "#....", "#....", "#####"},
	'M':  {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N':  {"#...#", "##..#", "#.#.#", "#..##", "#...#"},
	'O':  {".###.", "#...#", "#...#", "#...#", ".###."},
	'P':  {"####.", "#...#", "####.", "#....", "#...."},
	'Q':  {".###.", "#...#", "#...#", "#..#.", ".##.#"},
	'R':  {"####.", "#...#", "####.", "#..#.", "#...#"},
	'S':  {".####", "#....", ".###.", "....#", "####."},
	'T':  {"#####", "..#..", "..#..", "..#..", "..#.."},
	'U':  {"#...#", "#...#", "#...#", "#...#", ".###."},
	'V':  {"#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W':  {"#...#", "#...#", "#.#.#", "##.##", "#...#"},
	'X':  {"#...#", ".#.#.", "..#..", ".#.#.", "#...#"},
	'Y':  {"#...#", ".#.#.", "..#..", "..#..", "..#.."},
	'Z':  {"#####", "...#.", "..#..", ".#...", "#####"},
	'[':  {"##", "#.", "#.", "#.", "##"},
	'\\': {"#....", ".#...", "..#..", "...#.", "....#"},
	']':  {"##", ".#", ".#", ".#", "##"},
	'^':  {".#.", "#.#"},
	'_':  {"....", "....", "....", "....", "####"},
	'`':  {"#.", ".#"},
	'a':  {"....", ".###", "#..#", "#..#", ".###"},
	'b':  {"#...", "###.", "#..#", "#..#", "###."},
	'c':  {"....", ".###", "#...", "#...", ".###"},
	'd':  {"...#", ".###", "#..#", "#..#", ".###"},
	'e':  {"....", ".##.", "####", "#...", ".###"},
	'f':  {"..##", ".#..", "###.", ".#..", ".#.."},
	'g':  {"....", ".###", "#..#", ".###", "...#", ".##."},
	'h':  {"#...", "###.", "#..#", "#..#", "#..#"},
	'i':  {"#", ".", "#", "#", "#"},
	'j':  {"..#", "...", "..#", "..#", "#.#", ".#."},
	'k':  {"#...", "#..#", "###.", "#..#", "#..#"},
	'l':  {"#.", "#.", "#.", "#.", ".#"},
	'm':  {".....", "##.#.", "#.#.#", "#.#.#", "#.#.#"},
	'n':  {"....", "###.", "#..#", "#..#", "#..#"},
	'o':  {"....", ".##.", "#..#", "#..#", ".##."},
	'p':  {"....", "###.", "#..#", "###.", "#...", "#..."},
	'q':  {"....", ".###", "#..#", ".###", "...#", "...#"},
	'r':  {"....", "#.##", "##..", "#...", "#..."},
	's':  {"....", ".###", "##..", "..##", "###."},
	't':  {".#..", "###.", ".#..", ".#..", "..##"},
	'u':  {"....", "#..#", "#..#", "#..#", ".###"},
	'v':  {"....", "#..#", "#..#", ".##.", ".##."},
	'w':  {".....", "#...#", "#.#.#", "#.#.#", ".#.#."},
	'x':  {"....", "#..#", ".##.", ".##.", "#..#"},
	'y':  {"....", "#..#", "#..#", ".###", "...#", ".##."},
	'z':  {"....", "####", "..#.", ".#..", "####"},
	'{':  {"..#", ".#.", "##.", ".#.", "..#"},
	'|':  {"#", "#", "#", "#", "#"},
	'}':  {"#..", ".#.", ".##", ".#.", "#.."},
	'~':  {"....", ".#.#", "#.#."},
}

var altGlyphs = map[byte][]string{
	'!':  {"#", "#", "#", ".", "#"},
	'"':  {"#.#", "#.#"},
	'#':  {"#.#", "###", "#.#", "###", "#.#"},
	'$':  {".##", "#..", ".#.", "..#", "##."},
	'%':  {"#.#", "..#", ".#.", "#..", "#.#"},
	'&':  {".#.", "#.#", ".#.", "#.#", ".##"},
	'\'': {"#", "#"},
	'(':  {".#", "#.", "#.", "#.", ".#"},
	')':  {"#.", ".#", ".#", ".#", "#."},
	'*':  {"...", "#.#", ".#.", "#.#"},
	'+':  {"...", ".#.", "###", ".#."},
	',':  {"..", "..", "..", ".#", "#."},
	'-':  {"...", "...", "###"},
	'.':  {".", ".", ".", ".", "#"},
	'/':  {"..#", "..#", ".#.", "#..", "#.."},
	'0':  {"###", "#.#", "#.#", "#.#", "###"},
	'1':  {".#.", "##.", ".#.", ".#.", "###"},
	'2':  {"###", "..#", "###", "#..", "###"},
	'3':  {"###", "..#", ".##", "..#", "###"},
	'4':  {"#.#", "#.#", "###", "..#", "..#"},
	'5':  {"###", "#..", "###", "..#", "###"},
	'6':  {"###", "#..", "###", "#.#", "###"},
	'7':  {"###", "..#", "..#", ".#.", ".#."},
	'8':  {"###", "#.#", "###", "#.#", "###"},
	'9':  {"###", "#.#", "###", "..#", "###"},
	':':  {".", "#", ".", "#"},
	';':  {"..", ".#", "..", ".#", "#."},
	'<':  {"..#", ".#.", "#..", ".#.", "..#"},
	'=':  {"...", "###", "...", "###"},
	'>':  {"#..", ".#.", "..#", ".#.", "#.."},
	'?':  {"###", "..#", ".##", "...", ".#."},
	'@':  {"###", "#.#", "#.#", "#..", "###"},
	'A':  {"###", "#.#", "###", "#.#", "#.#"},
	'B':  {"##.", "#.#", "##.", "#.#", "##."},
	'C':  {"###", "#..", "#..", "#..", "###"},
	'D':  {"##.", "#.#", "#.#", "#.#", "##."},
	'E':  {"###", "#..", "##.", "#..", "###"},
	'F':  {"###", "#..", "##.", "#..", "#.."},
	'G':  {"###", "#..", "#.#", "#.#", "###"},
	'H':  {"#.#", "#.#", "###", "#.#", "#.#"},
	'I':  {"###", ".#.", ".#.", ".#.", "###"},
	'J':  {"..#", "..#", "..#", "#.#", "###"},
	'K':  {"#.#", "#.#", "##.", "#.#", "#.#"},
	'L':  {"#..", "#..", "#..", "#..", "###"},
	'M':  {"#.#", "###", "###", "#.#", "#.#"},
	'N':  {"##.", "#.#", "#.#", "#.#", "#.#"},
	'O':  {"###", "#.#", "#.#", "#.#", "###"},
	'P':  {"###", "#.#", "###", "#..", "#.."},
	'Q':  {"###", "#.#", "#.#", "###", "..#"},
	'R':  {"###", "#.#", "##.", "#.#", "#.#"},
	'S':  {"###", "#..", "###", "..#", "###"},
	'T':  {"###", ".#.", ".#.", ".#.", ".#."},
	'U':  {"#.#", "#.#", "#.#", "#.#", "###"},
	'V':  {"#.#", "#.#", "#.#", "#.#", ".#."},
	'W':  {"#.#", "#.#", "###", "###", "#.#"},
	'X':  {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y':  {"#.#", "#.#", "###", ".#.", ".#."},
	'Z':  {"###", "..#", ".#.", "#..", "###"},
	'[':  {"##", "#.", "#.", "#.", "##"},
	'\\': {"#..", "#..", ".#.", "..#", "..#"},
	']':  {"##", ".#", ".#", ".#", "##"},
	'^':  {".#.", "#.#"},
	'_':  {"...", "...", "...", "...", "###"},
	'`':  {"#.", ".#"},
	'{':  {".##", ".#.", "##.", ".#.", ".##"},
	'|':  {"#", "#", "#", "#", "#"},
	'}':  {"##.", ".#.", ".##", ".#.", "##."},
	'~':  {"...", ".##", "##."},
}

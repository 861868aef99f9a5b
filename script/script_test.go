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

package script_test

import (
	"testing"

	"github.com/gotic/gotic/script"
	"github.com/gotic/gotic/test"
)

func TestRegistry(t *testing.T) {
	test.ExpectEquality(t, script.Select("anything") == nil, true)

	a := &script.Config{Name: "alpha", SingleComment: "--", Keywords: []string{"if", "end"}}
	b := &script.Config{Name: "beta", SingleComment: "//"}
	script.Register(a)
	script.Register(b)

	test.ExpectEquality(t, len(script.Configs()), 2)

	c, ok := script.Lookup("beta")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, b)
	_, ok = script.Lookup("gamma")
	test.ExpectFailure(t, ok)

	// the first registered language is the default
	test.ExpectEquality(t, script.Select(""), a)
	test.ExpectEquality(t, script.Select("x = 1\n"), a)

	// metatag must use the language's comment token
	test.ExpectEquality(t, script.Select("// script: beta\n"), b)
	test.ExpectEquality(t, script.Select("-- script: beta\n"), a)
	test.ExpectEquality(t, script.Select("// title: game\n  //script:   beta  \n"), b)

	test.ExpectSuccess(t, a.IsKeyword("end"))
	test.ExpectFailure(t, a.IsKeyword("then"))

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	script.Register(&script.Config{Name: "alpha"})
}

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

// Package curated is a thin layer over the error interface. Curated errors
// are created with Errorf() which takes a pattern and the values to be
// formatted into it. The pattern is the identity of the error:
//
//	err := curated.Errorf("memory: bank %d out of range", 9)
//
//	if curated.Is(err, "memory: bank %d out of range") {
//		...
//	}
//
// Has() does the same test but looks down the chain of wrapped errors:
//
//	err := curated.Errorf("console: %v", curated.Errorf("memory: bank %d out of range", 9))
//	curated.Has(err, "memory: bank %d out of range") // true
//	curated.Is(err, "memory: bank %d out of range")  // false
//
// When an error message is produced, duplicate adjacent parts are removed so
// that wrapping at every level of a call stack does not repeat the package
// prefix:
//
//	cartridge: cartridge: code too large
//
// is reported as:
//
//	cartridge: code too large
//
// IsAny() distinguishes curated errors from all other errors. Curated errors
// are expected errors, the ones that the program knows how to describe. Other
// errors are unexpected and should be treated with suspicion.
package curated

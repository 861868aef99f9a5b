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

// Package prefs holds the preference values of the host. Preferences are
// typed (Bool, Int, Float and String) and can have hooks that run when the
// value changes.
//
// Values are gathered into a Disk and saved to or loaded from a file, one
// "key :: value" line per preference. Preferences can also be given on the
// command line and are pushed onto the command line stack. When a value is
// added to a Disk, the command line value takes precedence over the value
// on disk.
package prefs

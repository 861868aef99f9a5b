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

// Package paths contains functions to prepare paths to gotic resources.
//
// The ResourcePath() function returns the path to a resource in the config
// directory. For example, the following returns the path to the persistent
// memory file of a cartridge with the save ID "mygame":
//
//	d, err := paths.ResourcePath("pmem", "mygame")
//
// For development builds the base path is ".gotic" in the current
// directory. For release builds (built with the release tag) the base path is
// "gotic" in the user's config directory, as returned by os.UserConfigDir().
// On a modern Linux system the example above will return:
//
//	/home/user/.config/gotic/pmem/mygame
//
// Sub-directories are created as required.
package paths

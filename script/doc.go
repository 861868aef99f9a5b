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

// Package script defines the boundary between the console and the
// languages that programs can be written in.
//
// A language is described by a Config and registered with Register(),
// usually from the init() function of the package implementing it. The
// console selects a language for a cartridge with Select(), which looks for
// the "script" metatag in the cartridge's code. If no metatag is found the
// first registered language is used.
//
// A running program is represented by the Runtime interface. The runtime
// calls back into the console through the API interface.
package script

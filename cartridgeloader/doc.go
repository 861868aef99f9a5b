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

// Package cartridgeloader is used to specify and load the data of a
// cartridge. Data can be loaded from local files or from http(s) URLs:
//
//	cl := cartridgeloader.NewLoader("game.tic")
//	cart, err := cl.Cartridge()
//
// Files with the extension of a registered script language are loaded as
// program source. The cartridge is then the factory cartridge with the
// loaded code. All other files are decoded as binary cartridges.
//
// The SHA-1 hash of the loaded data is available after loading and can be
// set before loading to check that the data is as expected.
package cartridgeloader

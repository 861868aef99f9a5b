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

// Package statsview is a wrapper for the statsview package. It shows the
// memory and goroutine statistics of the running program in a web browser.
//
// The package is only available when the program is built with the
// statsview build tag. For example:
//
//	go build -tags statsview
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview

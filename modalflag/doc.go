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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode has its own set of flags.
//
// Arguments are given to NewArgs() and then processed with Parse(). After
// parsing, arguments that are not flags are available through RemainingArgs()
// and GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	scale := md.AddInt("scale", 3, "window scale")
//	_, _ = md.Parse()
//
// A mode is an argument that selects a different kind of operation, in the
// manner of the go command and its build, test and run modes. Modes are
// listed with AddSubModes() before the call to Parse(). The first listed mode
// is the default mode. Mode comparisons are case insensitive and modes are
// reported in upper case:
//
//	md.AddSubModes("run", "info", "wav")
//	md.AddAlias("play", "run")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fps := md.AddBool("fps", false, "show fps")
//		...
//	}
//
// The call to NewMode() starts a new set of flags for the selected mode.
// Modes can be nested as deeply as required and Path() returns the list of
// modes found so far, separated by a slash.
package modalflag

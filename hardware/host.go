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

package hardware

import (
	"time"

	"github.com/gotic/gotic/logger"
)

// Host is the interface to the program hosting the console.
type Host interface {
	// Error is called with the error message of a failed program.
	Error(msg string)

	// Trace is called with the message and colour of a trace() call.
	Trace(msg string, color uint8)

	// Exit is called when the program asks to exit.
	Exit()

	// Counter and Frequency are the clock used by the console. Frequency is
	// the number of counts per second.
	Counter() uint64
	Frequency() uint64

	// ForceExit is polled while a program is running. The program is
	// interrupted if it returns true.
	ForceExit() bool
}

// LogHost is an implementation of Host that writes errors and trace messages
// to the log and measures time with the system clock. It is used by the
// console when no other host is specified.
type LogHost struct {
	// the value returned by ForceExit()
	Interrupt func() bool
}

// Error implements the Host interface.
func (h *LogHost) Error(msg string) {
	logger.Log(logger.Allow, "console", msg)
}

// Trace implements the Host interface.
func (h *LogHost) Trace(msg string, color uint8) {
	logger.Logf(logger.Allow, "trace", "%s [%d]", msg, color)
}

// Exit implements the Host interface.
func (h *LogHost) Exit() {
	logger.Log(logger.Allow, "console", "exit requested")
}

// Counter implements the Host interface.
func (h *LogHost) Counter() uint64 {
	return uint64(time.Now().UnixNano())
}

// Frequency implements the Host interface.
func (h *LogHost) Frequency() uint64 {
	return uint64(time.Second)
}

// ForceExit implements the Host interface.
func (h *LogHost) ForceExit() bool {
	return h.Interrupt != nil && h.Interrupt()
}

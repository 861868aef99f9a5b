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

package lua

import (
	"context"
	"errors"
)

// the number of polls of the interrupt between calls to the force exit
// function
const pollInterval = 100000

var errInterrupted = errors.New("script execution was interrupted")

// interrupt is a context that is done once the force exit function returns
// true. the Lua VM polls the Done() function of its context before every
// instruction so the force exit function is only called every pollInterval
// polls. once interrupted the context stays done
type interrupt struct {
	context.Context

	forceExit   func() bool
	polls       int
	interrupted bool
	done        chan struct{}
}

func newInterrupt(forceExit func() bool) *interrupt {
	done := make(chan struct{})
	close(done)
	return &interrupt{
		Context:   context.Background(),
		forceExit: forceExit,
		done:      done,
	}
}

// Done implements the context.Context interface. A nil channel is never
// ready so the VM carries on running.
func (i *interrupt) Done() <-chan struct{} {
	if i.interrupted {
		return i.done
	}

	i.polls++
	if i.polls < pollInterval {
		return nil
	}
	i.polls = 0

	if i.forceExit != nil && i.forceExit() {
		i.interrupted = true
		return i.done
	}
	return nil
}

// Err implements the context.Context interface.
func (i *interrupt) Err() error {
	if i.interrupted {
		return errInterrupted
	}
	return nil
}

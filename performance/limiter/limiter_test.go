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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gotic/gotic/performance/limiter"
	"github.com/gotic/gotic/test"
)

func TestWait(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for range 11 {
		lim.Wait()
	}

	// ten intervals of 10ms. the first Wait() returns immediately
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)
}

func TestHasWaited(t *testing.T) {
	lim := limiter.NewFPSLimiter(1)
	defer lim.Stop()

	lim.Wait()
	test.ExpectFailure(t, lim.HasWaited())
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

// driver.go paces Tick against the wall clock, the same role vu's engine
// loop plays for render/update: catch up on however many steps have come
// due, then sleep until the next one is, rather than ticking at a fixed
// OS-timer rate that would drift under load.

import (
	"context"
	"time"

	"github.com/antzelino/ballmachine/physics"
)

const stepLen = time.Duration(physics.StepLenNS) * time.Nanosecond

// Run drives the simulation until ctx is cancelled or Shutdown is called.
// It is the caller's responsibility to register chambers before calling
// Run; chambers added concurrently are picked up by the next tick since
// AddChamber takes the same lock as Tick.
func (s *Simulation) Run(ctx context.Context) {
	s.mu.Lock()
	if s.startInstant.IsZero() {
		s.startInstant = time.Now()
	}
	start := s.startInstant
	s.mu.Unlock()

	for !s.shutdown.Load() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		loopStart := time.Now()
		elapsed := time.Since(start)
		caughtUp := true
		ticks := 0
		for time.Duration(s.NumStepsTaken())*stepLen < elapsed {
			s.Tick()
			ticks++
			caughtUp = false
		}

		s.mu.Lock()
		s.timing.Ticks = ticks
		s.timing.Elapsed = time.Since(loopStart)
		s.mu.Unlock()

		if caughtUp {
			time.Sleep(stepLen)
		}
	}
}

// Shutdown signals Run's loop to return after its current iteration.
// Safe to call from any goroutine, any number of times.
func (s *Simulation) Shutdown() {
	s.shutdown.Store(true)
}

// Timing reports the most recent completed wake-up's tick count and
// elapsed loop time. The reading stays in place for the whole of the next
// wake-up — including any catch-up ticks it runs — and is only replaced
// once that wake-up finishes, so a host driving Run in its own goroutine
// can poll this at any time to report FPS-style stats, the same way vu's
// apps poll Eng.Usage().
func (s *Simulation) Timing() Timing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timing
}

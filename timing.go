// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

// timing.go collects main-loop numbers while Run is active, the same
// role vu/timing.go's Timing type plays for the render/update loop.
// Here there is no render phase, only catch-up ticks against wall clock.

import (
	"fmt"
	"time"
)

// Timing reports how the wall-clock driven loop in Run is keeping pace
// with real time. Applications are expected to track and smooth these
// per-call values over a number of calls if they want a stable reading.
type Timing struct {
	Elapsed time.Duration // Total loop time since the last report.
	Ticks   int           // Simulation ticks run since the last report.
}

// Zero resets the counters to their zero value. Run itself never calls
// this — each wake-up's result replaces the last one outright — it is
// exposed for callers that accumulate Timing values across several calls
// and want to clear their running total.
func (t *Timing) Zero() {
	t.Elapsed = 0
	t.Ticks = 0
}

// Dump prints the current loop timing in milliseconds.
func (t *Timing) Dump() {
	const milliseconds = 1000.0
	fmt.Printf("E:%2.4f #:%d\n", t.Elapsed.Seconds()*milliseconds, t.Ticks)
}

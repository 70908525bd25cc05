// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package physics applies simulated forces to balls: gravity, a speed
// clamp, Euler position integration, and collision response against
// surfaces and other balls.
//
// Package physics is provided as part of the ballmachine simulation core,
// playing the same role here that vu/physics plays for the 3-D engine:
// the engine package (ballmachine) drives ticks and owns topology, while
// this package owns the closed-form math of a single ball's motion.
package physics

import "github.com/antzelino/ballmachine/geom"

// Fixed constants shared with chamber programs; part of the interface
// contract since a chamber program's behaviour depends on them.
const (
	BallRadius    = 0.025     // Ball radius in local chamber coordinates.
	ChamberHeight = 0.7       // Local y-range of a chamber: [0, ChamberHeight).
	Gravity       = -9.832    // Downward acceleration, units per second squared.
	MaxSpeed      = 2.5       // Speed clamp applied after gravity each tick.
	StepLenNS     = 1_666_666 // ~600Hz fixed timestep, in nanoseconds.
	Damping       = 0.15      // Fraction of normal-component speed lost on impact.
)

// DT is the fixed per-tick timestep in seconds, derived from StepLenNS.
const DT = float64(StepLenNS) / 1e9

// Ball is a mutable physical entity. Position is expressed in the local
// coordinate system of whichever chamber currently owns the ball.
type Ball struct {
	Pos      geom.Point  // x in [0,1], y in [0, ChamberHeight) after wrap.
	R        float64     // Radius; constant per simulation (BallRadius).
	Velocity geom.Vector // Magnitude bounded by MaxSpeed after each clamp.
}

// NewBall creates a ball of the standard radius at the given position,
// at rest.
func NewBall(pos geom.Point) Ball {
	return Ball{Pos: pos, R: BallRadius}
}

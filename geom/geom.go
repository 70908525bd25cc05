// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom provides the 2-D point, vector, and surface math needed by
// the ball/chamber physics simulation. It plays the same role for this
// engine that vu/math/lin plays for the 3-D engine: a small, allocation-free
// set of value types with the handful of operations the simulation actually
// exercises, rather than a general purpose linear algebra library.
package geom

import "math"

// Epsilon is used to distinguish when a float is close enough to a number.
const Epsilon float64 = 0.000001

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Clamp returns s limited to the closed range [lb, ub].
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Surface is an oriented line segment (A, B). The normal "points up" when
// A is left of B; callers are responsible for supplying surfaces with the
// orientation they intend, since Normal never checks the precondition.
type Surface struct {
	A Point
	B Point
}

// Normal returns the unit vector perpendicular to (B - A), rotated 90
// degrees counter-clockwise. Undefined (and not guarded here) when A and B
// coincide; see package physics for how callers treat that degeneracy.
func (s Surface) Normal() Vector {
	d := s.B.Sub(s.A).Normalize()
	return Vector{X: -d.Y, Y: d.X}
}

// Between reports whether point p lies between points a and b: p's
// x-coordinate lies strictly between the endpoints' x-coordinates, or its
// y-coordinate does. The OR across axes (rather than AND) is deliberate: a
// nearly axis-aligned segment has negligible range on one axis, which would
// false-negative a pure one-axis test. The other axis rescues it.
func Between(p, a, b Point) bool {
	betweenX := (a.X < p.X && p.X < b.X) || (b.X < p.X && p.X < a.X)
	betweenY := (a.Y < p.Y && p.Y < b.Y) || (b.Y < p.Y && p.Y < a.Y)
	return betweenX || betweenY
}

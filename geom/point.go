// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Point is a 2-D location. Point and Vector are kept as distinct types,
// unlike vu/math/lin's V3 which is used for both: the simulation's wrap
// and view-assembly code leans on the compiler to catch "point + point"
// mistakes that would otherwise be silent bugs.
type Point struct {
	X float64
	Y float64
}

// Sub (-) returns the vector from point a to point p, i.e. p - a.
func (p Point) Sub(a Point) Vector {
	return Vector{X: p.X - a.X, Y: p.Y - a.Y}
}

// Add (+) returns the point obtained by displacing p by vector v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Eq (==) returns true if point p has the same value as point a.
func (p Point) Eq(a Point) bool { return p.X == a.X && p.Y == a.Y }

// Aeq (~=) almost-equals returns true if point p and point a are within
// Epsilon of each other on both axes.
func (p Point) Aeq(a Point) bool { return Aeq(p.X, a.X) && Aeq(p.Y, a.Y) }

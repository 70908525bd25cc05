// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// Vector is a 2-D displacement or direction.
type Vector struct {
	X float64
	Y float64
}

// Add (+) returns the sum of v and a.
func (v Vector) Add(a Vector) Vector { return Vector{X: v.X + a.X, Y: v.Y + a.Y} }

// Sub (-) returns v minus a.
func (v Vector) Sub(a Vector) Vector { return Vector{X: v.X - a.X, Y: v.Y - a.Y} }

// Scale (*) returns v with both elements multiplied by s.
func (v Vector) Scale(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

// Neg (-) returns the opposite of v.
func (v Vector) Neg() Vector { return Vector{X: -v.X, Y: -v.Y} }

// Dot (.) returns the dot product of v and a.
func (v Vector) Dot(a Vector) float64 { return v.X*a.X + v.Y*a.Y }

// LenSq returns the squared length of v. Prefer this over Len when only
// comparing magnitudes, since it avoids a square root.
func (v Vector) LenSq() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v Vector) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize returns v scaled to unit length. The result is undefined for a
// zero-length vector; callers must guard against that case themselves,
// per the no-collision policy for numeric degeneracies (see package physics).
func (v Vector) Normalize() Vector {
	l := v.Len()
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Eq (==) returns true if vector v has the same value as vector a.
func (v Vector) Eq(a Vector) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if v and a are within Epsilon of
// each other on both axes.
func (v Vector) Aeq(a Vector) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

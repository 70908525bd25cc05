// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "testing"

func TestPointSub(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 3, Y: 5}
	got := b.Sub(a)
	want := Vector{X: 2, Y: 3}
	if !got.Eq(want) {
		t.Errorf("b.Sub(a) = %+v, want %+v", got, want)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 1, Y: 2}
	v := Vector{X: 0.5, Y: -1}
	got := p.Add(v)
	want := Point{X: 1.5, Y: 1}
	if !got.Eq(want) {
		t.Errorf("p.Add(v) = %+v, want %+v", got, want)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	n := v.Normalize()
	if !Aeq(n.Len(), 1) {
		t.Errorf("normalized length = %f, want 1", n.Len())
	}
}

func TestVectorDot(t *testing.T) {
	a := Vector{X: 1, Y: 0}
	b := Vector{X: 0, Y: 1}
	if got := a.Dot(b); got != 0 {
		t.Errorf("perpendicular dot = %f, want 0", got)
	}
}

// Surfaces oriented left-to-right should have an upward normal.
func TestSurfaceNormalUp(t *testing.T) {
	s := Surface{A: Point{X: 0, Y: 0}, B: Point{X: 1, Y: 0}}
	n := s.Normal()
	want := Vector{X: 0, Y: 1}
	if !n.Aeq(want) {
		t.Errorf("Normal() = %+v, want %+v", n, want)
	}
}

func TestBetweenAxisAligned(t *testing.T) {
	a := Point{X: 0, Y: 0.02}
	b := Point{X: 1, Y: 0.02}
	if !Between(Point{X: 0.5, Y: 0.02}, a, b) {
		t.Errorf("expected midpoint to be between segment endpoints")
	}
	if Between(Point{X: 1.5, Y: 0.02}, a, b) {
		t.Errorf("expected out-of-range point to not be between segment endpoints")
	}
}

// A near-vertical segment has a degenerate x-range; only the OR across
// axes keeps the test meaningful.
func TestBetweenNearAxisAligned(t *testing.T) {
	a := Point{X: 0.5, Y: 0}
	b := Point{X: 0.5000001, Y: 1}
	if !Between(Point{X: 0.5, Y: 0.5}, a, b) {
		t.Errorf("expected point within the y-range to be between, despite a degenerate x-range")
	}
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/antzelino/ballmachine/geom"
)

// A ball at rest should pick up downward velocity and fall after one tick.
func TestIntegrateFreeFall(t *testing.T) {
	b := NewBall(geom.Point{X: 0.5, Y: 0.1})
	Integrate(&b, DT)

	wantVY := Gravity * DT
	if !geom.Aeq(b.Velocity.Y, wantVY) {
		t.Errorf("velocity.Y = %v, want %v", b.Velocity.Y, wantVY)
	}
	wantY := 0.1 + wantVY*DT
	if !geom.Aeq(b.Pos.Y, wantY) {
		t.Errorf("pos.Y = %v, want %v", b.Pos.Y, wantY)
	}
}

func TestIntegrateSpeedClamp(t *testing.T) {
	b := Ball{Pos: geom.Point{X: 0.5, Y: 0.3}, R: BallRadius, Velocity: geom.Vector{X: 10, Y: 0}}
	Integrate(&b, DT)
	if got := b.Velocity.Len(); !geom.Aeq(got, MaxSpeed) {
		t.Errorf("clamped speed = %v, want %v", got, MaxSpeed)
	}
}

func TestReflectSurface(t *testing.T) {
	surf := geom.Surface{A: geom.Point{X: 0, Y: 0.02}, B: geom.Point{X: 1, Y: 0.02}}
	// Just below the surface, having crossed it during the last tick.
	b := Ball{Pos: geom.Point{X: 0.5, Y: 0.019}, R: BallRadius, Velocity: geom.Vector{X: 0, Y: -1}}

	adjustment, hit := Resolve(b.Pos, b.Velocity.Scale(DT), surf)
	if !hit {
		t.Fatalf("expected a collision")
	}
	ReflectSurface(&b, surf.Normal(), adjustment, DT)

	wantV := geom.Vector{X: 0, Y: 0.85}
	if !b.Velocity.Aeq(wantV) {
		t.Errorf("velocity after reflection = %+v, want %+v", b.Velocity, wantV)
	}
	if b.Pos.Y <= 0.02 {
		t.Errorf("expected ball to end up above the surface, got y=%v", b.Pos.Y)
	}
}

// A point already on the normal side of the surface never collides.
func TestResolveNoCollisionWhenAlreadyClear(t *testing.T) {
	surf := geom.Surface{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}}
	p := geom.Point{X: 0.5, Y: 1} // above the surface, on the normal side.
	v := geom.Vector{X: 0, Y: -0.01}
	if _, hit := Resolve(p, v, surf); hit {
		t.Errorf("expected no collision when point is already on the normal side")
	}
}

func TestResolveZeroTravelIsNoCollision(t *testing.T) {
	surf := geom.Surface{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}}
	p := geom.Point{X: 0.5, Y: 0.01}
	if _, hit := Resolve(p, geom.Vector{}, surf); hit {
		t.Errorf("expected zero-length travel to be treated as no collision")
	}
}

func TestBallBallCollision(t *testing.T) {
	a := Ball{Pos: geom.Point{X: 0.4, Y: 0.3}, R: BallRadius, Velocity: geom.Vector{X: 1, Y: 0}}
	b := Ball{Pos: geom.Point{X: 0.44, Y: 0.3}, R: BallRadius, Velocity: geom.Vector{X: -1, Y: 0}}

	if !BallBall(&a, &b) {
		t.Fatalf("expected overlapping balls to collide")
	}
	if !a.Velocity.Aeq(geom.Vector{X: -0.85, Y: 0}) {
		t.Errorf("a.Velocity = %+v, want {-0.85 0}", a.Velocity)
	}
	if !b.Velocity.Aeq(geom.Vector{X: 0.85, Y: 0}) {
		t.Errorf("b.Velocity = %+v, want {0.85 0}", b.Velocity)
	}
}

func TestBallBallNoOverlapNoChange(t *testing.T) {
	a := Ball{Pos: geom.Point{X: 0, Y: 0}, R: BallRadius, Velocity: geom.Vector{X: 1, Y: 0}}
	b := Ball{Pos: geom.Point{X: 1, Y: 0}, R: BallRadius, Velocity: geom.Vector{X: -1, Y: 0}}
	if BallBall(&a, &b) {
		t.Errorf("balls far apart should not collide")
	}
}

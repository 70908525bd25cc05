// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/antzelino/ballmachine/geom"

// Resolve computes the displacement that undoes a point's penetration of a
// surface, given that the point p has just travelled along vector v (so its
// previous position was p - v). It returns (adjustment, true) on a real
// collision, or (zero, false) when there was no collision.
//
// Numeric degeneracies — a zero-length travel vector, or travel that is
// near-parallel to the surface (cos_o ~= 0) — are treated as "no collision"
// rather than surfaced as errors, per the engine's policy of never letting
// arithmetic edge cases propagate out of the collision kernel.
func Resolve(p geom.Point, v geom.Vector, s geom.Surface) (geom.Vector, bool) {
	if v.LenSq() < geom.Epsilon {
		return geom.Vector{}, false // no travel, nothing to resolve.
	}

	ap := s.A.Sub(p)
	n := s.Normal()
	l := ap.Dot(n)
	if l < 0 {
		return geom.Vector{}, false // p is already on the normal side.
	}

	u := v.Normalize().Neg()
	cosO := n.Dot(u)
	if geom.Aeq(cosO, 0) {
		return geom.Vector{}, false // travel is parallel to the surface.
	}

	adjustment := u.Scale(l / cosO)
	hit := p.Add(adjustment)
	prev := p.Add(v.Neg())
	if !geom.Between(hit, s.A, s.B) || !geom.Between(hit, prev, p) {
		return geom.Vector{}, false
	}
	return adjustment, true
}

// ReflectSurface applies a ball-surface collision response: reflect the
// velocity across the surface normal, damp it, then translate the ball
// out of the surface and advance it by the (now reflected) velocity for
// the remainder of the timestep.
func ReflectSurface(b *Ball, normal, resolution geom.Vector, dt float64) {
	vn := b.Velocity.Dot(normal)
	reflected := b.Velocity.Sub(normal.Scale(2 * vn))

	damp := 1 - Damping*absf(normal.Dot(b.Velocity.Normalize()))
	b.Velocity = reflected.Scale(damp)

	b.Pos = b.Pos.Add(resolution)
	b.Pos = b.Pos.Add(b.Velocity.Scale(dt))
}

// BallBall resolves an overlap between two balls whose centers are closer
// than the sum of their radii: an equal-mass elastic impulse is applied
// along the line of centers, with the same damping law as surface
// collisions projected onto that axis. Reports whether the balls were
// actually overlapping (and therefore adjusted).
func BallBall(a, b *Ball) bool {
	delta := b.Pos.Sub(a.Pos)
	distSq := delta.LenSq()
	radiusSum := a.R + b.R
	if distSq >= radiusSum*radiusSum {
		return false
	}
	if distSq < geom.Epsilon {
		return false // coincident centers: axis of impact is undefined.
	}

	axis := delta.Normalize()
	av := a.Velocity.Dot(axis)
	bv := b.Velocity.Dot(axis)
	perpA := a.Velocity.Sub(axis.Scale(av))
	perpB := b.Velocity.Sub(axis.Scale(bv))

	// Equal-mass elastic collision swaps the along-axis speed components;
	// only that swapped component is damped, same law as surface impacts.
	a.Velocity = perpA.Add(axis.Scale(bv * (1 - Damping)))
	b.Velocity = perpB.Add(axis.Scale(av * (1 - Damping)))
	return true
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

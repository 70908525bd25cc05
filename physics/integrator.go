// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// Integrate advances a ball by one fixed timestep: apply gravity, clamp
// speed, then perform an Euler position update. Called once per ball per
// tick, before wrap, chamber delegation, and collisions.
func Integrate(b *Ball, dt float64) {
	b.Velocity.Y += Gravity * dt
	if b.Velocity.LenSq() > MaxSpeed*MaxSpeed {
		b.Velocity = b.Velocity.Normalize().Scale(MaxSpeed)
	}
	b.Pos = b.Pos.Add(b.Velocity.Scale(dt))
}

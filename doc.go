// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package ballmachine is a deterministic, fixed-timestep 2-D ball physics
// simulator coupled to a toroidal ring of user-supplied "chambers" —
// sandboxed programs that mutate a sub-population of balls each tick.
//
// Each chamber occupies one cell of a toroidal grid (wrapping left/right
// and top/bottom). Balls move freely across chamber boundaries; each
// chamber sees only the balls currently overlapping its cell, expressed
// in that cell's local coordinates.
//
// Package ballmachine is the simulation core: the tick scheduler, the
// ball/chamber reparenting model, collision-resolution geometry, and
// per-chamber view assembly. The sandbox host that actually loads and
// invokes chamber programs, the HTTP server, persistence, rendering, and
// CLI argument parsing are all external collaborators, out of scope here.
//
// Package ballmachine plays the same "top package wraps the math/physics
// subpackages" role that vu plays for the 3-D engine: see package geom
// for the vector math and package physics for integration and collision.
package ballmachine

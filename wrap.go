// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

import "github.com/antzelino/ballmachine/physics"

// applyWrap brings every ball's position back into [0,1) x [0, ChamberHeight)
// after integration, hopping each ball's owning chamber across the topology
// as it crosses a cell boundary. The per-axis loops (rather than a single
// if) handle the pathological but not forbidden case of a ball crossing
// more than one cell in a single tick.
func applyWrap(balls []Ball, owners []int, layout ChamberLayout) {
	for i := range balls {
		b := &balls[i]
		for b.Pos.X >= 1 {
			b.Pos.X -= 1
			owners[i] = layout.Right(owners[i])
		}
		for b.Pos.X < 0 {
			b.Pos.X += 1
			owners[i] = layout.Left(owners[i])
		}
		for b.Pos.Y >= physics.ChamberHeight {
			b.Pos.Y -= physics.ChamberHeight
			owners[i] = layout.Up(owners[i])
		}
		for b.Pos.Y < 0 {
			b.Pos.Y += physics.ChamberHeight
			owners[i] = layout.Down(owners[i])
		}
	}
}

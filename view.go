// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

import (
	"github.com/antzelino/ballmachine/geom"
	"github.com/antzelino/ballmachine/physics"
)

// translationByDirection is the single source of truth for the coordinate
// shift a Direction represents. View assembly applies it as written;
// write-back applies its negation. Keeping both directions table-driven
// off this one map is what rules out the sign errors that a pair of
// hand-written forward/inverse switches would invite.
var translationByDirection = map[Direction]geom.Vector{
	DirCurrent: {X: 0, Y: 0},
	DirRight:   {X: 1, Y: 0},
	DirLeft:    {X: -1, Y: 0},
	DirDown:    {X: 0, Y: -physics.ChamberHeight},
	DirUp:      {X: 0, Y: physics.ChamberHeight},
}

// assembleView gathers every ball overlapping chamber c's footprint,
// translated into c's local coordinate frame, appending to (and
// returning) the given scratch slice so callers can reuse its backing
// array across ticks.
func assembleView(balls []Ball, owners []int, layout ChamberLayout, c int, r float64, views []AdjustedBallView) []AdjustedBallView {
	views = views[:0]
	for i := range balls {
		b := balls[i]
		switch {
		case owners[i] == c:
			views = append(views, AdjustedBallView{Adjusted: b, BallID: i, Direction: DirCurrent})
		case b.Pos.X < r && layout.Left(owners[i]) == c:
			b.Pos = b.Pos.Add(translationByDirection[DirRight])
			views = append(views, AdjustedBallView{Adjusted: b, BallID: i, Direction: DirRight})
		case b.Pos.X+r > 1 && layout.Right(owners[i]) == c:
			b.Pos = b.Pos.Add(translationByDirection[DirLeft])
			views = append(views, AdjustedBallView{Adjusted: b, BallID: i, Direction: DirLeft})
		case b.Pos.Y+r > physics.ChamberHeight && layout.Up(owners[i]) == c:
			b.Pos = b.Pos.Add(translationByDirection[DirDown])
			views = append(views, AdjustedBallView{Adjusted: b, BallID: i, Direction: DirDown})
		case b.Pos.Y < r && layout.Down(owners[i]) == c:
			b.Pos = b.Pos.Add(translationByDirection[DirUp])
			views = append(views, AdjustedBallView{Adjusted: b, BallID: i, Direction: DirUp})
		}
	}
	return views
}

// writeBack converts each view's adjusted ball back into its owner's
// coordinate frame (the inverse of the translation view assembly applied)
// and writes the result into the global ball array. The owner index is
// left untouched; the next tick's applyWrap reasserts ownership.
func writeBack(balls []Ball, views []AdjustedBallView) {
	for _, v := range views {
		adjusted := v.Adjusted
		adjusted.Pos = adjusted.Pos.Add(translationByDirection[v.Direction].Neg())
		balls[v.BallID] = adjusted
	}
}

// runLocalCollisions resolves ball-ball overlaps within a single chamber's
// view. Pairs are considered in ascending (k, j) index order; an overlap
// found is resolved in place before the next pair is tested.
func runLocalCollisions(views []AdjustedBallView) {
	for k := 0; k < len(views); k++ {
		for j := k + 1; j < len(views); j++ {
			physics.BallBall(&views[k].Adjusted, &views[j].Adjusted)
		}
	}
}

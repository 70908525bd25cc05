// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

import "testing"

func TestLayoutPadding(t *testing.T) {
	l := NewChamberLayout(5, 2)
	if l.NumChambers != 6 {
		t.Errorf("NumChambers = %d, want 6", l.NumChambers)
	}
}

// left/right and up/down must round-trip for every id.
func TestLayoutRoundTrip(t *testing.T) {
	for _, chambersPerRow := range []int{1, 2} {
		l := NewChamberLayout(8, chambersPerRow)
		for id := 0; id < l.NumChambers; id++ {
			if got := l.Left(l.Right(id)); got != id {
				t.Errorf("row=%d: Left(Right(%d)) = %d, want %d", chambersPerRow, id, got, id)
			}
			if got := l.Up(l.Down(id)); got != id {
				t.Errorf("row=%d: Up(Down(%d)) = %d, want %d", chambersPerRow, id, got, id)
			}
		}
	}
}

// A single chamber on a torus of size 1 wraps to itself in every direction.
func TestLayoutSingleChamberTorus(t *testing.T) {
	l := NewChamberLayout(1, 1)
	if l.Left(0) != 0 || l.Right(0) != 0 || l.Up(0) != 0 || l.Down(0) != 0 {
		t.Errorf("a single-chamber torus should neighbor itself in every direction")
	}
}

func TestLayoutTwoInARow(t *testing.T) {
	l := NewChamberLayout(2, 2)
	if l.Left(0) != 1 || l.Right(0) != 1 {
		t.Errorf("expected chambers 0 and 1 to be mutual row neighbors")
	}
	if l.Up(0) != 0 || l.Down(0) != 0 {
		t.Errorf("a single-row layout should neighbor itself vertically")
	}
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

// layout.go derives the toroidal topology over the chamber ring: a grid of
// NumChambers cells, ChambersPerRow per row, wrapping left/right within a
// row and top/bottom across rows.

// ChamberLayout is a derived view over the chambers list defining the
// toroidal topology. NumChambers is rounded up to a multiple of
// ChambersPerRow so every row is full; the extra slots act as empty
// cells — no program runs there, but topology queries still address them.
type ChamberLayout struct {
	NumChambers    int // Padded chamber count; always a multiple of ChambersPerRow.
	ChambersPerRow int
}

// NewChamberLayout derives a layout for registered chambers, padding
// numChambers up to the next multiple of chambersPerRow.
func NewChamberLayout(numChambers, chambersPerRow int) ChamberLayout {
	if chambersPerRow < 1 {
		chambersPerRow = 1
	}
	padded := numChambers
	if rem := padded % chambersPerRow; rem != 0 {
		padded += chambersPerRow - rem
	}
	return ChamberLayout{NumChambers: padded, ChambersPerRow: chambersPerRow}
}

// Left returns the chamber id to the left of id, wrapping within the row.
func (l ChamberLayout) Left(id int) int {
	row := l.ChambersPerRow
	if id%row == 0 {
		return (id + row - 1) % l.NumChambers
	}
	return id - 1
}

// Right returns the chamber id to the right of id, wrapping within the row.
func (l ChamberLayout) Right(id int) int {
	row := l.ChambersPerRow
	if (id+1)%row == 0 {
		return (id + 1 - row) % l.NumChambers
	}
	return id + 1
}

// Up returns the chamber id directly above id, wrapping to the bottom row.
func (l ChamberLayout) Up(id int) int {
	row := l.ChambersPerRow
	if id < row {
		return id + max(l.NumChambers, row) - row
	}
	return id - row
}

// Down returns the chamber id directly below id, wrapping to the top row.
func (l ChamberLayout) Down(id int) int {
	return (id + l.ChambersPerRow) % l.NumChambers
}

package core

import (
	"sort"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

// Board is the set of settled cells on a width x height playfield.
// Each position holds at most one cell.
type Board struct {
	width  int
	height int
	cells  map[Coord]platformcore.Color
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make(map[Coord]platformcore.Color, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of settled cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Occupied reports whether a settled cell sits at (x, y).
func (b *Board) Occupied(x, y int) bool {
	_, ok := b.cells[C(x, y)]
	return ok
}

// Append merges cells into the settled set.
func (b *Board) Append(cells ...Cell) {
	for _, c := range cells {
		b.cells[c.Pos()] = c.Color
	}
}

// RowCount returns how many settled cells are in row y.
func (b *Board) RowCount(y int) int {
	n := 0
	for pos := range b.cells {
		if pos.Y == y {
			n++
		}
	}
	return n
}

// IsRowFull reports whether row y has a cell in every column.
func (b *Board) IsRowFull(y int) bool {
	return b.RowCount(y) >= b.width
}

// ClearRow removes row y and moves every row above it down by one.
func (b *Board) ClearRow(y int) {
	shifted := make(map[Coord]platformcore.Color, len(b.cells))
	for pos, color := range b.cells {
		switch {
		case pos.Y == y:
			continue
		case pos.Y < y:
			pos.Y++
		}
		shifted[pos] = color
	}
	b.cells = shifted
}

// Cells returns the settled cells ordered by row, then column.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, len(b.cells))
	for pos, color := range b.cells {
		out = append(out, Cell{X: pos.X, Y: pos.Y, Color: color})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// clearance returns the distance from (x, y) down to the nearest settled
// cell at or below it in column x, or to the floor.
func (b *Board) clearance(x, y int) int {
	for row := y; row < b.height; row++ {
		if b.Occupied(x, row) {
			return row - y
		}
	}
	return b.height - y
}

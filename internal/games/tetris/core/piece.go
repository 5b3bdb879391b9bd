package core

import (
	"math"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is a single occupied board position with its display color.
type Cell struct {
	X, Y  int
	Color platformcore.Color
}

// Pos returns the cell position.
func (c Cell) Pos() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Piece is a kind in an orientation placed at an anchor on the board.
// Pieces are values: Translate and Rotate return new pieces.
type Piece struct {
	Kind   Kind
	Orient Orientation
	Anchor Coord
	Cells  [4]Cell
}

// NewPiece places the shape of (k, o) with its offsets added to anchor.
func NewPiece(k Kind, o Orientation, anchor Coord) Piece {
	p := Piece{Kind: k, Orient: o, Anchor: anchor}
	color := k.Color()
	for i, off := range Shape(k, o) {
		pos := anchor.Add(off)
		p.Cells[i] = Cell{X: pos.X, Y: pos.Y, Color: color}
	}
	return p
}

// Spawn creates a kind in its Up orientation anchored at (col, row).
func Spawn(k Kind, col, row int) Piece {
	return NewPiece(k, OrientUp, C(col, row))
}

// Translate returns the piece shifted by (dx, dy). Validity is not checked.
func (p Piece) Translate(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(C(dx, dy))
	for i := range p.Cells {
		p.Cells[i].X += dx
		p.Cells[i].Y += dy
	}
	return p
}

// Rotate advances the piece to the next orientation in its cycle and then
// shifts it horizontally back inside [0, width) if the turn pushed it out.
// Settled cells and the floor are not consulted.
func (p Piece) Rotate(width int) Piece {
	t := nextRotation(p.Kind, p.Orient)
	r := NewPiece(p.Kind, t.next, p.Anchor.Add(t.kick))
	return r.Translate(-overflow(r, width), 0)
}

// overflow returns how far the piece sticks out past the right edge
// (positive) or the left edge (negative).
func overflow(p Piece, width int) int {
	over := 0
	for _, c := range p.Cells {
		switch {
		case c.X >= width && c.X-width+1 > over:
			over = c.X - width + 1
		case c.X < 0 && c.X < over:
			over = c.X
		}
	}
	return over
}

// Overlaps reports whether any cell of the piece is settled on the board.
func (p Piece) Overlaps(b *Board) bool {
	for _, c := range p.Cells {
		if b.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// IsValid reports whether the piece is inside the side walls, above the
// floor and clear of settled cells. Rows above the board are allowed.
func (p Piece) IsValid(b *Board) bool {
	if p.Overlaps(b) {
		return false
	}
	for _, c := range p.Cells {
		if c.X < 0 || c.X >= b.Width() || c.Y >= b.Height() {
			return false
		}
	}
	return true
}

// MaxDrop returns the largest downward shift that still leaves every cell
// above the nearest settled cell (or the floor) in its column.
func (p Piece) MaxDrop(b *Board) int {
	drop := math.MaxInt
	for _, c := range p.Cells {
		drop = min(drop, b.clearance(c.X, c.Y))
	}
	return drop - 1
}

// AboveTop reports whether any cell is above the visible board.
func (p Piece) AboveTop() bool {
	for _, c := range p.Cells {
		if c.Y < 0 {
			return true
		}
	}
	return false
}

// rows returns the smallest and largest row the piece occupies.
func (p Piece) rows() (top, bottom int) {
	top, bottom = p.Cells[0].Y, p.Cells[0].Y
	for _, c := range p.Cells[1:] {
		top = min(top, c.Y)
		bottom = max(bottom, c.Y)
	}
	return top, bottom
}

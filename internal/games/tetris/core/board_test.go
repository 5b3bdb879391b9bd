package core_test

import (
	"testing"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// fillRow settles a cell in every column of row y except the skipped ones.
func fillRow(b *core.Board, y int, skip ...int) {
	skipped := make(map[int]bool, len(skip))
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skipped[x] {
			b.Append(core.Cell{X: x, Y: y, Color: platformcore.ColorGray})
		}
	}
}

func TestBoardIsRowFull(t *testing.T) {
	b := core.NewBoard(10, 20)
	fillRow(b, 19, 4)

	if b.IsRowFull(19) {
		t.Error("row 19 with a gap should not be full")
	}

	b.Append(core.Cell{X: 4, Y: 19})
	if !b.IsRowFull(19) {
		t.Error("row 19 with every column filled should be full")
	}
	if b.IsRowFull(18) {
		t.Error("empty row should not be full")
	}
}

func TestBoardClearRow(t *testing.T) {
	b := core.NewBoard(10, 20)
	fillRow(b, 19)
	b.Append(
		core.Cell{X: 0, Y: 18, Color: platformcore.ColorRed},
		core.Cell{X: 3, Y: 18, Color: platformcore.ColorRed},
		core.Cell{X: 7, Y: 5, Color: platformcore.ColorCyan},
	)
	before := b.Len()

	b.ClearRow(19)

	if got := b.Len(); got != before-10 {
		t.Errorf("Len() = %d, expected %d", got, before-10)
	}
	if got := b.RowCount(19); got != 2 {
		t.Errorf("row 19 has %d cells, expected the 2 that fell from row 18", got)
	}
	if got := b.RowCount(18); got != 0 {
		t.Errorf("row 18 has %d cells, expected 0", got)
	}
	if c, ok := colorAt(b, 3, 19); !ok || c != platformcore.ColorRed {
		t.Errorf("(3,19) = %v/%v, expected red cell", c, ok)
	}
	if !b.Occupied(7, 6) || b.Occupied(7, 5) {
		t.Error("cell at (7,5) should have moved to (7,6)")
	}
}

func TestBoardClearRowLeavesRowsBelow(t *testing.T) {
	b := core.NewBoard(10, 20)
	fillRow(b, 10)
	b.Append(core.Cell{X: 2, Y: 15}, core.Cell{X: 2, Y: 9})

	b.ClearRow(10)

	if !b.Occupied(2, 15) {
		t.Error("cells below the cleared row must not move")
	}
	if !b.Occupied(2, 10) {
		t.Error("cell above the cleared row should fall into it")
	}
}

func TestBoardAppendKeepsPositionsUnique(t *testing.T) {
	b := core.NewBoard(10, 20)
	b.Append(core.Cell{X: 1, Y: 1, Color: platformcore.ColorRed})
	b.Append(core.Cell{X: 1, Y: 1, Color: platformcore.ColorBlue})

	if b.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", b.Len())
	}
	if c, _ := colorAt(b, 1, 1); c != platformcore.ColorBlue {
		t.Errorf("color at (1,1) = %v, expected the later cell's color", c)
	}
}

func TestBoardCellsOrdered(t *testing.T) {
	b := core.NewBoard(10, 20)
	b.Append(core.Cell{X: 5, Y: 19}, core.Cell{X: 1, Y: 19}, core.Cell{X: 9, Y: 2})

	cells := b.Cells()
	expected := []core.Coord{core.C(9, 2), core.C(1, 19), core.C(5, 19)}
	if len(cells) != len(expected) {
		t.Fatalf("Cells() returned %d cells, expected %d", len(cells), len(expected))
	}
	for i, want := range expected {
		if cells[i].Pos() != want {
			t.Errorf("Cells()[%d] = %v, expected %v", i, cells[i].Pos(), want)
		}
	}
}

// colorAt looks up the settled color at (x, y) through the public cell list.
func colorAt(b *core.Board, x, y int) (platformcore.Color, bool) {
	for _, c := range b.Cells() {
		if c.X == x && c.Y == y {
			return c.Color, true
		}
	}
	return platformcore.ColorDefault, false
}

package core

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State    State
	Frames   uint64
	Lines    int
	Width    int
	Height   int
	Active   Piece
	Ghost    Piece
	Board    []Cell
	Next     []Kind
	Held     Kind
	HasHeld  bool
	UsedHold bool
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:    e.state,
		Frames:   e.frames,
		Lines:    e.lines,
		Width:    e.cfg.Width,
		Height:   e.cfg.Height,
		Active:   e.active,
		Ghost:    e.Ghost(),
		Board:    e.board.Cells(),
		Next:     e.bag.Peek(e.cfg.PreviewCount),
		Held:     e.held,
		HasHeld:  e.hasHeld,
		UsedHold: e.usedHold,
	}
}

package core

import (
	"math/rand"
	"time"
)

// Config holds the constants an engine is built with. They do not change
// during a game.
type Config struct {
	Width          int  // Board columns
	Height         int  // Board rows
	TickInterval   int  // Frames between gravity steps
	FrameRate      int  // Frames per second, used for elapsed time
	SpawnOffset    int  // Rows above the board where later pieces appear
	PreviewCount   int  // Upcoming kinds exposed in snapshots
	StrictRotation bool // Reject rotations that end up invalid
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		TickInterval: 60,
		FrameRate:    60,
		SpawnOffset:  5,
		PreviewCount: 3,
	}
}

// State is the engine's lifecycle state.
type State int

const (
	StateFalling State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a discrete player instruction.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotate
	CmdHold
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdSoftDrop:
		return "SoftDrop"
	case CmdHardDrop:
		return "HardDrop"
	case CmdRotate:
		return "Rotate"
	case CmdHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// Stats are the figures reported when a game ends.
type Stats struct {
	Lines   int
	Frames  uint64
	Elapsed time.Duration
}

// Outcome describes what a frame or gravity step did.
type Outcome struct {
	Ticked   bool   // Gravity step ran
	Locked   bool   // Active piece was merged into the board
	Cleared  int    // Rows cleared by the lock
	GameOver *Stats // Set on the step that ended the game
}

// Engine owns the board, the active piece, the bag and the hold slot.
// It is not safe for concurrent use; one driver loop calls into it.
type Engine struct {
	cfg   Config
	board *Board
	bag   *Bag

	active   Piece
	held     Kind
	hasHeld  bool
	usedHold bool // Hold used since the last lock

	timer  int    // Frames since the last gravity step
	frames uint64 // Frames since the game started
	lines  int
	state  State
	final  *Stats
}

// NewEngine starts a game. The first piece appears at row 0.
func NewEngine(cfg Config, seed int64) *Engine {
	e := &Engine{
		cfg:   cfg,
		board: NewBoard(cfg.Width, cfg.Height),
		bag:   NewBag(rand.New(rand.NewSource(seed))),
	}
	e.active = e.spawn(e.bag.Next(), 0)
	return e
}

// spawn places a kind at the centre column of the given row.
func (e *Engine) spawn(k Kind, row int) Piece {
	return Spawn(k, e.cfg.Width/2, row)
}

// spawnRow is where pieces after the first one enter.
func (e *Engine) spawnRow() int {
	return -e.cfg.SpawnOffset
}

// Update advances one frame and runs a gravity step when the tick
// interval has elapsed.
func (e *Engine) Update() Outcome {
	if e.state == StateGameOver {
		return Outcome{}
	}
	e.frames++
	e.timer++
	if e.timer < e.cfg.TickInterval {
		return Outcome{}
	}
	e.timer = 0
	return e.Tick()
}

// Tick runs one gravity step: move the active piece down one row, or lock
// it where it is if it cannot move.
func (e *Engine) Tick() Outcome {
	if e.state == StateGameOver {
		return Outcome{}
	}
	out := Outcome{Ticked: true}
	if down := e.active.Translate(0, 1); down.IsValid(e.board) {
		e.active = down
		return out
	}
	return e.lock(out)
}

// lock settles the active piece, clears completed rows and deals the next
// piece. Locking with any cell above the board ends the game instead.
func (e *Engine) lock(out Outcome) Outcome {
	if e.active.AboveTop() {
		e.state = StateGameOver
		stats := e.Stats()
		e.final = &stats
		out.GameOver = &stats
		return out
	}

	e.board.Append(e.active.Cells[:]...)
	e.usedHold = false
	out.Locked = true

	// Clearing row y only moves rows above y, so a top-down sweep never
	// skips a row.
	top, bottom := e.active.rows()
	for y := top; y <= bottom; y++ {
		if e.board.IsRowFull(y) {
			e.board.ClearRow(y)
			e.lines++
			out.Cleared++
		}
	}

	e.active = e.spawn(e.bag.Next(), e.spawnRow())
	return out
}

// Apply executes a command. It returns false when the command was rejected
// or had nothing to do; the engine state is then unchanged.
func (e *Engine) Apply(cmd Command) bool {
	if e.state == StateGameOver {
		return false
	}
	switch cmd {
	case CmdMoveLeft:
		return e.tryTranslate(-1, 0)
	case CmdMoveRight:
		return e.tryTranslate(1, 0)
	case CmdSoftDrop:
		return e.tryTranslate(0, 1)
	case CmdHardDrop:
		e.hardDrop()
		return true
	case CmdRotate:
		return e.rotate()
	case CmdHold:
		return e.hold()
	default:
		return false
	}
}

func (e *Engine) tryTranslate(dx, dy int) bool {
	moved := e.active.Translate(dx, dy)
	if !moved.IsValid(e.board) {
		return false
	}
	e.active = moved
	return true
}

// hardDrop moves the piece to its landing row and forces the next frame
// to run a gravity step, which locks it.
func (e *Engine) hardDrop() {
	if d := e.active.MaxDrop(e.board); d > 0 {
		e.tryTranslate(0, d)
	}
	e.timer = e.cfg.TickInterval
}

func (e *Engine) rotate() bool {
	rotated := e.active.Rotate(e.cfg.Width)
	if e.cfg.StrictRotation && !rotated.IsValid(e.board) {
		return false
	}
	e.active = rotated
	return true
}

// hold swaps the active kind with the held one, or stores it and deals a
// new kind when nothing is held yet. Allowed once between locks.
func (e *Engine) hold() bool {
	if e.usedHold {
		return false
	}
	e.usedHold = true

	var next Kind
	if e.hasHeld {
		next = e.held
	} else {
		next = e.bag.Next()
	}
	e.held, e.hasHeld = e.active.Kind, true
	e.active = e.spawn(next, e.spawnRow())
	return true
}

// Stats returns the current lines and elapsed play time.
func (e *Engine) Stats() Stats {
	var elapsed time.Duration
	if e.cfg.FrameRate > 0 {
		elapsed = time.Duration(e.frames) * time.Second / time.Duration(e.cfg.FrameRate)
	}
	return Stats{Lines: e.lines, Frames: e.frames, Elapsed: elapsed}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Lines returns the number of rows cleared so far.
func (e *Engine) Lines() int {
	return e.lines
}

// Board returns the settled cells. Callers that modify it are setting up a
// position; the engine does not revalidate the active piece.
func (e *Engine) Board() *Board {
	return e.board
}

// Active returns the piece under player control.
func (e *Engine) Active() Piece {
	return e.active
}

// Ghost returns the active piece moved to where a hard drop would land it.
func (e *Engine) Ghost() Piece {
	return e.active.Translate(0, max(e.active.MaxDrop(e.board), 0))
}

// Preview returns the next n kinds the bag will deal.
func (e *Engine) Preview(n int) []Kind {
	return e.bag.Peek(n)
}

// Final returns the end-of-game stats, or nil while the game is running.
func (e *Engine) Final() *Stats {
	return e.final
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Package tetris provides the falling-block puzzle modes for the platform.
// The rules live in the core subpackage; this package maps platform input
// to engine commands and draws engine snapshots.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode int

const (
	ModeMarathon Mode = iota // Play until the stack reaches the top
	ModeSprint               // Clear the line goal as fast as possible
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves the configuration the next Reset will use, with the
// difficulty preset applied. The second value names the source.
func LoadConfig() (config.TetrisConfig, string, error) {
	cfg, source, err := config.LoadTetris(configPath)
	if err != nil {
		return cfg, source, err
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	return cfg, source, nil
}

// EngineConfig converts the YAML configuration to engine constants.
func EngineConfig(cfg config.TetrisConfig) core.Config {
	return core.Config{
		Width:          cfg.Board.Width,
		Height:         cfg.Board.Height,
		TickInterval:   cfg.Timing.TickInterval,
		FrameRate:      cfg.Timing.FrameRate,
		SpawnOffset:    cfg.Spawn.Offset,
		PreviewCount:   cfg.Preview.Count,
		StrictRotation: cfg.Rules.StrictRotation,
	}
}

// commandBindings maps platform actions to engine commands, in the order
// they are applied within one frame.
var commandBindings = []struct {
	action platformcore.Action
	cmd    core.Command
}{
	{platformcore.ActionHold, core.CmdHold},
	{platformcore.ActionRotate, core.CmdRotate},
	{platformcore.ActionMoveLeft, core.CmdMoveLeft},
	{platformcore.ActionMoveRight, core.CmdMoveRight},
	{platformcore.ActionSoftDrop, core.CmdSoftDrop},
	{platformcore.ActionHardDrop, core.CmdHardDrop},
}

// Game implements registry.Game on top of the engine.
type Game struct {
	mode   Mode
	cfg    config.TetrisConfig
	engine *core.Engine
	repeat *platformcore.KeyRepeat

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Status
	paused   bool
	won      bool
	gameOver bool
	summary  *platformcore.Summary
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewSprint creates a sprint game.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "tetris_sprint"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Tetris (Sprint)"
	}
	return "Tetris"
}

// Reset loads the configuration and starts a new engine.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	cfg, _, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.ResetWith(cfg, rc)
}

// ResetWith starts a new engine with an explicit configuration.
func (g *Game) ResetWith(cfg config.TetrisConfig, rc platformcore.RuntimeConfig) {
	g.cfg = cfg
	g.engine = core.NewEngine(EngineConfig(cfg), rc.Seed)
	g.repeat = platformcore.NewKeyRepeat(platformcore.RepeatPolicy{
		Delay:    cfg.Input.RepeatDelay,
		Interval: cfg.Input.RepeatInterval,
	}, platformcore.RepeatableActions...)
	g.paused = false
	g.won = false
	g.gameOver = false
	g.summary = nil
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
		g.repeat.Reset()
	}
	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	fired := g.repeat.Feed(in)
	for _, b := range commandBindings {
		if fired.Has(b.action) {
			g.engine.Apply(b.cmd)
		}
	}

	g.engine.Update()
	switch {
	case g.engine.Final() != nil:
		g.finish(*g.engine.Final(), false)
	case g.mode == ModeSprint && g.engine.Lines() >= g.cfg.Sprint.LineGoal:
		g.finish(g.engine.Stats(), true)
	default:
		return platformcore.StepResult{State: g.State()}
	}
	return platformcore.StepResult{State: g.State(), Finished: g.summary}
}

// finish records the end of the session.
func (g *Game) finish(stats core.Stats, won bool) {
	g.gameOver = true
	g.won = won
	g.summary = &platformcore.Summary{
		Lines:   stats.Lines,
		Elapsed: stats.Elapsed,
		Won:     won,
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Lines:    g.engine.Lines(),
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot for the current frame.
func (g *Game) Snapshot() core.Snapshot {
	return g.engine.Snapshot()
}

// goalText describes the remaining sprint goal.
func (g *Game) goalText() string {
	left := max(g.cfg.Sprint.LineGoal-g.engine.Lines(), 0)
	return fmt.Sprintf("Goal: %d", left)
}

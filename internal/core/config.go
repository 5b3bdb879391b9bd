package core

import (
	"fmt"
	"time"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Lines    int  // Lines cleared so far
	GameOver bool // Whether the game has ended (topped out or goal reached)
	Won      bool // Whether the game ended by reaching its goal
	Paused   bool // Whether the game is paused
}

// Summary holds the final statistics of a finished game.
type Summary struct {
	Lines   int
	Elapsed time.Duration
	Won     bool
}

// StepResult is returned by Game.Step() after each simulation tick.
// Finished is set only on the tick the game ends.
type StepResult struct {
	State    GameState
	Finished *Summary
}

// FormatElapsed renders a duration as m:ss.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

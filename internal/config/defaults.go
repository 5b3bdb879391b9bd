package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			FrameRate:    60,
			TickInterval: 60,
		},
		Spawn: SpawnConfig{
			Offset: 5,
		},
		Input: InputConfig{
			RepeatDelay:    8,
			RepeatInterval: 5,
		},
		Preview: PreviewConfig{
			Count: 3,
		},
		Rules: RulesConfig{
			StrictRotation: false,
		},
		Sprint: SprintConfig{
			LineGoal: 40,
		},
	}
}

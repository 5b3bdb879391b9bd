// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TetrisConfig contains all configuration for the tetris game.
// Values are read once when a game is built and never change mid-game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Input   InputConfig   `yaml:"input"`
	Preview PreviewConfig `yaml:"preview"`
	Rules   RulesConfig   `yaml:"rules"`
	Sprint  SprintConfig  `yaml:"sprint"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame rate and gravity speed.
type TimingConfig struct {
	FrameRate    int `yaml:"frame_rate"`    // Frames per second
	TickInterval int `yaml:"tick_interval"` // Frames between gravity steps
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Offset int `yaml:"offset"` // Rows above the board for every piece after the first
}

// InputConfig defines the held-key repeat policy, in frames.
type InputConfig struct {
	RepeatDelay    int `yaml:"repeat_delay"`
	RepeatInterval int `yaml:"repeat_interval"`
}

// PreviewConfig defines the upcoming-pieces panel.
type PreviewConfig struct {
	Count int `yaml:"count"`
}

// RulesConfig holds rule toggles.
type RulesConfig struct {
	StrictRotation bool `yaml:"strict_rotation"` // Reject rotations that end up invalid
}

// SprintConfig defines the sprint mode goal.
type SprintConfig struct {
	LineGoal int `yaml:"line_goal"`
}

// Validate reports every invalid field at once.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width must be at least 4, got %d", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height must be at least 4, got %d", c.Board.Height))
	}
	if c.Timing.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_rate must be positive, got %d", c.Timing.FrameRate))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %d", c.Timing.TickInterval))
	}
	if c.Spawn.Offset < 0 {
		errs = append(errs, fmt.Errorf("spawn.offset must not be negative, got %d", c.Spawn.Offset))
	}
	if c.Input.RepeatDelay < 0 || c.Input.RepeatInterval < 0 {
		errs = append(errs, fmt.Errorf("input repeat frames must not be negative, got %d/%d",
			c.Input.RepeatDelay, c.Input.RepeatInterval))
	}
	if c.Preview.Count < 0 || c.Preview.Count > 7 {
		errs = append(errs, fmt.Errorf("preview.count must be between 0 and 7, got %d", c.Preview.Count))
	}
	if c.Sprint.LineGoal <= 0 {
		errs = append(errs, fmt.Errorf("sprint.line_goal must be positive, got %d", c.Sprint.LineGoal))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}

// YAML encodes the configuration in the same layout the loader reads.
func (c TetrisConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

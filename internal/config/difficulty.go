package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a CLI value to a preset. The empty string means
// no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// TickIntervalForPreset returns the gravity interval in frames for a preset,
// or 0 when the preset keeps the configured value.
func TickIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 60
	case DifficultyNormal:
		return 40
	case DifficultyHard:
		return 20
	default:
		return 0
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// The fixed preset leaves the file's tick interval in place.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if interval := TickIntervalForPreset(preset); interval > 0 {
		cfg.Timing.TickInterval = interval
	}

	switch preset {
	case DifficultyEasy:
		cfg.Input.RepeatDelay = 10
	case DifficultyHard:
		cfg.Input.RepeatDelay = 6
		cfg.Input.RepeatInterval = 3
	}
}

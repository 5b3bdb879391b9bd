package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tetris).

Controls:
  Left/Right, A/D  - Move
  Down/S           - Soft drop
  Space            - Hard drop
  Up/W             - Rotate
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow gravity (one row per second)
  normal - Medium gravity
  hard   - Fast gravity, quicker key repeat
  fixed  - Keep timing.tick_interval from the config file

Examples:
  tetris play
  tetris play tetris_sprint
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

// addConfigFlags registers the flags that select the configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveConfig applies the config flags and loads the configuration the
// game will use.
func resolveConfig() (config.TetrisConfig, error) {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return config.TetrisConfig{}, err
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)

	cfg, source, err := tetris.LoadConfig()
	if err != nil {
		return cfg, err
	}
	logger.Debug("config resolved", "source", source, "difficulty", flagDifficulty)
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'tetris list' to see available modes)", gameID)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("terminal size unavailable, using 80x24", "err", termErr)
	}

	tickRate := cfg.Timing.FrameRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	if tickRate != cfg.Timing.FrameRate {
		logger.Warn("--fps differs from timing.frame_rate, elapsed time will drift",
			"fps", tickRate, "frame_rate", cfg.Timing.FrameRate)
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

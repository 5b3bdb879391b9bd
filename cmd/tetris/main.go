// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  list     - Show all available modes
  play     - Play a mode
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play tetris_sprint --difficulty hard
  tetris play --seed 42 --log-file /tmp/tetris.log
  tetris config --config ./my-tetris.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(flagLogFile, flagLogLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = timing.frame_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

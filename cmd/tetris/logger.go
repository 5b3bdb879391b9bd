package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setupLogger points the logger at a file. The terminal belongs to the
// game, so without a file logs are discarded.
func setupLogger(path, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if path == "" {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: lvl})
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	})
	return nil
}

func closeLogger() {
	if logFile != nil {
		logFile.Close() //nolint:errcheck // Best-effort close on exit
		logFile = nil
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagConfig, flagDifficulty, flagLogFile, flagLogLevel = "", "", "", "info"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsModes(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"tetris", "tetris_sprint"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigPrintsEffectiveYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"tick_interval: 20", "line_goal: 40", "width: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("sprint:\n  line_goal: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "line_goal: 10") {
		t.Errorf("custom file not applied:\n%s", out)
	}
}

func TestRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown difficulty", []string{"config", "--difficulty", "insane"}},
		{"unknown log level", []string{"list", "--log-level", "loud"}},
		{"unknown mode", []string{"play", "pacman"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}

func TestLogFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "tetris.log")

	if _, err := execute(t, "config", "--log-file", path, "--log-level", "debug"); err != nil {
		t.Fatalf("config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "config resolved") {
		t.Errorf("log file missing config resolution:\n%s", data)
	}
}

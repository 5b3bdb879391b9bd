package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// fakeGame records calls and ends after a fixed number of steps.
type fakeGame struct {
	resets   int
	resizes  int
	steps    int
	endAfter int
	last     core.InputFrame
	over     bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
}

func (g *fakeGame) Resize(int, int) { g.resizes++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if g.endAfter > 0 && g.steps >= g.endAfter {
		g.over = true
		return core.StepResult{
			State:    g.State(),
			Finished: &core.Summary{Lines: 7, Elapsed: 65 * time.Second},
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Lines: g.steps, GameOver: g.over}
}

func newTestModel(g *fakeGame, buf *bytes.Buffer) Model {
	logger := log.New(buf)
	return NewModel(g, core.RuntimeConfig{ScreenW: 120, ScreenH: 24, TickRate: 60, Seed: 7}, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsKeysToStep(t *testing.T) {
	g := &fakeGame{}
	var buf bytes.Buffer
	m := newTestModel(g, &buf)
	m.Init()

	m = update(t, m, runeKey('a'))
	m = update(t, m, TickMsg(time.Now()))

	if !g.last.Has(core.ActionMoveLeft) {
		t.Error("MoveLeft should reach the game on the next tick")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))
	if !g.last.Has(core.ActionHardDrop) {
		t.Error("HardDrop should reach the game on the next tick")
	}
	m = update(t, m, TickMsg(time.Now()))
	if g.last.Has(core.ActionHardDrop) {
		t.Error("one-shot input should be cleared after each tick")
	}
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if g.last.Has(core.ActionMoveLeft) {
		t.Error("MoveLeft should be released once its key stops repeating")
	}
	if !strings.Contains(buf.String(), "game started") {
		t.Errorf("expected start log, got %q", buf.String())
	}
}

func TestModelAppliesRepeatPolicyToAutorepeat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name     string
		keyEvery int // Ticks between key events, 0 for a single press
		ticks    int
		moves    int
	}{
		// Held for 10 frames: the press fires, then the first repeat on frame 10.
		{"autorepeat every second tick", 2, 10, 2},
		{"single tap", 0, 20, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := tetris.New()
			m := NewModel(g, core.RuntimeConfig{ScreenW: 120, ScreenH: 30, TickRate: 60, Seed: 7}, nil)
			m.Init()
			start := g.Snapshot().Active.Anchor.X

			for i := 0; i < tc.ticks; i++ {
				if i == 0 || (tc.keyEvery > 0 && i%tc.keyEvery == 0) {
					m = update(t, m, runeKey('a'))
				}
				m = update(t, m, TickMsg(time.Now()))
			}

			if got := start - g.Snapshot().Active.Anchor.X; got != tc.moves {
				t.Errorf("moved %d cells, expected %d", got, tc.moves)
			}
		})
	}
}

func TestModelLogsGameOverAndRestarts(t *testing.T) {
	g := &fakeGame{endAfter: 2}
	var buf bytes.Buffer
	m := newTestModel(g, &buf)
	m.Init()

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))
	if !m.gameState.GameOver {
		t.Fatal("fake game should be over")
	}
	out := buf.String()
	if !strings.Contains(out, "game over") || !strings.Contains(out, "lines=7") || !strings.Contains(out, "1:05") {
		t.Errorf("game over log missing details: %q", out)
	}

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(time.Now()))
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("restart should clear game over")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &bytes.Buffer{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resizes != 1 || g.resets != 1 {
		t.Errorf("resizes = %d, resets = %d, expected 1 and 1", g.resizes, g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should toggle full help")
	}
	if m.screen.Height() != 30-len(m.keys.FullHelp())-1 {
		t.Errorf("screen height = %d with full help", m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, &bytes.Buffer{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := newTestModel(&fakeGame{}, &bytes.Buffer{})

	view := m.View()
	if !strings.HasPrefix(view, "fake") {
		t.Errorf("view should start with the game screen, got %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "hard drop") {
		t.Error("view should include the help footer")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorCyan)
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	got := RenderScreen(s)
	if !strings.Contains(got, "ab") || !strings.Contains(got, "cd") || !strings.Contains(got, "xyz") {
		t.Errorf("RenderScreen lost text: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", got)
	}
}

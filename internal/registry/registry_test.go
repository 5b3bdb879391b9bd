package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", stub("stub_b", "Stub B"))
	Register("stub_a", stub("stub_a", "Stub A"))

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q, expected stub_b", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_a" && info.Title != "Stub A" {
			t.Errorf("title = %q, expected Stub A", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", stub("stub_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", stub("stub_dup", "Dup"))
}

package registry

import (
	"testing"

	"github.com/vovakirdan/ztapz/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", "second", func() Game { return &stubGame{id: "test_b"} })
	Register("test_a", "first", func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") || !Exists("test_b") {
		t.Fatal("registered games should exist")
	}

	info, ok := Lookup("test_a")
	if !ok || info.Title != "Stub test_a" || info.Description != "first" {
		t.Errorf("Lookup(test_a) = %+v, %v", info, ok)
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("created game ID = %q", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("does_not_exist") {
		t.Error("Exists should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "", func() Game { return &stubGame{id: "test_dup"} })
}

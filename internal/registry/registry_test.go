package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Description() string { return "stub mode" }
func (g *stubGame) Reset(core.RuntimeConfig) error { return nil }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false, want true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, want false")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create(stub_a): %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create(stub_a).ID() = %q, want stub_a", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	want := GameInfo{ID: "stub_a", Title: "Stub stub_a", Description: "stub mode"}
	found := false
	for _, info := range list {
		if info.ID == want.ID {
			found = true
			if info != want {
				t.Errorf("List() entry = %+v, want %+v", info, want)
			}
		}
	}
	if !found {
		t.Errorf("List() = %+v, missing %q", list, want.ID)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register with duplicate id should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

package registry

import (
	"testing"

	"github.com/vovakirdan/cinnarun/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Start() bool { g.state.Started = true; return true }
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	other, _ := Create("stub-a")
	if other == g {
		t.Error("Create() should return a new instance each time")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should be false for unknown ids")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-c", func() Game { return &stubGame{id: "stub-c"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-b" && info.Title != "Stub stub-b" {
			t.Errorf("title = %q, expected Stub stub-b", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

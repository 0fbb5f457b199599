package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var stubs []GameInfo
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub-") {
			stubs = append(stubs, info)
		}
	}
	if len(stubs) != 2 || stubs[0].ID != "stub-a" || stubs[1].ID != "stub-b" {
		t.Fatalf("List() = %v, expected stub-a then stub-b", stubs)
	}
	if stubs[0].Title != "Stub stub-a" {
		t.Errorf("Title = %q, expected %q", stubs[0].Title, "Stub stub-a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register should panic")
		}
	}()
	Register("dup", func() Game { return stubGame{id: "dup"} })
}

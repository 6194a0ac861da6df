package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/core"
)

type stubGame struct {
	id  string
	env Env
}

func (g *stubGame) ID() string                                { return g.id }
func (g *stubGame) Title() string                             { return "Stub " + g.id }
func (g *stubGame) Description() string                       { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)                  {}
func (g *stubGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                       {}
func (g *stubGame) State() core.GameStatus                    { return core.GameStatus{} }
func (g *stubGame) SetEnv(env Env)                            { g.env = env }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}
	info, ok := Info("zz-stub")
	if !ok || info.Title != "Stub zz-stub" || info.Description != "a stub" {
		t.Errorf("Info = %+v, %v", info, ok)
	}

	found := false
	for _, gi := range List() {
		if gi.ID == "zz-stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() misses registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestPackManagerLoad(t *testing.T) {
	rec := &audio.Recorder{}
	m := NewPackManager(Env{Audio: rec})
	m.create = func(id string) (Game, error) {
		if id != "stub" {
			return nil, errors.New("nope")
		}
		return &stubGame{id: id}, nil
	}

	var loaded []string
	m.OnPackLoaded(func(info GameInfo, _ Game) {
		loaded = append(loaded, info.ID)
	})

	g, err := m.LoadIntoPack("stub")
	if err != nil {
		t.Fatalf("LoadIntoPack: %v", err)
	}
	sg := g.(*stubGame)
	if sg.env.Audio != rec {
		t.Error("env audio was not injected")
	}
	if sg.env.Logger == nil {
		t.Error("env logger should be normalized to a discard logger")
	}
	if len(loaded) != 1 || loaded[0] != "stub" {
		t.Errorf("observers saw %v, want [stub]", loaded)
	}
	if info, cur := m.Current(); cur != g || info.ID != "stub" {
		t.Errorf("Current = %+v, %v", info, cur)
	}

	if _, err := m.LoadIntoPack("other"); err == nil {
		t.Error("unknown pack should fail")
	}
	if len(loaded) != 1 {
		t.Error("failed load must not notify")
	}
	if _, cur := m.Current(); cur != g {
		t.Error("failed load must keep the current pack")
	}
}

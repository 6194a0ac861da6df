package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	t0 := time.Unix(100, 0)
	h.Press(core.Player1, core.ActionUp, t0)

	tests := []struct {
		name string
		at   time.Duration
		want bool
	}{
		{"same instant", 0, true},
		{"inside window", 100 * time.Millisecond, true},
		{"window edge", HoldWindow, true},
		{"expired", 200 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := h.Frame(t0.Add(tt.at))
			if got := in.IsActionPressed("p1_move_up"); got != tt.want {
				t.Errorf("held = %v, expected %v", got, tt.want)
			}
		})
	}

	// Expired presses are forgotten even if time goes back
	if h.Frame(t0).IsActionPressed("p1_move_up") {
		t.Error("expired key should have been dropped")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(100, 0)
	h.Press(core.Player2, core.ActionDown, t0)
	h.Press(core.Player2, core.ActionDown, t0.Add(120*time.Millisecond))

	in := h.Frame(t0.Add(250 * time.Millisecond))
	if !in.IsActionPressed("p2_move_down") {
		t.Error("auto-repeat should keep the key held")
	}
	if in.IsActionPressed("p1_move_down") {
		t.Error("player one should not see player two's key")
	}

	h.Release()
	if h.Frame(t0.Add(250 * time.Millisecond)).IsActionPressed("p2_move_down") {
		t.Error("release should drop every key")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []Press
		cmd  KeyCommand
	}{
		{"p1 up", runes("w"), []Press{{core.Player1, core.ActionUp}}, KeyNone},
		{"p1 launch", runes(" "), []Press{{core.Player1, core.ActionLaunch}}, KeyNone},
		{"p2 up", tea.KeyMsg{Type: tea.KeyUp}, []Press{{core.Player2, core.ActionUp}}, KeyNone},
		{"p2 launch", tea.KeyMsg{Type: tea.KeyEnter}, []Press{{core.Player2, core.ActionLaunch}}, KeyNone},
		{"pause", runes("p"), []Press{{core.Player1, core.ActionPause}}, KeyNone},
		{"quit", runes("q"), nil, KeyQuit},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, nil, KeyBack},
		{"unbound", runes("x"), nil, KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cmd := km.MapKey(tt.msg)
			if cmd != tt.cmd {
				t.Errorf("command = %v, expected %v", cmd, tt.cmd)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("presses = %v, expected %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("press %d = %v, expected %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKeyMapperSolo(t *testing.T) {
	km := NewKeyMapper()
	km.Solo = true

	got, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyLeft})
	if len(got) != 2 {
		t.Fatalf("solo presses = %v, expected both seats", got)
	}
	if got[0].Player != core.Player2 || got[1].Player != core.Player1 {
		t.Errorf("solo presses = %v", got)
	}
}

// stubGame reports whatever status the test sets.
type stubGame struct {
	status core.GameStatus
	steps  int
	last   core.MultiInputFrame
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Description() string      { return "A stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameStatus   { return g.status }
func (g *stubGame) HumanSeats() int          { return 1 }
func (g *stubGame) Step(in core.MultiInputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.status}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewModel(game, Options{Store: store, Player: "ada", Runtime: core.DefaultConfig()})

	tick := func() {
		next, _ := m.Update(TickMsg{At: time.Now()})
		m = next.(Model)
	}

	tick()
	game.status = core.GameStatus{Score: 1500, GameOver: true}
	tick()
	tick()

	runs, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Score != 1500 || runs[0].Player != "ada" {
		t.Fatalf("runs = %+v, expected one run by ada", runs)
	}

	table, err := store.LoadHighScores("stub")
	if err != nil {
		t.Fatal(err)
	}
	if best := table.Best(); best.Name != "ada" || best.Score != 1500 {
		t.Errorf("best = %+v, expected ada 1500", best)
	}

	// A new round records again
	game.status = core.GameStatus{Score: 3}
	tick()
	game.status = core.GameStatus{Score: 3, Opponent: 7, GameOver: true}
	tick()
	runs, _ = store.TopScores("stub", 10)
	if len(runs) != 2 || runs[1].Player != core.Player2.String() {
		t.Errorf("runs = %+v, expected a second run by player two", runs)
	}
}

func TestModelFeedsHeldKeys(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, Options{Runtime: core.DefaultConfig()})
	now := time.Unix(50, 0)
	m.clock = func() time.Time { return now }

	next, _ := m.Update(runes("d"))
	m = next.(Model)
	next, _ = m.Update(TickMsg{At: now.Add(50 * time.Millisecond)})
	m = next.(Model)

	if !game.last.IsActionPressed("p1_move_right") {
		t.Error("held key should reach the game")
	}
	// Solo games see their keys on both seats
	if !game.last.IsActionPressed("p2_move_right") {
		t.Error("single-seat game should get the key on both seats")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, Options{Runtime: core.DefaultConfig()})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).BackToMenu() {
		t.Error("back should be ignored while playing")
	}

	game.status.Paused = true
	next, _ = m.Update(TickMsg{At: time.Now()})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.Color("#00ff00"))

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q: %q", want, out)
		}
	}
}

func TestSessionSelectsPack(t *testing.T) {
	registry.Register("stub", func() registry.Game { return &stubGame{} })

	pm := registry.NewPackManager(registry.Env{})
	var loaded string
	pm.OnPackLoaded(func(info registry.GameInfo, _ registry.Game) { loaded = info.ID })

	m := NewSessionModel(pm, Options{Runtime: core.DefaultConfig()})
	for i, p := range pm.Packs() {
		if p.ID == "stub" {
			m.menu.cursor = i
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.mode != modeGame || loaded != "stub" {
		t.Fatalf("mode = %v loaded = %q, expected the stub game", m.mode, loaded)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("session should render the game")
	}

	next, _ = m.Update(runes("q"))
	if !next.(SessionModel).quitting {
		t.Error("q should quit the session")
	}
}

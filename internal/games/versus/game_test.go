package versus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/control"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/monitor"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
)

func runtimeCfg(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// useConfig points the loader at a temporary YAML file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if yaml == "" {
		SetConfigPath("")
		return
	}
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func press(actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	in.SetPlayer(core.Player1, f)
	return in
}

func run(g *Game, ticks int) {
	empty := core.NewMultiInputFrame()
	for range ticks {
		g.Step(empty)
	}
}

func aiVsAI() *GameStart {
	return &GameStart{
		Players:  [2]control.PlayerType{control.TypeAI, control.TypeAI},
		MaxScore: 5,
		GameTime: 60,
	}
}

func TestResetStartsRound(t *testing.T) {
	useConfig(t, "")
	g := NewPong()
	g.Reset(runtimeCfg(1))

	if !g.Monitor().Is(monitor.InGame) {
		t.Fatalf("state = %v, expected InGame", g.Monitor().Current())
	}
	if g.Ball().Enabled() {
		t.Error("ball should wait for the serve delay")
	}
	if g.TimeLeft() != 300 {
		t.Errorf("time left = %d, expected 300", g.TimeLeft())
	}

	run(g, 61)
	if !g.Ball().Enabled() {
		t.Error("ball should be served after the serve delay")
	}
	if g.Ball().Velocity.IsZero() {
		t.Error("served ball should move")
	}
}

func TestLaunchKeyServesEarly(t *testing.T) {
	useConfig(t, "")
	g := NewTennis()
	g.Reset(runtimeCfg(2))

	g.Step(press(core.ActionLaunch))
	if !g.Ball().Enabled() {
		t.Error("launch key should serve immediately")
	}
}

func TestGameDeterminism(t *testing.T) {
	useConfig(t, "")

	play := func() Snapshot {
		g := NewPong()
		g.Configure(aiVsAI())
		g.Reset(runtimeCfg(12345))
		run(g, 900)
		return g.Snapshot()
	}

	snap1 := play()
	snap2 := play()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}
}

func TestPauseFreezesRound(t *testing.T) {
	useConfig(t, "")
	g := NewPong()
	g.Reset(runtimeCfg(3))
	run(g, 90)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause key should pause")
	}

	before := g.Snapshot()
	// Holding the key must not toggle again
	for range 120 {
		g.Step(press(core.ActionPause))
	}
	after := g.Snapshot()
	if !g.State().Paused {
		t.Fatal("held pause key toggled the state")
	}
	if before.Hash() != after.Hash() {
		t.Error("paused game should not change")
	}

	run(g, 1)
	g.Step(press(core.ActionPause))
	if !g.Monitor().Is(monitor.InGame) {
		t.Errorf("state = %v, expected InGame after resume", g.Monitor().Current())
	}
}

func TestScoreLimitEndsRound(t *testing.T) {
	useConfig(t, "gameplay:\n  max_score: 2\n  banner_seconds: 6\n  serve_delay: 100\n")
	rec := &audio.Recorder{}
	g := NewPong()
	g.SetEnv(registry.Env{Audio: rec})
	g.Reset(runtimeCfg(4))

	g.Seat(1).Score.AddPoint()
	g.Seat(1).Score.AddPoint()
	run(g, 1)

	if !g.State().GameOver {
		t.Fatal("reaching max score should end the round")
	}
	if g.Banner() != "Player 2 Wins!" {
		t.Errorf("banner = %q", g.Banner())
	}
	if rec.Count(audio.CueGameOver) != 1 {
		t.Errorf("game over cue played %d times", rec.Count(audio.CueGameOver))
	}

	// Banner stays for six seconds, then a new round starts
	run(g, 5*60)
	if !g.State().GameOver {
		t.Fatal("banner should still be up")
	}
	run(g, 61)
	if !g.Monitor().Is(monitor.InGame) {
		t.Fatalf("state = %v, expected a new round", g.Monitor().Current())
	}
	if g.State().Opponent != 0 || g.Rounds() != 2 {
		t.Errorf("new round: opponent %d rounds %d", g.State().Opponent, g.Rounds())
	}
}

func TestRoundsKeepObserversBounded(t *testing.T) {
	useConfig(t, "gameplay:\n  max_score: 1\n  banner_seconds: 6\n  serve_delay: 100\n")
	g := NewPong()
	g.Reset(runtimeCfg(6))
	observers := g.Ball().OutOfBoundsObservers()

	for i := 0; i < 20; i++ {
		g.Seat(i % 2).Score.AddPoint()
		run(g, 1)
		if !g.State().GameOver {
			t.Fatalf("round %d: expected game over", i+1)
		}
		run(g, 6*60+1)
	}

	if g.Rounds() != 21 {
		t.Fatalf("rounds = %d, expected 21", g.Rounds())
	}
	if n := g.Ball().OutOfBoundsObservers(); n != observers {
		t.Errorf("observers = %d after 20 rounds, expected %d", n, observers)
	}
}

func TestRestartCancelsPendingRound(t *testing.T) {
	useConfig(t, "gameplay:\n  max_score: 1\n  banner_seconds: 6\n  serve_delay: 100\n")
	g := NewPong()
	g.Reset(runtimeCfg(5))

	g.Seat(0).Score.AddPoint()
	run(g, 1)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(press(core.ActionRestart))
	if g.Rounds() != 2 {
		t.Fatalf("rounds = %d after restart, expected 2", g.Rounds())
	}

	run(g, 7*60)
	if g.Rounds() != 2 {
		t.Errorf("stale continuation started round %d", g.Rounds())
	}
}

func TestTimerEndsInTie(t *testing.T) {
	useConfig(t, "gameplay:\n  game_time: 2\n  max_score: 11\n  banner_seconds: 6\n  serve_delay: 100\n")
	g := NewTennis()
	g.Reset(runtimeCfg(6))

	run(g, 2*60+1)
	if !g.State().GameOver {
		t.Fatalf("state = %v, expected GameOver when time runs out", g.Monitor().Current())
	}
	if g.Winner() != WinnerTie || g.Banner() != "It's a Tie!" {
		t.Errorf("winner = %d banner %q", g.Winner(), g.Banner())
	}
	if g.TimeLeft() != 0 {
		t.Errorf("time left = %d", g.TimeLeft())
	}
}

func TestInvalidPlayerTypeRefusesStart(t *testing.T) {
	useConfig(t, "")
	g := NewPong()
	g.Configure(&GameStart{Players: [2]control.PlayerType{control.TypePlayer1, control.PlayerType(42)}})
	g.Reset(runtimeCfg(7))

	if !errors.Is(g.Err(), control.ErrInvalidPlayerType) {
		t.Fatalf("Err() = %v, expected ErrInvalidPlayerType", g.Err())
	}
	if !g.Monitor().Is(monitor.MainMenu) {
		t.Errorf("state = %v, expected MainMenu", g.Monitor().Current())
	}

	run(g, 120)
	if g.Ball().Enabled() {
		t.Error("refused game must not serve")
	}
}

func TestInvalidPlayerTypeInConfig(t *testing.T) {
	useConfig(t, "players:\n  player2: robot\n")
	g := NewPong()
	g.Reset(runtimeCfg(8))

	if !errors.Is(g.Err(), control.ErrInvalidPlayerType) {
		t.Fatalf("Err() = %v, expected ErrInvalidPlayerType", g.Err())
	}
}

func TestStartAppliesOptions(t *testing.T) {
	useConfig(t, "")
	g := NewPong()
	g.Reset(runtimeCfg(9))

	err := g.Start(GameStart{
		Players:      [2]control.PlayerType{control.TypePlayer1, control.TypePlayer2},
		BallSize:     16,
		PaddleSizes:  [2]int{100, 30},
		PaddleSpeeds: [2]int{3000, 50},
		PaddleColors: [2]core.Color{core.ColorRed, core.ColorBlue},
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if g.Ball().Size() != 16 {
		t.Errorf("ball size = %d", g.Ball().Size())
	}
	p1, p2 := g.Seat(0).Paddle, g.Seat(1).Paddle
	if p1.Size() != 100 || p2.Size() != 30 {
		t.Errorf("paddle sizes = %d, %d", p1.Size(), p2.Size())
	}
	if p1.Speed() != 3000 {
		t.Errorf("p1 speed = %d, expected 3000", p1.Speed())
	}
	if p2.Speed() != 2000 {
		t.Errorf("p2 speed = %d, expected rejected change to keep 2000", p2.Speed())
	}
	if p1.Color() != core.ColorRed || p2.Color() != core.ColorBlue {
		t.Errorf("paddle colors = %q, %q", p1.Color(), p2.Color())
	}
	if g.Seat(1).Type != control.TypePlayer2 {
		t.Errorf("seat 2 type = %v", g.Seat(1).Type)
	}
}

func TestPlayerMovesPaddle(t *testing.T) {
	useConfig(t, "")
	g := NewPong()
	g.Reset(runtimeCfg(10))

	y := g.Seat(0).Paddle.Position.Y
	for range 10 {
		g.Step(press(core.ActionUp))
	}
	if g.Seat(0).Paddle.Position.Y >= y {
		t.Errorf("paddle did not move up: %v -> %v", y, g.Seat(0).Paddle.Position.Y)
	}
}

func TestRender(t *testing.T) {
	useConfig(t, "")
	g := NewPong()
	g.Reset(runtimeCfg(11))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "P1 00000000") || !strings.Contains(out, "00000000 P2") {
		t.Errorf("HUD missing scores:\n%s", out)
	}
	if !strings.Contains(out, string(PaddleChar)) {
		t.Error("paddles not drawn")
	}
	if !strings.Contains(out, "Get ready") {
		t.Error("serve hint not drawn")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"pong", "tennis"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, expected %q", g.ID(), id)
		}
	}
}

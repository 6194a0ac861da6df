// Package versus implements the two-seat paddle games, Pong and Tennis.
// Each seat is driven by a human or the AI controller; a point is scored
// when the ball leaves the court behind the other seat.
package versus

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/control"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/games/arena"
	"github.com/vovakirdan/paddle-arcade/internal/monitor"
	"github.com/vovakirdan/paddle-arcade/internal/paddle"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/sched"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┆'
)

// Layout in world units.
const (
	PaddleInset = 48 // Distance of a paddle center from its goal line
	hudRows     = 2
)

// Winner of a finished round.
const (
	WinnerNone = iota
	WinnerPlayer1
	WinnerPlayer2
	WinnerTie
)

// Mode selects the rule set.
type Mode int

const (
	ModePong Mode = iota
	ModeTennis
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// Game is a Pong or Tennis round orchestrator.
type Game struct {
	mode    Mode
	cfg     config.VersusConfig
	start   GameStart
	env     registry.Env
	runtime core.RuntimeConfig
	rng     *rand.Rand

	world   *physics.World
	court   core.RectF
	ball    *ball.Ball
	seats   [2]*control.Seat
	monitor *monitor.Monitor
	sched   *sched.Scheduler

	edges   arena.Edges
	visual  arena.VisualClock
	rainbow arena.Rainbow

	tick      uint64
	timeLeft  int
	clock     *sched.Timer
	serve     *sched.Timer
	winner    int
	rounds    int
	bannerAt  float64
	startErr  error
	overrides *GameStart
}

// NewPong creates a Pong game.
func NewPong() *Game {
	return &Game{mode: ModePong, env: registry.Env{}.Normalize()}
}

// NewTennis creates a Tennis game.
func NewTennis() *Game {
	return &Game{mode: ModeTennis, env: registry.Env{}.Normalize()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeTennis {
		return "tennis"
	}
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeTennis {
		return "Tennis"
	}
	return "Pong"
}

// Description returns the pack blurb.
func (g *Game) Description() string {
	if g.mode == ModeTennis {
		return "Fast two-player rallies with a livelier ball"
	}
	return "Classic table tennis against a friend or the CPU"
}

// SetEnv implements registry.EnvSetter.
func (g *Game) SetEnv(env registry.Env) {
	g.env = env.Normalize()
	if g.ball != nil {
		g.ball.SetAudio(g.env.Audio)
	}
}

// Configure replaces the round options used by the next Reset. Passing nil
// goes back to the config file values.
func (g *Game) Configure(opts *GameStart) {
	g.overrides = opts
}

func (g *Game) variant() ball.Variant {
	if g.mode == ModeTennis {
		return ball.VariantTennis
	}
	return ball.VariantPong
}

func (g *Game) loadConfig() config.VersusConfig {
	load := config.LoadPong
	fallback := config.DefaultPongConfig
	if g.mode == ModeTennis {
		load = config.LoadTennis
		fallback = config.DefaultTennisConfig
	}

	cfg, err := load(configPath)
	if err != nil {
		g.env.Logger.Warn("config rejected, using defaults", "game", g.ID(), "err", err)
		cfg = fallback()
	}
	if difficultyPreset != "" {
		config.ApplyVersusPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset builds the court and starts the first round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.cfg = g.loadConfig()
	g.tick = 0
	g.rounds = 0
	g.edges.Reset()

	g.monitor = monitor.New()
	g.monitor.OnChange(func(s monitor.State) {
		g.env.Logger.Debug("state changed", "game", g.ID(), "state", s)
	})
	g.monitor.ChangeState(monitor.Loading)
	g.sched = sched.New()

	g.court = core.RectF{W: g.cfg.World.Width, H: g.cfg.World.Height}
	g.world = physics.NewWorld()
	arena.AddWalls(g.world, g.court, arena.WallTop|arena.WallBottom)

	center := g.court.Center()
	g.ball = ball.New(arena.BallParams(g.variant(), g.cfg.Ball), center, g.world, g.court, g.rng)
	g.ball.SetAudio(g.env.Audio)
	arena.ApplyBall(g.ball, g.cfg.Ball)
	g.ball.OnOutOfBounds(g.pointScored)

	left := paddle.New(paddle.Vertical, core.V(PaddleInset, center.Y), g.world)
	right := paddle.New(paddle.Vertical, core.V(g.court.W-PaddleInset, center.Y), g.world)
	for i, pc := range []config.PaddleConfig{g.cfg.Paddle1, g.cfg.Paddle2} {
		p := []*paddle.Paddle{left, right}[i]
		if !arena.ApplyPaddle(p, pc) {
			g.env.Logger.Warn("paddle speed rejected", "seat", i+1, "speed", pc.Speed)
		}
	}
	g.seats[0] = control.NewSeat(core.Player1, ball.SideLeft, left)
	g.seats[1] = control.NewSeat(core.Player2, ball.SideRight, right)

	opts, err := StartFromConfig(g.cfg)
	if g.overrides != nil {
		opts, err = *g.overrides, nil
	}
	if err != nil {
		g.refuse(err)
		return
	}
	if err := g.Start(opts); err != nil {
		g.refuse(err)
	}
}

func (g *Game) refuse(err error) {
	g.startErr = err
	g.env.Logger.Error("game refused to start", "game", g.ID(), "err", err)
	g.monitor.ChangeState(monitor.MainMenu)
}

// Start applies opts and begins a new round. It cancels any pending
// continuation from the previous round. On an invalid player type nothing
// changes and the error is returned.
func (g *Game) Start(opts GameStart) error {
	var ctrls [2]control.Controller
	for i, seat := range g.seats {
		c, err := control.New(opts.Players[i], seat.Paddle, g.ball, g.rng)
		if err != nil {
			return fmt.Errorf("versus: seat %d: %w", i+1, err)
		}
		ctrls[i] = c
	}

	g.sched.NextGeneration()
	g.start = opts
	g.startErr = nil
	g.winner = WinnerNone
	g.rounds++

	if opts.BallSize > 0 {
		g.ball.AdjustSize(opts.BallSize)
	}
	if opts.BallColor != core.ColorDefault {
		g.ball.AdjustColor(opts.BallColor)
	}
	for i, seat := range g.seats {
		if opts.PaddleSizes[i] > 0 {
			seat.Paddle.Resize(opts.PaddleSizes[i])
		}
		if opts.PaddleSpeeds[i] > 0 && !seat.Paddle.ChangeSpeed(opts.PaddleSpeeds[i]) {
			g.env.Logger.Warn("paddle speed rejected", "seat", i+1, "speed", opts.PaddleSpeeds[i])
		}
		if opts.PaddleColors[i] != core.ColorDefault {
			seat.Paddle.AdjustColor(opts.PaddleColors[i])
		}
		seat.Attach(opts.Players[i], ctrls[i], g.ball)
		seat.Score.Reset()
		seat.Paddle.Reset()
	}

	g.ball.Reset()
	g.ball.SetEnabled(false)

	g.timeLeft = opts.GameTime
	if opts.GameTime > 0 {
		g.clock = g.sched.Every(1, g.countdown)
	}
	g.serve = g.sched.After(g.cfg.Gameplay.ServeDelay, g.launch)

	g.monitor.ChangeState(monitor.InGame)
	g.env.Audio.PlayMusic(audio.TrackTheme)
	return nil
}

// launch serves the ball toward a random side.
func (g *Game) launch() {
	if g.ball.Enabled() {
		return
	}
	g.serve.Cancel()
	g.ball.ServeRandom()
	g.ball.SetEnabled(true)
}

func (g *Game) countdown() {
	if !g.monitor.Is(monitor.InGame) {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.endRound()
	}
}

func (g *Game) pointScored(edge physics.Edge, winner ball.Side) {
	g.env.Audio.PlayCue(audio.CueScore, audio.Channel2)
	g.env.Logger.Debug("point", "game", g.ID(), "edge", edge, "winner", winner)
}

// checkScoreLimit ends the round once a seat reaches the max score.
func (g *Game) checkScoreLimit() {
	if g.start.MaxScore <= 0 {
		return
	}
	for _, seat := range g.seats {
		if seat.Score.Current() >= g.start.MaxScore {
			g.endRound()
			return
		}
	}
}

// endRound shows the winner banner and schedules the next round.
func (g *Game) endRound() {
	if !g.monitor.Is(monitor.InGame) {
		return
	}
	s1, s2 := g.seats[0].Score.Current(), g.seats[1].Score.Current()
	switch {
	case s1 > s2:
		g.winner = WinnerPlayer1
	case s2 > s1:
		g.winner = WinnerPlayer2
	default:
		g.winner = WinnerTie
	}

	g.clock.Cancel()
	g.serve.Cancel()
	g.ball.Reset()
	g.ball.SetEnabled(false)
	g.rainbow.Reset()
	g.monitor.ChangeState(monitor.GameOver)
	g.env.Audio.PlayCue(audio.CueGameOver, audio.Channel1)
	g.env.Logger.Info("round over", "game", g.ID(), "score", fmt.Sprintf("%d-%d", s1, s2))

	gen := g.sched.Generation()
	g.bannerAt = g.sched.Now()
	g.sched.After(g.cfg.Gameplay.BannerSeconds, func() {
		if g.sched.Generation() != gen {
			return
		}
		if err := g.Start(g.start); err != nil {
			g.refuse(err)
		}
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.monitor == nil {
		return core.StepResult{State: g.State()}
	}

	restart := g.edges.Pressed(in, "restart")
	pause := g.edges.Pressed(in, "pause_game")
	launch := g.edges.Pressed(in, "launch")

	if g.startErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Restart cancels a pending banner continuation
	if restart {
		if err := g.Start(g.start); err != nil {
			g.refuse(err)
		}
		return core.StepResult{State: g.State()}
	}

	if pause {
		g.monitor.TogglePause()
	}
	if g.monitor.Is(monitor.Paused) {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DeltaTime()
	g.tick++

	if g.monitor.Is(monitor.InGame) {
		if launch {
			g.launch()
		}
		for _, seat := range g.seats {
			seat.Update(in)
			seat.Paddle.Step(dt)
		}
		g.ball.Step(dt)
		g.checkScoreLimit()
	}

	g.sched.Advance(dt)
	g.visual.Advance(dt, g.visualTick)

	return core.StepResult{State: g.State()}
}

func (g *Game) visualTick(step float64) {
	if g.monitor.Is(monitor.GameOver) {
		g.rainbow.Tick(step)
	}
}

// Winner returns the result of the last finished round.
func (g *Game) Winner() int { return g.winner }

// Monitor exposes the state machine.
func (g *Game) Monitor() *monitor.Monitor { return g.monitor }

// Seat returns seat 0 (left) or 1 (right).
func (g *Game) Seat(i int) *control.Seat { return g.seats[i] }

// HumanSeats implements registry.SeatCounter.
func (g *Game) HumanSeats() int {
	n := 0
	for _, seat := range g.seats {
		if seat != nil && seat.Type != control.TypeAI {
			n++
		}
	}
	return n
}

// Ball returns the ball.
func (g *Game) Ball() *ball.Ball { return g.ball }

// TimeLeft returns the countdown in seconds.
func (g *Game) TimeLeft() int { return g.timeLeft }

// Rounds returns how many rounds have started since Reset.
func (g *Game) Rounds() int { return g.rounds }

// Err returns the reason the game refused to start, if any.
func (g *Game) Err() error { return g.startErr }

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	if g.monitor == nil {
		return core.GameStatus{}
	}
	return core.GameStatus{
		Score:    g.seats[0].Score.Current(),
		Opponent: g.seats[1].Score.Current(),
		GameOver: g.monitor.Is(monitor.GameOver),
		Paused:   g.monitor.Is(monitor.Paused),
	}
}

// Register the games with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return NewPong()
	})
	registry.Register("tennis", func() registry.Game {
		return NewTennis()
	})
}

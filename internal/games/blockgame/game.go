// Package blockgame implements the Block Game: a breakout-style game where
// the ball breaks blocks built from text level descriptors.
package blockgame

import (
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/blocks"
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
	PaddleChar = '▀'
	BallChar   = '●'
	BlockChar  = '█'
)

// Layout in world units.
const (
	GridTop       = 32  // Distance of the first block row from the ceiling
	PaddleMargin  = 24  // Distance of the paddle center from the bottom edge
	ClearedPause  = 1.0 // Seconds between a cleared level and the next one
	maxEmptyTries = 8   // Random layouts regenerated when they come out empty
	hudRows       = 2
)

// Outcome of a finished game.
const (
	OutcomeNone = iota
	OutcomeNoLives
	OutcomeTimeUp
	OutcomeVictory
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

// Game implements the Block Game logic.
type Game struct {
	cfg     config.BlockConfig
	env     registry.Env
	runtime core.RuntimeConfig
	rng     *rand.Rand

	world      *physics.World
	court      core.RectF
	ball       *ball.Ball
	seat       *control.Seat
	grid       *blocks.Grid
	monitor    *monitor.Monitor
	sched      *sched.Scheduler
	difficulty *config.DifficultyManager

	edges   arena.Edges
	visual  arena.VisualClock
	rainbow arena.Rainbow

	tick     uint64
	lives    int
	level    int // Index into the level list
	cleared  int // Levels cleared this game
	timeLeft int
	outcome  int
	between  bool // Waiting for the next level
	serve    *sched.Timer
	startErr error
}

// New creates a new Block Game instance.
func New() *Game {
	return &Game{env: registry.Env{}.Normalize()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blockgame"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Game"
}

// Description returns the pack blurb.
func (g *Game) Description() string {
	return "Break every block with the ball before your lives run out"
}

// SetEnv implements registry.EnvSetter.
func (g *Game) SetEnv(env registry.Env) {
	g.env = env.Normalize()
	if g.ball != nil {
		g.ball.SetAudio(g.env.Audio)
	}
}

func (g *Game) loadConfig() config.BlockConfig {
	cfg, err := config.LoadBlock(configPath)
	if err != nil {
		g.env.Logger.Warn("config rejected, using defaults", "game", g.ID(), "err", err)
		cfg = config.DefaultBlockConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.edges.Reset()

	g.monitor = monitor.New()
	g.monitor.OnChange(func(s monitor.State) {
		g.env.Logger.Debug("state changed", "game", g.ID(), "state", s)
	})
	g.monitor.ChangeState(monitor.Loading)
	g.sched = sched.New()

	g.court = core.RectF{W: g.cfg.World.Width, H: g.cfg.World.Height}
	g.world = physics.NewWorld()
	arena.AddWalls(g.world, g.court, arena.WallTop|arena.WallLeft|arena.WallRight)

	p := paddle.New(paddle.Horizontal, core.V(g.court.W/2, g.court.H-PaddleMargin), g.world)
	if !arena.ApplyPaddle(p, g.cfg.Paddle) {
		g.env.Logger.Warn("paddle speed rejected", "speed", g.cfg.Paddle.Speed)
	}

	g.ball = ball.New(arena.BallParams(ball.VariantBlock, g.cfg.Ball), g.ballSpawn(p), g.world, g.court, g.rng)
	g.ball.SetAudio(g.env.Audio)
	arena.ApplyBall(g.ball, g.cfg.Ball)
	g.ball.OnBlockHit(g.blockHit)
	g.ball.OnOutOfBounds(g.ballLost)

	g.grid = blocks.NewGrid(g.world, core.V(blocks.SpacingX/2, GridTop), g.rng)
	if g.cfg.Levels.Width > 0 {
		g.grid.Width = g.cfg.Levels.Width
	}
	g.grid.OnCleared(g.levelCleared)

	g.seat = control.NewSeat(core.Player1, ball.SideNone, p)
	if err := g.Start(); err != nil {
		g.startErr = err
		g.env.Logger.Error("game refused to start", "game", g.ID(), "err", err)
		g.monitor.ChangeState(monitor.MainMenu)
	}
}

func (g *Game) ballSpawn(p *paddle.Paddle) core.Vec2 {
	return core.V(p.Position.X, p.Position.Y-p.Thickness()/2-ball.MaxSize)
}

// Start begins a new game from the first level.
func (g *Game) Start() error {
	t, err := control.ParsePlayerType(g.cfg.Players.Player1)
	if err != nil {
		return err
	}
	if err := g.seat.Configure(t, g.ball, g.rng); err != nil {
		return err
	}

	g.sched.NextGeneration()
	g.startErr = nil
	g.seat.Score.Reset()
	g.seat.Paddle.Reset()
	g.lives = g.cfg.Gameplay.Lives
	if g.lives <= 0 {
		g.lives = 1
	}
	g.level = 0
	g.cleared = 0
	g.outcome = OutcomeNone
	g.between = false

	g.timeLeft = g.cfg.Gameplay.GameTime
	if g.timeLeft > 0 {
		g.sched.Every(1, g.countdown)
	}

	g.loadLevel()
	g.monitor.ChangeState(monitor.InGame)
	g.env.Audio.PlayMusic(audio.TrackTheme)
	return nil
}

// descriptor returns the layout for the current level index and whether
// one exists. Running past the list yields a random layout when allowed.
func (g *Game) descriptor() (string, bool) {
	list := g.cfg.Levels.List
	if g.level < len(list) {
		return list[g.level], true
	}
	if g.cfg.Levels.RandomAfterLast || len(list) == 0 {
		return "", true
	}
	return "", false
}

// loadLevel generates the current level and parks the ball.
func (g *Game) loadLevel() {
	desc, ok := g.descriptor()
	if !ok {
		g.finish(OutcomeVictory)
		return
	}

	g.grid.Generate(desc)
	for tries := 0; g.grid.Live() == 0 && desc == "" && tries < maxEmptyTries; tries++ {
		g.grid.Generate(desc)
	}
	g.env.Logger.Debug("level loaded", "level", g.level+1, "blocks", g.grid.Live())

	g.parkBall()
	if g.grid.Live() == 0 {
		// Nothing to break; move on after the usual pause
		g.levelCleared()
	}
}

// parkBall resets the ball and schedules the automatic launch.
func (g *Game) parkBall() {
	g.serve.Cancel()
	g.ball.Reset()
	g.ball.SetEnabled(false)
	g.serve = g.sched.After(g.cfg.Gameplay.ServeDelay, g.launch)
}

// launch sends the ball up with a random lateral component.
func (g *Game) launch() {
	if g.ball.Enabled() || g.between || !g.monitor.Is(monitor.InGame) {
		return
	}
	g.serve.Cancel()
	speed := g.difficulty.Speed(g.ball.Params().ServeSpeed, g.seat.Score.Current(), g.cleared)
	g.ball.Launch(core.V(g.ball.LaunchJitter(), -speed))
}

func (g *Game) blockHit(c physics.Collider) {
	b, ok := c.(*blocks.Block)
	if !ok {
		return
	}
	g.seat.Score.AddPoint()
	if g.grid.Hit(b) {
		g.env.Audio.PlayCue(audio.CueBlockDestroy, audio.Channel2)
		return
	}
	g.env.Audio.PlayCue(audio.CueBlockHit, audio.Channel2)
}

func (g *Game) ballLost(edge physics.Edge, _ ball.Side) {
	if !g.monitor.Is(monitor.InGame) {
		return
	}
	g.env.Audio.PlayCue(audio.CueOutOfBounds, audio.Channel1)
	g.lives--
	g.env.Logger.Debug("ball lost", "edge", edge, "lives", g.lives)
	if g.lives <= 0 {
		g.lives = 0
		g.finish(OutcomeNoLives)
		return
	}
	g.parkBall()
}

func (g *Game) levelCleared() {
	g.cleared++
	g.between = true
	g.serve.Cancel()
	g.ball.Reset()
	g.ball.SetEnabled(false)
	g.env.Logger.Info("level cleared", "level", g.level+1, "score", g.seat.Score.Current())

	gen := g.sched.Generation()
	g.sched.After(ClearedPause, func() {
		if g.sched.Generation() != gen || !g.monitor.Is(monitor.InGame) {
			return
		}
		g.between = false
		g.level++
		g.loadLevel()
	})
}

func (g *Game) countdown() {
	if !g.monitor.Is(monitor.InGame) {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.finish(OutcomeTimeUp)
	}
}

// finish ends the game. Restart starts a new one.
func (g *Game) finish(outcome int) {
	if g.monitor.Is(monitor.GameOver) {
		return
	}
	g.outcome = outcome
	g.serve.Cancel()
	g.ball.Reset()
	g.ball.SetEnabled(false)
	g.rainbow.Reset()
	g.monitor.ChangeState(monitor.GameOver)
	g.env.Audio.PlayCue(audio.CueGameOver, audio.Channel1)
	g.env.Logger.Info("game over", "game", g.ID(), "score", g.seat.Score.Current(), "levels", g.cleared)
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

	if restart {
		if err := g.Start(); err != nil {
			g.startErr = err
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
		g.seat.Update(in)
		g.seat.Paddle.Step(dt)
		if !g.ball.Enabled() {
			// Parked ball rides on the paddle
			g.ball.Position = g.ballSpawn(g.seat.Paddle)
		}
		g.ball.Step(dt)
	}

	g.sched.Advance(dt)
	g.visual.Advance(dt, g.visualTick)

	return core.StepResult{State: g.State()}
}

func (g *Game) visualTick(step float64) {
	g.grid.Tick(step)
	if g.monitor.Is(monitor.GameOver) {
		g.rainbow.Tick(step)
	}
}

// Monitor exposes the state machine.
func (g *Game) Monitor() *monitor.Monitor { return g.monitor }

// Ball returns the ball.
func (g *Game) Ball() *ball.Ball { return g.ball }

// Grid returns the block grid.
func (g *Game) Grid() *blocks.Grid { return g.grid }

// Seat returns the player seat.
func (g *Game) Seat() *control.Seat { return g.seat }

// HumanSeats implements registry.SeatCounter.
func (g *Game) HumanSeats() int { return 1 }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the 1-based level number.
func (g *Game) Level() int { return g.level + 1 }

// Cleared returns how many levels were cleared this game.
func (g *Game) Cleared() int { return g.cleared }

// Outcome returns why the game ended.
func (g *Game) Outcome() int { return g.outcome }

// TimeLeft returns the countdown in seconds.
func (g *Game) TimeLeft() int { return g.timeLeft }

// Err returns the reason the game refused to start, if any.
func (g *Game) Err() error { return g.startErr }

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	if g.monitor == nil {
		return core.GameStatus{}
	}
	return core.GameStatus{
		Score:    g.seat.Score.Current(),
		GameOver: g.monitor.Is(monitor.GameOver),
		Paused:   g.monitor.Is(monitor.Paused),
	}
}

// Banner returns the game-over headline.
func (g *Game) Banner() string {
	switch g.outcome {
	case OutcomeVictory:
		return "YOU WIN!"
	case OutcomeTimeUp:
		return "TIME UP"
	case OutcomeNoLives:
		return "GAME OVER"
	default:
		return ""
	}
}

// Register the game with the registry
func init() {
	registry.Register("blockgame", func() registry.Game {
		return New()
	})
}

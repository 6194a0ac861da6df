package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

// Options are the services shared by every screen of a session.
type Options struct {
	Store   *storage.Store // Nil disables score recording
	Runtime core.RuntimeConfig
	Player  string // Name written to the score tables
	Logger  *log.Logger
	Audio   audio.Sink
}

func (o Options) normalize() Options {
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.Player == "" {
		o.Player = core.Player1.String()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Audio == nil {
		o.Audio = audio.Discard
	}
	return o
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	opts     Options
	keys     *KeyMapper
	held     *HeldKeys
	status   core.GameStatus
	recorded bool // Score saved for the current game over
	quitting bool
	back     bool
	alone    bool // Own program: leaving quits it
	owner    uint64
	clock    func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	opts = opts.normalize()
	return Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:   opts,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(HoldWindow),
		owner:  newTickOwner(),
		clock:  time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate, m.owner)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is fixed; only the view scales
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// Ticks left over from a previous game in the same session
		if msg.Owner != 0 && msg.Owner != m.owner {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presses, cmd := m.keys.MapKey(msg)
	switch cmd {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyBack:
		if m.status.GameOver || m.status.Paused {
			m.back = true
			m.opts.Audio.PlayCue(audio.CueMenuClose, audio.Channel1)
			if m.alone {
				return m, tea.Quit
			}
		}
		return m, nil
	case KeyScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	now := m.clock()
	for _, p := range presses {
		m.held.Press(p.Player, p.Action, now)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}

	if sc, ok := m.game.(registry.SeatCounter); ok {
		m.keys.Solo = sc.HumanSeats() <= 1
	}

	result := m.game.Step(m.held.Frame(now))
	m.status = result.State

	if m.status.GameOver && !m.recorded {
		m.recordScore()
		m.recorded = true
	}
	if !m.status.GameOver {
		m.recorded = false
	}

	return m, tickCmd(m.opts.Runtime.TickRate, m.owner)
}

// recordScore stores the finished round and updates the pack's table.
// Versus games record the better of the two seats.
func (m *Model) recordScore() {
	store := m.opts.Store
	name, value := m.opts.Player, m.status.Score
	if m.status.Opponent > value {
		name, value = core.Player2.String(), m.status.Opponent
	}
	if store == nil || value <= 0 {
		return
	}

	logger := m.opts.Logger.With("game", m.game.ID())
	if _, runID, err := store.SaveRun(m.game.ID(), value, name); err != nil {
		logger.Warn("could not save score", "err", err)
	} else {
		logger.Info("score recorded", "player", name, "score", value, "run", runID)
	}

	table, err := store.LoadHighScores(m.game.ID())
	if err != nil {
		logger.Warn("could not load high scores", "err", err)
		return
	}
	if !table.Submit(name, value) {
		return
	}
	if err := store.SaveHighScores(m.game.ID(), table); err != nil {
		logger.Warn("could not save high scores", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.clock().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool { return m.back }

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run starts a Bubble Tea program for a single game. It reports whether
// the player left through the back key rather than quitting.
func Run(game registry.Game, opts Options) (bool, error) {
	model := NewModel(game, opts)
	model.alone = true
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}

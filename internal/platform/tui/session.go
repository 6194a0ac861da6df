package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddle-arcade/internal/registry"
)

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScores
)

// SessionModel manages the full arcade flow: menu -> game or scores -> menu.
// It is the top-level model of `arcade menu` and of every SSH session.
type SessionModel struct {
	opts     Options
	packs    *registry.PackManager
	mode     sessionMode
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	cursor   int // Menu position restored after a game
	quitting bool
}

// NewSessionModel creates a session over the packs of pm.
func NewSessionModel(pm *registry.PackManager, opts Options) SessionModel {
	opts = opts.normalize()
	return SessionModel{
		opts:  opts,
		packs: pm,
		menu:  NewMenuModel(pm.Packs(), opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Audio),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.opts.Store, m.packs.Packs(), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scores = &sb
		m.mode = modeScores
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.cursor = m.menu.Cursor()
		game, err := m.packs.LoadIntoPack(selected.ID)
		if err != nil {
			m.opts.Logger.Error("could not load pack", "id", selected.ID, "err", err)
			m.resetMenu()
			return m, nil
		}
		gm := NewModel(game, m.opts)
		m.game = &gm
		m.mode = modeGame
		return m, gm.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		m.resetMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		m.resetMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) resetMenu() {
	m.mode = modeMenu
	m.menu = NewMenuModel(m.packs.Packs(), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.opts.Audio)
	m.menu.cursor = m.cursor
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow as its own program.
func RunSession(pm *registry.PackManager, opts Options) error {
	_, err := tea.NewProgram(NewSessionModel(pm, opts), tea.WithAltScreen()).Run()
	return err
}

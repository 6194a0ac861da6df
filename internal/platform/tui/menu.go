package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	menuHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the pack picker.
type MenuModel struct {
	packs          []registry.GameInfo
	cursor         int
	width          int
	height         int
	keys           MenuKeyMap
	help           help.Model
	audio          audio.Sink
	quitting       bool
	selected       *registry.GameInfo
	openScoreboard bool
}

// NewMenuModel creates a menu over packs.
func NewMenuModel(packs []registry.GameInfo, width, height int, sink audio.Sink) MenuModel {
	if sink == nil {
		sink = audio.Discard
	}
	h := help.New()
	h.Width = width
	return MenuModel{
		packs:  packs,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		audio:  sink,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	m.audio.PlayCue(audio.CueMenuOpen, audio.Channel1)
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.audio.PlayCue(audio.CueButtonPress, audio.Channel1)
		}

	case MenuActionDown:
		if m.cursor < len(m.packs)-1 {
			m.cursor++
			m.audio.PlayCue(audio.CueButtonPress, audio.Channel1)
		}

	case MenuActionSelect:
		if len(m.packs) > 0 {
			selected := m.packs[m.cursor]
			m.selected = &selected
			m.audio.PlayCue(audio.CueMenuClose, audio.Channel1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P A D D L E   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a pack", m.width))
	b.WriteString("\n\n")

	for i, p := range m.packs {
		line := "  " + p.Title + "  "
		if i == m.cursor {
			b.WriteString(centerText(menuActive.Render(line), m.width))
		} else {
			b.WriteString(centerText(menuItemStyle.Render(line), m.width))
		}
		b.WriteString("\n")
	}

	if len(m.packs) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDescStyle.Render(m.packs[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen pack, or nil if none.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Cursor returns the highlighted index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// centerText centers text within given width, measuring the printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

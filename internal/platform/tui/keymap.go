package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// ActionBinding ties a key binding to a seat action.
type ActionBinding struct {
	key.Binding
	Player core.PlayerID
	Action core.Action
}

// KeyMap holds the in-game bindings. Player one uses WASD and space,
// player two the arrow keys and enter.
type KeyMap struct {
	Actions    []ActionBinding
	Quit       key.Binding
	Back       key.Binding
	Screenshot key.Binding
}

func bind(p core.PlayerID, a core.Action, help string, keys ...string) ActionBinding {
	return ActionBinding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		Player:  p,
		Action:  a,
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Actions: []ActionBinding{
			bind(core.Player1, core.ActionUp, "p1 up", "w"),
			bind(core.Player1, core.ActionDown, "p1 down", "s"),
			bind(core.Player1, core.ActionLeft, "p1 left", "a"),
			bind(core.Player1, core.ActionRight, "p1 right", "d"),
			bind(core.Player1, core.ActionLaunch, "p1 launch", " ", "space"),
			bind(core.Player2, core.ActionUp, "p2 up", "up"),
			bind(core.Player2, core.ActionDown, "p2 down", "down"),
			bind(core.Player2, core.ActionLeft, "p2 left", "left"),
			bind(core.Player2, core.ActionRight, "p2 right", "right"),
			bind(core.Player2, core.ActionLaunch, "p2 launch", "enter"),
			bind(core.Player1, core.ActionPause, "pause", "p"),
			bind(core.Player1, core.ActionRestart, "restart", "r"),
		},
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// KeyCommand is a platform-level request derived from a key.
type KeyCommand int

const (
	KeyNone KeyCommand = iota
	KeyQuit
	KeyBack
	KeyScreenshot
)

// Press is one seat action triggered by a key.
type Press struct {
	Player core.PlayerID
	Action core.Action
}

// KeyMapper translates Bubble Tea key messages to seat actions.
// In solo mode every key set drives both seats, so a single human can use
// WASD or the arrows whichever seat the game gave them.
type KeyMapper struct {
	keys KeyMap
	Solo bool
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey returns the seat actions and the platform command for msg.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) ([]Press, KeyCommand) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return nil, KeyQuit
	case key.Matches(msg, km.keys.Back):
		return nil, KeyBack
	case key.Matches(msg, km.keys.Screenshot):
		return nil, KeyScreenshot
	}

	var out []Press
	for _, b := range km.keys.Actions {
		if !key.Matches(msg, b.Binding) {
			continue
		}
		out = append(out, Press{Player: b.Player, Action: b.Action})
		if km.Solo {
			out = append(out, Press{Player: other(b.Player), Action: b.Action})
		}
	}
	return out, KeyNone
}

func other(p core.PlayerID) core.PlayerID {
	if p == core.Player1 {
		return core.Player2
	}
	return core.Player1
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "play")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (k MenuKeyMap) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}

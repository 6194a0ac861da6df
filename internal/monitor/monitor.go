// Package monitor tracks the game state and notifies observers on change.
package monitor

// State is a game-level state.
type State int

const (
	MainMenu State = iota
	InGame
	Paused
	GameOver
	Loading
	GameMenu
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case InGame:
		return "InGame"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Loading:
		return "Loading"
	case GameMenu:
		return "GameMenu"
	default:
		return "Unknown"
	}
}

// Monitor holds the current state and one level of prior state.
type Monitor struct {
	current   State
	prior     State
	observers []func(State)
}

// New creates a monitor in MainMenu with MainMenu as prior state.
func New() *Monitor {
	return &Monitor{current: MainMenu, prior: MainMenu}
}

// Current returns the current state.
func (m *Monitor) Current() State { return m.current }

// Prior returns the state before the last transition.
func (m *Monitor) Prior() State { return m.prior }

// Is reports whether the current state is s.
func (m *Monitor) Is(s State) bool { return m.current == s }

// OnChange registers an observer called with the new state.
func (m *Monitor) OnChange(fn func(State)) {
	m.observers = append(m.observers, fn)
}

// ChangeState moves to s and notifies once. Changing to the current state
// is a no-op.
func (m *Monitor) ChangeState(s State) {
	if m.current == s {
		return
	}
	m.prior = m.current
	m.current = s
	for _, fn := range m.observers {
		fn(s)
	}
}

// Resume returns to the prior state.
func (m *Monitor) Resume() {
	m.ChangeState(m.prior)
}

// TogglePause pauses from InGame and resumes from Paused. Other states
// ignore pause requests. It reports whether a transition happened.
func (m *Monitor) TogglePause() bool {
	switch m.current {
	case InGame:
		m.ChangeState(Paused)
		return true
	case Paused:
		m.Resume()
		return true
	default:
		return false
	}
}

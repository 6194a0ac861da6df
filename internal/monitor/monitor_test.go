package monitor

import "testing"

func TestChangeStateIdempotent(t *testing.T) {
	m := New()
	count := 0
	m.OnChange(func(State) { count++ })

	m.ChangeState(InGame)
	m.ChangeState(InGame)

	if count != 1 {
		t.Errorf("notified %d times, expected 1", count)
	}
	if m.Prior() != MainMenu {
		t.Errorf("Prior() = %v, expected MainMenu", m.Prior())
	}
}

func TestPauseResume(t *testing.T) {
	m := New()
	m.ChangeState(InGame)

	m.ChangeState(Paused)
	m.ChangeState(m.Prior())

	if m.Current() != InGame {
		t.Errorf("Current() = %v, expected InGame", m.Current())
	}
}

func TestInitialState(t *testing.T) {
	m := New()
	if m.Current() != MainMenu || m.Prior() != MainMenu {
		t.Errorf("initial = %v/%v, expected MainMenu/MainMenu", m.Current(), m.Prior())
	}
}

func TestTogglePause(t *testing.T) {
	tests := []struct {
		from     State
		toggled  bool
		expected State
	}{
		{InGame, true, Paused},
		{MainMenu, false, MainMenu},
		{GameOver, false, GameOver},
		{Loading, false, Loading},
	}

	for _, tc := range tests {
		t.Run(tc.from.String(), func(t *testing.T) {
			m := New()
			m.ChangeState(tc.from)
			if got := m.TogglePause(); got != tc.toggled {
				t.Errorf("TogglePause() = %v, expected %v", got, tc.toggled)
			}
			if m.Current() != tc.expected {
				t.Errorf("Current() = %v, expected %v", m.Current(), tc.expected)
			}
		})
	}

	m := New()
	m.ChangeState(InGame)
	m.TogglePause()
	m.TogglePause()
	if m.Current() != InGame {
		t.Errorf("double toggle left %v, expected InGame", m.Current())
	}
}

func TestObserverSeesNewState(t *testing.T) {
	m := New()
	var seen []State
	m.OnChange(func(s State) {
		if m.Current() != s {
			t.Errorf("observer called before mutation")
		}
		seen = append(seen, s)
	})

	m.ChangeState(Loading)
	m.ChangeState(InGame)
	m.ChangeState(GameOver)

	expected := []State{Loading, InGame, GameOver}
	if len(seen) != len(expected) {
		t.Fatalf("seen %v, expected %v", seen, expected)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("seen[%d] = %v, expected %v", i, seen[i], expected[i])
		}
	}
}

package core

import "testing"

func TestIsActionPressed(t *testing.T) {
	m := NewMultiInputFrame()
	p1 := NewInputFrame()
	p1.Set(ActionUp)
	p1.Set(ActionPause)
	m.SetPlayer(Player1, p1)

	p2 := NewInputFrame()
	p2.Set(ActionLeft)
	m.SetPlayer(Player2, p2)

	tests := []struct {
		name     string
		expected bool
	}{
		{"p1_move_up", true},
		{"p1_move_down", false},
		{"p2_move_left", true},
		{"p2_move_up", false},
		{"pause_game", true},
		{"p1_pause_game", true},
		{"p2_pause_game", false},
		{"fly", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.IsActionPressed(tc.name); got != tc.expected {
				t.Errorf("IsActionPressed(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestMultiInputFrameClone(t *testing.T) {
	m := NewMultiInputFrame()
	f := NewInputFrame()
	f.Set(ActionDown)
	m.SetPlayer(Player1, f)

	clone := m.Clone()
	m.Clear()

	if m.Player1().Has(ActionDown) {
		t.Error("Clear should drop held actions")
	}
	if !clone.Player1().Has(ActionDown) {
		t.Error("Clone should not share state with the original")
	}
}

func TestPlayerIDPrefix(t *testing.T) {
	if Player1.Prefix() != "p1_" || Player2.Prefix() != "p2_" {
		t.Errorf("unexpected prefixes %q %q", Player1.Prefix(), Player2.Prefix())
	}
}

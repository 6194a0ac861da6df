// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Owner is the model
// that scheduled it; zero is accepted by any model.
type TickMsg struct {
	At    time.Time
	Owner uint64
}

var tickOwners atomic.Uint64

// newTickOwner returns an id for a model's tick loop.
func newTickOwner() uint64 {
	return tickOwners.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, owner uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Owner: owner}
	})
}

package tui

import (
	"time"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// HoldWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report presses only, never releases.
const HoldWindow = 150 * time.Millisecond

type heldKey struct {
	player core.PlayerID
	action core.Action
}

// HeldKeys turns key presses into held actions for the game loop.
type HeldKeys struct {
	window time.Duration
	last   map[heldKey]time.Time
}

// NewHeldKeys creates a tracker. A non-positive window uses HoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = HoldWindow
	}
	return &HeldKeys{window: window, last: make(map[heldKey]time.Time)}
}

// Press marks the action as held from at.
func (h *HeldKeys) Press(p core.PlayerID, a core.Action, at time.Time) {
	h.last[heldKey{p, a}] = at
}

// Frame returns every action still held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for k, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, k)
			continue
		}
		f := in.Player(k.player)
		f.Set(k.action)
		in.SetPlayer(k.player, f)
	}
	return in
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.last)
}

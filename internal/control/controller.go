// Package control turns human input or a heuristic into paddle directions.
package control

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/paddle"
)

// ErrInvalidPlayerType is returned for an unknown player type selection.
var ErrInvalidPlayerType = errors.New("control: invalid player type")

// PlayerType selects who drives a seat.
type PlayerType int

const (
	TypePlayer1 PlayerType = iota
	TypePlayer2
	TypeAI
)

// String returns the config name of the type.
func (t PlayerType) String() string {
	switch t {
	case TypePlayer1:
		return "player1"
	case TypePlayer2:
		return "player2"
	case TypeAI:
		return "ai"
	default:
		return fmt.Sprintf("PlayerType(%d)", int(t))
	}
}

// ParsePlayerType parses "player1", "player2" or "ai" (case-insensitive).
func ParsePlayerType(s string) (PlayerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player1", "p1":
		return TypePlayer1, nil
	case "player2", "p2":
		return TypePlayer2, nil
	case "ai", "cpu":
		return TypeAI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayerType, s)
	}
}

// Input is the pressed-state query a human controller polls.
// core.MultiInputFrame satisfies it.
type Input interface {
	IsActionPressed(name string) bool
}

// Controller yields one movement direction per tick.
type Controller interface {
	InputDirection(in Input) core.Direction
}

// Player reads direction from named input actions.
type Player struct {
	prefix     string
	horizontal bool
}

// NewPlayer creates a human controller for the given input prefix ("p1_", "p2_").
// Horizontal players poll move_left/move_right instead of move_up/move_down.
func NewPlayer(prefix string, horizontal bool) *Player {
	return &Player{prefix: prefix, horizontal: horizontal}
}

// InputDirection implements Controller. When both keys are held the
// down/right check runs last and wins.
func (p *Player) InputDirection(in Input) core.Direction {
	if in == nil {
		return core.DirNone
	}
	up, down := "move_up", "move_down"
	if p.horizontal {
		up, down = "move_left", "move_right"
	}

	dir := core.DirNone
	if in.IsActionPressed(p.prefix + up) {
		dir = core.DirUp
	}
	if in.IsActionPressed(p.prefix + down) {
		dir = core.DirDown
	}
	return dir
}

// AI thresholds and jitter range.
const (
	aiTrackChance = 20  // flip < 20: compare against the ball
	aiDropChance  = 8   // flip < 8: let go of the previous direction
	aiJitterMin   = -18 // detection zone jitter lower bound
	aiJitterMax   = 12  // detection zone jitter upper bound
)

// AI follows the ball with deliberately streaky, imperfect tracking.
type AI struct {
	paddle *paddle.Paddle
	ball   *ball.Ball
	rng    *rand.Rand
	last   core.Direction
}

// NewAI creates a heuristic controller for p tracking b.
func NewAI(p *paddle.Paddle, b *ball.Ball, rng *rand.Rand) *AI {
	return &AI{paddle: p, ball: b, rng: rng}
}

// Last returns the direction issued on the previous tick.
func (a *AI) Last() core.Direction { return a.last }

// InputDirection implements Controller. Input is ignored.
func (a *AI) InputDirection(Input) core.Direction {
	flip := a.rng.Intn(101)
	jitter := aiJitterMin + a.rng.Intn(aiJitterMax-aiJitterMin+1)
	zone := float64((a.paddle.Size() + jitter) / 4)

	dir := core.DirNone
	if flip < aiTrackChance {
		target := a.target()
		center := a.paddle.Center()
		switch {
		case target < center-zone:
			dir = core.DirUp
		case target > center+zone:
			dir = core.DirDown
		}
	}

	if a.last != core.DirNone && flip >= aiDropChance {
		dir = a.last
	}

	a.last = dir
	return dir
}

func (a *AI) target() float64 {
	if a.paddle.Axis() == paddle.Horizontal {
		return a.ball.Position.X
	}
	return a.ball.Position.Y
}

// New builds the controller for a player type. The horizontal flag applies to
// human players only.
func New(t PlayerType, p *paddle.Paddle, b *ball.Ball, rng *rand.Rand) (Controller, error) {
	horizontal := p.Axis() == paddle.Horizontal
	switch t {
	case TypePlayer1:
		return NewPlayer(core.Player1.Prefix(), horizontal), nil
	case TypePlayer2:
		return NewPlayer(core.Player2.Prefix(), horizontal), nil
	case TypeAI:
		return NewAI(p, b, rng), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerType, int(t))
	}
}

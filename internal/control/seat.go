package control

import (
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/paddle"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/score"
)

// Seat owns one paddle, its controller and its score.
type Seat struct {
	ID     core.PlayerID
	Side   ball.Side // Court side for point scoring; SideNone disables it
	Type   PlayerType
	Paddle *paddle.Paddle
	Score  *score.Score

	controller Controller
	attached   bool
	watched    *ball.Ball // Ball whose exits this seat already observes
}

// NewSeat creates a seat without a controller.
func NewSeat(id core.PlayerID, side ball.Side, p *paddle.Paddle) *Seat {
	return &Seat{ID: id, Side: side, Paddle: p, Score: score.New()}
}

// Controller returns the current controller, nil if none.
func (s *Seat) Controller() Controller { return s.controller }

// Configure builds a controller for t and attaches it. On error the seat
// keeps its previous controller.
func (s *Seat) Configure(t PlayerType, b *ball.Ball, rng *rand.Rand) error {
	c, err := New(t, s.Paddle, b, rng)
	if err != nil {
		return err
	}
	s.Attach(t, c, b)
	return nil
}

// Attach installs c and makes the seat score when its side wins a point
// on b. Each ball is observed once, however often the seat is reattached.
func (s *Seat) Attach(t PlayerType, c Controller, b *ball.Ball) {
	s.Detach()
	s.Type = t
	s.controller = c
	s.attached = true

	if b == nil || b == s.watched {
		return
	}
	s.watched = b
	b.OnOutOfBounds(func(_ physics.Edge, winner ball.Side) {
		if !s.attached || s.watched != b {
			return
		}
		if winner != ball.SideNone && winner == s.Side {
			s.Score.AddPoint()
		}
	})
}

// Detach drops the controller; the seat stops scoring until reattached.
func (s *Seat) Detach() {
	s.attached = false
	s.controller = nil
}

// Attached reports whether a controller is installed.
func (s *Seat) Attached() bool { return s.attached }

// Update polls the controller and moves the paddle for non-None directions.
func (s *Seat) Update(in Input) core.Direction {
	if s.controller == nil {
		return core.DirNone
	}
	dir := s.controller.InputDirection(in)
	if dir != core.DirNone {
		s.Paddle.Move(dir)
	}
	return dir
}

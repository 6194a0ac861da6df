package control

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/paddle"
)

func exitRight(b *ball.Ball) {
	b.Position = core.V(955, 176)
	b.Launch(core.V(1000, 0))
	b.Step(1)
}

func TestSeatScoresOnWin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := ball.New(ball.ParamsFor(ball.VariantPong), core.V(480, 176), nil, core.RectF{W: 960, H: 352}, rng)

	left := NewSeat(core.Player1, ball.SideLeft, paddle.New(paddle.Vertical, core.V(20, 176), nil))
	right := NewSeat(core.Player2, ball.SideRight, paddle.New(paddle.Vertical, core.V(940, 176), nil))

	if err := left.Configure(TypePlayer1, b, rng); err != nil {
		t.Fatal(err)
	}
	if err := right.Configure(TypeAI, b, rng); err != nil {
		t.Fatal(err)
	}

	exitRight(b)

	if left.Score.Current() != 1 || right.Score.Current() != 0 {
		t.Errorf("scores = %d:%d, expected 1:0", left.Score.Current(), right.Score.Current())
	}

	left.Detach()
	exitRight(b)
	if left.Score.Current() != 1 {
		t.Errorf("detached seat scored: %d", left.Score.Current())
	}

	// Reconfiguring must not double count
	if err := left.Configure(TypeAI, b, rng); err != nil {
		t.Fatal(err)
	}
	if err := left.Configure(TypePlayer1, b, rng); err != nil {
		t.Fatal(err)
	}
	exitRight(b)
	if left.Score.Current() != 2 {
		t.Errorf("score = %d, expected 2", left.Score.Current())
	}
}

func TestSeatObservesBallOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := ball.New(ball.ParamsFor(ball.VariantPong), core.V(480, 176), nil, core.RectF{W: 960, H: 352}, rng)
	s := NewSeat(core.Player1, ball.SideLeft, paddle.New(paddle.Vertical, core.V(20, 176), nil))

	for i := 0; i < 50; i++ {
		if err := s.Configure(TypeAI, b, rng); err != nil {
			t.Fatal(err)
		}
	}
	if n := b.OutOfBoundsObservers(); n != 1 {
		t.Fatalf("observers = %d after 50 reattaches, expected 1", n)
	}

	exitRight(b)
	if s.Score.Current() != 1 {
		t.Errorf("score = %d, expected 1", s.Score.Current())
	}

	// A fresh ball gets its own subscription; the old one goes quiet
	fresh := ball.New(ball.ParamsFor(ball.VariantPong), core.V(480, 176), nil, core.RectF{W: 960, H: 352}, rng)
	if err := s.Configure(TypeAI, fresh, rng); err != nil {
		t.Fatal(err)
	}
	exitRight(b)
	exitRight(fresh)
	if s.Score.Current() != 2 {
		t.Errorf("score = %d, expected 2", s.Score.Current())
	}
	if fresh.OutOfBoundsObservers() != 1 {
		t.Errorf("fresh ball observers = %d, expected 1", fresh.OutOfBoundsObservers())
	}
}

func TestSeatConfigureRejectsInvalidType(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := ball.New(ball.ParamsFor(ball.VariantPong), core.Vec2{}, nil, core.RectF{W: 10, H: 10}, rng)
	s := NewSeat(core.Player1, ball.SideLeft, paddle.New(paddle.Vertical, core.Vec2{}, nil))

	if err := s.Configure(TypePlayer1, b, rng); err != nil {
		t.Fatal(err)
	}
	if err := s.Configure(PlayerType(42), b, rng); err == nil {
		t.Fatal("expected an error for an unknown player type")
	}
	if s.Type != TypePlayer1 || !s.Attached() {
		t.Error("failed Configure should keep the previous controller")
	}
}

func TestSeatUpdateMovesPaddle(t *testing.T) {
	p := paddle.New(paddle.Vertical, core.V(0, 100), nil)
	s := NewSeat(core.Player1, ball.SideLeft, p)
	s.Attach(TypePlayer1, NewPlayer("p1_", false), nil)

	if dir := s.Update(pressed{"p1_move_up": true}); dir != core.DirUp {
		t.Errorf("Update() = %v, expected Up", dir)
	}
	if p.Velocity >= 0 {
		t.Errorf("paddle velocity = %v, expected negative", p.Velocity)
	}

	p.Velocity = 0
	s.Update(pressed{})
	if p.Velocity != 0 {
		t.Error("None direction should not move the paddle")
	}
}

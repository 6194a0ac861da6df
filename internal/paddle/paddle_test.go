package paddle

import (
	"math"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

func TestChangeSpeed(t *testing.T) {
	tests := []struct {
		speed    int
		accepted bool
		expected int
	}{
		{50, false, DefaultSpeed},
		{20000, false, DefaultSpeed},
		{5000, true, 5000},
		{100, true, 100},
		{10000, true, 10000},
	}

	for _, tc := range tests {
		p := New(Horizontal, core.Vec2{}, nil)
		if got := p.ChangeSpeed(tc.speed); got != tc.accepted {
			t.Errorf("ChangeSpeed(%d) = %v, expected %v", tc.speed, got, tc.accepted)
		}
		if p.Speed() != tc.expected {
			t.Errorf("after ChangeSpeed(%d) speed = %d, expected %d", tc.speed, p.Speed(), tc.expected)
		}
	}
}

func TestFrictionDecay(t *testing.T) {
	p := New(Horizontal, core.Vec2{}, nil)
	if math.Abs(p.FrictionFactor()-0.6) > 1e-12 {
		t.Fatalf("friction factor = %v, expected 0.6 for friction 25", p.FrictionFactor())
	}

	p.Move(core.DirRight)
	if p.Velocity != 2000 {
		t.Fatalf("velocity after Move = %v, expected 2000", p.Velocity)
	}

	// Decay is per tick, independent of dt
	p.Step(1.0 / 60)
	if math.Abs(p.Velocity-1200) > 1e-9 {
		t.Errorf("velocity after one tick = %v, expected 1200", p.Velocity)
	}
	p.Step(1.0 / 30)
	if math.Abs(p.Velocity-720) > 1e-9 {
		t.Errorf("velocity after two ticks = %v, expected 720", p.Velocity)
	}
}

func TestMoveDirections(t *testing.T) {
	p := New(Vertical, core.V(0, 100), nil)

	p.Move(core.DirUp)
	if p.Velocity != -2000 {
		t.Errorf("Up velocity = %v, expected -2000", p.Velocity)
	}
	p.Move(core.DirNone)
	if p.Velocity != -2000 {
		t.Errorf("None should keep velocity, got %v", p.Velocity)
	}

	p.Step(0.01)
	if p.Position.Y >= 100 || p.Position.X != 0 {
		t.Errorf("vertical paddle moved to %+v, expected up only", p.Position)
	}
}

func TestZeroVelocityNoMove(t *testing.T) {
	p := New(Horizontal, core.V(10, 10), nil)
	p.Step(1)
	if p.Position != core.V(10, 10) {
		t.Errorf("idle paddle moved to %+v", p.Position)
	}
}

func TestPaddleStopsAtWall(t *testing.T) {
	world := physics.NewWorld()
	world.Add(physics.NewWall(core.RectF{X: 100, Y: 0, W: 10, H: 100}))

	p := New(Horizontal, core.V(50, 50), world)
	p.Move(core.DirRight)
	for i := 0; i < 20; i++ {
		p.Step(1.0 / 10)
	}

	if right := p.Bounds().Right(); right > 100+1e-9 {
		t.Errorf("paddle right edge = %v, expected to stop at 100", right)
	}
}

func TestResizeKeepsCenter(t *testing.T) {
	p := New(Horizontal, core.V(200, 300), nil)
	p.Resize(128)

	b := p.Bounds()
	if b.W != 128 || b.H != DefaultThickness {
		t.Errorf("bounds = %+v, expected 128x%d", b, DefaultThickness)
	}
	if b.Center() != core.V(200, 300) {
		t.Errorf("center = %+v, expected (200, 300)", b.Center())
	}

	p.Resize(1000)
	if p.Size() != MaxSize {
		t.Errorf("size = %d, expected clamp to %d", p.Size(), MaxSize)
	}
}

func TestReset(t *testing.T) {
	p := New(Horizontal, core.V(5, 5), nil)
	p.Move(core.DirLeft)
	p.Step(1)
	p.Reset()
	if p.Position != core.V(5, 5) || p.Velocity != 0 {
		t.Errorf("after Reset position %+v velocity %v", p.Position, p.Velocity)
	}
}

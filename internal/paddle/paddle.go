// Package paddle implements a one-axis paddle with friction decay.
package paddle

import (
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// Limits and defaults.
const (
	MinSpeed    = 100
	MaxSpeed    = 10000
	MinFriction = 1
	MaxFriction = 100
	MinSize     = 1
	MaxSize     = 255

	DefaultFriction  = 25
	DefaultSpeed     = 2000
	DefaultSize      = 64
	DefaultThickness = 24
)

// Axis is the direction a paddle slides along.
type Axis int

const (
	Horizontal Axis = iota // Block game paddle
	Vertical               // Pong/Tennis paddles
)

// Paddle is a kinematic body that moves along one axis.
type Paddle struct {
	Position core.Vec2 // Center
	Velocity float64   // Signed speed along the axis

	axis           Axis
	friction       int
	frictionFactor float64
	speed          int
	size           int
	thickness      float64
	color          core.Color
	spawn          core.Vec2
	world          *physics.World
}

// New creates a paddle with default friction, speed and size and registers
// it in world.
func New(axis Axis, spawn core.Vec2, world *physics.World) *Paddle {
	p := &Paddle{
		Position:  spawn,
		axis:      axis,
		speed:     DefaultSpeed,
		size:      DefaultSize,
		thickness: DefaultThickness,
		color:     core.ColorBrightWhite,
		spawn:     spawn,
		world:     world,
	}
	p.SetFriction(DefaultFriction)
	if world != nil {
		world.Add(p)
	}
	return p
}

// Bounds implements physics.Collider: size along the axis, thickness across it.
func (p *Paddle) Bounds() core.RectF {
	if p.axis == Horizontal {
		return core.RectAround(p.Position, float64(p.size), p.thickness)
	}
	return core.RectAround(p.Position, p.thickness, float64(p.size))
}

// Kind implements physics.Collider.
func (p *Paddle) Kind() physics.Kind {
	return physics.KindPaddle
}

// Axis returns the movement axis.
func (p *Paddle) Axis() Axis { return p.axis }

// Speed returns the move speed.
func (p *Paddle) Speed() int { return p.speed }

// Size returns the extent along the axis.
func (p *Paddle) Size() int { return p.size }

// Friction returns the friction setting.
func (p *Paddle) Friction() int { return p.friction }

// FrictionFactor returns the per-tick velocity multiplier.
func (p *Paddle) FrictionFactor() float64 { return p.frictionFactor }

// Color returns the paddle color.
func (p *Paddle) Color() core.Color { return p.color }

// Center returns the paddle coordinate along its axis.
func (p *Paddle) Center() float64 {
	if p.axis == Horizontal {
		return p.Position.X
	}
	return p.Position.Y
}

// Move sets the velocity to ±speed. DirNone is ignored.
func (p *Paddle) Move(dir core.Direction) {
	if dir == core.DirNone {
		return
	}
	p.Velocity = dir.Sign() * float64(p.speed)
}

// Step applies friction and moves the paddle, stopping at walls.
// The friction factor is applied once per tick regardless of dt.
func (p *Paddle) Step(dt float64) {
	if p.Velocity == 0 {
		return
	}
	p.Velocity *= p.frictionFactor

	d := p.displacement(p.Velocity * dt)
	if p.world == nil {
		p.Position = p.Position.Add(d)
		return
	}
	moved, _ := p.world.MoveAndCollide(p, p.Bounds(), d, physics.KindBall)
	p.Position = p.Position.Add(moved)
}

func (p *Paddle) displacement(amount float64) core.Vec2 {
	if p.axis == Horizontal {
		return core.V(amount, 0)
	}
	return core.V(0, amount)
}

// SetFriction sets friction (clamped to [MinFriction, MaxFriction]) and
// recomputes the factor 1/(friction/15).
func (p *Paddle) SetFriction(f int) {
	p.friction = core.Clamp(f, MinFriction, MaxFriction)
	p.frictionFactor = 1.0 / (float64(p.friction) / 15.0)
}

// ChangeSpeed sets the speed and reports whether it was accepted.
// Values outside [MinSpeed, MaxSpeed] are rejected.
func (p *Paddle) ChangeSpeed(speed int) bool {
	if speed < MinSpeed || speed > MaxSpeed {
		return false
	}
	p.speed = speed
	return true
}

// Resize sets the extent along the axis, clamped to [MinSize, MaxSize].
// The paddle stays centered on its position.
func (p *Paddle) Resize(size int) {
	p.size = core.Clamp(size, MinSize, MaxSize)
}

// SetThickness sets the extent across the axis. Non-positive values are ignored.
func (p *Paddle) SetThickness(t float64) {
	if t > 0 {
		p.thickness = t
	}
}

// Thickness returns the extent across the axis.
func (p *Paddle) Thickness() float64 { return p.thickness }

// AdjustColor sets the paddle color.
func (p *Paddle) AdjustColor(c core.Color) {
	p.color = c
}

// Reset stops the paddle at its spawn point.
func (p *Paddle) Reset() {
	p.Velocity = 0
	p.Position = p.spawn
}

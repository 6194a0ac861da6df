// Package ball implements the ball shared by all games: clamped motion,
// single-contact bounce, speed ramp and the anti-stall correction.
package ball

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// ErrDegenerateNormal is the panic value raised when the collision provider
// reports a zero-length normal.
var ErrDegenerateNormal = errors.New("ball: degenerate collision normal")

// Size and acceleration limits.
const (
	MinSize         = 8
	MaxSize         = 32
	MinAcceleration = 1
	MaxAcceleration = 100

	DefaultSize         = 8
	DefaultAcceleration = 25
)

// Side of the court, used to report who won a point.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Ball is a moving body registered in a physics world.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2

	params       Params
	speedFactor  float64
	acceleration int
	size         int
	color        core.Color
	enabled      bool
	spawn        core.Vec2

	world *physics.World
	exit  *physics.ExitNotifier
	rng   *rand.Rand
	audio audio.Sink

	onBlockHit []func(physics.Collider)
	onOut      []func(physics.Edge, Side)
}

// New creates a disabled ball at spawn. The ball registers itself in world
// and watches viewport for out-of-bounds exits.
func New(params Params, spawn core.Vec2, world *physics.World, viewport core.RectF, rng *rand.Rand) *Ball {
	b := &Ball{
		Position:     spawn,
		params:       params,
		speedFactor:  params.BaseSpeedFactor,
		acceleration: DefaultAcceleration,
		size:         DefaultSize,
		color:        core.ColorBrightWhite,
		spawn:        spawn,
		world:        world,
		exit:         physics.NewExitNotifier(viewport),
		rng:          rng,
		audio:        audio.Discard,
	}
	b.exit.OnExit(b.outOfBounds)
	if world != nil {
		world.Add(b)
	}
	return b
}

// SetAudio sets the sink used for the generic hit cue.
func (b *Ball) SetAudio(s audio.Sink) {
	if s == nil {
		s = audio.Discard
	}
	b.audio = s
}

// Bounds implements physics.Collider.
func (b *Ball) Bounds() core.RectF {
	return core.RectAround(b.Position, float64(b.size), float64(b.size))
}

// Kind implements physics.Collider.
func (b *Ball) Kind() physics.Kind {
	return physics.KindBall
}

// Params returns the variant tuning.
func (b *Ball) Params() Params { return b.params }

// SpeedFactor returns the current speed factor.
func (b *Ball) SpeedFactor() float64 { return b.speedFactor }

// Acceleration returns the ramp rate.
func (b *Ball) Acceleration() int { return b.acceleration }

// Size returns the side length of the ball.
func (b *Ball) Size() int { return b.size }

// Color returns the ball color.
func (b *Ball) Color() core.Color { return b.color }

// Enabled reports whether the ball moves on Step.
func (b *Ball) Enabled() bool { return b.enabled }

// Spawn returns the reset position.
func (b *Ball) Spawn() core.Vec2 { return b.spawn }

// OnBlockHit registers an observer for contacts with block colliders.
func (b *Ball) OnBlockHit(fn func(physics.Collider)) {
	b.onBlockHit = append(b.onBlockHit, fn)
}

// OnOutOfBounds registers an observer for viewport exits. The side is the
// point winner in versus variants and SideNone otherwise.
func (b *Ball) OnOutOfBounds(fn func(physics.Edge, Side)) {
	b.onOut = append(b.onOut, fn)
}

// OutOfBoundsObservers returns the number of registered exit observers.
func (b *Ball) OutOfBoundsObservers() int { return len(b.onOut) }

// ClearObservers drops every registered observer.
func (b *Ball) ClearObservers() {
	b.onBlockHit = nil
	b.onOut = nil
}

// AdjustSize sets the ball size, clamped to [MinSize, MaxSize].
func (b *Ball) AdjustSize(size int) {
	b.size = core.Clamp(size, MinSize, MaxSize)
}

// AdjustColor sets the ball color.
func (b *Ball) AdjustColor(c core.Color) {
	b.color = c
}

// SetAcceleration sets the ramp rate, clamped to [MinAcceleration, MaxAcceleration].
func (b *Ball) SetAcceleration(a int) {
	b.acceleration = core.Clamp(a, MinAcceleration, MaxAcceleration)
}

// ToggleEnable flips the enabled flag.
func (b *Ball) ToggleEnable() {
	b.enabled = !b.enabled
}

// SetEnabled sets the enabled flag.
func (b *Ball) SetEnabled(on bool) {
	b.enabled = on
}

// Step advances the ball by one physics tick and returns the contact, if any.
func (b *Ball) Step(dt float64) *physics.Contact {
	if !b.enabled {
		return nil
	}

	limit := b.params.MaxVelocity
	b.Velocity = b.Velocity.Clamp(core.V(-limit, -limit), core.V(limit, limit))

	d := b.Velocity.Scale(dt * b.speedFactor)
	var contact *physics.Contact
	if b.world != nil {
		var moved core.Vec2
		moved, contact = b.world.MoveAndCollide(b, b.Bounds(), d)
		b.Position = b.Position.Add(moved)
	} else {
		b.Position = b.Position.Add(d)
	}

	if contact != nil {
		b.collide(contact.Normal, contact.Collider)
	}

	b.exit.Check(b.Bounds())
	return contact
}

// collide applies the bounce, ramp and anti-stall rules, then notifies.
func (b *Ball) collide(normal core.Vec2, target physics.Collider) {
	if normal.IsZero() {
		panic(ErrDegenerateNormal)
	}

	b.Velocity = b.Velocity.Bounce(normal)

	b.speedFactor += b.speedFactor * (float64(b.acceleration) / b.params.RampDivisor)
	b.speedFactor = core.ClampF(b.speedFactor, 0, b.params.SpeedCap)

	b.Velocity = b.unstall(b.Velocity)

	if target != nil && target.Kind() == physics.KindBlock {
		for _, fn := range b.onBlockHit {
			fn(target)
		}
		return
	}
	b.audio.PlayCue(audio.CueHit, audio.Channel1)
}

// unstall re-randomizes the tracked axis when it sits inside the dead band.
// The replacement magnitude lies in [DeadBand, Jitter] with a random sign.
func (b *Ball) unstall(v core.Vec2) core.Vec2 {
	p := b.params
	comp := v.X
	if p.DeadBandAxis == AxisY {
		comp = v.Y
	}
	if comp <= -p.DeadBand || comp >= p.DeadBand {
		return v
	}

	fresh := p.DeadBand + b.rng.Float64()*(p.Jitter-p.DeadBand)
	if b.rng.Intn(2) == 0 {
		fresh = -fresh
	}

	if p.DeadBandAxis == AxisY {
		v.Y = fresh
	} else {
		v.X = fresh
	}
	return v
}

// Reset stops the ball at its spawn point and restores the base speed factor.
func (b *Ball) Reset() {
	b.Velocity = core.Vec2{}
	b.Position = b.spawn
	b.speedFactor = b.params.BaseSpeedFactor
	b.exit.Rearm()
}

// Launch sets a velocity and enables the ball.
func (b *Ball) Launch(v core.Vec2) {
	b.Velocity = v
	b.enabled = true
}

// Serve sends the ball horizontally toward side at the serve speed with a
// random vertical component.
func (b *Ball) Serve(toward Side) {
	x := b.params.ServeSpeed
	if toward == SideLeft {
		x = -x
	}
	b.Velocity = core.V(x, b.jitter())
}

// ServeRandom serves toward a random side.
func (b *Ball) ServeRandom() {
	if b.rng.Float64() < 0.5 {
		b.Serve(SideLeft)
		return
	}
	b.Serve(SideRight)
}

// jitter returns an integer-valued random offset in [-Jitter, Jitter].
func (b *Ball) jitter() float64 {
	r := int(b.params.Jitter)
	return float64(b.rng.Intn(2*r+1) - r)
}

// LaunchJitter returns a random lateral launch component.
func (b *Ball) LaunchJitter() float64 {
	return b.jitter()
}

func (b *Ball) outOfBounds(edge physics.Edge) {
	b.Reset()

	winner := SideNone
	if b.params.ServeOnExit {
		winner = WinnerFor(edge)
		if winner == SideNone {
			b.ServeRandom()
		} else {
			b.Serve(Opposite(winner))
		}
	}

	for _, fn := range b.onOut {
		fn(edge, winner)
	}
}

// WinnerFor returns the side that wins the point when the ball leaves through
// edge. Exiting right means the left side scored.
func WinnerFor(edge physics.Edge) Side {
	switch edge {
	case physics.EdgeRight:
		return SideLeft
	case physics.EdgeLeft:
		return SideRight
	default:
		return SideNone
	}
}

// Opposite returns the other side. SideNone maps to SideNone.
func Opposite(s Side) Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

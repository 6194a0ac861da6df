package arena

import (
	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/paddle"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// WallThickness is the depth of the invisible walls around a court.
const WallThickness = 64

// BallParams overlays the non-zero tuning of cfg on the variant defaults.
func BallParams(v ball.Variant, cfg config.BallConfig) ball.Params {
	p := ball.ParamsFor(v)
	if cfg.SpeedCap > 0 {
		p.SpeedCap = cfg.SpeedCap
	}
	if cfg.RampDivisor > 0 {
		p.RampDivisor = cfg.RampDivisor
	}
	if cfg.DeadBand > 0 {
		p.DeadBand = cfg.DeadBand
	}
	if cfg.Jitter > 0 {
		p.Jitter = cfg.Jitter
	}
	if cfg.BaseSpeedFactor > 0 {
		p.BaseSpeedFactor = cfg.BaseSpeedFactor
	}
	if cfg.ServeSpeed > 0 {
		p.ServeSpeed = cfg.ServeSpeed
	}
	if cfg.MaxVelocity > 0 {
		p.MaxVelocity = cfg.MaxVelocity
	}
	return p
}

// ApplyBall copies size, acceleration and color from cfg onto b.
func ApplyBall(b *ball.Ball, cfg config.BallConfig) {
	if cfg.Size > 0 {
		b.AdjustSize(cfg.Size)
	}
	if cfg.Acceleration > 0 {
		b.SetAcceleration(cfg.Acceleration)
	}
	if c := core.ParseColor(cfg.Color); c != core.ColorDefault {
		b.AdjustColor(c)
	}
}

// ApplyPaddle copies the tuning of cfg onto p. It returns false when the
// speed was rejected as out of range.
func ApplyPaddle(p *paddle.Paddle, cfg config.PaddleConfig) bool {
	if cfg.Friction > 0 {
		p.SetFriction(cfg.Friction)
	}
	if cfg.Size > 0 {
		p.Resize(cfg.Size)
	}
	if cfg.Thickness > 0 {
		p.SetThickness(float64(cfg.Thickness))
	}
	if c := core.ParseColor(cfg.Color); c != core.ColorDefault {
		p.AdjustColor(c)
	}
	if cfg.Speed == 0 {
		return true
	}
	return p.ChangeSpeed(cfg.Speed)
}

// Edges of a court that get a wall.
const (
	WallTop = 1 << iota
	WallBottom
	WallLeft
	WallRight
)

// AddWalls registers walls just outside the court on the selected edges.
func AddWalls(w *physics.World, court core.RectF, edges int) {
	t := float64(WallThickness)
	if edges&WallTop != 0 {
		w.Add(physics.NewWall(core.RectF{X: court.X - t, Y: court.Y - t, W: court.W + 2*t, H: t}))
	}
	if edges&WallBottom != 0 {
		w.Add(physics.NewWall(core.RectF{X: court.X - t, Y: court.Bottom(), W: court.W + 2*t, H: t}))
	}
	if edges&WallLeft != 0 {
		w.Add(physics.NewWall(core.RectF{X: court.X - t, Y: court.Y, W: t, H: court.H}))
	}
	if edges&WallRight != 0 {
		w.Add(physics.NewWall(core.RectF{X: court.Right(), Y: court.Y, W: t, H: court.H}))
	}
}

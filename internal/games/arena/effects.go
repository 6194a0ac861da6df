package arena

import "github.com/vovakirdan/paddle-arcade/internal/core"

// Visual tick timing.
const (
	VisualInterval  = 0.05
	RainbowInterval = 0.1
	RainbowStep     = 30.0 // Degrees of hue per rainbow step
)

// VisualClock splits physics time into fixed visual ticks.
type VisualClock struct {
	acc float64
}

// Advance adds dt and calls fn once per elapsed VisualInterval.
func (c *VisualClock) Advance(dt float64, fn func(step float64)) {
	c.acc += dt
	for c.acc >= VisualInterval {
		c.acc -= VisualInterval
		fn(VisualInterval)
	}
}

// Rainbow cycles a hue for the game-over banner.
type Rainbow struct {
	hue float64
	acc float64
}

// Tick advances the effect by dt, stepping the hue every RainbowInterval.
func (r *Rainbow) Tick(dt float64) {
	r.acc += dt
	for r.acc >= RainbowInterval-1e-9 {
		r.acc -= RainbowInterval
		r.hue += RainbowStep
		if r.hue >= 360 {
			r.hue -= 360
		}
	}
}

// Reset restarts the cycle at red.
func (r *Rainbow) Reset() {
	r.hue, r.acc = 0, 0
}

// Color returns the current banner color.
func (r *Rainbow) Color() core.Color {
	return core.Hue(r.hue)
}

// Dim maps every cell to the dim palette used while paused.
func Dim(core.Color) core.Color {
	return core.ColorDim
}

package ball

// Axis selects the velocity component watched by the anti-stall rule.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Variant names a tuning family.
type Variant int

const (
	VariantBlock Variant = iota
	VariantPong
	VariantTennis
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantBlock:
		return "block"
	case VariantPong:
		return "pong"
	case VariantTennis:
		return "tennis"
	default:
		return "unknown"
	}
}

// Params tunes ball behaviour per game.
type Params struct {
	MaxVelocity     float64 // Per-component velocity limit
	SpeedCap        float64 // Upper bound of the speed factor
	RampDivisor     float64 // speedFactor += speedFactor * acceleration / RampDivisor
	DeadBandAxis    Axis    // Component checked by the anti-stall rule
	DeadBand        float64 // Half-width of the dead band
	Jitter          float64 // Range of random components
	BaseSpeedFactor float64 // Speed factor after a reset
	ServeSpeed      float64 // Horizontal serve speed in versus games
	ServeOnExit     bool    // Re-serve toward the loser after leaving the viewport
}

// ParamsFor returns the defaults for a variant.
func ParamsFor(v Variant) Params {
	p := Params{
		MaxVelocity:     12000,
		SpeedCap:        0.8,
		RampDivisor:     200,
		DeadBandAxis:    AxisY,
		DeadBand:        256,
		Jitter:          512,
		BaseSpeedFactor: 0.05,
		ServeSpeed:      8000,
		ServeOnExit:     true,
	}

	switch v {
	case VariantBlock:
		p.DeadBandAxis = AxisX
		p.ServeOnExit = false
	case VariantTennis:
		p.SpeedCap = 1.2
		p.DeadBand = 128
	}
	return p
}

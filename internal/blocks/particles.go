package blocks

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Particle burst tuning.
const (
	BurstSize     = 6
	ParticleLife  = 0.5
	ParticleSpeed = 60.0
)

// Particle is a short-lived spark drawn after a block hit.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Age      float64
	Material *Material
}

// Alive reports whether the particle is still visible.
func (p Particle) Alive() bool {
	return p.Age < ParticleLife
}

func burst(rng *rand.Rand, center core.Vec2, m *Material) []Particle {
	out := make([]Particle, 0, BurstSize)
	for i := 0; i < BurstSize; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := ParticleSpeed * (0.5 + rng.Float64())
		out = append(out, Particle{
			Position: center,
			Velocity: core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Material: m,
		})
	}
	return out
}

func ageParticles(ps []Particle, dt float64) []Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.Age += dt
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	return kept
}

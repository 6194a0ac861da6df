package blocks

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Tier bounds of the palette.
const (
	MinTier = 1
	MaxTier = 4
)

var tierColors = map[int]colorful.Color{
	1: {R: 1, G: 0, B: 0},
	2: {R: 0, G: 1, B: 0},
	3: {R: 0, G: 0, B: 1},
	4: {R: 1, G: 1, B: 0},
}

// TierFor clamps hit points to a palette tier.
func TierFor(hitPoints int) int {
	return core.Clamp(hitPoints, MinTier, MaxTier)
}

// Material is the look of particles emitted by a block tier.
type Material struct {
	Tier  int
	Color core.Color
	Glyph rune
}

// Palette maps tiers to colors and caches particle materials per tier.
type Palette struct {
	materials map[int]*Material
}

// NewPalette creates an empty palette cache.
func NewPalette() *Palette {
	return &Palette{materials: make(map[int]*Material)}
}

// Color returns the block color for hit points.
func (p *Palette) Color(hitPoints int) core.Color {
	return core.FromColorful(tierColors[TierFor(hitPoints)])
}

// Faded returns the tier color blended toward black by 1 - alpha.
func (p *Palette) Faded(tier int, alpha float64) core.Color {
	c := tierColors[TierFor(tier)]
	black := colorful.Color{}
	return core.FromColorful(black.BlendRgb(c, core.ClampF(alpha, 0, 1)))
}

// Material returns the cached particle material for a tier, creating it on
// first use.
func (p *Palette) Material(tier int) *Material {
	tier = TierFor(tier)
	if m, ok := p.materials[tier]; ok {
		return m
	}
	// Particles are a lighter shade of the block
	c := tierColors[tier].BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.35)
	m := &Material{Tier: tier, Color: core.FromColorful(c), Glyph: '*'}
	p.materials[tier] = m
	return m
}

// Cached returns how many materials have been built.
func (p *Palette) Cached() int {
	return len(p.materials)
}

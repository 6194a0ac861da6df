// Package blocks implements destructible blocks and the grid that lays them
// out from a text descriptor.
package blocks

import (
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// Fade timing: alpha drops by FadeStep every FadeInterval seconds.
const (
	FadeStep     = 0.1
	FadeInterval = 0.05
	fadeSteps    = 10 // 1 / FadeStep
)

// Block is a destructible target with integer hit points.
type Block struct {
	Col, Row int
	Rect     core.RectF

	hitPoints int
	destroyed bool
	tier      int // Tier at the moment of destruction, kept for the fade color

	fadeClock float64
	faded     int
}

// NewBlock creates an active block.
func NewBlock(col, row, hitPoints int, rect core.RectF) *Block {
	return &Block{Col: col, Row: row, Rect: rect, hitPoints: hitPoints}
}

// Bounds implements physics.Collider.
func (b *Block) Bounds() core.RectF { return b.Rect }

// Kind implements physics.Collider.
func (b *Block) Kind() physics.Kind { return physics.KindBlock }

// HitPoints returns the remaining hit points.
func (b *Block) HitPoints() int { return b.hitPoints }

// Destroyed reports whether hit points reached zero.
func (b *Block) Destroyed() bool { return b.destroyed }

// Removed reports whether the fade finished.
func (b *Block) Removed() bool { return b.destroyed && b.faded >= fadeSteps }

// Alpha returns the fade alpha in [0, 1].
func (b *Block) Alpha() float64 {
	a := 1 - FadeStep*float64(b.faded)
	if a < 0 {
		return 0
	}
	return a
}

// Tier returns the palette tier for the current hit points.
func (b *Block) Tier() int {
	if b.destroyed {
		return b.tier
	}
	return TierFor(b.hitPoints)
}

// Hit removes one hit point. It returns true when the block was active.
// Hits on a destroyed block are ignored.
func (b *Block) Hit() bool {
	if b.destroyed {
		return false
	}
	b.hitPoints--
	if b.hitPoints <= 0 {
		b.hitPoints = 0
		b.destroyed = true
		b.tier = TierFor(0)
	}
	return true
}

// tick advances the fade of a destroyed block and reports whether it just
// finished.
func (b *Block) tick(dt float64) bool {
	if !b.destroyed || b.faded >= fadeSteps {
		return false
	}
	b.fadeClock += dt
	for b.fadeClock >= FadeInterval && b.faded < fadeSteps {
		b.fadeClock -= FadeInterval
		b.faded++
	}
	return b.faded >= fadeSteps
}

// Package physics provides the collision queries the ball and paddles move
// through: swept AABB tests against a flat list of colliders, and a viewport
// exit notifier.
package physics

import (
	"math"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Kind classifies a collider so collision responses can tell a block from a wall.
type Kind int

const (
	KindWall Kind = iota
	KindPaddle
	KindBlock
	KindBall
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPaddle:
		return "paddle"
	case KindBlock:
		return "block"
	case KindBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Collider is anything the world can test against.
// Implementations are expected to be pointer types so identity comparison works.
type Collider interface {
	Bounds() core.RectF
	Kind() Kind
}

// Body is a plain static collider (walls, goals).
type Body struct {
	Rect core.RectF
	K    Kind
}

// NewWall creates a wall body covering r.
func NewWall(r core.RectF) *Body {
	return &Body{Rect: r, K: KindWall}
}

// Bounds implements Collider.
func (b *Body) Bounds() core.RectF { return b.Rect }

// Kind implements Collider.
func (b *Body) Kind() Kind { return b.K }

// Contact describes the single collision reported by MoveAndCollide.
type Contact struct {
	Normal    core.Vec2 // Unit surface normal pointing away from the collider
	Collider  Collider  // What was hit
	Travel    core.Vec2 // Displacement actually applied before the hit
	Remainder core.Vec2 // Displacement left over after the hit
}

// World is the set of colliders moving bodies are tested against.
type World struct {
	colliders []Collider
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Add registers a collider. Adding the same collider twice is a no-op.
func (w *World) Add(c Collider) {
	for _, existing := range w.colliders {
		if existing == c {
			return
		}
	}
	w.colliders = append(w.colliders, c)
}

// Remove unregisters a collider and reports whether it was present.
func (w *World) Remove(c Collider) bool {
	for i, existing := range w.colliders {
		if existing == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether c is registered.
func (w *World) Contains(c Collider) bool {
	for _, existing := range w.colliders {
		if existing == c {
			return true
		}
	}
	return false
}

// Len returns the number of registered colliders.
func (w *World) Len() int {
	return len(w.colliders)
}

// Clear removes every collider of the given kind.
func (w *World) Clear(k Kind) {
	kept := w.colliders[:0]
	for _, c := range w.colliders {
		if c.Kind() != k {
			kept = append(kept, c)
		}
	}
	w.colliders = kept
}

// MoveAndCollide sweeps bounds along d and returns the displacement that can
// be applied plus the earliest contact, if any. self and colliders of the
// ignored kinds are skipped. Ties on time of impact go to the collider
// registered first. A zero displacement performs no query.
func (w *World) MoveAndCollide(self Collider, bounds core.RectF, d core.Vec2, ignore ...Kind) (core.Vec2, *Contact) {
	if d.IsZero() {
		return d, nil
	}

	bestT := math.Inf(1)
	var best *Contact

	for _, other := range w.colliders {
		if other == self || ignored(other.Kind(), ignore) {
			continue
		}
		ob := other.Bounds()

		if bounds.Intersects(ob) {
			n := penetrationNormal(bounds, ob)
			// Only report the overlap when moving further in
			if d.Dot(n) >= 0 {
				continue
			}
			if 0 < bestT {
				bestT = 0
				best = &Contact{Normal: n, Collider: other}
			}
			continue
		}

		t, n, ok := sweep(bounds, ob, d)
		if !ok || t >= bestT {
			continue
		}
		bestT = t
		best = &Contact{Normal: n, Collider: other}
	}

	if best == nil {
		return d, nil
	}

	best.Travel = d.Scale(bestT)
	best.Remainder = d.Sub(best.Travel)
	return best.Travel, best
}

// sweep returns the time of impact in [0, 1] of a moving past a static b.
func sweep(a, b core.RectF, d core.Vec2) (float64, core.Vec2, bool) {
	entryX, exitX, okX := axisTimes(a.X, a.Right(), b.X, b.Right(), d.X)
	entryY, exitY, okY := axisTimes(a.Y, a.Bottom(), b.Y, b.Bottom(), d.Y)
	if !okX || !okY {
		return 0, core.Vec2{}, false
	}

	entry := math.Max(entryX, entryY)
	exit := math.Min(exitX, exitY)
	if entry >= exit || entry < 0 || entry > 1 {
		return 0, core.Vec2{}, false
	}

	if entryX > entryY {
		return entry, core.V(-sign(d.X), 0), true
	}
	return entry, core.V(0, -sign(d.Y)), true
}

// axisTimes computes entry and exit times along one axis. A stationary axis
// must already overlap, otherwise there is no hit.
func axisTimes(aMin, aMax, bMin, bMax, d float64) (entry, exit float64, ok bool) {
	switch {
	case d > 0:
		return (bMin - aMax) / d, (bMax - aMin) / d, true
	case d < 0:
		return (bMax - aMin) / d, (bMin - aMax) / d, true
	default:
		if aMin < bMax && bMin < aMax {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}
}

// penetrationNormal picks the axis of least penetration of a into b.
func penetrationNormal(a, b core.RectF) core.Vec2 {
	left := a.Right() - b.X
	right := b.Right() - a.X
	up := a.Bottom() - b.Y
	down := b.Bottom() - a.Y

	minX, nx := left, -1.0
	if right < left {
		minX, nx = right, 1.0
	}
	minY, ny := up, -1.0
	if down < up {
		minY, ny = down, 1.0
	}

	if minX < minY {
		return core.V(nx, 0)
	}
	return core.V(0, ny)
}

func ignored(k Kind, kinds []Kind) bool {
	for _, i := range kinds {
		if k == i {
			return true
		}
	}
	return false
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

package blocks

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

func newTestGrid(width int) (*Grid, *physics.World) {
	world := physics.NewWorld()
	g := NewGrid(world, core.Vec2{}, rand.New(rand.NewSource(42)))
	g.Width = width
	return g, world
}

func TestGenerateTwoRows(t *testing.T) {
	g, world := newTestGrid(1)
	g.Generate("1\n2\n")

	if g.Live() != 2 {
		t.Fatalf("Live() = %d, expected 2", g.Live())
	}
	if b := g.At(0, 0); b == nil || b.HitPoints() != 1 {
		t.Errorf("cell (0,0) = %v, expected 1 hit point", b)
	}
	if b := g.At(0, 1); b == nil || b.HitPoints() != 2 {
		t.Errorf("cell (0,1) = %v, expected 2 hit points", b)
	}
	if world.Len() != 2 {
		t.Errorf("world has %d colliders, expected 2", world.Len())
	}
}

func TestGenerateEmptyCells(t *testing.T) {
	g, _ := newTestGrid(1)
	g.Generate("0\n")
	if g.Live() != 0 || len(g.Blocks()) != 0 {
		t.Errorf("expected no blocks, got %d", g.Live())
	}
}

func TestGeneratePositions(t *testing.T) {
	g, _ := newTestGrid(DefaultWidth)
	g.Origin = core.V(10, 20)
	g.Generate("01\nx0a3\n")

	if g.Live() != 2 {
		t.Fatalf("Live() = %d, expected 2", g.Live())
	}
	b := g.At(3, 1)
	if b == nil {
		t.Fatal("expected block at (3,1)")
	}
	expected := core.RectF{X: 10 + 3*22, Y: 20 + 16, W: BlockW, H: BlockH}
	if b.Rect != expected {
		t.Errorf("rect = %+v, expected %+v", b.Rect, expected)
	}
}

func TestGenerateTruncatesLongRows(t *testing.T) {
	g, _ := newTestGrid(2)
	g.Generate("1111\n")
	if g.Live() != 2 {
		t.Errorf("Live() = %d, expected 2 for width 2", g.Live())
	}
}

func TestGenerateRandom(t *testing.T) {
	g, _ := newTestGrid(DefaultWidth)
	g.Generate("")

	if g.Rows() < MinRandomRows || g.Rows() > MaxRandomRows {
		t.Errorf("Rows() = %d, expected in [%d, %d]", g.Rows(), MinRandomRows, MaxRandomRows)
	}
	for _, b := range g.Blocks() {
		if b.HitPoints() < 1 || b.HitPoints() > MaxRandomHP {
			t.Errorf("random block hit points %d out of range", b.HitPoints())
		}
	}
}

func TestClearedFiresOnce(t *testing.T) {
	g, world := newTestGrid(1)
	cleared := 0
	g.OnCleared(func() { cleared++ })

	g.Generate("1\n0\n9\n")
	if g.Live() != 2 {
		t.Fatalf("Live() = %d, expected 2", g.Live())
	}
	if g.At(0, 1) != nil {
		t.Error("row 1 should be empty")
	}

	top := g.At(0, 0)
	bottom := g.At(0, 2)

	if !g.Hit(top) {
		t.Error("single hit should destroy a 1 hit point block")
	}
	if world.Contains(top) {
		t.Error("destroyed block should leave the physics world immediately")
	}

	for i := 0; i < 9; i++ {
		g.Hit(bottom)
	}
	// Extra hits after destruction are ignored
	g.Hit(bottom)
	g.Hit(top)

	if cleared != 1 {
		t.Errorf("cleared fired %d times, expected 1", cleared)
	}
	if g.Live() != 0 {
		t.Errorf("Live() = %d, expected 0", g.Live())
	}

	for i := 0; i < 20; i++ {
		g.Tick(FadeInterval)
	}
	if len(g.Blocks()) != 0 {
		t.Errorf("grid still holds %d blocks after fade", len(g.Blocks()))
	}
}

func TestResetRegenerates(t *testing.T) {
	g, world := newTestGrid(2)

	// Nothing generated yet
	g.Reset()
	if g.Rows() != 0 {
		t.Fatalf("Reset before Generate should be a no-op")
	}

	g.Generate("12\n")
	g.Hit(g.At(0, 0))
	g.Clear()
	if g.Live() != 0 || world.Len() != 0 {
		t.Errorf("Clear left %d live blocks, %d colliders", g.Live(), world.Len())
	}

	g.Reset()
	if g.Live() != 2 {
		t.Errorf("Live() after Reset = %d, expected 2", g.Live())
	}
	if b := g.At(1, 0); b == nil || b.HitPoints() != 2 {
		t.Errorf("regenerated block = %v, expected 2 hit points", b)
	}
}

func TestHitEmitsParticles(t *testing.T) {
	g, _ := newTestGrid(1)
	g.Generate("3\n")

	g.Hit(g.At(0, 0))
	if len(g.Particles()) != BurstSize {
		t.Fatalf("particles = %d, expected %d", len(g.Particles()), BurstSize)
	}
	if g.Particles()[0].Material.Tier != 3 {
		t.Errorf("particle tier = %d, expected 3", g.Particles()[0].Material.Tier)
	}

	for i := 0; i < 20; i++ {
		g.Tick(FadeInterval)
	}
	if len(g.Particles()) != 0 {
		t.Errorf("particles should expire, %d left", len(g.Particles()))
	}
}

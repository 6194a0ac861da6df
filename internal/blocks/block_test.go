package blocks

import (
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

func TestBlockHitSequence(t *testing.T) {
	b := NewBlock(0, 0, 3, core.RectF{W: BlockW, H: BlockH})

	for i := 1; i <= 2; i++ {
		if !b.Hit() {
			t.Fatalf("hit %d should apply", i)
		}
		if b.Destroyed() {
			t.Fatalf("destroyed after %d hits, expected 3", i)
		}
	}

	b.Hit()
	if !b.Destroyed() {
		t.Fatal("expected destroyed after 3 hits")
	}

	if b.Hit() {
		t.Error("4th hit should be a no-op")
	}
	if b.HitPoints() != 0 {
		t.Errorf("hit points = %d, expected 0", b.HitPoints())
	}
}

func TestBlockFade(t *testing.T) {
	b := NewBlock(0, 0, 1, core.RectF{})
	b.Hit()

	b.tick(FadeInterval)
	if b.Alpha() > 0.9+1e-9 || b.Alpha() < 0.9-1e-9 {
		t.Errorf("alpha after one interval = %v, expected 0.9", b.Alpha())
	}

	prev := b.Alpha()
	done := false
	for i := 0; i < 20 && !done; i++ {
		done = b.tick(FadeInterval / 2)
		if b.Alpha() > prev {
			t.Fatal("alpha increased during fade")
		}
		prev = b.Alpha()
	}
	if !b.Removed() || b.Alpha() != 0 {
		t.Errorf("expected removed block with alpha 0, got %v", b.Alpha())
	}
}

func TestActiveBlockDoesNotFade(t *testing.T) {
	b := NewBlock(0, 0, 2, core.RectF{})
	if b.tick(1) || b.Alpha() != 1 {
		t.Error("active block should not fade")
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette()

	tests := []struct {
		hp       int
		expected core.Color
	}{
		{0, "#ff0000"},
		{1, "#ff0000"},
		{2, "#00ff00"},
		{3, "#0000ff"},
		{4, "#ffff00"},
		{9, "#ffff00"},
	}
	for _, tc := range tests {
		if got := p.Color(tc.hp); got != tc.expected {
			t.Errorf("Color(%d) = %q, expected %q", tc.hp, got, tc.expected)
		}
	}

	m1 := p.Material(2)
	m2 := p.Material(2)
	if m1 != m2 {
		t.Error("Material should return the cached instance")
	}
	p.Material(7)
	if p.Cached() != 2 {
		t.Errorf("Cached() = %d, expected 2", p.Cached())
	}

	if got := p.Faded(1, 0); got != "#000000" {
		t.Errorf("Faded(1, 0) = %q, expected black", got)
	}
}

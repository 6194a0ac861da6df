package core

import "testing"

func TestRectOverlapsField(t *testing.T) {
	field := NewRect(0, 2, 40, 20) // playfield below a two-row HUD

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(5, 5, 3, 2), true},
		{"straddles HUD", NewRect(0, 0, 4, 4), true},
		{"only HUD rows", NewRect(0, 0, 40, 2), false},
		{"past right edge", NewRect(40, 5, 3, 3), false},
		{"past bottom edge", NewRect(5, 22, 3, 3), false},
		{"left of screen", NewRect(-4, 5, 4, 3), false},
		{"last cell", NewRect(39, 21, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Intersects(field); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			if got := field.Intersects(tt.r); got != tt.want {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsCells(t *testing.T) {
	field := NewRect(0, 2, 40, 20)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 2, true},
		{39, 21, true},
		{0, 1, false},   // HUD
		{40, 10, false}, // right edge is exclusive
		{10, 22, false}, // bottom edge is exclusive
		{-1, 10, false},
	}
	for _, tt := range tests {
		if got := field.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}

	if field.Right() != 40 || field.Bottom() != 22 {
		t.Errorf("edges = (%d, %d), expected (40, 22)", field.Right(), field.Bottom())
	}
}

func TestRectFAroundAndTranslate(t *testing.T) {
	r := RectAround(V(100, 50), 20, 8)
	if r != (RectF{X: 90, Y: 46, W: 20, H: 8}) {
		t.Fatalf("RectAround = %+v", r)
	}
	if r.Right() != 110 || r.Bottom() != 54 {
		t.Errorf("edges = (%v, %v), expected (110, 54)", r.Right(), r.Bottom())
	}

	moved := r.Translate(V(-5, 10))
	if moved != (RectF{X: 85, Y: 56, W: 20, H: 8}) {
		t.Errorf("Translate = %+v", moved)
	}
	if c := moved.Center(); c != V(95, 60) {
		t.Errorf("Center() = %+v, expected (95, 60)", c)
	}
	if !r.Intersects(moved) {
		t.Error("boxes sharing a strip should overlap")
	}
	if r.Intersects(r.Translate(V(20, 0))) {
		t.Error("boxes touching at an edge should not overlap")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{300, 1, 255, 255}, // paddle size
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{0.5, 0, 0.8, 0.5},
		{0.9, 0, 0.8, 0.8}, // speed factor cap
		{-9000, -8000, 8000, -8000},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(0, 1) != 1 || Max(88, 1) != 88 {
		t.Error("Max should return the larger value")
	}
}

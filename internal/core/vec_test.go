package core

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func TestVecBounceWall(t *testing.T) {
	v := V(100, 0).Bounce(V(-1, 0))
	if v != V(-100, 0) {
		t.Errorf("Bounce off vertical wall = %+v, expected (-100, 0)", v)
	}

	v = V(30, 40).Bounce(V(0, -1))
	if v != V(30, -40) {
		t.Errorf("Bounce off floor = %+v, expected (30, -40)", v)
	}
}

func TestVecBounceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		v := V(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		angle := rng.Float64() * 2 * math.Pi
		n := V(math.Cos(angle), math.Sin(angle))

		r := v.Bounce(n)

		if math.Abs(r.Len()-v.Len()) > 1e-6 {
			t.Fatalf("reflection changed magnitude: |v|=%f |r|=%f", v.Len(), r.Len())
		}
		if math.Abs(r.Dot(n)+v.Dot(n)) > 1e-6 {
			t.Fatalf("reflection should negate normal component: r·n=%f v·n=%f", r.Dot(n), v.Dot(n))
		}
	}
}

func TestVecClamp(t *testing.T) {
	v := V(15000, -20000).Clamp(V(-12000, -12000), V(12000, 12000))
	if v != V(12000, -12000) {
		t.Errorf("Clamp = %+v, expected (12000, -12000)", v)
	}

	inside := V(5, -5).Clamp(V(-10, -10), V(10, 10))
	if inside != V(5, -5) {
		t.Errorf("Clamp should keep in-range vector, got %+v", inside)
	}
}

func TestVecNormalized(t *testing.T) {
	n := V(3, 4).Normalized()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("Normalized length = %f, expected 1", n.Len())
	}
	if !V(0, 0).Normalized().IsZero() {
		t.Error("Normalized zero vector should stay zero")
	}
}

func TestRectFIntersects(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name     string
		b        RectF
		expected bool
	}{
		{"overlap", RectF{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", RectF{X: 10, Y: 0, W: 5, H: 5}, false},
		{"separate", RectF{X: 20, Y: 20, W: 1, H: 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}

	if c := RectAround(V(10, 10), 4, 2).Center(); c != V(10, 10) {
		t.Errorf("RectAround center = %+v, expected (10, 10)", c)
	}
}

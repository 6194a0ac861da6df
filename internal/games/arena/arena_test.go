package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/ball"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/paddle"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

func TestViewCell(t *testing.T) {
	v := NewView(440, 352, 88, 24, 2)

	tests := []struct {
		name  string
		p     core.Vec2
		wantX int
		wantY int
	}{
		{"origin", core.V(0, 0), 0, 2},
		{"center", core.V(220, 176), 44, 13},
		{"last cell", core.V(439, 351), 87, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.Cell(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewRectCoversOneCell(t *testing.T) {
	v := NewView(440, 352, 44, 24, 2)

	r := v.Rect(core.RectF{X: 12, Y: 40, W: 1, H: 1})
	if r.W < 1 || r.H < 1 {
		t.Errorf("tiny rect mapped to %+v", r)
	}
}

func TestViewFillClipsHUD(t *testing.T) {
	screen := core.NewScreen(44, 24)
	v := NewView(440, 352, 44, 24, 2)

	v.Fill(screen, core.RectF{X: 0, Y: -100, W: 40, H: 120}, '#', core.ColorRed)
	if screen.Get(0, 0) == '#' || screen.Get(0, 1) == '#' {
		t.Error("fill drew over the HUD rows")
	}
	if screen.Get(0, 2) != '#' {
		t.Error("fill should cover the first playfield row")
	}
	if screen.GetCell(0, 2).Color != core.ColorRed {
		t.Errorf("fill color = %q", screen.GetCell(0, 2).Color)
	}
}

func TestViewClipsToField(t *testing.T) {
	v := NewView(440, 352, 44, 24, 2)
	if f := v.Field(); f != core.NewRect(0, 2, 44, 22) {
		t.Fatalf("Field() = %+v", f)
	}

	tests := []struct {
		name string
		draw func(*core.Screen)
	}{
		{"fill above", func(s *core.Screen) { v.Fill(s, core.RectF{X: 0, Y: -200, W: 40, H: 100}, '#', core.ColorRed) }},
		{"fill right", func(s *core.Screen) { v.Fill(s, core.RectF{X: 500, Y: 40, W: 40, H: 40}, '#', core.ColorRed) }},
		{"dot below", func(s *core.Screen) { v.Dot(s, core.V(20, 400), '#', core.ColorRed) }},
		{"dot left", func(s *core.Screen) { v.Dot(s, core.V(-20, 40), '#', core.ColorRed) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(44, 24)
			tt.draw(screen)
			if strings.ContainsRune(screen.String(), '#') {
				t.Error("drawing outside the field should leave the screen blank")
			}
		})
	}

	screen := core.NewScreen(44, 24)
	v.Fill(screen, core.RectF{X: 420, Y: 330, W: 100, H: 100}, '#', core.ColorRed)
	if screen.Get(43, 23) != '#' {
		t.Error("partly visible fill should cover the bottom-right cell")
	}
}

type held map[string]bool

func (h held) IsActionPressed(name string) bool { return h[name] }

func TestEdgesRisingOnly(t *testing.T) {
	var e Edges
	down := held{"pause_game": true}
	up := held{}

	steps := []struct {
		in   held
		want bool
	}{
		{down, true},
		{down, false},
		{down, false},
		{up, false},
		{down, true},
	}
	for i, s := range steps {
		if got := e.Pressed(s.in, "pause_game"); got != s.want {
			t.Errorf("step %d: Pressed = %v, expected %v", i, got, s.want)
		}
	}

	e.Reset()
	if !e.Pressed(down, "pause_game") {
		t.Error("reset should forget held keys")
	}
}

func TestVisualClock(t *testing.T) {
	var c VisualClock
	steps := 0
	for range 60 {
		c.Advance(1.0/60.0, func(step float64) {
			if step != VisualInterval {
				t.Errorf("step = %v", step)
			}
			steps++
		})
	}
	// One second holds 20 visual ticks; float drift may defer the last one
	if steps < 19 || steps > 20 {
		t.Errorf("visual ticks = %d, expected 20", steps)
	}
}

func TestRainbowCycle(t *testing.T) {
	var r Rainbow
	start := r.Color()

	r.Tick(RainbowInterval)
	if r.Color() == start {
		t.Error("rainbow should change hue after one interval")
	}

	for range 11 {
		r.Tick(RainbowInterval)
	}
	if r.Color() != start {
		t.Errorf("rainbow should wrap after 12 steps: %q vs %q", r.Color(), start)
	}

	r.Tick(RainbowInterval)
	r.Reset()
	if r.Color() != start {
		t.Error("reset should return to the first hue")
	}
}

func TestBallParamsOverlay(t *testing.T) {
	p := BallParams(ball.VariantTennis, config.BallConfig{ServeSpeed: 5000})
	if p.ServeSpeed != 5000 {
		t.Errorf("serve speed = %v, expected 5000", p.ServeSpeed)
	}
	if p.SpeedCap != 1.2 || p.DeadBand != 128 {
		t.Errorf("tennis defaults lost: %+v", p)
	}
}

func TestApplyPaddle(t *testing.T) {
	p := paddle.New(paddle.Vertical, core.V(0, 0), nil)

	if ApplyPaddle(p, config.PaddleConfig{Speed: 50, Size: 40, Thickness: 10}) {
		t.Error("speed below range should be rejected")
	}
	if p.Size() != 40 || p.Thickness() != 10 {
		t.Errorf("size = %d thickness = %v", p.Size(), p.Thickness())
	}
	if !ApplyPaddle(p, config.PaddleConfig{Speed: 3000}) || p.Speed() != 3000 {
		t.Errorf("speed = %d, expected 3000", p.Speed())
	}
}

func TestAddWalls(t *testing.T) {
	w := physics.NewWorld()
	court := core.RectF{W: 100, H: 50}
	AddWalls(w, court, WallTop|WallLeft|WallRight)

	if got := w.Len(); got != 3 {
		t.Errorf("walls = %d, expected 3", got)
	}
}

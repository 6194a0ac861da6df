package blockgame

import (
	"fmt"

	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/games/arena"
	"github.com/vovakirdan/paddle-arcade/internal/monitor"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.monitor == nil {
		return
	}

	if g.startErr != nil {
		dst.DrawMessageBox("CANNOT START", g.startErr.Error(), core.ColorBrightRed)
		return
	}

	view := arena.NewView(g.court.W, g.court.H, dst.Width(), dst.Height(), hudRows)

	g.renderHUD(dst)

	for _, b := range g.grid.Blocks() {
		view.Fill(dst, b.Rect, BlockChar, g.grid.ColorOf(b))
	}
	for _, p := range g.grid.Particles() {
		if p.Material != nil {
			view.Dot(dst, p.Position, p.Material.Glyph, p.Material.Color)
		}
	}

	paddle := g.seat.Paddle
	view.Fill(dst, paddle.Bounds(), PaddleChar, paddle.Color())
	if g.monitor.Is(monitor.InGame) && !g.between {
		view.Dot(dst, g.ball.Position, BallChar, g.ball.Color())
	}

	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("SCORE %s", g.seat.Score))

	lives := fmt.Sprintf("LIVES %d", g.lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightRed)

	center := fmt.Sprintf("LEVEL %d", g.Level())
	if g.cfg.Gameplay.GameTime > 0 {
		center += fmt.Sprintf("  TIME %d", g.timeLeft)
	}
	dst.DrawTextCentered(0, center)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.monitor.Current() {
	case monitor.InGame:
		if g.between {
			dst.DrawMessageBox("LEVEL CLEARED", fmt.Sprintf("Level %d next", g.Level()+1), core.ColorBrightGreen)
		} else if !g.ball.Enabled() {
			dst.DrawTextCentered(dst.Height()-1, "Get ready... (SPACE to launch)")
		}

	case monitor.Paused:
		dst.Recolor(arena.Dim)
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorBrightWhite)

	case monitor.GameOver:
		subtitle := fmt.Sprintf("Score %d  |  Levels %d  |  R to restart", g.seat.Score.Current(), g.cleared)
		dst.DrawMessageBox(g.Banner(), subtitle, g.rainbow.Color())
	}
}

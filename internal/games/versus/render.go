package versus

import (
	"fmt"
	"math"

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
	g.renderNet(dst, view)

	for _, seat := range g.seats {
		view.Fill(dst, seat.Paddle.Bounds(), PaddleChar, seat.Paddle.Color())
	}
	if g.ball.Enabled() || g.monitor.Is(monitor.InGame) {
		view.Dot(dst, g.ball.Position, BallChar, g.ball.Color())
	}

	g.renderOverlay(dst)
}

// renderHUD draws both scores and the countdown.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("P1 %s", g.seats[0].Score)
	right := fmt.Sprintf("%s P2", g.seats[1].Score)
	dst.DrawTextColored(1, 0, left, g.seats[0].Paddle.Color())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, g.seats[1].Paddle.Color())

	if g.start.GameTime > 0 {
		dst.DrawTextCentered(0, fmt.Sprintf("TIME %d", g.timeLeft))
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderNet(dst *core.Screen, view arena.View) {
	x, _ := view.Cell(g.court.Center())
	for y := hudRows; y < dst.Height(); y += 2 {
		dst.SetColored(x, y, NetChar, core.ColorGray)
	}
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.monitor.Current() {
	case monitor.InGame:
		if !g.ball.Enabled() {
			dst.DrawTextCentered(dst.Height()-1, "Get ready... (SPACE to serve)")
		}

	case monitor.Paused:
		dst.Recolor(arena.Dim)
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorBrightWhite)

	case monitor.GameOver:
		remaining := g.cfg.Gameplay.BannerSeconds - (g.sched.Now() - g.bannerAt)
		subtitle := fmt.Sprintf("%d - %d  |  next round in %d  |  R to restart",
			g.seats[0].Score.Current(), g.seats[1].Score.Current(), int(math.Ceil(math.Max(remaining, 0))))
		dst.DrawMessageBox(g.Banner(), subtitle, g.rainbow.Color())
	}
}

// Banner returns the game-over headline for the last round.
func (g *Game) Banner() string {
	switch g.winner {
	case WinnerPlayer1:
		return "Player 1 Wins!"
	case WinnerPlayer2:
		return "Player 2 Wins!"
	case WinnerTie:
		return "It's a Tie!"
	default:
		return ""
	}
}

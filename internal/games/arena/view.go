// Package arena holds the pieces the paddle games share: world-to-screen
// mapping, held-key edge detection, the visual clock and banner effects.
package arena

import (
	"math"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// View maps world coordinates onto a character screen. The top HUD rows
// are reserved; the world is stretched over the remaining cells.
type View struct {
	World   core.RectF
	Cols    int
	Rows    int
	HUDRows int
}

// NewView creates a view for a world of w x h units.
func NewView(w, h float64, screenW, screenH, hudRows int) View {
	return View{
		World:   core.RectF{W: w, H: h},
		Cols:    core.Max(screenW, 1),
		Rows:    core.Max(screenH-hudRows, 1),
		HUDRows: hudRows,
	}
}

func (v View) scale() (float64, float64) {
	return float64(v.Cols) / v.World.W, float64(v.Rows) / v.World.H
}

// Cell returns the screen cell of a world point.
func (v View) Cell(p core.Vec2) (int, int) {
	sx, sy := v.scale()
	x := int(math.Floor((p.X - v.World.X) * sx))
	y := int(math.Floor((p.Y - v.World.Y) * sy))
	return x, y + v.HUDRows
}

// Rect returns the screen cells covered by a world rectangle. Anything
// visible covers at least one cell.
func (v View) Rect(r core.RectF) core.Rect {
	sx, sy := v.scale()
	x0 := int(math.Floor((r.X - v.World.X) * sx))
	y0 := int(math.Floor((r.Y - v.World.Y) * sy))
	x1 := int(math.Ceil((r.Right() - v.World.X) * sx))
	y1 := int(math.Ceil((r.Bottom() - v.World.Y) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.HUDRows, x1-x0, y1-y0)
}

// Field returns the screen cells below the HUD.
func (v View) Field() core.Rect {
	return core.NewRect(0, v.HUDRows, v.Cols, v.Rows)
}

// Fill draws a world rectangle with glyph, clipped to the playfield.
func (v View) Fill(dst *core.Screen, r core.RectF, glyph rune, c core.Color) {
	cr, field := v.Rect(r), v.Field()
	if !cr.Intersects(field) {
		return
	}
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if field.Contains(x, y) {
				dst.SetColored(x, y, glyph, c)
			}
		}
	}
}

// Dot draws glyph at the cell of a world point, clipped to the playfield.
func (v View) Dot(dst *core.Screen, p core.Vec2, glyph rune, c core.Color) {
	x, y := v.Cell(p)
	if !v.Field().Contains(x, y) {
		return
	}
	dst.SetColored(x, y, glyph, c)
}

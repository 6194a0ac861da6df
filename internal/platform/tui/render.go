package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// styles caches one lipgloss style per color. Colors are ANSI codes or hex
// triplets, both of which lipgloss.Color accepts. Shared by SSH sessions.
var styles sync.Map // core.Color -> lipgloss.Style

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styles.Load(c); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle()
	if c != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(c)))
	}
	styles.Store(c, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

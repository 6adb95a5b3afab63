package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/square-chase/internal/core"
)

// Backgrounder is implemented by games that paint their field a solid color.
type Backgrounder interface {
	Background() core.Color
}

// hexColor converts c to the true-color value lipgloss understands.
func hexColor(c core.Color) lipgloss.Color {
	v := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B))
}

// cellStyle styles fg cells over bg. ColorDefault leaves the terminal's own
// color in place.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		style = style.Foreground(hexColor(fg))
	}
	if bg != core.ColorDefault {
		style = style.Background(hexColor(bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string over bg.
// Adjacent cells of the same color share one style run.
func RenderScreen(s *core.Screen, bg core.Color) string {
	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(fg core.Color) lipgloss.Style {
		st, ok := styles[fg]
		if !ok {
			st = cellStyle(fg, bg)
			styles[fg] = st
		}
		return st
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			fg := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != fg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(fg).Render(run.String()))
		}
	}
	return sb.String()
}

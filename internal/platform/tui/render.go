package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cinnarun/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorCloud:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Bold(true),
	core.ColorMushroom:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorWing:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorCelebrate: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
}

// helpStyle renders the key help footer.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

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
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

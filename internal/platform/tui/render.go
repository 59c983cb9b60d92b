package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	skyBg    = lipgloss.Color("117")
	groundBg = lipgloss.Color("136")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorSky:           lipgloss.NewStyle().Background(skyBg),
	core.ColorCloud:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(skyBg),
	core.ColorPipe:          lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(skyBg),
	core.ColorPipeCap:       lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Background(skyBg),
	core.ColorGround:        lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Background(groundBg),
	core.ColorGroundTexture: lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Background(groundBg),
	core.ColorAvatar:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(skyBg),
	core.ColorAvatarWing:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(skyBg),
	core.ColorBeak:          lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(skyBg),
	core.ColorEye:           lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(skyBg),
	core.ColorText:          lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

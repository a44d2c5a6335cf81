package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-engine/internal/gfx"
)

// colorStyles maps gfx.Color to lipgloss styles.
var colorStyles = map[gfx.Color]lipgloss.Style{
	gfx.ColorDefault:       lipgloss.NewStyle(),
	gfx.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	gfx.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	gfx.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	gfx.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	gfx.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	gfx.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	gfx.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	gfx.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	gfx.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	gfx.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	gfx.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	gfx.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	gfx.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	gfx.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	gfx.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	gfx.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	gfx.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *gfx.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[gfx.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreenWithFade renders the screen through a transition overlay.
// Alpha 0 renders normally and alpha 1 covers the screen with the fade
// color; values in between dither fade cells over the scene so the
// transition reads as gradual in a cell grid.
func RenderScreenWithFade(s *gfx.Screen, alpha float64, color gfx.Color) string {
	if alpha <= 0 {
		return RenderScreen(s)
	}

	style, ok := colorStyles[color]
	if !ok {
		style = colorStyles[gfx.ColorDefault]
	}

	if alpha >= 1 {
		row := style.Render(strings.Repeat("█", s.Width()))
		rows := make([]string, s.Height())
		for y := range rows {
			rows[y] = row
		}
		return strings.Join(rows, "\n")
	}

	// 2x2 Bayer threshold per cell
	threshold := int(alpha * 4)
	covered := func(x, y int) bool {
		order := [2][2]int{{0, 2}, {3, 1}}
		return order[y%2][x%2] < threshold
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); x++ {
			if covered(x, y) {
				sb.WriteString(style.Render("█"))
				continue
			}
			cell := s.GetCell(x, y)
			cs, ok := colorStyles[cell.Color]
			if !ok {
				cs = colorStyles[gfx.ColorDefault]
			}
			sb.WriteString(cs.Render(string(cell.Rune)))
		}
	}
	return sb.String()
}

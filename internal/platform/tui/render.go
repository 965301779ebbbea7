package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color untouched.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:    lipgloss.Color("16"),
	core.ColorWhite:    lipgloss.Color("231"),
	core.ColorGray:     lipgloss.Color("245"),
	core.ColorBoard:    lipgloss.Color("137"),
	core.ColorTile2:    lipgloss.Color("255"),
	core.ColorTile4:    lipgloss.Color("230"),
	core.ColorTile8:    lipgloss.Color("215"),
	core.ColorTile16:   lipgloss.Color("209"),
	core.ColorTile32:   lipgloss.Color("203"),
	core.ColorTile64:   lipgloss.Color("196"),
	core.ColorTile128:  lipgloss.Color("222"),
	core.ColorTile256:  lipgloss.Color("221"),
	core.ColorTile512:  lipgloss.Color("220"),
	core.ColorTile1024: lipgloss.Color("214"),
	core.ColorTile2048: lipgloss.Color("208"),
	core.ColorTileHigh: lipgloss.Color("93"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per (foreground, background) pair.
var styleCache = map[colorPair]lipgloss.Style{}

// styleFor returns the style for a color pair.
func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	styleCache[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

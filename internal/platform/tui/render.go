package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-heroes/internal/core"
)

// Palette maps screen colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette uses the 16 ANSI colors plus two 256-color extras.
func DefaultPalette() Palette {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Palette{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("1"),
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("3"),
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11").Bold(true),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("14"),
		core.ColorBrightWhite:   fg("15").Bold(true),
		core.ColorOrange:        fg("208"),
		core.ColorGray:          fg("245"),
	}
}

// MonoPalette renders everything unstyled, for NO_COLOR terminals.
func MonoPalette() Palette {
	return Palette{core.ColorDefault: lipgloss.NewStyle()}
}

// style returns the style for c, falling back to the default color.
func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string with the default palette.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(s, DefaultPalette())
}

// RenderScreenWith converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one styled run.
func RenderScreenWith(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

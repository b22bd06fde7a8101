package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ztapz/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFlash:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Reverse(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// paintsBackground reports whether blank cells in this color are visible.
func paintsBackground(c core.Color) bool {
	return c == core.ColorFlash
}

// styleRun is a stretch of one row drawn with a single style.
type styleRun struct {
	color core.Color
	text  string
}

// rowRuns splits row y into style runs. Blanks join the run they follow
// unless that run paints a background, so the grid's " ( ● ) " cells cost
// one escape sequence per colored glyph instead of one per gap.
func rowRuns(s *core.Screen, y int) []styleRun {
	var runs []styleRun
	var text strings.Builder
	color := core.ColorDefault

	flush := func() {
		if text.Len() > 0 {
			runs = append(runs, styleRun{color: color, text: text.String()})
			text.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		blank := cell.Rune == ' '

		switch {
		case text.Len() == 0:
			color = cell.Color
		case cell.Color == color:
		case blank && cell.Color == core.ColorDefault && !paintsBackground(color):
		default:
			flush()
			color = cell.Color
		}
		text.WriteRune(cell.Rune)
	}
	flush()
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range rowRuns(s, y) {
			sb.WriteString(styleFor(run.color).Render(run.text))
		}
	}
	return sb.String()
}

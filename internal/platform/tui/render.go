package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// ansiCodes holds the 256-colour code of every named core colour.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorPeach:         "217",
	core.ColorDarkGray:      "240",
	core.ColorGray:          "245",
}

// Painter turns a core.Screen into styled text for one output. Each SSH
// session has its own lipgloss renderer, so colours are degraded to what
// that client's terminal supports.
type Painter struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer uses the process's
// standard output.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
	}
	for c, code := range ansiCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// Paint renders the screen row by row. Neighbouring cells of one colour
// share an escape sequence; blank runs are written without one.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		p.paintRow(&sb, s, y)
	}
	return sb.String()
}

func (p *Painter) paintRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	color, blank := core.ColorDefault, true

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if blank {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(p.style(color).Render(run.String()))
		}
		run.Reset()
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if run.Len() > 0 && cell.Color != color {
			flush()
		}
		if run.Len() == 0 {
			color, blank = cell.Color, true
		}
		if cell.Rune != ' ' {
			blank = false
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}

// RenderScreen paints s for the local terminal.
func RenderScreen(s *core.Screen) string {
	return NewPainter(nil).Paint(s)
}

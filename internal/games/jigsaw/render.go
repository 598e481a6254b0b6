package jigsaw

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/board"
)

const (
	finishLabel = "[Finish]"
	resetLabel  = "[Reset]"
	exitLabel   = "[Exit]"

	runeEmpty  = '░'
	runeFilled = '█'
	runePiece  = '▓'

	helpText = "drag the piece or use arrows + enter  f finish  q quit"
)

// Render draws the game into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPiece(dst)

	dst.DrawTextWithColor(g.boardX, g.boardY+g.boardHeight()+1, helpText, core.ColorGray)

	if g.finished {
		g.renderDialog(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	need := fmt.Sprintf("Need %dx%d", g.contentWidth()+2, g.contentHeight())
	y := dst.Height()/2 - 1
	dst.DrawTextCenteredWithColor(y, "Window too small", core.ColorYellow)
	dst.DrawTextCenteredWithColor(y+1, need, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextWithColor(g.boardX, 0, "JIGSAW", core.ColorBrightWhite)

	stats := fmt.Sprintf("Time %s  Turns %d", g.session.Clock(), g.session.PlacedCount())
	dst.DrawTextWithColor(g.boardX, 1, stats, core.ColorWhite)
	dst.DrawTextWithColor(g.finishBtn.X, g.finishBtn.Y, finishLabel, core.ColorBrightYellow)

	if g.status != "" {
		dst.DrawTextWithColor(g.boardX, 2, g.status, core.ColorGray)
	}
}

// renderBoard draws the separator lines and one body per cell. Empty cells
// take the color of their block class.
func (g *Game) renderBoard(dst *core.Screen) {
	rows, cols := g.rows(), g.cols()
	cpc, rpc := g.cpc(), g.rpc()
	lines := g.palette.Lines

	for i := range rows + 1 {
		dst.DrawHLine(g.boardX, g.boardY+i*rpc, g.boardWidth(), '─', lines)
	}
	for j := range cols + 1 {
		dst.DrawVLine(g.boardX+j*cpc, g.boardY, g.boardHeight(), '│', lines)
	}
	for i := range rows + 1 {
		for j := range cols + 1 {
			dst.SetWithColor(g.boardX+j*cpc, g.boardY+i*rpc, junction(i, j, rows, cols), lines)
		}
	}

	grid := g.session.Grid()
	for r := range rows {
		for c := range cols {
			cell := grid.Get(board.P(r, c))
			ch, color := runeEmpty, g.classColor(cell.Class)
			if cell.Filled {
				ch, color = runeFilled, g.palette.Blocks
			}
			body := core.NewRect(g.boardX+c*cpc+1, g.boardY+r*rpc+1, cpc-1, rpc-1)
			dst.DrawRect(body, ch, color)
		}
	}
}

func (g *Game) classColor(c board.Class) core.Color {
	if c == board.ClassPrimary {
		return g.palette.Primary
	}
	return g.palette.Secondary
}

func (g *Game) renderPiece(dst *core.Screen) {
	for _, tile := range g.pieceTiles() {
		dst.DrawRect(tile, runePiece, g.palette.Piece)
	}
}

// junction picks the box-drawing rune where line i meets line j.
func junction(i, j, rows, cols int) rune {
	top, bottom := i == 0, i == rows
	left, right := j == 0, j == cols
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	default:
		return '┼'
	}
}

// dialogLayout holds the finish dialog box and its button hit areas.
type dialogLayout struct {
	box   core.Rect
	lines []string
	reset core.Rect
	exit  core.Rect
}

func (g *Game) dialog() dialogLayout {
	lines := g.report.Lines()
	w := len(resetLabel) + 3 + len(exitLabel)
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w += 4
	h := len(lines) + 5

	x := g.boardX + (g.boardWidth()-w)/2
	y := g.boardY + (g.boardHeight()-h)/2
	buttonsY := y + h - 2
	buttonsX := x + (w-(len(resetLabel)+3+len(exitLabel)))/2

	return dialogLayout{
		box:   core.NewRect(x, y, w, h),
		lines: lines,
		reset: core.NewRect(buttonsX, buttonsY, len(resetLabel), 1),
		exit:  core.NewRect(buttonsX+len(resetLabel)+3, buttonsY, len(exitLabel), 1),
	}
}

func (g *Game) renderDialog(dst *core.Screen) {
	d := g.dialog()

	dst.DrawRect(d.box, ' ', core.ColorDefault)
	dst.DrawBox(d.box, core.ColorBrightWhite)
	for i, l := range d.lines {
		dst.DrawTextWithColor(d.box.X+2, d.box.Y+2+i, l, core.ColorWhite)
	}
	dst.DrawTextWithColor(d.reset.X, d.reset.Y, resetLabel, core.ColorBrightGreen)
	dst.DrawTextWithColor(d.exit.X, d.exit.Y, exitLabel, core.ColorBrightRed)
}

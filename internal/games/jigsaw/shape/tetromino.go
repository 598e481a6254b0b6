package shape

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// tileInset is how much smaller a drawn tile is than the pitch.
const tileInset = 2

// Tetromino is an immutable piece: a family plus an ordered list of
// occupied cells inside the 3x3 window.
//
// The first cell is the piece's anchor: drop resolution maps the pixel
// position of that cell onto the board. Canonical pieces keep the
// pattern order; transformed pieces list their cells row-major.
type Tetromino struct {
	kind  Type
	cells []Cell
	pitch float64
}

func newTetromino(kind Type, cells []Cell, pitch float64) Tetromino {
	return Tetromino{kind: kind, cells: cells, pitch: pitch}
}

// fromOccupancy rebuilds a piece from its normalized projection.
func fromOccupancy(kind Type, o Occupancy, pitch float64) Tetromino {
	return newTetromino(kind, o.Normalize().Cells(), pitch)
}

// Type returns the piece family.
func (p Tetromino) Type() Type {
	return p.kind
}

// Len returns the number of occupied cells.
func (p Tetromino) Len() int {
	return len(p.cells)
}

// IsZero reports whether p is the zero value (no cells).
func (p Tetromino) IsZero() bool {
	return len(p.cells) == 0
}

// Cells returns a copy of the ordered cell list.
func (p Tetromino) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// Pitch returns the pixel distance between neighbouring tiles.
func (p Tetromino) Pitch() float64 {
	return p.pitch
}

// Occupancy projects the piece onto its 3x3 window.
func (p Tetromino) Occupancy() Occupancy {
	return OccupancyOf(p.cells)
}

// RotateClockwise returns the piece turned 90 degrees clockwise.
// (row, col) maps to (2-col, row), then the result is shifted up-left.
func (p Tetromino) RotateClockwise() Tetromino {
	var o Occupancy
	for _, c := range p.cells {
		o[Window-1-c.Col][c.Row] = true
	}
	return fromOccupancy(p.kind, o, p.pitch)
}

// Mirror returns the piece flipped left-to-right.
// (row, col) maps to (row, 2-col), then the result is shifted up-left.
func (p Tetromino) Mirror() Tetromino {
	var o Occupancy
	for _, c := range p.cells {
		o[c.Row][Window-1-c.Col] = true
	}
	return fromOccupancy(p.kind, o, p.pitch)
}

// FirstCellGridOffset returns the anchor cell within the 3x3 window.
func (p Tetromino) FirstCellGridOffset() Cell {
	if len(p.cells) == 0 {
		return Cell{}
	}
	return p.cells[0]
}

// FirstCellPixelOffset returns the top-left of the anchor tile relative to
// the piece origin.
func (p Tetromino) FirstCellPixelOffset() core.PointF {
	first := p.FirstCellGridOffset()
	return core.PointF{
		X: float64(first.Col) * p.pitch,
		Y: float64(first.Row) * p.pitch,
	}
}

// WidthCells returns the horizontal extent in cells.
func (p Tetromino) WidthCells() int {
	w, _ := extents(p.cells)
	return w
}

// HeightCells returns the vertical extent in cells.
func (p Tetromino) HeightCells() int {
	_, h := extents(p.cells)
	return h
}

// Width returns the horizontal extent in pixels.
func (p Tetromino) Width() float64 {
	return float64(p.WidthCells()) * p.pitch
}

// Height returns the vertical extent in pixels.
func (p Tetromino) Height() float64 {
	return float64(p.HeightCells()) * p.pitch
}

// Bounds returns the pixel box of the piece when its origin sits at origin.
func (p Tetromino) Bounds(origin core.PointF) core.RectF {
	return core.RectF{X: origin.X, Y: origin.Y, W: p.Width(), H: p.Height()}
}

// Rects returns the drawn tile of every cell, relative to the piece origin.
func (p Tetromino) Rects() []core.RectF {
	size := p.pitch - tileInset
	rects := make([]core.RectF, len(p.cells))
	for i, c := range p.cells {
		rects[i] = core.RectF{
			X: float64(c.Col) * p.pitch,
			Y: float64(c.Row) * p.pitch,
			W: size,
			H: size,
		}
	}
	return rects
}

// SameShape reports whether two pieces cover the same cells.
func (p Tetromino) SameShape(o Tetromino) bool {
	return p.Occupancy() == o.Occupancy()
}

// String returns "Type[(r,c) ...]".
func (p Tetromino) String() string {
	parts := make([]string, len(p.cells))
	for i, c := range p.cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s[%s]", p.kind, strings.Join(parts, " "))
}

package board

import (
	"fmt"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Default pixel geometry.
const (
	DefaultCellSize = 30.0
	DefaultPadding  = 3.0
)

// Layout describes how the grid is drawn in pixel space: each row and
// column is a padding strip followed by a cell, with one closing padding
// strip at the far edge.
//
//	x(col) = padding*(col+1) + cellSize*col
type Layout struct {
	Rows     int
	Cols     int
	CellSize float64
	Padding  float64
}

// DefaultLayout returns the 9x9 layout with 30px cells and 3px padding.
func DefaultLayout() Layout {
	return Layout{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		CellSize: DefaultCellSize,
		Padding:  DefaultPadding,
	}
}

// Validate checks the layout for usable values.
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("board: layout needs positive rows and cols, got %dx%d", l.Rows, l.Cols)
	}
	if l.CellSize <= 0 {
		return fmt.Errorf("board: cell size must be positive, got %v", l.CellSize)
	}
	if l.Padding < 0 {
		return fmt.Errorf("board: padding must not be negative, got %v", l.Padding)
	}
	return nil
}

// Pitch returns the distance between the starts of neighbouring cells.
func (l Layout) Pitch() float64 {
	return l.CellSize + l.Padding
}

// Width returns the grid width in pixels.
func (l Layout) Width() float64 {
	return l.Padding*float64(l.Cols+1) + l.CellSize*float64(l.Cols)
}

// Height returns the grid height in pixels.
func (l Layout) Height() float64 {
	return l.Padding*float64(l.Rows+1) + l.CellSize*float64(l.Rows)
}

// Bounds returns the grid box when its top-left corner sits at origin.
func (l Layout) Bounds(origin core.PointF) core.RectF {
	return core.RectF{X: origin.X, Y: origin.Y, W: l.Width(), H: l.Height()}
}

// CellOrigin returns the top-left of cell p relative to the grid origin.
func (l Layout) CellOrigin(p Pos) core.PointF {
	return core.PointF{
		X: l.Padding*float64(p.Col+1) + l.CellSize*float64(p.Col),
		Y: l.Padding*float64(p.Row+1) + l.CellSize*float64(p.Row),
	}
}

// AxisIndex maps a pixel offset along one axis to a row or column index.
//
// The offset is walked across alternating padding and cell strips,
// starting with a padding strip, until the accumulated length exceeds it.
// When the walk stops with equal numbers of paddings and cells the offset
// is inside the body of the last counted cell and the lower index is
// taken; otherwise it is inside the padding strip in front of the next
// one. Either way cell k owns [k*pitch, (k+1)*pitch). Offsets below zero
// resolve to 0. The result is not clamped to the grid.
func (l Layout) AxisIndex(offset float64) int {
	paddings, cells := 0, 0
	for step := 0; offset >= float64(paddings)*l.Padding+float64(cells)*l.CellSize; step++ {
		if step%2 == 0 {
			paddings++
		} else {
			cells++
		}
	}

	if paddings == cells {
		if paddings == 0 {
			return 0
		}
		return cells - 1
	}
	return cells
}

// PosAt maps a pixel offset from the grid origin to a cell position.
// The result may fall outside the grid.
func (l Layout) PosAt(offset core.PointF) Pos {
	return Pos{Row: l.AxisIndex(offset.Y), Col: l.AxisIndex(offset.X)}
}

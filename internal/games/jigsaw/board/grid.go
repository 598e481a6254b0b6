// Package board holds the jigsaw play field: the cell grid and the pixel
// layout used to map screen positions onto it.
package board

import "fmt"

// Default board dimensions.
const (
	DefaultRows  = 9
	DefaultCols  = 9
	DefaultBlock = 3
)

// Class is the visual class of a cell. It has no gameplay effect.
type Class uint8

const (
	ClassSecondary Class = iota // Corner and centre blocks
	ClassPrimary                // Edge-middle blocks
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassPrimary:
		return "primary"
	case ClassSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Cell is a single board position.
type Cell struct {
	Filled bool
	Class  Class
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row int
	Col int
}

// P is a shorthand constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p offset by dr rows and dc columns.
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is the board: rows x cols cells split into block x block groups.
// Cells are stored in row-major order: index = row*cols + col.
// A filled cell only becomes empty again through Clear.
type Grid struct {
	rows  int
	cols  int
	block int
	cells []Cell
}

// NewGrid creates an empty grid. rows and cols must be positive multiples
// of block; anything else is a programming error and panics.
func NewGrid(rows, cols, block int) *Grid {
	if block <= 0 || rows <= 0 || cols <= 0 || rows%block != 0 || cols%block != 0 {
		panic(fmt.Sprintf("board: invalid grid %dx%d with block %d", rows, cols, block))
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		block: block,
		cells: make([]Cell, rows*cols),
	}
	for r := range rows {
		for c := range cols {
			g.cells[g.index(r, c)].Class = classAt(r, c, rows, cols, block)
		}
	}
	return g
}

// NewDefaultGrid creates the standard 9x9 grid of 3x3 blocks.
func NewDefaultGrid() *Grid {
	return NewGrid(DefaultRows, DefaultCols, DefaultBlock)
}

// classAt colours the blocks in the middle row and middle column of
// blocks, except the centre one, as primary.
func classAt(r, c, rows, cols, block int) Class {
	midRow := r/block == (rows/block)/2
	midCol := c/block == (cols/block)/2
	if midRow != midCol {
		return ClassPrimary
	}
	return ClassSecondary
}

func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Block returns the side of a block in cells.
func (g *Grid) Block() int { return g.block }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the cell at p. Out-of-bounds positions return an empty cell.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.cells[g.index(p.Row, p.Col)]
}

// Filled reports whether the cell at p is filled.
// Out-of-bounds positions report false.
func (g *Grid) Filled(p Pos) bool {
	return g.Get(p).Filled
}

// Fill marks the cell at p as filled. Out-of-bounds positions are ignored.
func (g *Grid) Fill(p Pos) {
	if g.InBounds(p) {
		g.cells[g.index(p.Row, p.Col)].Filled = true
	}
}

// Clear empties every cell. Visual classes are kept.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Filled = false
	}
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, block: g.block, cells: cells}
}

// String renders the grid with '#' for filled and '.' for empty cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := range g.rows {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := range g.cols {
			if g.cells[g.index(r, c)].Filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

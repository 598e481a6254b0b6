package shape

import "strings"

// Occupancy is the projection of a piece onto its 3x3 window.
// Indexed as [row][col].
type Occupancy [Window][Window]bool

// OccupancyOf builds an occupancy grid from a cell list.
// Cells outside the window are ignored.
func OccupancyOf(cells []Cell) Occupancy {
	var o Occupancy
	for _, c := range cells {
		if c.Row < 0 || c.Row >= Window || c.Col < 0 || c.Col >= Window {
			continue
		}
		o[c.Row][c.Col] = true
	}
	return o
}

// ParseOccupancy reads rows of '#' (filled) and '.' (empty).
// Missing rows or columns are treated as empty.
func ParseOccupancy(rows ...string) Occupancy {
	var o Occupancy
	for r, line := range rows {
		if r >= Window {
			break
		}
		for c, ch := range line {
			if c >= Window {
				break
			}
			o[r][c] = ch == '#'
		}
	}
	return o
}

// Count returns the number of filled cells.
func (o Occupancy) Count() int {
	n := 0
	for r := range Window {
		for c := range Window {
			if o[r][c] {
				n++
			}
		}
	}
	return n
}

// Cells returns the filled cells in row-major order.
func (o Occupancy) Cells() []Cell {
	cells := make([]Cell, 0, o.Count())
	for r := range Window {
		for c := range Window {
			if o[r][c] {
				cells = append(cells, C(r, c))
			}
		}
	}
	return cells
}

// Normalize shifts the filled cells up and left so that both the topmost
// row and the leftmost column are 0. An empty grid is returned unchanged.
func (o Occupancy) Normalize() Occupancy {
	minRow, minCol := Window, Window
	for r := range Window {
		for c := range Window {
			if !o[r][c] {
				continue
			}
			minRow = min(minRow, r)
			minCol = min(minCol, c)
		}
	}
	if minRow == Window {
		return o
	}

	var out Occupancy
	for r := minRow; r < Window; r++ {
		for c := minCol; c < Window; c++ {
			out[r-minRow][c-minCol] = o[r][c]
		}
	}
	return out
}

// String renders the grid as three lines of '#' and '.'.
func (o Occupancy) String() string {
	var sb strings.Builder
	for r := range Window {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Window {
			if o[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

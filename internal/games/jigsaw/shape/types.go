// Package shape provides the piece catalog for the jigsaw game.
// Pieces are small polyominoes that fit inside a 3x3 window and can be
// rotated or mirrored. This package is UI-agnostic and deterministic.
package shape

import "fmt"

// Window is the side of the square window every piece fits in.
const Window = 3

// IndexCount is the number of addressable piece orientations.
const IndexCount = 31

// Cell is a (row, col) position inside the 3x3 window.
type Cell struct {
	Row int
	Col int
}

// C is a shorthand constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Type identifies a piece family.
type Type uint8

const (
	AsymmetricAngle Type = iota
	Z
	LongAngle
	T
	Line
	Square
	ShortAngle
	ShortT
)

// typeInfo holds the fixed attributes of each family.
// Index ranges are inclusive and contiguous; patterns list the canonical
// cells with the first cell always at (0,0).
var typeInfo = [...]struct {
	name    string
	start   int
	end     int
	pattern []Cell
}{
	AsymmetricAngle: {"AsymmetricAngle", 0, 7, []Cell{C(0, 0), C(0, 1), C(1, 0), C(2, 0)}},
	Z:               {"Z", 8, 11, []Cell{C(0, 0), C(1, 1), C(1, 0), C(2, 1)}},
	LongAngle:       {"LongAngle", 12, 15, []Cell{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(0, 2)}},
	T:               {"T", 16, 19, []Cell{C(0, 0), C(0, 1), C(0, 2), C(1, 1), C(2, 1)}},
	Line:            {"Line", 20, 21, []Cell{C(0, 0), C(0, 1), C(0, 2)}},
	Square:          {"Square", 22, 22, []Cell{C(0, 0)}},
	ShortAngle:      {"ShortAngle", 23, 26, []Cell{C(0, 0), C(1, 0), C(0, 1)}},
	ShortT:          {"ShortT", 27, 30, []Cell{C(0, 0), C(1, 1), C(1, 0), C(2, 0)}},
}

// Types returns every family in index order.
func Types() []Type {
	return []Type{AsymmetricAngle, Z, LongAngle, T, Line, Square, ShortAngle, ShortT}
}

// Valid reports whether t is a known family.
func (t Type) Valid() bool {
	return int(t) < len(typeInfo)
}

// String returns the family name.
func (t Type) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return typeInfo[t].name
}

// Start returns the first catalog index of the family.
func (t Type) Start() int { return typeInfo[t].start }

// End returns the last catalog index of the family (inclusive).
func (t Type) End() int { return typeInfo[t].end }

// Span returns how many catalog indices the family owns.
func (t Type) Span() int { return typeInfo[t].end - typeInfo[t].start + 1 }

// Count returns the number of occupied cells of every piece of this family.
func (t Type) Count() int { return len(typeInfo[t].pattern) }

// Width returns the canonical width in cells.
func (t Type) Width() int {
	w, _ := extents(typeInfo[t].pattern)
	return w
}

// Height returns the canonical height in cells.
func (t Type) Height() int {
	_, h := extents(typeInfo[t].pattern)
	return h
}

// mirrorOnly reports whether the upper half of the family's index range is
// produced by a single mirror instead of rotations.
func (t Type) mirrorOnly() bool {
	return t < LongAngle
}

// Pattern returns a copy of the canonical cell list.
func (t Type) Pattern() []Cell {
	src := typeInfo[t].pattern
	out := make([]Cell, len(src))
	copy(out, src)
	return out
}

// TypeOf returns the family owning catalog index i.
// The second result is false when i is outside [0, IndexCount).
func TypeOf(i int) (Type, bool) {
	for _, t := range Types() {
		if i >= t.Start() && i <= t.End() {
			return t, true
		}
	}
	return 0, false
}

// extents returns (maxCol+1, maxRow+1) of a cell list.
func extents(cells []Cell) (w, h int) {
	for _, c := range cells {
		if c.Col+1 > w {
			w = c.Col + 1
		}
		if c.Row+1 > h {
			h = c.Row + 1
		}
	}
	return w, h
}

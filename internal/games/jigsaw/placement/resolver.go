// Package placement decides where a dropped piece lands on the board and
// whether it may be placed there.
package placement

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/board"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/shape"
)

// Reason explains the result of a drop.
type Reason uint8

const (
	ReasonNone        Reason = iota // Accepted
	ReasonOutOfBounds               // Piece box is not over the grid
	ReasonOverhang                  // Some tile would land outside the grid
	ReasonOccupied                  // Some tile would land on a filled cell
)

// String returns a short name for logs.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonOverhang:
		return "overhang"
	case ReasonOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving one drop.
type Outcome struct {
	Accepted bool
	Reason   Reason
	Dest     board.Pos   // Cell under the piece's first tile
	Anchor   board.Pos   // Top-left of the piece's 3x3 window on the board
	Cells    []board.Pos // Board cells the piece covers, row-major
}

// Resolver maps pixel drops onto a grid drawn with a fixed layout.
type Resolver struct {
	layout board.Layout
	logger *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for drop decisions (debug level).
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a resolver for the given layout.
func New(layout board.Layout, opts ...Option) *Resolver {
	r := &Resolver{
		layout: layout,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the layout the resolver works with.
func (r *Resolver) Layout() board.Layout {
	return r.layout
}

// Target computes where the piece would land without looking at the grid.
// gridBounds.X and gridBounds.Y are the on-screen grid origin.
func (r *Resolver) Target(gridBounds core.RectF, pieceOrigin core.PointF, piece shape.Tetromino) (dest, anchor board.Pos) {
	tile := pieceOrigin.Add(piece.FirstCellPixelOffset()).Sub(gridBounds.Min())
	dest = r.layout.PosAt(tile)

	first := piece.FirstCellGridOffset()
	anchor = dest.Add(-first.Row, -first.Col)
	return dest, anchor
}

// Check resolves a drop without changing the grid.
//
// The piece box must lie inside the grid box extended by one cell size to
// the right and bottom; edges count as inside. That tolerance admits drops
// whose window reaches past the last row or column, so every covered cell
// is also checked against the grid before occupancy is looked at.
func (r *Resolver) Check(grid *board.Grid, gridBounds core.RectF, pieceOrigin core.PointF, piece shape.Tetromino) Outcome {
	tolerant := gridBounds.Grow(r.layout.CellSize, r.layout.CellSize)
	if !tolerant.ContainsRect(piece.Bounds(pieceOrigin)) {
		return Outcome{Reason: ReasonOutOfBounds}
	}

	dest, anchor := r.Target(gridBounds, pieceOrigin, piece)
	out := Outcome{Dest: dest, Anchor: anchor}

	footprint := piece.Occupancy().Cells()
	out.Cells = make([]board.Pos, 0, len(footprint))
	for _, c := range footprint {
		out.Cells = append(out.Cells, anchor.Add(c.Row, c.Col))
	}

	for _, p := range out.Cells {
		if !grid.InBounds(p) {
			out.Reason = ReasonOverhang
			return out
		}
	}
	for _, p := range out.Cells {
		if grid.Filled(p) {
			out.Reason = ReasonOccupied
			return out
		}
	}

	out.Accepted = true
	return out
}

// ResolveDrop resolves a drop and, when accepted, fills every covered cell.
// A rejected drop leaves the grid untouched.
func (r *Resolver) ResolveDrop(grid *board.Grid, gridBounds core.RectF, pieceOrigin core.PointF, piece shape.Tetromino) Outcome {
	out := r.Check(grid, gridBounds, pieceOrigin, piece)
	if !out.Accepted {
		r.logger.Debug("drop rejected",
			"piece", piece.Type(),
			"reason", out.Reason,
			"anchor", out.Anchor,
		)
		return out
	}

	for _, p := range out.Cells {
		grid.Fill(p)
	}
	r.logger.Debug("drop accepted", "piece", piece.Type(), "anchor", out.Anchor, "cells", len(out.Cells))
	return out
}

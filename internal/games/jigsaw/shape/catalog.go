package shape

import (
	"fmt"
	"math/rand"
)

// Catalog produces pieces at a fixed pixel pitch.
// It holds no mutable state and is safe for concurrent use.
type Catalog struct {
	pitch float64
}

// NewCatalog creates a catalog whose pieces are laid out at pitch pixels
// per cell (cell size plus padding). Panics if pitch is not positive.
func NewCatalog(pitch float64) *Catalog {
	if pitch <= 0 {
		panic(fmt.Sprintf("shape: pitch must be positive, got %v", pitch))
	}
	return &Catalog{pitch: pitch}
}

// Pitch returns the catalog pitch in pixels.
func (c *Catalog) Pitch() float64 {
	return c.pitch
}

// Canonical returns the unrotated piece of the given family.
func (c *Catalog) Canonical(t Type) Tetromino {
	if !t.Valid() {
		panic(fmt.Sprintf("shape: unknown type %d", t))
	}
	return newTetromino(t, t.Pattern(), c.pitch)
}

// FromIndex returns the piece at catalog index i in [0, IndexCount).
//
// For AsymmetricAngle and Z the upper half of the range is the canonical
// piece mirrored once, with no rotation; every other index is the
// canonical piece rotated clockwise (i - start) times.
func (c *Catalog) FromIndex(i int) Tetromino {
	t, ok := TypeOf(i)
	if !ok {
		panic(fmt.Sprintf("shape: index %d out of range [0,%d]", i, IndexCount-1))
	}

	piece := c.Canonical(t)
	offset := i - t.Start()
	if t.mirrorOnly() && offset >= t.Span()/2 {
		return piece.Mirror()
	}
	for range offset {
		piece = piece.RotateClockwise()
	}
	return piece
}

// Random returns the piece at a uniformly drawn index.
func (c *Catalog) Random(rng *rand.Rand) Tetromino {
	return c.FromIndex(rng.Intn(IndexCount))
}

// All returns the pieces of every catalog index, in order.
func (c *Catalog) All() []Tetromino {
	out := make([]Tetromino, IndexCount)
	for i := range out {
		out[i] = c.FromIndex(i)
	}
	return out
}

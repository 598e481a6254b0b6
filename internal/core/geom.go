// Package core provides the terminal-independent types shared by the game
// and the platform: screen buffer, input frames, colors and geometry.
// It has no dependency on Bubble Tea.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// PointF is a position in pixel space.
type PointF struct {
	X, Y float64
}

// Add returns p translated by q.
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p PointF) Sub(q PointF) PointF {
	return PointF{X: p.X - q.X, Y: p.Y - q.Y}
}

// RectF is an axis-aligned box in pixel space.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Min returns the top-left corner.
func (r RectF) Min() PointF {
	return PointF{X: r.X, Y: r.Y}
}

// MaxX returns the x-coordinate of the right edge.
func (r RectF) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the y-coordinate of the bottom edge.
func (r RectF) MaxY() float64 {
	return r.Y + r.H
}

// Grow returns r with its width and height extended by dw and dh.
// The top-left corner does not move.
func (r RectF) Grow(dw, dh float64) RectF {
	return RectF{X: r.X, Y: r.Y, W: r.W + dw, H: r.H + dh}
}

// ContainsPoint reports whether p lies inside r. Edges are inclusive.
func (r RectF) ContainsPoint(p PointF) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r. Edges are inclusive,
// so a box touching the border is still contained.
func (r RectF) ContainsRect(o RectF) bool {
	return r.ContainsPoint(o.Min()) && r.ContainsPoint(PointF{X: o.MaxX(), Y: o.MaxY()})
}

// Package core holds the types shared by games and platforms: geometry,
// colors, input frames, clocks, record slots and the character screen.
// It imports nothing outside the standard library.
package core

// Vec is an integer 2D vector, used for positions and per-tick deltas.
type Vec struct {
	X, Y int
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square creates a size×size rectangle at (x, y).
func Square(x, y, size int) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec) Rect {
	p := r.Pos().Add(d)
	r.X, r.Y = p.X, p.Y
	return r
}

// Overlaps reports whether two rectangles overlap on both axes using closed
// intervals [X, Right] and [Y, Bottom]. Rectangles sharing only an edge or a
// corner overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Wrap applies toroidal wrap-around to r inside a width×height field.
// Each axis is corrected independently and at most once: a box whose right
// edge has left the field on the low side re-enters with its left edge on the
// far boundary, and a box whose left edge passed the far boundary re-enters
// with its right edge at 0. The same rule applies to Y with Bottom/top.
func Wrap(r Rect, width, height int) Rect {
	if r.Right() < 0 {
		r.X = width
	} else if r.X > width {
		r.X = -r.W
	}

	if r.Bottom() < 0 {
		r.Y = height
	} else if r.Y > height {
		r.Y = -r.H
	}

	return r
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

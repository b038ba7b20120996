package world

// Rect is an axis-aligned rectangle of grid cells. Both corners are
// inclusive.
type Rect struct {
	Min Point
	Max Point
}

// NewRect returns the rectangle spanning the two corners, whichever
// order they are given in.
func NewRect(a, b Point) Rect {
	if b.X < a.X {
		a.X, b.X = b.X, a.X
	}
	if b.Y < a.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{Min: a, Max: b}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the number of columns the rectangle covers.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows the rectangle covers.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// Center returns the middle cell, rounding toward Min.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Each calls fn for every cell in the rectangle in row-major order.
func (r Rect) Each(fn func(p Point)) {
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

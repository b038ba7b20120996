package world

// Grid is a fixed-size 2D board of values with copy-on-write
// snapshots. Next returns a new generation that shares every row
// with its parent until one of them writes; Mut copies a shared row
// before handing out a pointer into it. Reads on the parent stay
// valid while the child is being written, which is what lets a
// simulation pass read the previous generation while building the
// next one.
type Grid[T any] struct {
	width  int
	height int
	rows   [][]T
	owned  []bool
}

// NewGrid allocates a grid of zero values. Every row starts owned,
// so the first generation can be written in place.
func NewGrid[T any](width, height int) *Grid[T] {
	g := &Grid[T]{
		width:  width,
		height: height,
		rows:   make([][]T, height),
		owned:  make([]bool, height),
	}
	for y := range g.rows {
		g.rows[y] = make([]T, width)
		g.owned[y] = true
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// InBounds reports whether p lies on the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the value at p. The zero value is returned for
// out-of-bounds points so callers can probe neighbours without
// bounds checks of their own.
func (g *Grid[T]) At(p Point) T {
	if !g.InBounds(p) {
		var zero T
		return zero
	}
	return g.rows[p.Y][p.X]
}

// Mut returns a writable pointer to the value at p, copying the
// row first if it is still shared with another generation. Callers
// must not retain the pointer across a call to Next. Returns nil
// for out-of-bounds points.
func (g *Grid[T]) Mut(p Point) *T {
	if !g.InBounds(p) {
		return nil
	}
	if !g.owned[p.Y] {
		row := make([]T, g.width)
		copy(row, g.rows[p.Y])
		g.rows[p.Y] = row
		g.owned[p.Y] = true
	}
	return &g.rows[p.Y][p.X]
}

// Next returns the next generation of the grid. Both generations
// see identical values immediately after the call; rows are copied
// lazily as either side writes.
func (g *Grid[T]) Next() *Grid[T] {
	rows := make([][]T, g.height)
	copy(rows, g.rows)
	for y := range g.owned {
		g.owned[y] = false
	}
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		rows:   rows,
		owned:  make([]bool, g.height),
	}
}

// Each calls fn for every point on the grid in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Point{X: x, Y: y}, g.rows[y][x])
		}
	}
}

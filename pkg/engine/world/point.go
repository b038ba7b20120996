package world

import "fmt"

// Point is a grid coordinate. X grows east, Y grows south.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns the manhattan distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbours returns the four orthogonally adjacent points in
// North, East, South, West order.
func (p Point) Neighbours() [4]Point {
	var out [4]Point
	for i, d := range AllDirections() {
		out[i] = d.Step(p)
	}
	return out
}

// WithinManhattan reports whether q lies within dist of p.
func (p Point) WithinManhattan(q Point, dist int) bool {
	return p.Manhattan(q) <= dist
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

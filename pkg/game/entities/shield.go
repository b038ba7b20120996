package entities

import "derelict/pkg/engine/world"

// DefaultShieldRadius is the coverage (manhattan distance) of a
// standard-issue shield generator.
const DefaultShieldRadius = 3

// ShieldGenerator projects a radiation null field over every cell
// within its radius once a crew member powers it up.
type ShieldGenerator struct {
	ID        int
	Pos       world.Point
	Activated bool
	Radius    int
}

// NewShieldGenerator creates an inactive shield generator covering
// cells within radius (manhattan distance) of pos.
func NewShieldGenerator(pos world.Point, radius int) ShieldGenerator {
	return ShieldGenerator{Pos: pos, Radius: radius}
}

// Covers reports whether the generator is active and p lies inside
// its field.
func (s *ShieldGenerator) Covers(p world.Point) bool {
	return s.Activated && s.Pos.WithinManhattan(p, s.Radius)
}

// Activate powers the generator up.
func (s *ShieldGenerator) Activate() {
	s.Activated = true
}

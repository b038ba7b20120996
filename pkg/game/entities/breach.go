package entities

import "derelict/pkg/engine/world"

// Breach is a hull rupture venting atmosphere. An unsealed breach
// drains pressure from its cell every turn and slowly wears down
// station integrity.
type Breach struct {
	ID     int
	Pos    world.Point
	Sealed bool
}

// NewBreach creates a breach at the given position.
func NewBreach(pos world.Point, sealed bool) Breach {
	return Breach{Pos: pos, Sealed: sealed}
}

// Active reports whether the breach is still venting.
func (b *Breach) Active() bool {
	return !b.Sealed
}

// Seal patches the hull rupture.
func (b *Breach) Seal() {
	b.Sealed = true
}

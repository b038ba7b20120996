package entities

import "derelict/pkg/engine/world"

// Rubble is debris left by a structural collapse. It blocks
// movement until a crew member clears it.
type Rubble struct {
	ID  int
	Pos world.Point
}

// NewRubble creates a rubble pile at the given position.
func NewRubble(pos world.Point) Rubble {
	return Rubble{Pos: pos}
}

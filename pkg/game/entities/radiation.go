package entities

import "derelict/pkg/engine/world"

// RadiationSource is leaking reactor material. It cannot be removed,
// only suppressed by an activated shield generator covering it.
type RadiationSource struct {
	ID  int
	Pos world.Point
}

// NewRadiationSource creates a radiation source at the given position.
func NewRadiationSource(pos world.Point) RadiationSource {
	return RadiationSource{Pos: pos}
}

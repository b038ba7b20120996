// Package entities defines the station fixtures the simulation and
// the player interact with. Every entity carries a stable ID and a
// fixed position; the Registry owns them all.
package entities

import "derelict/pkg/engine/world"

// Relay is a power relay. While overheating it pumps heat into its
// own cell every turn until a crew member repairs it.
type Relay struct {
	ID          int
	Pos         world.Point
	Overheating bool
}

// NewRelay creates a relay at the given position.
func NewRelay(pos world.Point, overheating bool) Relay {
	return Relay{Pos: pos, Overheating: overheating}
}

// Active reports whether the relay is currently generating heat.
func (r *Relay) Active() bool {
	return r.Overheating
}

// Repair stops the relay from overheating.
func (r *Relay) Repair() {
	r.Overheating = false
}

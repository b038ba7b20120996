package entities

import "derelict/pkg/engine/world"

// ReinforcementPanel is a stack of structural bracing. Once
// installed it keeps its own cell and the four orthogonal
// neighbours from ever collapsing.
type ReinforcementPanel struct {
	ID        int
	Pos       world.Point
	Installed bool
}

// NewReinforcementPanel creates an uninstalled panel at the given
// position.
func NewReinforcementPanel(pos world.Point) ReinforcementPanel {
	return ReinforcementPanel{Pos: pos}
}

// Protects reports whether the installed panel braces p.
func (r *ReinforcementPanel) Protects(p world.Point) bool {
	return r.Installed && r.Pos.Manhattan(p) <= 1
}

// Install fixes the bracing in place.
func (r *ReinforcementPanel) Install() {
	r.Installed = true
}

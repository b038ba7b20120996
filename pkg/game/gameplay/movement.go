package gameplay

import (
	"derelict/pkg/engine/world"
	"derelict/pkg/game/state"
)

// CanEnter reports whether the player could stand on p: it must be
// on the deck and currently walkable. Collapsed cells and dropped
// bulkheads both read as non-walkable, so one check covers rubble,
// locked doors and walls alike.
func CanEnter(g *state.Game, p world.Point) bool {
	return g.Field.InBounds(p) && g.Field.At(p).Walkable
}

// Move steps the player one cell in the given direction and reports
// whether the step happened. A blocked step costs nothing; the turn
// is only consumed by RunTurn.
func Move(g *state.Game, d world.Direction) bool {
	return MoveTo(g, d.Step(g.Player.Pos))
}

// MoveTo places the player on p when p is orthogonally adjacent to
// them and enterable.
func MoveTo(g *state.Game, p world.Point) bool {
	if g.Player.Pos.Manhattan(p) != 1 || !CanEnter(g, p) {
		return false
	}
	g.Player.Pos = p
	return true
}

package gameplay

import (
	"testing"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/hazard"
	"derelict/pkg/game/state"
)

// openGame returns a run on an all-floor field at full pressure,
// with the player parked in the north-west corner.
func openGame(t *testing.T, width, height int) *state.Game {
	t.Helper()
	g := state.NewGame(9, hazard.Normal)
	f := field.New(width, height)
	f.EachCell(func(p world.Point, _ field.Cell) {
		f.Carve(p, field.Floor)
	})
	g.Field = f
	g.Entities = entities.NewRegistry()
	g.Player.Pos = world.Point{X: 0, Y: 0}
	return g
}

// advance opens and resolves one full turn with no crew actions.
func advance(g *state.Game) hazard.Outcome {
	g.BeginTurn()
	return RunTurn(g)
}

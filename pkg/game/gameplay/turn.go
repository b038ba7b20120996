// Package gameplay drives one run of the simulation: it advances
// turns through the hazard pipeline and exposes the between-turn
// verbs a crew member can perform on the station's fixtures.
package gameplay

import (
	"derelict/pkg/game/hazard"
	"derelict/pkg/game/state"
)

// Integrity bookkeeping applied on top of the simulation's output
// each turn and on repairs. These are orchestrator rules, not part
// of the hazard core itself.
const (
	IntegrityPerBreach   = 1
	IntegrityPerCollapse = 2
	IntegrityRepairBonus = 5
)

// RunTurn resolves the turn opened by BeginTurn: it ticks the
// hazard pipeline, swaps in the new field and registry generations,
// applies the damage outcome to the player and bleeds station
// integrity for every breach still venting and every deck section
// lost this turn.
func RunTurn(g *state.Game) hazard.Outcome {
	res := hazard.Tick(g.Context(), g.Field, g.Entities, g.Scheduler, g.Player, g.Journal)
	g.Field = res.Field
	g.Entities = res.Entities
	g.Player.HP = res.Outcome.HP
	g.Collapses += res.Collapses

	venting := len(g.Entities.UnsealedBreachPositions())
	g.AdjustIntegrity(-(venting*IntegrityPerBreach + res.Collapses*IntegrityPerCollapse))

	return res.Outcome
}

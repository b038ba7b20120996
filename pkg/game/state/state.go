// Package state holds the aggregate the driver threads through one
// run: the current field and entity generation, the player, the
// journal and the bookkeeping scalars the orchestrator judges the
// run by.
package state

import (
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/hazard"
	"derelict/pkg/game/journal"
)

// MaxIntegrity is the station integrity a fresh run starts with.
const MaxIntegrity = 100

// Game is the full state of one run. Field and Entities are
// replaced wholesale every turn by the tick pipeline; everything
// else is plain bookkeeping mutated in place between ticks.
type Game struct {
	Seed       uint64
	Difficulty hazard.Difficulty
	Turn       int

	Field    *field.Field
	Entities *entities.Registry

	Scheduler *hazard.Scheduler
	Journal   *journal.Journal

	Player hazard.PlayerState

	// Integrity is the external win/loss scalar: it bleeds while
	// breaches vent and decks collapse, and recovers a little when
	// relays are repaired.
	Integrity int

	// Collapses counts every deck section lost over the whole run.
	Collapses int
}

// NewGame returns a run with full health and integrity and nothing
// built yet; setup fills in the field and entities.
func NewGame(seed uint64, difficulty hazard.Difficulty) *Game {
	return &Game{
		Seed:       seed,
		Difficulty: difficulty,
		Scheduler:  hazard.NewScheduler(),
		Journal:    journal.New(),
		Player:     hazard.PlayerState{HP: hazard.MaxHP},
		Integrity:  MaxIntegrity,
	}
}

// BeginTurn opens the next turn. Crew actions applied between
// BeginTurn and the tick that resolves the turn carry its number in
// the journal.
func (g *Game) BeginTurn() {
	g.Turn++
}

// Context returns the simulation context for the current turn.
func (g *Game) Context() hazard.Context {
	return hazard.Context{Seed: g.Seed, Turn: g.Turn, Difficulty: g.Difficulty}
}

// AdjustIntegrity moves station integrity by delta, clamped to
// 0..MaxIntegrity.
func (g *Game) AdjustIntegrity(delta int) {
	g.Integrity += delta
	if g.Integrity < 0 {
		g.Integrity = 0
	}
	if g.Integrity > MaxIntegrity {
		g.Integrity = MaxIntegrity
	}
}

// Alive reports whether the player can still act.
func (g *Game) Alive() bool {
	return g.Player.HP > 0
}

// StationLost reports whether integrity has bled out entirely.
func (g *Game) StationLost() bool {
	return g.Integrity <= 0
}

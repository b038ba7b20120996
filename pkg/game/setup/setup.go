// Package setup builds a playable station from the deck plan: it
// carves the compartments and corridor into a fresh field, registers
// the rooms, drops the initial hazard fixtures and parks the player
// in the medical bay.
package setup

import (
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/deck"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"
	"derelict/pkg/game/levelgen"
	"derelict/pkg/game/state"
)

// BuildStation populates g with a carved field, the initial entity
// registry and the player's starting position, all derived from
// g.Seed. The same seed always builds the same station.
func BuildStation(g *state.Game) {
	plan := deck.Standard()
	f := carvePlan(plan)

	start := startPosition(plan, f)

	reg := entities.NewRegistry()
	avoid := mapset.New[world.Point]()
	avoid.Put(start)
	levelgen.PlaceHazardSources(g.Seed, f, reg, plan, &avoid)

	g.Field = f
	g.Entities = reg
	g.Player.Pos = start

	g.Journal.Record(g.Turn, journal.KindInfo,
		gotext.Get("You come to on a cot in the medical bay. The deck hums wrong."))
}

// startPosition returns the player's starting cell: the centre of
// the first safe room, or the corridor centre when the plan has no
// safe room at all.
func startPosition(plan deck.Plan, f *field.Field) world.Point {
	for _, r := range plan.Rooms {
		if r.Safe && f.At(r.Bounds.Center()).Walkable {
			return r.Bounds.Center()
		}
	}
	return plan.Spine.Center()
}

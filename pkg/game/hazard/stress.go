package hazard

import (
	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"

	"github.com/leonelquinteros/gotext"
)

// StepStress advances structural stress by one turn and collapses
// cells that have spent too long over the threshold. Collapsed cells
// become impassable and gain a rubble marker in the draft registry.
// The player's own cell never collapses under them: its counter
// holds, and the deck gives way the first turn they are elsewhere.
// Returns the new field and the number of collapses this turn.
func StepStress(ctx Context, prior *field.Field, reg *entities.Registry, playerPos world.Point, jl *journal.Journal) (*field.Field, int) {
	next := prior.Next()

	gain := make(map[world.Point]int)
	prior.EachCell(func(p world.Point, c field.Cell) {
		if c.Stress < StressSpreadMin {
			return
		}
		for _, n := range p.Neighbours() {
			if prior.At(n).Walkable {
				gain[n] += StressSpreadRate
			}
		}
	})

	collapses := 0
	prior.EachCell(func(p world.Point, c field.Cell) {
		stress := clampLevel(c.Stress + gain[p])
		turns := c.StressTurns

		switch {
		case reg.Reinforced(p):
			turns = 0
		case stress >= CollapseThreshold:
			turns++
			if turns >= CollapseTurns {
				if p == playerPos {
					turns = CollapseTurns
				} else {
					mc := next.Mut(p)
					mc.Stress = 0
					mc.StressTurns = 0
					mc.Walkable = false
					if reg.RubbleAt(p) == nil {
						reg.AddRubble(p)
					}
					collapses++
					jl.RecordAt(ctx.Turn, journal.KindStructure, p, gotext.Get("The deck at %s gives way", p))
					return
				}
			}
		default:
			turns = 0
		}

		if stress != c.Stress || turns != c.StressTurns {
			mc := next.Mut(p)
			mc.Stress = stress
			mc.StressTurns = turns
		}
	})

	return next, collapses
}

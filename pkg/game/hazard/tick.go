package hazard

import (
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"
)

// Result bundles everything one turn of simulation produced.
type Result struct {
	Field     *field.Field
	Entities  *entities.Registry
	Collapses int
	Outcome   Outcome
}

// Tick runs the full pipeline for one turn in fixed stage order:
// heat and smoke, pressure, radiation, structural stress, the
// deterioration scheduler, then damage resolution. Reordering the
// stages changes game balance and breaks replay, so nothing here is
// configurable. The prior field and registry are left untouched;
// every stage writes into a fresh generation consumed by the stage
// after it.
func Tick(ctx Context, prior *field.Field, reg *entities.Registry, sched *Scheduler, pl PlayerState, jl *journal.Journal) Result {
	draft := reg.Next()

	f := StepHeatSmoke(ctx, prior, draft)
	f = StepPressure(ctx, f, draft, jl)
	f = StepRadiation(ctx, f, draft)

	var collapses int
	f, collapses = StepStress(ctx, f, draft, pl.Pos, jl)

	f = sched.Step(ctx, f, draft, jl)
	out := ResolveDamage(ctx, f, pl, jl)

	return Result{Field: f, Entities: draft, Collapses: collapses, Outcome: out}
}

// Package hazard is the environmental simulation core: five hazard
// fields diffusing over the station lattice, a deterioration
// scheduler escalating them over time, and a damage resolver turning
// the player's tile readings into HP changes. Every turn the tick
// pipeline reads one generation of the field and produces the next;
// the incoming generation is never mutated.
package hazard

// Heat and smoke tuning. Spread deliberately outruns decay so an
// unattended hot zone keeps growing turn over turn.
const (
	HeatSourceRate  = 8
	HeatSourceCap   = 95
	SmokeSourceRate = 6
	SmokeSourceCap  = 80

	HeatSpreadMin   = 40
	HeatSpreadRate  = 12
	SmokeSpreadMin  = 30
	SmokeSpreadRate = 8

	HeatDecayRate  = 2
	SmokeDecayRate = 2

	// Smoke at or above this level leaves soot behind.
	SootThreshold = 60

	// Pressure bands for the spread modifier and the decay factor.
	VacuumCutoff  = 20
	ThinAirCutoff = 60
)

// Pressure tuning.
const (
	BreachDrain          = 15
	PressureSpreadRate   = 10
	PressureRecoveryRate = 1
	BreachRecoveryRange  = 4
	BulkheadThreshold    = 30
	SafePressure         = 70
)

// Radiation tuning.
const (
	RadiationSourceRate  = 10
	RadiationSourceCap   = 90
	RadiationSpreadRange = 3
	RadiationSpreadRate  = 6
	RadiationDecayRate   = 1
)

// Structural stress tuning.
const (
	StressSpreadMin   = 60
	StressSpreadRate  = 4
	CollapseThreshold = 80
	CollapseTurns     = 3
)

// Deterioration scheduler tuning.
const (
	MilestoneWarning  = 60
	MilestoneCascade  = 150
	MilestoneCritical = 300

	MilestoneBreachPressure = 10

	IgnitionLimit      = 3
	IgnitionRange      = 2
	IgnitionHeatMin    = 60
	IgnitionSmokeFloor = 50
)

// Damage resolver tuning.
const (
	MaxHP = 100

	PressureDamageThreshold = 25
	PressureDamageBase      = 10

	PainThreshold  = 50
	HeatDamageBase = 6

	SmokeDamageThreshold = 60
	SmokeDamage          = 3

	RadiationDamageThreshold = 40
	RadiationDamage          = 4

	HealRate = 2
)

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// riseToward lifts v by rate up to cap. A value already past the cap
// is left where it is, never pulled down.
func riseToward(v, rate, cap int) int {
	if v >= cap {
		return v
	}
	if v+rate > cap {
		return cap
	}
	return v + rate
}

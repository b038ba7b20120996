package hazard

import (
	"math"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"

	"github.com/leonelquinteros/gotext"
)

// Sensors lists the player's equipped hazard sensors. Each one
// blunts one damage source.
type Sensors struct {
	Atmospheric bool
	Thermal     bool
	Radiation   bool
}

// Cause names which hazard, if any, acted on the player this turn.
type Cause uint8

const (
	CauseNone Cause = iota
	CausePressure
	CauseHeat
	CauseSmoke
	CauseRadiation
	CauseHealing
)

var causeNames = map[Cause]string{
	CauseNone:      "none",
	CausePressure:  "pressure",
	CauseHeat:      "heat",
	CauseSmoke:     "smoke",
	CauseRadiation: "radiation",
	CauseHealing:   "healing",
}

// String returns the display name for the cause.
func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return "unknown"
}

// Severity grades an outcome by the player's remaining health.
type Severity uint8

const (
	SeverityNotice Severity = iota
	SeverityCaution
	SeverityWarning
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityNotice:   "notice",
	SeverityCaution:  "caution",
	SeverityWarning:  "warning",
	SeverityCritical: "critical",
}

// String returns the display name for the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

func severityFor(hp int) Severity {
	switch {
	case hp*4 < MaxHP:
		return SeverityCritical
	case hp*2 < MaxHP:
		return SeverityWarning
	case hp*4 < MaxHP*3:
		return SeverityCaution
	default:
		return SeverityNotice
	}
}

// PlayerState is the slice of player data the simulation reads.
type PlayerState struct {
	Pos     world.Point
	HP      int
	Sensors Sensors
}

// Outcome reports what the resolver did to the player this turn.
type Outcome struct {
	HP       int
	Delta    int
	Cause    Cause
	Severity Severity
	Dead     bool
}

// ResolveDamage converts the hazard readings on the player's cell
// into an HP change. Exactly one branch applies per turn, the most
// acute hazard first; a kill stops everything after it.
func ResolveDamage(ctx Context, f *field.Field, pl PlayerState, jl *journal.Journal) Outcome {
	c := f.At(pl.Pos)
	mult := ctx.Difficulty.Multiplier()

	switch {
	case c.Pressure < PressureDamageThreshold:
		base := PressureDamageBase
		if pl.Sensors.Atmospheric {
			base /= 2
		}
		dmg := int(math.Ceil(float64(base) * mult))
		return applyDamage(ctx, jl, pl, dmg, CausePressure, "Vacuum claws at your suit for %d")

	case c.Heat >= PainThreshold:
		intensity := float64(c.Heat-PainThreshold) / 60
		if intensity > 1 {
			intensity = 1
		}
		raw := float64(HeatDamageBase) * (0.5 + 1.5*intensity) * mult
		if pl.Sensors.Thermal {
			raw *= 0.6
		}
		dmg := int(math.Ceil(raw))
		return applyDamage(ctx, jl, pl, dmg, CauseHeat, "Searing heat burns you for %d")

	case c.Smoke > SmokeDamageThreshold:
		return applyDamage(ctx, jl, pl, SmokeDamage, CauseSmoke, "Toxic fumes sear your lungs for %d")

	case c.Radiation > RadiationDamageThreshold:
		dmg := RadiationDamage
		if !pl.Sensors.Radiation {
			dmg *= 2
		}
		return applyDamage(ctx, jl, pl, dmg, CauseRadiation, "Radiation sickness takes hold for %d")

	case pl.HP < MaxHP:
		hp := pl.HP + HealRate
		if hp > MaxHP {
			hp = MaxHP
		}
		return Outcome{HP: hp, Delta: hp - pl.HP, Cause: CauseHealing, Severity: severityFor(hp)}

	default:
		return Outcome{HP: pl.HP, Cause: CauseNone, Severity: severityFor(pl.HP)}
	}
}

func applyDamage(ctx Context, jl *journal.Journal, pl PlayerState, dmg int, cause Cause, template string) Outcome {
	hp := pl.HP - dmg
	if hp < 0 {
		hp = 0
	}
	out := Outcome{HP: hp, Delta: hp - pl.HP, Cause: cause, Severity: severityFor(hp), Dead: hp == 0}
	jl.RecordAt(ctx.Turn, journal.KindDamage, pl.Pos, gotext.Get(template, dmg))
	if out.Dead {
		jl.RecordAt(ctx.Turn, journal.KindDamage, pl.Pos, gotext.Get("Your vision fades. The station claims another crew member"))
	}
	return out
}

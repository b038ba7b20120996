package hazard

import (
	"math"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"

	"github.com/zyedidia/generic/mapset"
)

// StepHeatSmoke advances the heat and smoke fields by one turn.
// Overheating relays inject heat and smoke into their own cells and
// never cool; hot cells project heat onto walkable neighbours,
// throttled by the neighbour's air pressure; everything else decays.
// Heavy smoke deposits soot as it passes.
func StepHeatSmoke(ctx Context, prior *field.Field, reg *entities.Registry) *field.Field {
	next := prior.Next()

	sources := mapset.New[world.Point]()
	for i := range reg.Relays {
		if reg.Relays[i].Active() {
			sources.Put(reg.Relays[i].Pos)
		}
	}

	heatGain := make(map[world.Point]int)
	smokeGain := make(map[world.Point]int)
	prior.EachCell(func(p world.Point, c field.Cell) {
		if c.Heat >= HeatSpreadMin {
			for _, n := range p.Neighbours() {
				nc := prior.At(n)
				if !nc.Walkable {
					continue
				}
				amount := int(math.Ceil(float64(HeatSpreadRate) * float64(c.Heat) / 100 * pressureModifier(nc.Pressure)))
				if amount > 0 {
					heatGain[n] += amount
				}
			}
		}
		if c.Smoke >= SmokeSpreadMin {
			amount := int(math.Ceil(float64(SmokeSpreadRate) * float64(c.Smoke) / 100))
			if amount > SmokeSpreadRate {
				amount = SmokeSpreadRate
			}
			for _, n := range p.Neighbours() {
				if prior.At(n).Walkable {
					smokeGain[n] += amount
				}
			}
		}
	})

	prior.EachCell(func(p world.Point, c field.Cell) {
		heat, smoke := c.Heat, c.Smoke
		if sources.Has(p) {
			heat = riseToward(heat, HeatSourceRate, HeatSourceCap)
			smoke = riseToward(smoke, SmokeSourceRate, SmokeSourceCap)
		} else {
			heat = clampLevel(heat - HeatDecayRate*heatDecayFactor(c.Pressure))
			smoke = clampLevel(smoke - SmokeDecayRate)
		}
		heat = clampLevel(heat + heatGain[p])
		smoke = clampLevel(smoke + smokeGain[p])

		dirt := c.Dirt
		if smoke >= SootThreshold {
			dirt = clampLevel(dirt + 1)
		}

		if heat != c.Heat || smoke != c.Smoke || dirt != c.Dirt {
			mc := next.Mut(p)
			mc.Heat = heat
			mc.Smoke = smoke
			mc.Dirt = dirt
		}
	})

	return next
}

// pressureModifier throttles heat transfer by the receiving cell's
// air pressure: fire does not conduct into vacuum.
func pressureModifier(pressure int) float64 {
	switch {
	case pressure < VacuumCutoff:
		return 0
	case pressure < ThinAirCutoff:
		return 0.5
	default:
		return 1
	}
}

// heatDecayFactor speeds cooling in depressurised cells: no air, no
// fire to sustain the temperature.
func heatDecayFactor(pressure int) int {
	switch {
	case pressure < VacuumCutoff:
		return 3
	case pressure < ThinAirCutoff:
		return 2
	default:
		return 1
	}
}

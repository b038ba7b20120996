package hazard

import (
	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"

	"github.com/leonelquinteros/gotext"
)

// StepPressure advances the pressure field by one turn. Unsealed
// breaches vent their cells, neighbouring cells equalise with a
// small transfer loss, stable zones slowly repressurise, open
// airlocks are pinned to vacuum, and emergency bulkheads cycle on
// the resulting readings.
func StepPressure(ctx Context, prior *field.Field, reg *entities.Registry, jl *journal.Journal) *field.Field {
	next := prior.Next()

	breaches := reg.UnsealedBreachPositions()

	delta := make(map[world.Point]int)
	for _, bp := range breaches {
		delta[bp] -= BreachDrain
	}

	prior.EachCell(func(p world.Point, c field.Cell) {
		if !c.Walkable {
			return
		}
		for _, n := range p.Neighbours() {
			nc := prior.At(n)
			if !nc.Walkable || nc.Pressure <= c.Pressure {
				continue
			}
			t := (nc.Pressure - c.Pressure) / 3
			if t > PressureSpreadRate {
				t = PressureSpreadRate
			}
			if t <= 0 {
				continue
			}
			// The donor loses t, the receiver banks t-1: venting a
			// corridor is never lossless.
			delta[p] += t - 1
			delta[n] -= t
		}
	})

	nearBreach := func(p world.Point) bool {
		for _, bp := range breaches {
			if p.Manhattan(bp) <= BreachRecoveryRange {
				return true
			}
		}
		return false
	}

	prior.EachCell(func(p world.Point, c field.Cell) {
		if !c.Walkable {
			return
		}
		pressure := clampLevel(c.Pressure + delta[p])
		if pressure > 0 && pressure < 100 && !nearBreach(p) {
			pressure += PressureRecoveryRate
		}
		if c.Terrain == field.Airlock && c.AirlockOpen {
			pressure = 0
		}
		if pressure != c.Pressure {
			next.Mut(p).Pressure = pressure
		}
	})

	cycleBulkheads(ctx, prior, next, reg, jl)

	return next
}

// cycleBulkheads drops emergency doors next to depressurised cells
// and releases doors whose surroundings have stabilised. Release
// candidates are judged from the terrain as it stood before this
// turn, so a door cannot slam and release in the same tick.
func cycleBulkheads(ctx Context, prior, next *field.Field, reg *entities.Registry, jl *journal.Journal) {
	var toSeal []world.Point
	var toOpen []world.Point

	prior.EachCell(func(p world.Point, c field.Cell) {
		switch c.Terrain {
		case field.Door:
			for _, n := range p.Neighbours() {
				nc := next.At(n)
				if nc.Walkable && nc.Pressure < BulkheadThreshold {
					toSeal = append(toSeal, p)
					break
				}
			}
		case field.LockedDoor:
			if reg.HazardSourceAt(p) {
				return
			}
			stable := true
			for _, n := range p.Neighbours() {
				nc := next.At(n)
				if nc.Walkable && nc.Pressure < SafePressure {
					stable = false
					break
				}
			}
			if stable {
				toOpen = append(toOpen, p)
			}
		}
	})

	for _, p := range toSeal {
		c := next.Mut(p)
		c.Terrain = field.LockedDoor
		c.Walkable = false
		jl.RecordAt(ctx.Turn, journal.KindStructure, p, gotext.Get("Emergency bulkhead slams shut at %s", p))
	}
	for _, p := range toOpen {
		c := next.Mut(p)
		c.Terrain = field.Door
		c.Walkable = true
		jl.RecordAt(ctx.Turn, journal.KindStructure, p, gotext.Get("Bulkhead at %s releases as pressure stabilises", p))
	}
}

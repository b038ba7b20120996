package hazard

import (
	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"

	"github.com/zyedidia/generic/mapset"
)

// StepRadiation advances the radiation field by one turn. Unlike
// heat, radiation ignores walls: every irradiated cell projects onto
// all cells within range with distance falloff. Activated shield
// generators run last and force covered cells to exactly zero, so
// the same turn's spread cannot defeat them.
func StepRadiation(ctx Context, prior *field.Field, reg *entities.Registry) *field.Field {
	next := prior.Next()

	sources := mapset.New[world.Point]()
	for i := range reg.Sources {
		sources.Put(reg.Sources[i].Pos)
	}

	gain := make(map[world.Point]int)
	prior.EachCell(func(p world.Point, c field.Cell) {
		if c.Radiation <= 0 {
			return
		}
		for dy := -RadiationSpreadRange; dy <= RadiationSpreadRange; dy++ {
			for dx := -RadiationSpreadRange; dx <= RadiationSpreadRange; dx++ {
				n := world.Point{X: p.X + dx, Y: p.Y + dy}
				dist := p.Manhattan(n)
				if dist == 0 || dist > RadiationSpreadRange || !prior.InBounds(n) {
					continue
				}
				amount := RadiationSpreadRate * c.Radiation / 100 / dist
				if amount < 1 {
					amount = 1
				}
				gain[n] += amount
			}
		}
	})

	prior.EachCell(func(p world.Point, c field.Cell) {
		rad := c.Radiation
		if sources.Has(p) {
			rad = riseToward(rad, RadiationSourceRate, RadiationSourceCap)
		} else if rad > 0 {
			rad = clampLevel(rad - RadiationDecayRate)
		}
		rad = clampLevel(rad + gain[p])
		if reg.Shielded(p) {
			rad = 0
		}
		if rad != c.Radiation {
			next.Mut(p).Radiation = rad
		}
	})

	return next
}

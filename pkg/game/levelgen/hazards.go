package levelgen

import (
	"github.com/zyedidia/generic/mapset"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/deck"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
)

// Pre-aged readings: the station was failing long before the player
// docked, so the sources do not start cold.
const (
	startingRelayHeat      = 55
	startingRelaySmoke     = 35
	startingBreachPressure = 40
	startingRadiation      = 40
)

// PlaceHazardSources dresses the deck with its initial failures:
// overheating relays in the reactor bay and engineering, an open
// breach in the cargo hold, a radiation leak and its dormant shield
// generator in the lab, and uninstalled reinforcement panels in the
// crew sections. Placed cells go into the avoid set so later
// placement never stacks fixtures.
func PlaceHazardSources(seed uint64, f *field.Field, reg *entities.Registry, plan deck.Plan, avoid *mapset.Set[world.Point]) {
	ordinal := 0
	place := func(kind field.RoomKind) (world.Point, bool) {
		idx := plan.RoomIndexByKind(kind)
		if idx < 0 {
			return world.Point{}, false
		}
		ordinal++
		p, ok := pickCell(seed, ordinal, roomFloor(f, plan.Rooms[idx].Bounds, avoid))
		if ok {
			avoid.Put(p)
		}
		return p, ok
	}

	if p, ok := place(field.KindReactor); ok {
		reg.AddRelay(p, true)
		c := f.Mut(p)
		c.Heat = startingRelayHeat
		c.Smoke = startingRelaySmoke
	}
	if p, ok := place(field.KindEngineering); ok {
		reg.AddRelay(p, true)
		c := f.Mut(p)
		c.Heat = startingRelayHeat
		c.Smoke = startingRelaySmoke
	}
	if p, ok := place(field.KindCargo); ok {
		reg.AddBreach(p, false)
		f.Mut(p).Pressure = startingBreachPressure
	}
	if p, ok := place(field.KindLab); ok {
		reg.AddRadiationSource(p)
		f.Mut(p).Radiation = startingRadiation
	}
	if p, ok := place(field.KindLab); ok {
		reg.AddShieldGenerator(p, entities.DefaultShieldRadius)
	}
	if p, ok := place(field.KindQuarters); ok {
		reg.AddReinforcementPanel(p)
	}
	if p, ok := place(field.KindHydroponics); ok {
		reg.AddReinforcementPanel(p)
	}
}

// Package deck defines the fixed layout of the station deck the
// simulation runs on: which compartments exist, where their doors
// open onto the corridor spine, and which of them count as safe
// harbours the escalation never ruptures. The plan is pure data;
// setup carves it into a live field.
package deck

import (
	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
)

// RoomPlan describes one compartment before it is carved: its
// interior bounds, the door cell linking it to the corridor, and
// whether the deterioration milestones must leave it alone.
type RoomPlan struct {
	Kind   field.RoomKind
	Bounds world.Rect
	DoorAt world.Point
	Safe   bool
}

// Plan is the whole deck: dimensions, the corridor spine, the outer
// airlock and every compartment. Cells not covered by any of these
// stay solid wall.
type Plan struct {
	Width   int
	Height  int
	Spine   world.Rect
	Airlock world.Point
	Rooms   []RoomPlan
}

// RoomIndexByKind returns the index of the first room of the given
// kind, or -1 when the plan has none.
func (p Plan) RoomIndexByKind(k field.RoomKind) int {
	for i, r := range p.Rooms {
		if r.Kind == k {
			return i
		}
	}
	return -1
}

// Standard returns the derelict deck every run is carved from: a
// single corridor spine with four compartments on each side and an
// airlock at the western end. The hazardous compartments (reactor,
// engineering, cargo, lab) sit north of the spine and west of the
// quarters; the medical bay and the bridge are safe.
func Standard() Plan {
	room := func(k field.RoomKind, x0, y0, x1, y1, doorX, doorY int, safe bool) RoomPlan {
		return RoomPlan{
			Kind:   k,
			Bounds: world.NewRect(world.Point{X: x0, Y: y0}, world.Point{X: x1, Y: y1}),
			DoorAt: world.Point{X: doorX, Y: doorY},
			Safe:   safe,
		}
	}
	return Plan{
		Width:   24,
		Height:  17,
		Spine:   world.NewRect(world.Point{X: 1, Y: 8}, world.Point{X: 22, Y: 8}),
		Airlock: world.Point{X: 0, Y: 8},
		Rooms: []RoomPlan{
			room(field.KindReactor, 2, 2, 6, 6, 4, 7, false),
			room(field.KindEngineering, 8, 2, 12, 6, 10, 7, false),
			room(field.KindLab, 14, 2, 18, 6, 16, 7, false),
			room(field.KindCargo, 20, 2, 22, 6, 21, 7, false),
			room(field.KindQuarters, 2, 10, 6, 14, 4, 9, false),
			room(field.KindMedbay, 8, 10, 12, 14, 10, 9, true),
			room(field.KindHydroponics, 14, 10, 18, 14, 16, 9, false),
			room(field.KindBridge, 20, 10, 22, 14, 21, 9, true),
		},
	}
}

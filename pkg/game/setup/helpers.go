package setup

import (
	"derelict/pkg/engine/world"
	"derelict/pkg/game/deck"
	"derelict/pkg/game/field"
)

// carvePlan turns the deck plan into a live field: corridor spine,
// airlock, room interiors and the door cells joining each room to
// the spine. Every carved cell gets the room ID it belongs to; door
// cells count as part of their room so journal text can name where
// a bulkhead dropped.
func carvePlan(plan deck.Plan) *field.Field {
	f := field.New(plan.Width, plan.Height)

	plan.Spine.Each(func(p world.Point) {
		f.Carve(p, field.Corridor)
	})
	f.Carve(plan.Airlock, field.Airlock)

	rooms := make([]field.Room, len(plan.Rooms))
	for i, rp := range plan.Rooms {
		rooms[i] = field.Room{
			ID:   i,
			Name: rp.Kind.String(),
			Kind: rp.Kind,
			Safe: rp.Safe,
		}
		rp.Bounds.Each(func(p world.Point) {
			f.Carve(p, field.Floor)
			f.Mut(p).RoomID = i
		})
		f.Carve(rp.DoorAt, field.Door)
		f.Mut(rp.DoorAt).RoomID = i
	}
	f.Rooms = rooms

	return f
}

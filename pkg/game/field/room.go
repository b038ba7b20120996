package field

// RoomKind classifies what a compartment was used for before the
// station was abandoned. The kind drives fixture placement and the
// names that show up in the journal.
type RoomKind uint8

const (
	KindQuarters RoomKind = iota
	KindEngineering
	KindReactor
	KindMedbay
	KindCargo
	KindLab
	KindBridge
	KindHydroponics
)

var roomKindNames = map[RoomKind]string{
	KindQuarters:    "Crew Quarters",
	KindEngineering: "Engineering",
	KindReactor:     "Reactor Bay",
	KindMedbay:      "Medical Bay",
	KindCargo:       "Cargo Hold",
	KindLab:         "Research Lab",
	KindBridge:      "Bridge",
	KindHydroponics: "Hydroponics",
}

// String returns the display name for the room kind.
func (k RoomKind) String() string {
	if name, ok := roomKindNames[k]; ok {
		return name
	}
	return "Unknown Section"
}

// Room is a named compartment of the station. Safe rooms are left
// alone by the escalation milestones so the player always has
// somewhere to retreat to.
type Room struct {
	ID   int
	Name string
	Kind RoomKind
	Safe bool
}

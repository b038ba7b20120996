// Package field holds the station lattice: per-cell terrain and the
// hazard levels the simulation reads and writes each turn.
package field

// Terrain is the structural kind of a cell.
type Terrain uint8

const (
	Wall Terrain = iota
	Floor
	Corridor
	Door
	LockedDoor
	Airlock
)

var terrainNames = map[Terrain]string{
	Wall:       "wall",
	Floor:      "floor",
	Corridor:   "corridor",
	Door:       "door",
	LockedDoor: "locked door",
	Airlock:    "airlock",
}

// String returns the display name for the terrain.
func (t Terrain) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "unknown"
}

// Walkable reports whether hazards and crew can pass through this
// terrain. Locked doors count as solid so a dropped bulkhead really
// does contain a fire.
func (t Terrain) Walkable() bool {
	switch t {
	case Floor, Corridor, Door, Airlock:
		return true
	default:
		return false
	}
}

// Cell is one tile of the station. Walkable is stored rather than
// derived from terrain because collapses and bulkheads toggle it at
// runtime. Hazard levels are integers clamped to 0..100; StressTurns
// counts consecutive turns the cell has spent at or above the
// collapse threshold and Dirt accumulates soot left behind by heavy
// smoke.
type Cell struct {
	Terrain     Terrain
	Walkable    bool
	AirlockOpen bool
	RoomID      int

	Heat        int
	Smoke       int
	Pressure    int
	Radiation   int
	Stress      int
	StressTurns int
	Dirt        int
}

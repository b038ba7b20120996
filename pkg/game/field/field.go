package field

import (
	"derelict/pkg/engine/world"
)

// NoRoom is the RoomID of cells that belong to no compartment.
const NoRoom = -1

// Field is one generation of the station lattice. Ticks never edit a
// field in place: the simulation reads one generation and writes the
// next, so Next hands out a copy-on-write snapshot. Rooms are fixed
// at build time and shared between generations.
type Field struct {
	grid  *world.Grid[Cell]
	Rooms []Room
}

// New returns a field of solid wall. Setup carves compartments out
// of it with Carve.
func New(width, height int) *Field {
	f := &Field{grid: world.NewGrid[Cell](width, height)}
	f.grid.Each(func(p world.Point, _ Cell) {
		c := f.grid.Mut(p)
		c.Terrain = Wall
		c.RoomID = NoRoom
	})
	return f
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.grid.Width()
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.grid.Height()
}

// InBounds reports whether p lies on the field.
func (f *Field) InBounds(p world.Point) bool {
	return f.grid.InBounds(p)
}

// At returns the cell at p. Out-of-bounds points read as solid wall
// so hazard passes can probe neighbours without bounds checks.
func (f *Field) At(p world.Point) Cell {
	if !f.grid.InBounds(p) {
		return Cell{Terrain: Wall, RoomID: NoRoom}
	}
	return f.grid.At(p)
}

// Mut returns a writable pointer to the cell at p, or nil when p is
// out of bounds.
func (f *Field) Mut(p world.Point) *Cell {
	return f.grid.Mut(p)
}

// Next returns the next generation of the field. Values match the
// current generation until written; rooms are shared.
func (f *Field) Next() *Field {
	return &Field{grid: f.grid.Next(), Rooms: f.Rooms}
}

// EachCell calls fn for every cell in row-major order.
func (f *Field) EachCell(fn func(p world.Point, c Cell)) {
	f.grid.Each(fn)
}

// Carve sets the terrain at p, resetting walkability to the terrain
// default and pressurising the cell when it can be entered. Airlocks
// start shut.
func (f *Field) Carve(p world.Point, t Terrain) {
	c := f.grid.Mut(p)
	if c == nil {
		return
	}
	c.Terrain = t
	c.Walkable = t.Walkable()
	c.AirlockOpen = false
	if c.Walkable {
		c.Pressure = 100
	} else {
		c.Pressure = 0
	}
}

// WalkableNeighbours returns the orthogonal neighbours of p that can
// currently be entered, in North, East, South, West order.
func (f *Field) WalkableNeighbours(p world.Point) []world.Point {
	out := make([]world.Point, 0, 4)
	for _, n := range p.Neighbours() {
		if f.InBounds(n) && f.At(n).Walkable {
			out = append(out, n)
		}
	}
	return out
}

// RoomAt returns the room containing p, or nil when p lies in a
// corridor or wall.
func (f *Field) RoomAt(p world.Point) *Room {
	id := f.At(p).RoomID
	if id < 0 || id >= len(f.Rooms) {
		return nil
	}
	return &f.Rooms[id]
}

// RoomName returns a human-readable location for p, falling back to
// the terrain name outside any compartment.
func (f *Field) RoomName(p world.Point) string {
	if r := f.RoomAt(p); r != nil {
		return r.Name
	}
	return f.At(p).Terrain.String()
}

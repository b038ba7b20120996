package hazard

import (
	"testing"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
)

// openField returns a field of open floor at full pressure.
func openField(t *testing.T, width, height int) *field.Field {
	t.Helper()
	f := field.New(width, height)
	f.EachCell(func(p world.Point, _ field.Cell) {
		f.Carve(p, field.Floor)
	})
	return f
}

func testContext(turn int) Context {
	return Context{Seed: 99, Turn: turn, Difficulty: Normal}
}

// snapshotCells copies every cell for later comparison.
func snapshotCells(f *field.Field) map[world.Point]field.Cell {
	cells := make(map[world.Point]field.Cell)
	f.EachCell(func(p world.Point, c field.Cell) {
		cells[p] = c
	})
	return cells
}

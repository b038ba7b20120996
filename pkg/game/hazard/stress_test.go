package hazard

import (
	"testing"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"
)

var farCorner = world.Point{X: 0, Y: 0}

func TestStepStress_CollapseOnExactThirdTick(t *testing.T) {
	f := openField(t, 8, 8)
	weak := world.Point{X: 3, Y: 3}
	f.Mut(weak).Stress = 85

	reg := entities.NewRegistry()
	for turn := 1; turn <= 2; turn++ {
		reg = reg.Next()
		f, _ = StepStress(testContext(turn), f, reg, farCorner, journal.New())
		if got := f.At(weak).StressTurns; got != turn {
			t.Fatalf("turn %d: counter = %d, want %d", turn, got, turn)
		}
		if len(reg.Rubble) != 0 {
			t.Fatalf("turn %d: collapsed early", turn)
		}
	}

	reg = reg.Next()
	var collapses int
	f, collapses = StepStress(testContext(3), f, reg, farCorner, journal.New())

	if collapses != 1 {
		t.Fatalf("collapses = %d, want 1", collapses)
	}
	c := f.At(weak)
	if c.Walkable || c.Stress != 0 || c.StressTurns != 0 {
		t.Errorf("collapsed cell = walkable %v stress %d counter %d, want false 0 0", c.Walkable, c.Stress, c.StressTurns)
	}
	if len(reg.Rubble) != 1 || reg.RubbleAt(weak) == nil {
		t.Errorf("rubble count = %d, want exactly one at %v", len(reg.Rubble), weak)
	}
}

func TestStepStress_RubbleNeverDuplicated(t *testing.T) {
	f := openField(t, 8, 8)
	weak := world.Point{X: 3, Y: 3}
	c := f.Mut(weak)
	c.Stress = 85
	c.StressTurns = 2

	reg := entities.NewRegistry()
	reg.AddRubble(weak)

	reg = reg.Next()
	f, collapses := StepStress(testContext(3), f, reg, farCorner, journal.New())

	if collapses != 1 {
		t.Fatalf("collapses = %d, want 1", collapses)
	}
	if len(reg.Rubble) != 1 {
		t.Errorf("rubble count = %d, want 1", len(reg.Rubble))
	}
	if f.At(weak).Walkable {
		t.Error("collapsed cell still walkable")
	}
}

func TestStepStress_ReinforcementBlocksCollapse(t *testing.T) {
	f := openField(t, 8, 8)
	weak := world.Point{X: 3, Y: 3}
	f.Mut(weak).Stress = 90

	reg := entities.NewRegistry()
	panel := reg.AddReinforcementPanel(world.Point{X: 3, Y: 4})
	panel.Install()

	for turn := 1; turn <= 5; turn++ {
		reg = reg.Next()
		f, _ = StepStress(testContext(turn), f, reg, farCorner, journal.New())
	}

	c := f.At(weak)
	if !c.Walkable || c.StressTurns != 0 {
		t.Errorf("braced cell = walkable %v counter %d, want true 0", c.Walkable, c.StressTurns)
	}
	if len(reg.Rubble) != 0 {
		t.Errorf("rubble count = %d, want 0", len(reg.Rubble))
	}
}

func TestStepStress_PlayerCellWaitsForVacancy(t *testing.T) {
	f := openField(t, 8, 8)
	weak := world.Point{X: 3, Y: 3}
	f.Mut(weak).Stress = 85

	reg := entities.NewRegistry()
	for turn := 1; turn <= 5; turn++ {
		reg = reg.Next()
		f, _ = StepStress(testContext(turn), f, reg, weak, journal.New())
	}
	c := f.At(weak)
	if !c.Walkable || len(reg.Rubble) != 0 {
		t.Fatal("deck collapsed under the player")
	}
	if c.StressTurns != CollapseTurns {
		t.Errorf("held counter = %d, want %d", c.StressTurns, CollapseTurns)
	}

	reg = reg.Next()
	f, collapses := StepStress(testContext(6), f, reg, farCorner, journal.New())
	if collapses != 1 || len(reg.Rubble) != 1 {
		t.Errorf("collapses = %d rubble = %d after the player left, want 1 and 1", collapses, len(reg.Rubble))
	}
}

func TestStepStress_SpreadOnlyToWalkableNeighbours(t *testing.T) {
	f := openField(t, 8, 8)
	donor := world.Point{X: 1, Y: 1}
	blocked := world.Point{X: 2, Y: 1}
	open := world.Point{X: 1, Y: 2}
	f.Carve(blocked, field.Wall)
	f.Mut(donor).Stress = 60

	reg := entities.NewRegistry()
	f, _ = StepStress(testContext(1), f, reg.Next(), farCorner, journal.New())

	if got := f.At(open).Stress; got != StressSpreadRate {
		t.Errorf("open neighbour stress = %d, want %d", got, StressSpreadRate)
	}
	if got := f.At(blocked).Stress; got != 0 {
		t.Errorf("wall stress = %d, want 0", got)
	}
	if got := f.At(donor).Stress; got != 60 {
		t.Errorf("donor stress = %d, want 60 (stress does not decay)", got)
	}
}

func TestStepStress_CounterResetsBelowThreshold(t *testing.T) {
	f := openField(t, 8, 8)
	weak := world.Point{X: 3, Y: 3}
	f.Mut(weak).Stress = 85

	reg := entities.NewRegistry()
	for turn := 1; turn <= 2; turn++ {
		reg = reg.Next()
		f, _ = StepStress(testContext(turn), f, reg, farCorner, journal.New())
	}
	if got := f.At(weak).StressTurns; got != 2 {
		t.Fatalf("counter = %d, want 2", got)
	}

	f.Mut(weak).Stress = 70
	reg = reg.Next()
	f, _ = StepStress(testContext(3), f, reg, farCorner, journal.New())

	if got := f.At(weak).StressTurns; got != 0 {
		t.Errorf("counter after dropping below threshold = %d, want 0", got)
	}
	if len(reg.Rubble) != 0 {
		t.Error("cell collapsed despite dropping below threshold")
	}
}

package hazard

import (
	"testing"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"
)

var playerPos = world.Point{X: 2, Y: 2}

// damageField carves an open field and applies edit to the player's
// cell.
func damageField(t *testing.T, edit func(*field.Cell)) *field.Field {
	t.Helper()
	f := openField(t, 5, 5)
	edit(f.Mut(playerPos))
	return f
}

func TestResolveDamage_PressureOutranksHeat(t *testing.T) {
	f := damageField(t, func(c *field.Cell) {
		c.Pressure = 10
		c.Heat = 100
	})
	pl := PlayerState{Pos: playerPos, HP: 100}

	out := ResolveDamage(testContext(1), f, pl, journal.New())

	if out.Cause != CausePressure {
		t.Errorf("Cause = %v, want %v", out.Cause, CausePressure)
	}
	if out.HP != 90 {
		t.Errorf("HP = %d, want 90", out.HP)
	}
	if out.Delta != -10 {
		t.Errorf("Delta = %d, want -10", out.Delta)
	}
}

func TestResolveDamage_AtmosphericSensorHalvesVacuum(t *testing.T) {
	f := damageField(t, func(c *field.Cell) { c.Pressure = 0 })
	pl := PlayerState{Pos: playerPos, HP: 100, Sensors: Sensors{Atmospheric: true}}

	out := ResolveDamage(testContext(1), f, pl, journal.New())

	if out.HP != 95 {
		t.Errorf("HP = %d, want 95", out.HP)
	}
}

func TestResolveDamage_PressureBoundary(t *testing.T) {
	f := damageField(t, func(c *field.Cell) { c.Pressure = PressureDamageThreshold })
	pl := PlayerState{Pos: playerPos, HP: 100}

	out := ResolveDamage(testContext(1), f, pl, journal.New())

	if out.Cause != CauseNone {
		t.Errorf("Cause at threshold pressure = %v, want %v", out.Cause, CauseNone)
	}
}

func TestResolveDamage_HeatScalesWithIntensity(t *testing.T) {
	for _, tc := range []struct {
		name    string
		heat    int
		thermal bool
		diff    Difficulty
		want    int
	}{
		{"pain threshold", 50, false, Normal, 3},
		{"hot", 100, false, Normal, 11},
		{"hot with thermal sensor", 100, true, Normal, 7},
		{"saturated intensity", 110, false, Normal, 12},
		{"hot on easy", 100, false, Easy, 6},
		{"hot on hard", 100, false, Hard, 16},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := damageField(t, func(c *field.Cell) { c.Heat = tc.heat })
			pl := PlayerState{Pos: playerPos, HP: 100, Sensors: Sensors{Thermal: tc.thermal}}
			ctx := testContext(1)
			ctx.Difficulty = tc.diff

			out := ResolveDamage(ctx, f, pl, journal.New())

			if out.Cause != CauseHeat {
				t.Fatalf("Cause = %v, want %v", out.Cause, CauseHeat)
			}
			if got := -out.Delta; got != tc.want {
				t.Errorf("heat damage = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolveDamage_DifficultyScalesVacuum(t *testing.T) {
	f := damageField(t, func(c *field.Cell) { c.Pressure = 0 })
	pl := PlayerState{Pos: playerPos, HP: 100}
	ctx := testContext(1)
	ctx.Difficulty = Hard

	out := ResolveDamage(ctx, f, pl, journal.New())

	if out.HP != 85 {
		t.Errorf("HP = %d, want 85", out.HP)
	}
}

func TestResolveDamage_SmokeIsFlat(t *testing.T) {
	f := damageField(t, func(c *field.Cell) { c.Smoke = 70 })
	pl := PlayerState{Pos: playerPos, HP: 100}
	ctx := testContext(1)
	ctx.Difficulty = Hard

	out := ResolveDamage(ctx, f, pl, journal.New())

	if out.Cause != CauseSmoke {
		t.Errorf("Cause = %v, want %v", out.Cause, CauseSmoke)
	}
	if got := -out.Delta; got != SmokeDamage {
		t.Errorf("smoke damage = %d, want %d even on hard", got, SmokeDamage)
	}
}

func TestResolveDamage_RadiationDoublesWithoutSensor(t *testing.T) {
	for _, tc := range []struct {
		name   string
		sensor bool
		want   int
	}{
		{"unshielded", false, 8},
		{"with dosimeter", true, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := damageField(t, func(c *field.Cell) { c.Radiation = 50 })
			pl := PlayerState{Pos: playerPos, HP: 100, Sensors: Sensors{Radiation: tc.sensor}}

			out := ResolveDamage(testContext(1), f, pl, journal.New())

			if got := -out.Delta; got != tc.want {
				t.Errorf("radiation damage = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolveDamage_DeathFloorsAtZero(t *testing.T) {
	f := damageField(t, func(c *field.Cell) { c.Pressure = 0 })
	pl := PlayerState{Pos: playerPos, HP: 8}
	jl := journal.New()

	out := ResolveDamage(testContext(1), f, pl, jl)

	if out.HP != 0 {
		t.Errorf("HP = %d, want 0", out.HP)
	}
	if !out.Dead {
		t.Error("Dead = false, want true")
	}
	if out.Delta != -8 {
		t.Errorf("Delta = %d, want -8", out.Delta)
	}
	if jl.Len() != 2 {
		t.Errorf("journal entries = %d, want damage plus death", jl.Len())
	}
}

func TestResolveDamage_HealOnCleanCell(t *testing.T) {
	f := openField(t, 5, 5)
	jl := journal.New()

	out := ResolveDamage(testContext(1), f, PlayerState{Pos: playerPos, HP: 90}, jl)

	if out.Cause != CauseHealing {
		t.Errorf("Cause = %v, want %v", out.Cause, CauseHealing)
	}
	if out.HP != 92 || out.Delta != 2 {
		t.Errorf("HP, Delta = %d, %d, want 92, 2", out.HP, out.Delta)
	}
	if jl.Len() != 0 {
		t.Errorf("journal entries = %d, want healing to stay quiet", jl.Len())
	}
}

func TestResolveDamage_HealCapsAtMax(t *testing.T) {
	f := openField(t, 5, 5)

	out := ResolveDamage(testContext(1), f, PlayerState{Pos: playerPos, HP: 99}, journal.New())

	if out.HP != MaxHP || out.Delta != 1 {
		t.Errorf("HP, Delta = %d, %d, want %d, 1", out.HP, out.Delta, MaxHP)
	}
}

func TestResolveDamage_NothingToDo(t *testing.T) {
	f := openField(t, 5, 5)

	out := ResolveDamage(testContext(1), f, PlayerState{Pos: playerPos, HP: MaxHP}, journal.New())

	if out.Cause != CauseNone || out.Delta != 0 {
		t.Errorf("Cause, Delta = %v, %d, want %v, 0", out.Cause, out.Delta, CauseNone)
	}
}

func TestResolveDamage_SeverityTracksRemainingHealth(t *testing.T) {
	for _, tc := range []struct {
		hp   int
		want Severity
	}{
		{90, SeverityNotice},
		{60, SeverityCaution},
		{30, SeverityWarning},
		{20, SeverityCritical},
	} {
		f := damageField(t, func(c *field.Cell) { c.Smoke = 70 })

		out := ResolveDamage(testContext(1), f, PlayerState{Pos: playerPos, HP: tc.hp}, journal.New())

		if out.Severity != tc.want {
			t.Errorf("hp %d: Severity = %v, want %v", tc.hp, out.Severity, tc.want)
		}
	}
}

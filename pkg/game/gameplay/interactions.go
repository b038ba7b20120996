package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"
	"derelict/pkg/game/state"
)

// The interaction verbs below are the between-turn actions the
// external orchestrator performs on the player's behalf. Each one
// is addressed by position, flips a single entity flag or cell
// state, journals what happened and reports whether it did
// anything. None of them consume a turn; that is RunTurn's job.

// RepairRelay stops the relay at p from overheating. A successful
// repair buys back a little station integrity.
func RepairRelay(g *state.Game, p world.Point) bool {
	rel := g.Entities.RelayAt(p)
	if rel == nil || !rel.Active() {
		return false
	}
	rel.Repair()
	g.AdjustIntegrity(IntegrityRepairBonus)
	g.Journal.RecordAt(g.Turn, journal.KindAction, p,
		gotext.Get("Relay at %s repaired; coolant flow restored", p))
	return true
}

// SealBreach patches the hull rupture at p so it stops venting.
func SealBreach(g *state.Game, p world.Point) bool {
	b := g.Entities.BreachAt(p)
	if b == nil || !b.Active() {
		return false
	}
	b.Seal()
	g.Journal.RecordAt(g.Turn, journal.KindAction, p,
		gotext.Get("Breach at %s sealed", p))
	return true
}

// ActivateShield powers up the shield generator at p.
func ActivateShield(g *state.Game, p world.Point) bool {
	s := g.Entities.ShieldAt(p)
	if s == nil || s.Activated {
		return false
	}
	s.Activate()
	g.Journal.RecordAt(g.Turn, journal.KindAction, p,
		gotext.Get("Shield generator at %s spins up", p))
	return true
}

// InstallReinforcement fixes the bracing panel at p in place,
// making its cell and neighbours collapse-proof.
func InstallReinforcement(g *state.Game, p world.Point) bool {
	panel := g.Entities.PanelAt(p)
	if panel == nil || panel.Installed {
		return false
	}
	panel.Install()
	g.Journal.RecordAt(g.Turn, journal.KindAction, p,
		gotext.Get("Reinforcement bracing installed at %s", p))
	return true
}

// Clean clears the cell at p: rubble is hauled away and walkability
// restored, and any soot is scrubbed off. Reports whether anything
// needed cleaning.
func Clean(g *state.Game, p world.Point) bool {
	cleared := g.Entities.RemoveRubbleAt(p)
	c := g.Field.Mut(p)
	if c == nil {
		return false
	}
	if cleared {
		c.Walkable = c.Terrain.Walkable()
	}
	dirty := c.Dirt > 0
	c.Dirt = 0
	if !cleared && !dirty {
		return false
	}
	g.Journal.RecordAt(g.Turn, journal.KindAction, p,
		gotext.Get("Debris cleared at %s", p))
	return true
}

// OpenAirlock opens the airlock at p, pinning it to vacuum until
// it is shut again.
func OpenAirlock(g *state.Game, p world.Point) bool {
	return setAirlock(g, p, true, "Airlock at %s cycles open")
}

// CloseAirlock shuts the airlock at p so the corridor behind it can
// repressurise.
func CloseAirlock(g *state.Game, p world.Point) bool {
	return setAirlock(g, p, false, "Airlock at %s seals shut")
}

func setAirlock(g *state.Game, p world.Point, open bool, template string) bool {
	c := g.Field.Mut(p)
	if c == nil || c.Terrain != field.Airlock || c.AirlockOpen == open {
		return false
	}
	c.AirlockOpen = open
	g.Journal.RecordAt(g.Turn, journal.KindAction, p, gotext.Get(template, p))
	return true
}

package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"derelict/pkg/game/state"
)

// WriteReport writes a full end-of-run dump to path: metadata,
// legend, one uncoloured overlay per hazard layer, the entity
// inventory, the room table and the whole journal. The format is
// sectioned key: value text, readable by humans and tooling alike.
// Returns the absolute path written.
func WriteReport(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "=== STATION RUN REPORT ===")
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", g.Seed)
	fmt.Fprintf(f, "difficulty: %s\n", g.Difficulty)
	fmt.Fprintf(f, "turn: %d\n", g.Turn)
	fmt.Fprintf(f, "grid: %dx%d\n", g.Field.Width(), g.Field.Height())
	fmt.Fprintf(f, "player_pos: %s\n", g.Player.Pos)
	fmt.Fprintf(f, "player_hp: %d\n", g.Player.HP)
	fmt.Fprintf(f, "alive: %v\n", g.Alive())
	fmt.Fprintf(f, "integrity: %d\n", g.Integrity)
	fmt.Fprintf(f, "collapses: %d\n", g.Collapses)
	fmt.Fprintf(f, "milestones_fired: %v\n", g.Scheduler.FiredMilestones())
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintln(f, OverlayLegend)
	fmt.Fprintln(f)

	for _, layer := range AllLayers() {
		fmt.Fprintf(f, "--- Overlay: %s ---\n", layer)
		fmt.Fprint(f, RenderOverlay(g, layer, false))
		fmt.Fprintln(f)
	}

	writeEntities(f, g)
	writeRooms(f, g)
	writeJournal(f, g)

	fmt.Fprintln(f, "=== END REPORT ===")

	if err := f.Sync(); err != nil {
		return absPath, fmt.Errorf("flush report: %w", err)
	}
	return absPath, nil
}

func writeEntities(f *os.File, g *state.Game) {
	reg := g.Entities
	fmt.Fprintln(f, "--- Entities ---")
	fmt.Fprintln(f, "Relays:")
	for i := range reg.Relays {
		r := &reg.Relays[i]
		fmt.Fprintf(f, "  id: %d pos: %s overheating: %v\n", r.ID, r.Pos, r.Overheating)
	}
	fmt.Fprintln(f, "Breaches:")
	for i := range reg.Breaches {
		b := &reg.Breaches[i]
		fmt.Fprintf(f, "  id: %d pos: %s sealed: %v\n", b.ID, b.Pos, b.Sealed)
	}
	fmt.Fprintln(f, "Radiation sources:")
	for i := range reg.Sources {
		s := &reg.Sources[i]
		fmt.Fprintf(f, "  id: %d pos: %s\n", s.ID, s.Pos)
	}
	fmt.Fprintln(f, "Shield generators:")
	for i := range reg.Shields {
		s := &reg.Shields[i]
		fmt.Fprintf(f, "  id: %d pos: %s activated: %v radius: %d\n", s.ID, s.Pos, s.Activated, s.Radius)
	}
	fmt.Fprintln(f, "Reinforcement panels:")
	for i := range reg.Panels {
		p := &reg.Panels[i]
		fmt.Fprintf(f, "  id: %d pos: %s installed: %v\n", p.ID, p.Pos, p.Installed)
	}
	fmt.Fprintln(f, "Rubble:")
	for i := range reg.Rubble {
		r := &reg.Rubble[i]
		fmt.Fprintf(f, "  id: %d pos: %s\n", r.ID, r.Pos)
	}
	fmt.Fprintln(f)
}

func writeRooms(f *os.File, g *state.Game) {
	fmt.Fprintln(f, "--- Rooms ---")
	for _, r := range g.Field.Rooms {
		fmt.Fprintf(f, "  id: %d name: %q kind: %s safe: %v\n", r.ID, r.Name, r.Kind, r.Safe)
	}
	fmt.Fprintln(f)
}

func writeJournal(f *os.File, g *state.Game) {
	fmt.Fprintln(f, "--- Journal ---")
	if g.Journal.Len() == 0 {
		fmt.Fprintln(f, "  (empty)")
	}
	for _, e := range g.Journal.Entries() {
		if e.Located {
			fmt.Fprintf(f, "  turn: %d kind: %s pos: %s text: %q\n", e.Turn, e.Kind, e.Pos, e.Text)
		} else {
			fmt.Fprintf(f, "  turn: %d kind: %s text: %q\n", e.Turn, e.Kind, e.Text)
		}
	}
	fmt.Fprintln(f)
}

// Command derelict runs the station hazard simulation headless: it
// builds a deck from a seed, replays an optional scenario script of
// crew actions and ticks the environment until the run ends, the
// player dies or the station gives out. The observation layer a
// human would play through lives elsewhere; this driver prints
// overlays and the journal instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gookit/color"

	"derelict/pkg/engine/input"
	"derelict/pkg/engine/terminal"
	"derelict/pkg/game/devtools"
	"derelict/pkg/game/gameplay"
	"derelict/pkg/game/hazard"
	"derelict/pkg/game/journal"
	"derelict/pkg/game/setup"
	"derelict/pkg/game/state"
)

func main() {
	seed := flag.Uint64("seed", 1, "station seed")
	turns := flag.Int("turns", 120, "turns to simulate")
	difficultyFlag := flag.String("difficulty", "normal", "easy, normal or hard")
	scenarioPath := flag.String("scenario", "", "scenario script of timed crew actions")
	watch := flag.Bool("watch", false, "print an overlay and the turn's events every turn")
	layerFlag := flag.String("layer", "heat", "watch overlay layer: heat, smoke, pressure, radiation or stress")
	dumpPath := flag.String("dump", "", "write a full run report to this file at the end")
	flag.Parse()

	difficulty, err := hazard.ParseDifficulty(*difficultyFlag)
	if err != nil {
		fail(err)
	}
	layer, err := devtools.ParseLayer(*layerFlag)
	if err != nil {
		fail(err)
	}
	var script *input.Script
	if *scenarioPath != "" {
		script, err = input.Load(*scenarioPath)
		if err != nil {
			fail(err)
		}
	}

	g := state.NewGame(*seed, difficulty)
	setup.BuildStation(g)

	colored := terminal.IsTerminal()
	run(g, script, *turns, *watch, layer, colored)
	summarize(g, colored)

	if *dumpPath != "" {
		written, err := devtools.WriteReport(g, *dumpPath)
		if err != nil {
			fail(err)
		}
		fmt.Printf("report written to %s\n", written)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(g *state.Game, script *input.Script, turns int, watch bool, layer devtools.Layer, colored bool) {
	for t := 1; t <= turns; t++ {
		journalMark := g.Journal.Len()
		g.BeginTurn()

		for _, act := range script.At(t) {
			if done, err := gameplay.Apply(g, act); err != nil {
				fail(fmt.Errorf("turn %d: %w", t, err))
			} else if !done {
				if act.HasPos {
					fmt.Printf("turn %d: %s at %s had no effect\n", t, act.Verb, act.Pos)
				} else {
					fmt.Printf("turn %d: %s had no effect\n", t, act.Verb)
				}
			}
		}

		out := gameplay.RunTurn(g)

		if watch {
			printTurn(g, out, layer, journalMark, colored)
		}
		if !g.Alive() || g.StationLost() {
			break
		}
	}
}

func printTurn(g *state.Game, out hazard.Outcome, layer devtools.Layer, journalMark int, colored bool) {
	fmt.Printf("-- turn %d  hp %d  integrity %d  [%s overlay]\n", g.Turn, g.Player.HP, g.Integrity, layer)
	if width := terminal.GetWidth(); width < g.Field.Width() {
		// Byte clipping would tear colour escapes mid-sequence.
		fmt.Print(devtools.ClipOverlay(devtools.RenderOverlay(g, layer, false), width))
	} else {
		fmt.Print(devtools.RenderOverlay(g, layer, colored))
	}
	for _, e := range g.Journal.Entries()[journalMark:] {
		printEntry(e, colored)
	}
	if out.Delta != 0 {
		line := fmt.Sprintf("   %s: %+d hp", out.Cause, out.Delta)
		if colored {
			line = devtools.SeverityStyle(out.Severity).Sprint(line)
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func printEntry(e journal.Entry, colored bool) {
	line := fmt.Sprintf("   [%s] %s", e.Kind, e.Text)
	if colored && (e.Kind == journal.KindMilestone || e.Kind == journal.KindDamage) {
		line = color.LightRed.Sprint(line)
	}
	fmt.Println(line)
}

func summarize(g *state.Game, colored bool) {
	fmt.Println("=== run over ===")
	fmt.Printf("turns: %d  difficulty: %s  seed: %d\n", g.Turn, g.Difficulty, g.Seed)
	fmt.Printf("hp: %d  integrity: %d  collapses: %d\n", g.Player.HP, g.Integrity, g.Collapses)
	fmt.Printf("milestones fired: %v\n", g.Scheduler.FiredMilestones())

	var verdict string
	var style color.Color
	switch {
	case !g.Alive():
		verdict = "the station claimed another crew member"
		style = color.LightRed
	case g.StationLost():
		verdict = "the station broke apart around you"
		style = color.LightRed
	default:
		verdict = "still breathing when the clock ran out"
		style = color.Green
	}
	if colored {
		verdict = style.Sprint(verdict)
	}
	fmt.Println(verdict)

	tail := g.Journal.Tail(8)
	if len(tail) > 0 {
		fmt.Println("last events:")
		for _, e := range tail {
			fmt.Printf("  t%d [%s] %s\n", e.Turn, e.Kind, e.Text)
		}
	}
}

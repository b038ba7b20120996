// Package input parses scenario scripts: line-oriented lists of
// timed actions that drive a headless run the way a player would.
// The engine does not interpret the verbs; that is the game's job.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"derelict/pkg/engine/world"
)

// Action is one scripted command: on Turn, perform Verb, optionally
// at Pos. A move action names the cell to step onto.
type Action struct {
	Turn   int
	Verb   string
	Pos    world.Point
	HasPos bool
}

// Script is a parsed scenario, ordered the way the file listed it.
type Script struct {
	actions []Action
}

// Len returns the number of actions in the script.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.actions)
}

// At returns the actions scheduled for the given turn, in file
// order. A nil script has none.
func (s *Script) At(turn int) []Action {
	if s == nil {
		return nil
	}
	var out []Action
	for _, a := range s.actions {
		if a.Turn == turn {
			out = append(out, a)
		}
	}
	return out
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse reads a scenario script. Each non-blank, non-comment line
// is "TURN VERB" or "TURN VERB X,Y", e.g. "12 seal 4,7". Lines
// starting with # are comments. Turns must not decrease, so a
// script reads top to bottom like a transcript of the run.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	lastTurn := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: want \"turn verb [x,y]\", got %q", lineNo, line)
		}

		turn, err := strconv.Atoi(fields[0])
		if err != nil || turn < 1 {
			return nil, fmt.Errorf("line %d: bad turn %q", lineNo, fields[0])
		}
		if turn < lastTurn {
			return nil, fmt.Errorf("line %d: turn %d after turn %d; scripts run forward only", lineNo, turn, lastTurn)
		}
		lastTurn = turn

		act := Action{Turn: turn, Verb: strings.ToLower(fields[1])}
		if len(fields) == 3 {
			p, err := parsePoint(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			act.Pos = p
			act.HasPos = true
		}
		s.actions = append(s.actions, act)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return s, nil
}

func parsePoint(s string) (world.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return world.Point{}, fmt.Errorf("bad position %q, want x,y", s)
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return world.Point{}, fmt.Errorf("bad position %q, want x,y", s)
	}
	return world.Point{X: x, Y: y}, nil
}

package hazard

import (
	"fmt"

	"derelict/pkg/engine/world"
)

// Difficulty selects the damage multiplier and how often the
// deterioration scheduler fires.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Normal: "normal",
	Hard:   "hard",
}

// String returns the flag-friendly name of the difficulty.
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "unknown"
}

// Multiplier returns the damage scale for the difficulty.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case Easy:
		return 0.5
	case Hard:
		return 1.5
	default:
		return 1.0
	}
}

// DeteriorationInterval returns how many turns pass between periodic
// deterioration events.
func (d Difficulty) DeteriorationInterval() int {
	switch d {
	case Easy:
		return 14
	case Hard:
		return 7
	default:
		return 10
	}
}

// ParseDifficulty maps a flag value to a difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if s == name {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// Context carries everything a tick needs to be reproducible: the
// map seed, the current turn and the difficulty. It is threaded
// through every stage so no stage reaches for global state.
type Context struct {
	Seed       uint64
	Turn       int
	Difficulty Difficulty
}

// Hash mixes the context with a salt and one extra value.
func (c Context) Hash(salt, extra uint64) uint64 {
	return Mix(c.Seed, c.Turn, salt, extra)
}

// HashPoint mixes the context with a salt and a grid position.
func (c Context) HashPoint(salt uint64, p world.Point) uint64 {
	return MixPoint(c.Seed, c.Turn, salt, p)
}

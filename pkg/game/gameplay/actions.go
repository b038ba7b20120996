package gameplay

import (
	"fmt"

	"derelict/pkg/engine/input"
	"derelict/pkg/game/state"
)

// Apply executes one scripted action against the game. Unknown
// verbs are an error; a known verb that could not act (nothing to
// repair, blocked step) just reports false, matching how a player
// fumbling at an empty wall costs nothing.
func Apply(g *state.Game, act input.Action) (bool, error) {
	switch act.Verb {
	case "move":
		if !act.HasPos {
			return false, fmt.Errorf("move needs a position")
		}
		return MoveTo(g, act.Pos), nil
	case "repair":
		return RepairRelay(g, act.Pos), nil
	case "seal":
		return SealBreach(g, act.Pos), nil
	case "shield":
		return ActivateShield(g, act.Pos), nil
	case "reinforce":
		return InstallReinforcement(g, act.Pos), nil
	case "clean":
		return Clean(g, act.Pos), nil
	case "open":
		return OpenAirlock(g, act.Pos), nil
	case "close":
		return CloseAirlock(g, act.Pos), nil
	default:
		return false, fmt.Errorf("unknown verb %q", act.Verb)
	}
}

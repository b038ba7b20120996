package hazard

import (
	"sort"

	"derelict/pkg/engine/world"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/field"
	"derelict/pkg/game/journal"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
)

var dynamicGet = gotext.Get

// Scheduler drives long-horizon deterioration: a periodic escalation
// event whose strength grows with elapsed turns, and three one-time
// milestones. The fired set guards each milestone so evaluating the
// same turn twice cannot double its effect.
type Scheduler struct {
	fired mapset.Set[int]
}

// NewScheduler returns a scheduler with no milestones fired.
func NewScheduler() *Scheduler {
	return &Scheduler{fired: mapset.New[int]()}
}

// FiredMilestones returns the milestone turns that have fired, in
// ascending order.
func (s *Scheduler) FiredMilestones() []int {
	var out []int
	s.fired.Each(func(t int) {
		out = append(out, t)
	})
	sort.Ints(out)
	return out
}

// EscalationTier buckets elapsed turns into 0..3. Later tiers make
// the periodic event hit harder.
func EscalationTier(turn int) int {
	switch {
	case turn < 40:
		return 0
	case turn < 100:
		return 1
	case turn < 200:
		return 2
	default:
		return 3
	}
}

var tierMessages = map[int]string{
	0: "The station groans softly around you",
	1: "Strain warnings multiply across the boards",
	2: "Cascading faults ripple through the deck",
	3: "The station is tearing itself apart",
}

// Step applies scheduled deterioration on top of the simulated field
// and returns the final generation for this turn.
func (s *Scheduler) Step(ctx Context, prior *field.Field, reg *entities.Registry, jl *journal.Journal) *field.Field {
	next := prior.Next()
	s.periodic(ctx, next, reg, jl)
	s.milestones(ctx, next, reg, jl)
	return next
}

func (s *Scheduler) periodic(ctx Context, f *field.Field, reg *entities.Registry, jl *journal.Journal) {
	interval := ctx.Difficulty.DeteriorationInterval()
	if ctx.Turn <= 0 || ctx.Turn%interval != 0 {
		return
	}

	tier := EscalationTier(ctx.Turn)
	boost := 4 + 2*tier

	for i := range reg.Relays {
		if !reg.Relays[i].Active() {
			continue
		}
		p := reg.Relays[i].Pos
		c := f.Mut(p)
		if c == nil {
			continue
		}
		c.Heat = clampLevel(c.Heat + boost)
		for _, n := range p.Neighbours() {
			if !f.InBounds(n) {
				continue
			}
			nc := f.Mut(n)
			if nc.Walkable {
				nc.Heat = clampLevel(nc.Heat + boost/2)
			}
		}
	}

	for _, p := range s.ignite(ctx, f) {
		jl.RecordAt(ctx.Turn, journal.KindHazard, p, gotext.Get("Smoke pours from a fresh ignition at %s", p))
	}
	jl.Record(ctx.Turn, journal.KindHazard, dynamicGet(tierMessages[tier]))
}

// ignite picks up to IgnitionLimit fresh smoke patches near hot
// cells. Candidates are ranked by a pure hash of seed, turn and
// position, so replaying a turn always ignites the same cells.
func (s *Scheduler) ignite(ctx Context, f *field.Field) []world.Point {
	var hot []world.Point
	f.EachCell(func(p world.Point, c field.Cell) {
		if c.Heat >= IgnitionHeatMin {
			hot = append(hot, p)
		}
	})
	if len(hot) == 0 {
		return nil
	}

	var candidates []world.Point
	f.EachCell(func(p world.Point, c field.Cell) {
		if !c.Walkable || c.Smoke >= IgnitionSmokeFloor {
			return
		}
		for _, h := range hot {
			if p.WithinManhattan(h, IgnitionRange) {
				candidates = append(candidates, p)
				return
			}
		}
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return ctx.HashPoint(SaltIgnition, candidates[i]) < ctx.HashPoint(SaltIgnition, candidates[j])
	})
	if len(candidates) > IgnitionLimit {
		candidates = candidates[:IgnitionLimit]
	}
	for _, p := range candidates {
		f.Mut(p).Smoke = IgnitionSmokeFloor
	}
	return candidates
}

func (s *Scheduler) milestones(ctx Context, f *field.Field, reg *entities.Registry, jl *journal.Journal) {
	if ctx.Turn != MilestoneWarning && ctx.Turn != MilestoneCascade && ctx.Turn != MilestoneCritical {
		return
	}
	if s.fired.Has(ctx.Turn) {
		return
	}
	s.fired.Put(ctx.Turn)

	switch ctx.Turn {
	case MilestoneWarning:
		jl.Record(ctx.Turn, journal.KindMilestone, gotext.Get("Station alarms wail: environmental systems are failing"))
	case MilestoneCascade:
		s.cascade(ctx, f, reg, jl)
	case MilestoneCritical:
		jl.Record(ctx.Turn, journal.KindMilestone, gotext.Get("Hull integrity critical: the station is beyond saving"))
	}
}

// cascade ruptures the hull in a room that has no breach yet, always
// sparing rooms marked safe. Room and cell are chosen by hash so the
// same seed ruptures the same spot.
func (s *Scheduler) cascade(ctx Context, f *field.Field, reg *entities.Registry, jl *journal.Journal) {
	breachedRooms := mapset.New[int]()
	for i := range reg.Breaches {
		if r := f.RoomAt(reg.Breaches[i].Pos); r != nil {
			breachedRooms.Put(r.ID)
		}
	}

	var rooms []field.Room
	for _, r := range f.Rooms {
		if !r.Safe && !breachedRooms.Has(r.ID) {
			rooms = append(rooms, r)
		}
	}
	jl.Record(ctx.Turn, journal.KindMilestone, gotext.Get("A cascade failure rips through the outer hull"))
	if len(rooms) == 0 {
		return
	}

	room := rooms[Roll(ctx.Hash(SaltMilestoneRoom, 0), len(rooms))]
	var cells []world.Point
	f.EachCell(func(p world.Point, c field.Cell) {
		if c.RoomID == room.ID && c.Walkable {
			cells = append(cells, p)
		}
	})
	if len(cells) == 0 {
		return
	}

	p := cells[Roll(ctx.Hash(SaltMilestoneCell, 0), len(cells))]
	reg.AddBreach(p, false)
	f.Mut(p).Pressure = MilestoneBreachPressure
	jl.RecordAt(ctx.Turn, journal.KindMilestone, p, gotext.Get("The hull ruptures in %s", room.Name))
}

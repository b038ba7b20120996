package entities

import "derelict/pkg/engine/world"

// Registry owns every entity on the station. IDs are handed out in
// creation order, so two runs that create entities in the same order
// agree on every ID. Pointers returned by the At queries stay valid
// until the next Add call on the same registry.
type Registry struct {
	nextID int

	Relays   []Relay
	Breaches []Breach
	Sources  []RadiationSource
	Shields  []ShieldGenerator
	Panels   []ReinforcementPanel
	Rubble   []Rubble
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

func (r *Registry) allocID() int {
	id := r.nextID
	r.nextID++
	return id
}

// Next returns a snapshot the following turn can extend and edit
// without touching this generation.
func (r *Registry) Next() *Registry {
	return &Registry{
		nextID:   r.nextID,
		Relays:   append([]Relay(nil), r.Relays...),
		Breaches: append([]Breach(nil), r.Breaches...),
		Sources:  append([]RadiationSource(nil), r.Sources...),
		Shields:  append([]ShieldGenerator(nil), r.Shields...),
		Panels:   append([]ReinforcementPanel(nil), r.Panels...),
		Rubble:   append([]Rubble(nil), r.Rubble...),
	}
}

// AddRelay creates a relay and returns a pointer to the stored copy.
func (r *Registry) AddRelay(pos world.Point, overheating bool) *Relay {
	rel := NewRelay(pos, overheating)
	rel.ID = r.allocID()
	r.Relays = append(r.Relays, rel)
	return &r.Relays[len(r.Relays)-1]
}

// AddBreach creates a breach and returns a pointer to the stored copy.
func (r *Registry) AddBreach(pos world.Point, sealed bool) *Breach {
	b := NewBreach(pos, sealed)
	b.ID = r.allocID()
	r.Breaches = append(r.Breaches, b)
	return &r.Breaches[len(r.Breaches)-1]
}

// AddRadiationSource creates a radiation source and returns a
// pointer to the stored copy.
func (r *Registry) AddRadiationSource(pos world.Point) *RadiationSource {
	s := NewRadiationSource(pos)
	s.ID = r.allocID()
	r.Sources = append(r.Sources, s)
	return &r.Sources[len(r.Sources)-1]
}

// AddShieldGenerator creates an inactive shield generator and
// returns a pointer to the stored copy.
func (r *Registry) AddShieldGenerator(pos world.Point, radius int) *ShieldGenerator {
	s := NewShieldGenerator(pos, radius)
	s.ID = r.allocID()
	r.Shields = append(r.Shields, s)
	return &r.Shields[len(r.Shields)-1]
}

// AddReinforcementPanel creates an uninstalled panel and returns a
// pointer to the stored copy.
func (r *Registry) AddReinforcementPanel(pos world.Point) *ReinforcementPanel {
	p := NewReinforcementPanel(pos)
	p.ID = r.allocID()
	r.Panels = append(r.Panels, p)
	return &r.Panels[len(r.Panels)-1]
}

// AddRubble creates a rubble pile and returns a pointer to the
// stored copy.
func (r *Registry) AddRubble(pos world.Point) *Rubble {
	rb := NewRubble(pos)
	rb.ID = r.allocID()
	r.Rubble = append(r.Rubble, rb)
	return &r.Rubble[len(r.Rubble)-1]
}

// RelayAt returns the relay at p, or nil.
func (r *Registry) RelayAt(p world.Point) *Relay {
	for i := range r.Relays {
		if r.Relays[i].Pos == p {
			return &r.Relays[i]
		}
	}
	return nil
}

// BreachAt returns the breach at p, or nil.
func (r *Registry) BreachAt(p world.Point) *Breach {
	for i := range r.Breaches {
		if r.Breaches[i].Pos == p {
			return &r.Breaches[i]
		}
	}
	return nil
}

// RadiationSourceAt returns the radiation source at p, or nil.
func (r *Registry) RadiationSourceAt(p world.Point) *RadiationSource {
	for i := range r.Sources {
		if r.Sources[i].Pos == p {
			return &r.Sources[i]
		}
	}
	return nil
}

// ShieldAt returns the shield generator at p, or nil.
func (r *Registry) ShieldAt(p world.Point) *ShieldGenerator {
	for i := range r.Shields {
		if r.Shields[i].Pos == p {
			return &r.Shields[i]
		}
	}
	return nil
}

// PanelAt returns the reinforcement panel at p, or nil.
func (r *Registry) PanelAt(p world.Point) *ReinforcementPanel {
	for i := range r.Panels {
		if r.Panels[i].Pos == p {
			return &r.Panels[i]
		}
	}
	return nil
}

// RubbleAt returns the rubble pile at p, or nil.
func (r *Registry) RubbleAt(p world.Point) *Rubble {
	for i := range r.Rubble {
		if r.Rubble[i].Pos == p {
			return &r.Rubble[i]
		}
	}
	return nil
}

// RemoveRubbleAt deletes the rubble pile at p and reports whether
// one was there.
func (r *Registry) RemoveRubbleAt(p world.Point) bool {
	for i := range r.Rubble {
		if r.Rubble[i].Pos == p {
			r.Rubble = append(r.Rubble[:i], r.Rubble[i+1:]...)
			return true
		}
	}
	return false
}

// UnsealedBreachPositions returns the positions of every breach
// still venting, in creation order.
func (r *Registry) UnsealedBreachPositions() []world.Point {
	var out []world.Point
	for i := range r.Breaches {
		if r.Breaches[i].Active() {
			out = append(out, r.Breaches[i].Pos)
		}
	}
	return out
}

// HazardSourceAt reports whether p holds an entity that is still
// actively producing a hazard: an overheating relay, an unsealed
// breach, or a radiation source.
func (r *Registry) HazardSourceAt(p world.Point) bool {
	if rel := r.RelayAt(p); rel != nil && rel.Active() {
		return true
	}
	if b := r.BreachAt(p); b != nil && b.Active() {
		return true
	}
	return r.RadiationSourceAt(p) != nil
}

// Shielded reports whether any active shield generator covers p.
func (r *Registry) Shielded(p world.Point) bool {
	for i := range r.Shields {
		if r.Shields[i].Covers(p) {
			return true
		}
	}
	return false
}

// Reinforced reports whether any installed panel braces p.
func (r *Registry) Reinforced(p world.Point) bool {
	for i := range r.Panels {
		if r.Panels[i].Protects(p) {
			return true
		}
	}
	return false
}

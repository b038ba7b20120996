// Package journal keeps the running log of everything notable that
// happens aboard the station, one entry per event, in the order the
// events occurred.
package journal

import "derelict/pkg/engine/world"

// Kind classifies a journal entry.
type Kind uint8

const (
	KindInfo Kind = iota
	KindHazard
	KindStructure
	KindDamage
	KindAction
	KindMilestone
)

var kindNames = map[Kind]string{
	KindInfo:      "info",
	KindHazard:    "hazard",
	KindStructure: "structure",
	KindDamage:    "damage",
	KindAction:    "action",
	KindMilestone: "milestone",
}

// String returns the display name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Entry is one logged event. Located is false for station-wide
// events that have no single position.
type Entry struct {
	Turn    int
	Kind    Kind
	Pos     world.Point
	Located bool
	Text    string
}

// Journal is an append-only event log.
type Journal struct {
	entries []Entry
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{}
}

// Record appends a station-wide event.
func (j *Journal) Record(turn int, kind Kind, text string) {
	j.entries = append(j.entries, Entry{Turn: turn, Kind: kind, Text: text})
}

// RecordAt appends an event tied to a position.
func (j *Journal) RecordAt(turn int, kind Kind, pos world.Point, text string) {
	j.entries = append(j.entries, Entry{Turn: turn, Kind: kind, Pos: pos, Located: true, Text: text})
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns every entry in the order recorded. The slice is
// shared; callers must not modify it.
func (j *Journal) Entries() []Entry {
	return j.entries
}

// Since returns the entries recorded on or after the given turn.
func (j *Journal) Since(turn int) []Entry {
	for i, e := range j.entries {
		if e.Turn >= turn {
			return j.entries[i:]
		}
	}
	return nil
}

// Tail returns the last n entries, or everything when fewer exist.
func (j *Journal) Tail(n int) []Entry {
	if n >= len(j.entries) {
		return j.entries
	}
	return j.entries[len(j.entries)-n:]
}

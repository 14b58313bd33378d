package game

import (
	"fmt"
	"strings"
)

// Event categories recorded by a session.
const (
	CatSession   = "session"
	CatInput     = "input"
	CatPower     = "power"
	CatDoor      = "door"
	CatLight     = "light"
	CatCamera    = "camera"
	CatTask      = "task"
	CatAid       = "aid"
	CatJumpscare = "jumpscare"
)

// SimLogEntry is one recorded event during a session.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "A3" for agents, "P0" for players, "--" for global events
	Category string  // session, input, power, door, light, camera, task, aid, jumpscare
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] --   door      toggle           left open
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a session.
// It is unbounded and machine-readable; hosts show the tail in a feed.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick power readings and
// routed input samples are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}

// Since returns the entries recorded after the first n. Hosts use it to
// forward new events to their feed once per frame.
func (sl *SimLog) Since(n int) []SimLogEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(sl.entries) {
		return nil
	}
	return sl.entries[n:]
}

// Query selects log entries. Empty strings match anything; To <= 0 leaves
// the tick range open at the top.
type Query struct {
	Category string
	Key      string
	Actor    string
	Contains string // substring of Value
	From, To int
}

func (q Query) matches(e SimLogEntry) bool {
	switch {
	case q.Category != "" && e.Category != q.Category,
		q.Key != "" && e.Key != q.Key,
		q.Actor != "" && e.Actor != q.Actor,
		q.Contains != "" && !strings.Contains(e.Value, q.Contains),
		e.Tick < q.From,
		q.To > 0 && e.Tick > q.To:
		return false
	}
	return true
}

// Select returns the entries matching q in recording order.
func (sl *SimLog) Select(q Query) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if q.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match q.
func (sl *SimLog) Count(q Query) int {
	n := 0
	for _, e := range sl.entries {
		if q.matches(e) {
			n++
		}
	}
	return n
}

// CountCategory counts category/key events; the run summary is built from these.
func (sl *SimLog) CountCategory(category, key string) int {
	return sl.Count(Query{Category: category, Key: key})
}

// LastOf returns the most recent category/key event.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	q := Query{Category: category, Key: key}
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if q.matches(sl.entries[i]) {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry reports whether any event matches category, key and a value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	return sl.Count(Query{Category: category, Key: key, Contains: valueSubstr}) > 0
}

// Format dumps the whole log, one event per line.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange dumps the events from fromTick to toTick inclusive.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.Select(Query{From: fromTick, To: toTick}) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

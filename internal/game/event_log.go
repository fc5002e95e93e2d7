package game

import (
	"fmt"
	"strings"
)

// Event log categories and keys.
const (
	CatState = "state"
	CatMove  = "move"
	CatFood  = "food"
	CatSpeed = "speed"
	CatDeath = "death"
	CatInput = "input"

	KeyChange     = "change"
	KeyTurn       = "turn"
	KeyWrap       = "wrap"
	KeyTeleport   = "teleport"
	KeyPosition   = "position"
	KeySpawn      = "spawn"
	KeyEat        = "eat"
	KeyVelocity   = "velocity"
	KeyCause      = "cause"
	KeyDropped    = "dropped"
	KeyCopyFailed = "copy_failed"
)

// LogEntry is one recorded game event.
type LogEntry struct {
	Tick     int
	Run      string // short run ID, "--" outside a run
	Category string
	Key      string
	Value    string
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] 1a2b3c4d food     eat             (60,0) len=2
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-8s %-15s %s",
		e.Tick, e.Run, e.Category, e.Key, e.Value)
}

// EventLog collects structured events. It is unbounded; verbose mode adds a
// head position entry every frame.
type EventLog struct {
	entries []LogEntry
	verbose bool
}

// NewEventLog creates an empty log.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, run, category, key, value string, numVal float64) {
	l.entries = append(l.entries, LogEntry{
		Tick:     tick,
		Run:      run,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, run, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, run, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []LogEntry {
	return l.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (l *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterRun returns the entries of one run.
func (l *EventLog) FilterRun(run string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if e.Run == run {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (l *EventLog) CountCategory(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (l *EventLog) LastOf(category, key string) (LogEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return LogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Recent returns up to n of the newest entries, oldest first.
func (l *EventLog) Recent(n int) []LogEntry {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]LogEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Format returns the full log as a single string for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

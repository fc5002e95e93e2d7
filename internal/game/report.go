package game

import (
	"fmt"
	"strings"
)

// reportRecentEntries bounds the event tail included in a run report.
const reportRecentEntries = 12

// RunReport renders a plain-text summary of the session's current run.
func RunReport(s *Session) string {
	run := s.Run()
	id := run.ID
	if id == "" {
		id = "(no run yet)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Snake run report ---\n")
	fmt.Fprintf(&b, "run=%s seed=%d state=%s\n", id, s.Seed(), s.State())
	fmt.Fprintf(&b, "frames=%d length=%d food=%d turns=%d wraps=%d\n",
		run.Frames, s.Length(), run.FoodEaten, run.Turns, run.Wraps)
	fmt.Fprintf(&b, "velocity=%d top_velocity=%d head=%s\n", s.Velocity(), run.TopVelocity, s.Head())
	if run.Cause != DeathNone {
		fmt.Fprintf(&b, "death=%s\n", run.Cause)
	}

	var recent []LogEntry
	if run.ID != "" {
		recent = s.Log().FilterRun(s.runLabel())
		if len(recent) > reportRecentEntries {
			recent = recent[len(recent)-reportRecentEntries:]
		}
	}
	if len(recent) == 0 {
		b.WriteString("events: none\n")
		return b.String()
	}
	b.WriteString("events:\n")
	for _, e := range recent {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// CopyReport writes the run report through copyText.
func CopyReport(s *Session, copyText func(string) error) error {
	if err := copyText(RunReport(s)); err != nil {
		return fmt.Errorf("copy run report: %w", err)
	}
	return nil
}

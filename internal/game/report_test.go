package game

import (
	"errors"
	"strings"
	"testing"
)

func TestRunReport_SummarisesDeath(t *testing.T) {
	sim := NewSim(WithSeed(11), WithBody(Position{760, 300}))
	sim.Frame()

	r := RunReport(sim.Session)
	for _, want := range []string{
		"--- Snake run report ---",
		"seed=11",
		"state=game_over",
		"length=1",
		"death=wall",
		"playing → game_over",
	} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}

func TestRunReport_BeforeFirstRun(t *testing.T) {
	sim := NewSim(WithWelcome())
	r := RunReport(sim.Session)
	if !strings.Contains(r, "(no run yet)") || !strings.Contains(r, "events: none") {
		t.Fatalf("unexpected report before a run:\n%s", r)
	}
}

func TestRunReport_OnlyCurrentRun(t *testing.T) {
	sim := NewSim(WithBody(Position{760, 300}))
	sim.Frame()
	sim.Push(KeyDownEvent(KeyR))
	sim.Frame()

	r := RunReport(sim.Session)
	if strings.Contains(r, "death=") {
		t.Fatalf("restarted run should not report the previous death:\n%s", r)
	}
	if !strings.Contains(r, "game_over → playing") {
		t.Fatalf("expected the restart transition in the report:\n%s", r)
	}
}

func TestCopyKey_WritesReportInGameOver(t *testing.T) {
	var copied []string
	sim := NewSim(
		WithClipboard(func(s string) error {
			copied = append(copied, s)
			return nil
		}),
		WithBody(Position{380, 0}),
		WithDirection(Up),
	)

	// C does nothing while playing.
	sim.Push(KeyDownEvent(KeyC))
	sim.Frame()
	if sim.Session.State() != StateGameOver {
		t.Fatalf("expected game over, got %s", sim.Session.State())
	}
	if len(copied) != 0 {
		t.Fatalf("expected no copy while playing, got %d", len(copied))
	}

	sim.Push(KeyDownEvent(KeyC))
	sim.Frame()
	if len(copied) != 1 {
		t.Fatalf("expected one copy, got %d", len(copied))
	}
	if !strings.Contains(copied[0], "death=wall") {
		t.Fatalf("copied text is not the run report:\n%s", copied[0])
	}
}

func TestCopyKey_FailureIsLogged(t *testing.T) {
	boom := errors.New("no display")
	sim := NewSim(
		WithClipboard(func(string) error { return boom }),
		WithBody(Position{380, 0}),
		WithDirection(Up),
	)
	sim.Frame()
	sim.Push(KeyDownEvent(KeyC))
	sim.Frame()

	if !sim.Log.HasEntry(CatInput, KeyCopyFailed, "no display") {
		t.Fatalf("expected copy failure in the log:\n%s", sim.Log.Format())
	}
	if sim.Session.State() != StateGameOver {
		t.Fatalf("copy failure should not change state, got %s", sim.Session.State())
	}

	err := CopyReport(sim.Session, func(string) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

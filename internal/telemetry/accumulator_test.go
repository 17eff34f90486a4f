package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSnapshotCapturesTypingSession(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	a := New(clock.now)

	a.ObserveInput("h")
	clock.advance(500 * time.Millisecond)
	a.ObserveInput("hel")
	a.ObserveInput("he") // backspace
	a.ObserveInput("h")  // backspace
	a.ObserveInput("hello")

	m := a.Snapshot("hello")

	if m.CharsTyped != 5 {
		t.Errorf("CharsTyped = %d, want 5", m.CharsTyped)
	}
	if m.TimeSpentMS != 500 {
		t.Errorf("TimeSpentMS = %d, want 500", m.TimeSpentMS)
	}
	if m.Backspaces != 2 {
		t.Errorf("Backspaces = %d, want 2", m.Backspaces)
	}
	if m.AttemptCount != 1 {
		t.Errorf("AttemptCount = %d, want 1", m.AttemptCount)
	}
}

func TestSnapshotWithoutTypingReportsZeroTime(t *testing.T) {
	t.Parallel()

	a := New(newFakeClock().now)

	// Submission without any observed text-change event (e.g. pasted via
	// a path that bypasses input events).
	m := a.Snapshot("pasted text")
	if m.TimeSpentMS != 0 {
		t.Errorf("TimeSpentMS = %d, want 0 when no typing was observed", m.TimeSpentMS)
	}
}

func TestCommitTurnResetsPerTurnSignalsOnly(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	a := New(clock.now)

	a.ObserveInput("abc")
	a.ObserveInput("ab")
	clock.advance(1200 * time.Millisecond)
	_ = a.Snapshot("ab")
	a.CommitTurn()

	clock.advance(300 * time.Millisecond)
	a.ObserveInput("x")
	clock.advance(100 * time.Millisecond)
	m := a.Snapshot("x")

	if m.Backspaces != 0 {
		t.Errorf("Backspaces = %d, want 0 after committed turn", m.Backspaces)
	}
	if m.TimeSpentMS != 100 {
		t.Errorf("TimeSpentMS = %d, want 100 (new typing session)", m.TimeSpentMS)
	}
	if m.AttemptCount != 2 {
		t.Errorf("AttemptCount = %d, want 2 (cumulative)", m.AttemptCount)
	}
}

func TestFailedTurnCarriesSignalsForward(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	a := New(clock.now)

	a.ObserveInput("try")
	a.ObserveInput("tr")
	clock.advance(2 * time.Second)
	first := a.Snapshot("tr")
	// No CommitTurn: the submission failed.

	clock.advance(3 * time.Second)
	a.ObserveInput("tr again")
	second := a.Snapshot("tr again")

	if second.Backspaces != first.Backspaces {
		t.Errorf("Backspaces = %d, want carried-forward %d", second.Backspaces, first.Backspaces)
	}
	if second.TimeSpentMS != 5000 {
		t.Errorf("TimeSpentMS = %d, want 5000 (clock kept running from original start)", second.TimeSpentMS)
	}
	if second.AttemptCount != 2 {
		t.Errorf("AttemptCount = %d, want 2", second.AttemptCount)
	}
}

func TestClearedInputDoesNotCountAsBackspace(t *testing.T) {
	t.Parallel()

	a := New(newFakeClock().now)

	a.ObserveInput("first attempt")
	_ = a.Snapshot("first attempt") // submitter clears the input here

	// New text after the clear is shorter than the submitted text; that
	// must not register as a deletion.
	a.ObserveInput("x")
	m := a.Snapshot("x")
	if m.Backspaces != 0 {
		t.Errorf("Backspaces = %d, want 0", m.Backspaces)
	}
}

func TestReservedCountersAreCumulative(t *testing.T) {
	t.Parallel()

	a := New(newFakeClock().now)

	a.IncHint()
	a.IncHint()
	a.IncFinalRequest()

	m := a.Counters()
	if m.HintCount != 2 || m.FinalRequestCount != 1 {
		t.Fatalf("counters = %d/%d, want 2/1", m.HintCount, m.FinalRequestCount)
	}

	a.CommitTurn()
	m = a.Counters()
	if m.HintCount != 2 || m.FinalRequestCount != 1 {
		t.Fatalf("counters reset by CommitTurn: %d/%d, want 2/1", m.HintCount, m.FinalRequestCount)
	}
}

func TestAttemptCountNonDecreasing(t *testing.T) {
	t.Parallel()

	a := New(newFakeClock().now)

	prev := 0
	for i := 0; i < 5; i++ {
		m := a.Snapshot("attempt")
		if m.AttemptCount <= prev {
			t.Fatalf("AttemptCount went from %d to %d", prev, m.AttemptCount)
		}
		prev = m.AttemptCount
		if i%2 == 0 {
			a.CommitTurn()
		}
	}
}

// Package telemetry tracks per-turn behavioral signals for attempts.
package telemetry

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ashureev/cooked/internal/domain"
)

// phase is the per-turn typing state. Idle means no text-change event has
// been observed since the last committed turn; Tracking carries the start
// timestamp of the current typing session.
type phase int

const (
	idle phase = iota
	tracking
)

// Accumulator collects behavioral telemetry between submissions.
//
// TimeSpent and Backspaces are per-turn and reset only when a turn commits
// successfully; a failed submission carries them into the next attempt so a
// network error never erases the user's effort. AttemptCount, HintCount and
// FinalRequestCount are cumulative for the whole session and never reset.
type Accumulator struct {
	mu sync.Mutex

	phase       phase
	typingStart time.Time // valid only while phase == tracking
	backspaces  int
	lastLen     int

	attemptCount      int
	hintCount         int
	finalRequestCount int

	now func() time.Time
}

// New creates an accumulator. A nil clock defaults to time.Now; tests inject
// their own.
func New(clock func() time.Time) *Accumulator {
	if clock == nil {
		clock = time.Now
	}
	return &Accumulator{now: clock}
}

// ObserveInput records one text-change event with the input's new content.
// The first event since the last committed turn starts the typing clock; any
// event that shortens the text counts as a backspace, including a deletion
// before any insertion was seen.
func (a *Accumulator) ObserveInput(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == idle {
		a.phase = tracking
		a.typingStart = a.now()
	}

	n := utf8.RuneCountInString(text)
	if n < a.lastLen {
		a.backspaces++
	}
	a.lastLen = n
}

// Snapshot marks a submission: it increments the attempt counter and returns
// the telemetry for the submitted text. The input field is cleared by the
// submitter at the same moment, so the length baseline restarts at zero, but
// the typing clock and backspace count stay live until CommitTurn.
func (a *Accumulator) Snapshot(text string) domain.Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.attemptCount++
	a.lastLen = 0

	timeSpent := 0
	if a.phase == tracking {
		if d := a.now().Sub(a.typingStart); d > 0 {
			timeSpent = int(d.Milliseconds())
		}
	}

	return domain.Metrics{
		CharsTyped:        utf8.RuneCountInString(text),
		TimeSpentMS:       timeSpent,
		Backspaces:        a.backspaces,
		AttemptCount:      a.attemptCount,
		HintCount:         a.hintCount,
		FinalRequestCount: a.finalRequestCount,
	}
}

// CommitTurn resets the per-turn signals after a successful submission.
// It is not called on failure; the accumulated typing time and backspaces
// carry forward into the next attempt.
func (a *Accumulator) CommitTurn() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.phase = idle
	a.typingStart = time.Time{}
	a.backspaces = 0
	a.lastLen = 0
}

// IncHint bumps the cumulative hint-request counter.
func (a *Accumulator) IncHint() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hintCount++
}

// IncFinalRequest bumps the cumulative final-answer-request counter.
func (a *Accumulator) IncFinalRequest() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.finalRequestCount++
}

// Counters returns the current cumulative counters and live per-turn signals
// without marking a submission. Used by the presentation layer.
func (a *Accumulator) Counters() domain.Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	timeSpent := 0
	if a.phase == tracking {
		if d := a.now().Sub(a.typingStart); d > 0 {
			timeSpent = int(d.Milliseconds())
		}
	}

	return domain.Metrics{
		TimeSpentMS:       timeSpent,
		Backspaces:        a.backspaces,
		AttemptCount:      a.attemptCount,
		HintCount:         a.hintCount,
		FinalRequestCount: a.finalRequestCount,
	}
}

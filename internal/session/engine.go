package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ashureev/cooked/internal/domain"
	"github.com/ashureev/cooked/internal/evaluator"
	"github.com/ashureev/cooked/internal/history"
	"github.com/ashureev/cooked/internal/telemetry"
)

// unreachableMessage is shown as a synthetic assistant reply when a turn
// cannot reach the evaluator.
const unreachableMessage = "Could not reach the evaluator. Check that the server is up, then send your attempt again. Your typing effort is kept."

// Evaluator is the remote scoring call the engine depends on.
type Evaluator interface {
	Submit(ctx context.Context, req evaluator.ChatRequest) (*domain.Verdict, error)
}

// Turn is one submission in flight: the trimmed text, the declared mode and
// the telemetry snapshot captured at submit time.
type Turn struct {
	Text    string
	Mode    string
	Metrics domain.Metrics
}

// Result is the terminal outcome of a turn. Failed marks a transport
// failure; the engine has already surfaced it in the conversation, so
// callers only use Result to drive presentation.
type Result struct {
	Failed  bool
	Verdict *domain.Verdict
}

// Engine owns one client session: it composes requests from input text,
// session identity and accumulated telemetry, performs the remote call, and
// reconciles the outcome into the conversation, the history log and the
// accumulator. One engine exists per active session; all cross-component
// state lives here instead of package-level singletons.
type Engine struct {
	sessionID string
	client    Evaluator
	telem     *telemetry.Accumulator
	conv      *Conversation
	hist      *history.Log

	mu          sync.Mutex
	inFlight    bool
	defaultMode string
	nextMode    string

	now func() time.Time
}

// NewEngine creates an engine for the given session identity. hist may be
// nil when history persistence is disabled. defaultMode is the interaction
// mode declared on every request unless a hint/final control overrides the
// next turn.
func NewEngine(sessionID, defaultMode string, client Evaluator, telem *telemetry.Accumulator, hist *history.Log) *Engine {
	if defaultMode == "" {
		defaultMode = domain.ModeSocratic
	}
	return &Engine{
		sessionID:   sessionID,
		client:      client,
		telem:       telem,
		conv:        NewConversation(),
		hist:        hist,
		defaultMode: defaultMode,
		now:         time.Now,
	}
}

// Conversation exposes the live message log for presentation.
func (e *Engine) Conversation() *Conversation { return e.conv }

// SessionID returns the session identity every turn is submitted under.
func (e *Engine) SessionID() string { return e.sessionID }

// ObserveInput forwards a text-change event to the telemetry accumulator.
func (e *Engine) ObserveInput(text string) { e.telem.ObserveInput(text) }

// Metrics returns live telemetry for presentation without marking a
// submission.
func (e *Engine) Metrics() domain.Metrics { return e.telem.Counters() }

// InFlight reports whether a submission is currently outstanding.
func (e *Engine) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight
}

// RequestHint switches the next turn to hint mode and bumps the cumulative
// hint counter. This is a presentation-layer action outside the core submit
// flow.
func (e *Engine) RequestHint() {
	e.telem.IncHint()
	e.mu.Lock()
	e.nextMode = domain.ModeHint
	e.mu.Unlock()
}

// RequestFinal switches the next turn to final-answer mode and bumps the
// cumulative final-request counter.
func (e *Engine) RequestFinal() {
	e.telem.IncFinalRequest()
	e.mu.Lock()
	e.nextMode = domain.ModeFinal
	e.mu.Unlock()
}

// Begin starts a turn. It returns false, a complete no-op with nothing counted
// and nothing appended, when the trimmed text is empty or another submission is
// still outstanding. Otherwise it acquires the in-flight slot, snapshots
// telemetry, echoes the user message into the conversation, and returns the
// turn to resolve. The user message is visible before any network traffic
// happens; the caller clears the input field at the same moment.
func (e *Engine) Begin(text string) (*Turn, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return nil, false
	}
	e.inFlight = true
	mode := e.defaultMode
	if e.nextMode != "" {
		mode = e.nextMode
		e.nextMode = ""
	}
	e.mu.Unlock()

	metrics := e.telem.Snapshot(trimmed)
	e.conv.AppendUser(trimmed)

	return &Turn{Text: trimmed, Mode: mode, Metrics: metrics}, true
}

// Resolve performs the remote call for a turn started by Begin and
// reconciles the outcome. On success the assistant reply and verdict land in
// the conversation, a history entry is recorded and per-turn telemetry
// resets. On any transport failure a single synthetic assistant message is
// appended and nothing else changes: no verdict update, no history entry, no
// telemetry reset; the next attempt carries the effort forward. Resolve
// never returns an error; transport problems are part of the Result.
func (e *Engine) Resolve(ctx context.Context, turn *Turn) Result {
	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.mu.Unlock()
	}()

	verdict, err := e.client.Submit(ctx, evaluator.ChatRequest{
		SessionID: e.sessionID,
		Mode:      turn.Mode,
		UserText:  turn.Text,
		Metrics:   turn.Metrics,
	})
	if err != nil {
		slog.Warn("turn failed", "error", err, "attempt", turn.Metrics.AttemptCount)
		e.conv.AppendAssistant(unreachableMessage)
		return Result{Failed: true}
	}

	e.conv.AppendAssistant(verdict.AssistantText)
	e.conv.SetVerdict(verdict)

	if e.hist != nil {
		entry := domain.HistoryEntry{
			Text:      turn.Text,
			Timestamp: e.now().UnixMilli(),
			Score:     verdict.Score,
			State:     verdict.State,
			Tags:      verdict.Tags,
		}
		if err := e.hist.Record(ctx, entry); err != nil {
			// Degraded persistence never fails the turn.
			slog.Warn("history record failed", "error", err)
		}
	}

	e.telem.CommitTurn()
	return Result{Verdict: verdict}
}

// Submit runs one full turn synchronously: Begin plus Resolve. The boolean
// is false when the submission was a no-op (empty input or a turn already in
// flight). Transport failures do not surface as errors here; they are
// reconciled into the conversation and reported via Result.Failed.
func (e *Engine) Submit(ctx context.Context, text string) (Result, bool) {
	turn, ok := e.Begin(text)
	if !ok {
		return Result{}, false
	}
	return e.Resolve(ctx, turn), true
}

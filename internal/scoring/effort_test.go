package scoring

import (
	"strings"
	"testing"

	"github.com/ashureev/cooked/internal/domain"
)

func TestLazyFinalRequestIsCapped(t *testing.T) {
	t.Parallel()

	// "give final answer" with 20 chars, 4s, first attempt.
	out := EffortScore("give final answer", domain.Metrics{
		CharsTyped: 20, TimeSpentMS: 4000, AttemptCount: 1, FinalRequestCount: 1,
	})

	if out.Score > 39 {
		t.Errorf("Score = %d, want anti-cheese cap at 39", out.Score)
	}
	if out.State != domain.StateRaw {
		t.Errorf("State = %q, want RAW", out.State)
	}
	if out.Unlocked {
		t.Error("Unlocked = true for a lazy final request")
	}
	if !containsReason(out.Reasons, "Anti-cheese cap applied") {
		t.Errorf("Reasons = %v, want anti-cheese cap", out.Reasons)
	}
}

func TestSustainedEffortUnlocks(t *testing.T) {
	t.Parallel()

	text := "I think the answer is X because step 1 gives us y = 2. " +
		strings.Repeat("Then we substitute and simplify the expression carefully. ", 8)
	out := EffortScore(text, domain.Metrics{
		CharsTyped:   len(text),
		TimeSpentMS:  90000,
		Backspaces:   20,
		AttemptCount: 3,
	})

	if out.Score < 70 {
		t.Fatalf("Score = %d, want >= 70 for sustained effort", out.Score)
	}
	if out.State != domain.StateCooked {
		t.Errorf("State = %q, want COOKED", out.State)
	}
	if !out.Unlocked {
		t.Error("Unlocked = false for high score without hint/final abuse")
	}
	for _, want := range []string{"Good attempt length", "Time invested", "Iterated on attempt", "Active editing"} {
		if !containsReason(out.Reasons, want) {
			t.Errorf("Reasons = %v, missing %q", out.Reasons, want)
		}
	}
}

func TestHintAbuseBlocksUnlock(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("A detailed attempt with reasoning because of step 1 and step 2. ", 12)
	out := EffortScore(text, domain.Metrics{
		CharsTyped:   len(text),
		TimeSpentMS:  120000,
		Backspaces:   25,
		AttemptCount: 4,
		HintCount:    4,
	})

	if out.Unlocked {
		t.Error("Unlocked = true despite 4 hints")
	}
	if !containsReason(out.Reasons, "Hint penalty applied") {
		t.Errorf("Reasons = %v, want hint penalty", out.Reasons)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	t.Parallel()

	cases := []domain.Metrics{
		{},
		{CharsTyped: 100000, TimeSpentMS: 10000000, Backspaces: 500, AttemptCount: 50},
		{HintCount: 10, FinalRequestCount: 10},
	}
	for _, m := range cases {
		out := EffortScore("x", m)
		if out.Score < 0 || out.Score > 100 {
			t.Errorf("Score = %d for %+v, want 0..100", out.Score, m)
		}
	}
}

func TestStateThresholds(t *testing.T) {
	t.Parallel()

	// Zero effort lands in RAW.
	if out := EffortScore("", domain.Metrics{AttemptCount: 1}); out.State != domain.StateRaw {
		t.Errorf("zero effort state = %q, want RAW", out.State)
	}

	// Moderate effort lands in SIZZLING.
	out := EffortScore("I think the answer is X because ...", domain.Metrics{
		CharsTyped: 180, TimeSpentMS: 25000, Backspaces: 12, AttemptCount: 1,
	})
	if out.State != domain.StateSizzling {
		t.Errorf("moderate effort state = %q (score %d), want SIZZLING", out.State, out.Score)
	}
}

func TestRelianceIndex(t *testing.T) {
	t.Parallel()

	// Fully independent: many attempts, no hints or finals.
	if got := RelianceIndex(domain.Metrics{AttemptCount: 4}); got != 0 {
		t.Errorf("RelianceIndex(independent) = %v, want 0", got)
	}

	// Fully reliant: final spam, hint spam, single attempt capped.
	got := RelianceIndex(domain.Metrics{AttemptCount: 0, HintCount: 5, FinalRequestCount: 3})
	if got != 1 {
		t.Errorf("RelianceIndex(reliant) = %v, want 1", got)
	}
}

func TestStructurePoints(t *testing.T) {
	t.Parallel()

	if got := structurePoints(""); got != 0 {
		t.Errorf("structurePoints(empty) = %v, want 0", got)
	}
	// Connectors + steps + multiple sentences saturate the component.
	full := "First, because x = 1. Then step 2 follows. Therefore we are done."
	if got := structurePoints(full); got != 10 {
		t.Errorf("structurePoints(full) = %v, want 10", got)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}

// Package scoring implements the evaluator's effort model: a score from
// behavioral telemetry and attempt text, the RAW/SIZZLING/COOKED progression
// thresholds, and the final-answer unlock rule.
package scoring

import (
	"math"
	"regexp"

	"github.com/ashureev/cooked/internal/domain"
)

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	reasoningWords = regexp.MustCompile(`(?i)\b(because|so|therefore|thus|however|if|then|since)\b`)
	stepMarkers    = regexp.MustCompile(`(?i)(\n-|\n\d+\.|\bstep\b|=|->)`)
)

// Outcome is the scored result for one attempt.
type Outcome struct {
	Score    int
	State    string
	Unlocked bool
	Reasons  []string
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// structurePoints rewards attempts that show reasoning, steps, or
// multi-sentence structure. Capped at 10.
func structurePoints(text string) float64 {
	if text == "" {
		return 0
	}

	pts := 0.0
	if len(sentenceSplit.Split(text, -1)) >= 3 {
		pts += 3
	}
	if reasoningWords.MatchString(text) {
		pts += 3
	}
	if stepMarkers.MatchString(text) {
		pts += 4
	}
	return clamp(pts, 0, 10)
}

// EffortScore computes the score for one attempt.
//
// Components: length (0-40, saturating around 600 chars), time (0-25,
// saturating around 90s), iteration (0-15), editing (0-10, rising after ~8
// backspaces) and structure (0-10). Hint use and early final-answer requests
// subtract. A final request with almost no effort caps the score at 39.
func EffortScore(userText string, m domain.Metrics) Outcome {
	var reasons []string

	lengthPoints := 40 * (1 - math.Exp(-float64(m.CharsTyped)/250))
	if m.CharsTyped >= 120 {
		reasons = append(reasons, "Good attempt length")
	}

	timeSec := float64(m.TimeSpentMS) / 1000
	timePoints := 25 * (1 - math.Exp(-timeSec/45))
	if timeSec >= 25 {
		reasons = append(reasons, "Time invested")
	}

	attempts := m.AttemptCount
	if attempts < 1 {
		attempts = 1
	}
	iterationPoints := 15 * (1 - math.Exp(-float64(attempts-1)/2))
	if m.AttemptCount >= 2 {
		reasons = append(reasons, "Iterated on attempt")
	}

	editPoints := clamp(10*sigmoid((float64(m.Backspaces)-8)/10), 0, 10)
	if m.Backspaces >= 8 {
		reasons = append(reasons, "Active editing")
	}

	sp := structurePoints(userText)
	if sp >= 6 {
		reasons = append(reasons, "Reasoning structure detected")
	}

	base := lengthPoints + timePoints + iterationPoints + editPoints + sp

	hintPenalty := math.Min(20, 6*float64(m.HintCount))
	if m.HintCount > 0 {
		reasons = append(reasons, "Hint penalty applied")
	}

	finalEarlyPenalty := 0.0
	if m.FinalRequestCount > 0 {
		lowEffort := m.CharsTyped < 80 || timeSec < 15
		finalEarlyPenalty = 18 + math.Min(5, 2*float64(m.FinalRequestCount))
		if lowEffort {
			finalEarlyPenalty += 12
		}
		reasons = append(reasons, "Early FINAL request penalty")
	}

	score := int(math.Round(clamp(base-hintPenalty-finalEarlyPenalty, 0, 100)))

	// Anti-cheese cap: asked for the final answer with almost no effort.
	if m.FinalRequestCount > 0 && m.CharsTyped < 120 && timeSec < 25 && m.AttemptCount <= 1 {
		if score > 39 {
			score = 39
		}
		reasons = append(reasons, "Anti-cheese cap applied")
	}

	state := domain.StateCooked
	switch {
	case score <= 29:
		state = domain.StateRaw
	case score <= 69:
		state = domain.StateSizzling
	}

	unlocked := score >= 70 && m.FinalRequestCount <= 1 && m.HintCount <= 3

	if reasons == nil {
		reasons = []string{}
	}
	return Outcome{Score: score, State: state, Unlocked: unlocked, Reasons: reasons}
}

// RelianceIndex estimates how dependent the learner is on the tutor, from 0
// (independent) to 1 (fully reliant), rounded to two decimals.
func RelianceIndex(m domain.Metrics) float64 {
	hint := clamp(float64(m.HintCount)/5, 0, 1)
	final := clamp(float64(m.FinalRequestCount)/3, 0, 1)
	attempts := m.AttemptCount
	if attempts > 4 {
		attempts = 4
	}
	independence := clamp(1-float64(attempts)/4, 0, 1)
	return math.Round((0.45*final+0.35*hint+0.20*independence)*100) / 100
}

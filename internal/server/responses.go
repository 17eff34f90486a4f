package server

import (
	"github.com/ashureev/cooked/internal/domain"
	"github.com/ashureev/cooked/internal/scoring"
)

// bannerFromState maps a verdict state to the short banner line shown above
// the score meter. The unlock flag wins over the state: once the session has
// earned the final answer, every subsequent banner says so.
func bannerFromState(state string, unlocked bool) string {
	if unlocked {
		return "FULLY COOKED. Final answer unlocked."
	}
	switch state {
	case domain.StateCooked:
		return "COOKED. Full effort detected."
	case domain.StateSizzling:
		return "SIZZLING. Keep the heat on."
	default:
		return "RAW. Show your work before asking for answers."
	}
}

// tutorResponse returns the deterministic coaching text for a turn. The
// effective mode already accounts for FINAL being locked; finalLocked is
// only used to explain the substitution to the learner.
func tutorResponse(mode, taskType string, finalLocked bool) string {
	if finalLocked {
		return "FINAL is locked until you have shown real effort. " +
			"Walk me through your current attempt instead: what did you try, and where did it break down?"
	}

	switch mode {
	case domain.ModeHint:
		switch taskType {
		case scoring.TaskMath:
			return "Hint: write out the quantities you know and the one you want, then look for a relation that connects them. Which step is blocking you?"
		case scoring.TaskWriting:
			return "Hint: state your main claim in one sentence first, then list the two strongest pieces of support you have for it."
		default:
			return "Hint: try explaining the idea to someone who has never seen it. The first place your explanation gets vague is the gap to work on."
		}
	case domain.ModeFinal:
		switch taskType {
		case scoring.TaskMath:
			return "Here is a worked path: restate the problem, isolate the unknown, apply the governing relation step by step, and check the result against the original conditions."
		case scoring.TaskWriting:
			return "Here is a model structure: a one-sentence thesis, two supporting paragraphs each built around a single piece of evidence, and a closing that answers the so-what question."
		default:
			return "Here is a direct explanation: start from the definition, connect it to the mechanism that makes it work, and finish with one concrete example that shows it in action."
		}
	case domain.ModeReflection:
		return "Before we continue: what was the hardest part of that attempt, and what would you do differently on the next one?"
	case domain.ModeSummary:
		return "Here's your summary. You may not be cooked after all."
	default:
		switch taskType {
		case scoring.TaskMath:
			return "What is the first quantity you can compute from what you are given? Start there and show me the step."
		case scoring.TaskWriting:
			return "What is the single claim this piece is arguing for? Say it in one sentence before drafting anything else."
		default:
			return "In your own words, what is this question really asking? Restate it first, then tell me what you already know about it."
		}
	}
}

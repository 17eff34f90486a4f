package scoring

import (
	"math"
	"sort"
)

// TurnRecord is the per-turn slice of session state the summary is built
// from.
type TurnRecord struct {
	Mode     string   `json:"mode"`
	Score    int      `json:"score"`
	Unlocked bool     `json:"unlocked"`
	Tags     []string `json:"tags"`
}

// Summary aggregates a session's turns for SUMMARY mode.
type Summary struct {
	TurnsTotal    int      `json:"turns_total"`
	TurnsToUnlock *int     `json:"turns_to_unlock"`
	HintsUsed     int      `json:"hints_used"`
	FinalRequests int      `json:"final_requests"`
	EffortAvg     float64  `json:"effort_avg"`
	EffortMin     int      `json:"effort_min"`
	EffortMax     int      `json:"effort_max"`
	TopSkillTags  []string `json:"top_skill_tags"`
	CoachFeedback []string `json:"coach_feedback"`
}

// GenerateSummary condenses a session's turn log into totals, effort stats,
// dominant skill tags and a few lines of coach feedback.
func GenerateSummary(turns []TurnRecord) Summary {
	out := Summary{TurnsTotal: len(turns)}

	var scores []int
	for i, t := range turns {
		scores = append(scores, t.Score)
		switch t.Mode {
		case "HINT":
			out.HintsUsed++
		case "FINAL":
			out.FinalRequests++
		}
		if t.Unlocked && out.TurnsToUnlock == nil {
			n := i + 1
			out.TurnsToUnlock = &n
		}
	}

	if len(scores) > 0 {
		sum := 0
		out.EffortMin = scores[0]
		out.EffortMax = scores[0]
		for _, s := range scores {
			sum += s
			if s < out.EffortMin {
				out.EffortMin = s
			}
			if s > out.EffortMax {
				out.EffortMax = s
			}
		}
		out.EffortAvg = math.Round(float64(sum)/float64(len(scores))*10) / 10
	}

	out.TopSkillTags = topTags(turns, 3)

	var feedback []string
	if out.HintsUsed >= 4 {
		feedback = append(feedback, "Lots of hints used. Try writing a short attempt before requesting hints.")
	}
	if out.TurnsToUnlock != nil && *out.TurnsToUnlock <= 2 {
		feedback = append(feedback, "Fast unlock. Next time, explain your reasoning to earn COOKED faster.")
	}
	if out.EffortAvg >= 70 {
		feedback = append(feedback, "Strong independence. Your attempts show real thinking.")
	}
	if len(feedback) == 0 {
		feedback = append(feedback, "Solid progress. Keep doing short attempts, then refine.")
	}
	if len(feedback) > 3 {
		feedback = feedback[:3]
	}
	out.CoachFeedback = feedback

	return out
}

func topTags(turns []TurnRecord, n int) []string {
	counts := map[string]int{}
	var order []string
	for _, t := range turns {
		for _, tag := range t.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] > counts[order[b]] })
	if len(order) > n {
		order = order[:n]
	}
	if len(order) == 0 {
		return []string{"Recall"}
	}
	return order
}

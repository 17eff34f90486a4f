package scoring

import (
	"reflect"
	"strings"
	"testing"
)

func TestSkillTags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty falls back to recall", "", []string{"Recall"}},
		{"definition question", "what is the definition of entropy", []string{"Recall"}},
		{"solve with numbers", "solve 2x + 4 = 10", []string{"Application"}},
		{"causal reasoning", "x because y, therefore z. why does this compare?", []string{"Analysis"}},
		{"design prompt", "design an architecture and propose a roadmap", []string{"Synthesis"}},
		{"tradeoff question", "argue the pros and cons, justify the trade-off", []string{"Evaluation"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SkillTags(tc.text)
			if len(got) == 0 || got[0] != tc.want[0] {
				t.Errorf("SkillTags(%q) = %v, want leading %v", tc.text, got, tc.want)
			}
			if len(got) > 2 {
				t.Errorf("SkillTags returned %d tags, max is 2", len(got))
			}
		})
	}
}

func TestSkillTagsLongProseImpliesAnalysis(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("a plain sentence without any cue words at all ", 6)
	got := SkillTags(text)
	if !contains(got, "Analysis") {
		t.Errorf("SkillTags(long prose) = %v, want Analysis heuristic", got)
	}
}

func TestSkillTagsNumbersImplyApplication(t *testing.T) {
	t.Parallel()

	got := SkillTags("the value 42 appears here")
	if !contains(got, "Application") {
		t.Errorf("SkillTags = %v, want Application for numeric content", got)
	}
}

func TestDetectTaskType(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"compute the integral of x squared": TaskMath,
		"help me outline my essay thesis":   TaskWriting,
		"explain why the sky is blue":       TaskExplain,
		"random text with no cues":          TaskExplain,
	}
	for text, want := range cases {
		if got := DetectTaskType(text); got != want {
			t.Errorf("DetectTaskType(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestGenerateSummary(t *testing.T) {
	t.Parallel()

	turns := []TurnRecord{
		{Mode: "SOCRATIC", Score: 30, Tags: []string{"Recall"}},
		{Mode: "HINT", Score: 55, Tags: []string{"Analysis", "Recall"}},
		{Mode: "SOCRATIC", Score: 75, Unlocked: true, Tags: []string{"Analysis"}},
		{Mode: "FINAL", Score: 80, Unlocked: true, Tags: []string{"Application"}},
	}

	s := GenerateSummary(turns)

	if s.TurnsTotal != 4 {
		t.Errorf("TurnsTotal = %d, want 4", s.TurnsTotal)
	}
	if s.TurnsToUnlock == nil || *s.TurnsToUnlock != 3 {
		t.Errorf("TurnsToUnlock = %v, want 3", s.TurnsToUnlock)
	}
	if s.HintsUsed != 1 || s.FinalRequests != 1 {
		t.Errorf("HintsUsed/FinalRequests = %d/%d, want 1/1", s.HintsUsed, s.FinalRequests)
	}
	if s.EffortAvg != 60 {
		t.Errorf("EffortAvg = %v, want 60", s.EffortAvg)
	}
	if s.EffortMin != 30 || s.EffortMax != 80 {
		t.Errorf("EffortMin/Max = %d/%d, want 30/80", s.EffortMin, s.EffortMax)
	}
	// Recall and Analysis tie at two uses; the earlier-seen tag wins.
	if !reflect.DeepEqual(s.TopSkillTags, []string{"Recall", "Analysis", "Application"}) {
		t.Errorf("TopSkillTags = %v", s.TopSkillTags)
	}
	if len(s.CoachFeedback) == 0 || len(s.CoachFeedback) > 3 {
		t.Errorf("CoachFeedback = %v, want 1..3 lines", s.CoachFeedback)
	}
}

func TestGenerateSummaryEmptySession(t *testing.T) {
	t.Parallel()

	s := GenerateSummary(nil)
	if s.TurnsTotal != 0 || s.TurnsToUnlock != nil {
		t.Errorf("empty summary = %+v", s)
	}
	if !reflect.DeepEqual(s.TopSkillTags, []string{"Recall"}) {
		t.Errorf("TopSkillTags = %v, want Recall fallback", s.TopSkillTags)
	}
	if len(s.CoachFeedback) != 1 {
		t.Errorf("CoachFeedback = %v, want single default line", s.CoachFeedback)
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// tagRule maps a skill tag to the cue patterns that vote for it. Order
// matters: it breaks ties when two tags score equally.
type tagRule struct {
	tag      string
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

var tagRules = []tagRule{
	{"Recall", compileAll(
		`\bdefine\b`, `\bdefinition\b`, `\bwhat is\b`, `\bmeaning\b`, `\blist\b`, `\bremember\b`,
	)},
	{"Application", compileAll(
		`\bsolve\b`, `\bcalculate\b`, `\bcompute\b`, `\buse (the )?formula\b`, `\bplug in\b`,
		`\bexample\b`, `\bimplement\b`, `\bcode\b`,
	)},
	{"Analysis", compileAll(
		`\bbecause\b`, `\btherefore\b`, `\bwhy\b`, `\bcompare\b`, `\bdifference\b`,
		`\bif\b.*\bthen\b`, `\bbreak down\b`,
	)},
	{"Synthesis", compileAll(
		`\bdesign\b`, `\bbuild\b`, `\bplan\b`, `\bpropose\b`, `\bcombine\b`, `\bcreate\b`,
		`\barchitecture\b`, `\broadmap\b`,
	)},
	{"Evaluation", compileAll(
		`\bpros\b`, `\bcons\b`, `\btrade-?off\b`, `\bbest\b`, `\bjustify\b`, `\bargue\b`,
		`\bcritique\b`, `\bevaluate\b`,
	)},
}

var numericCue = regexp.MustCompile(`=|\d`)

// SkillTags classifies an attempt into at most two skill tags. An attempt
// that matches nothing is tagged Recall.
func SkillTags(userText string) []string {
	text := strings.ToLower(userText)

	scores := make([]int, len(tagRules))
	for i, rule := range tagRules {
		for _, p := range rule.patterns {
			if p.MatchString(text) {
				scores[i]++
			}
		}
	}

	// Long prose without explicit analysis cues still shows analysis;
	// numbers and equations imply application.
	const analysisIdx, applicationIdx = 2, 1
	if len(text) > 200 && scores[analysisIdx] == 0 {
		scores[analysisIdx]++
	}
	if numericCue.MatchString(text) && scores[applicationIdx] == 0 {
		scores[applicationIdx]++
	}

	idx := make([]int, len(tagRules))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	var picked []string
	for _, i := range idx {
		if scores[i] > 0 && len(picked) < 2 {
			picked = append(picked, tagRules[i].tag)
		}
	}
	if len(picked) == 0 {
		return []string{"Recall"}
	}
	return picked
}

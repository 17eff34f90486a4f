package scoring

import "strings"

// Task types the tutor adapts its responses to. Detected once per session
// from the first attempt.
const (
	TaskMath    = "math"
	TaskWriting = "writing"
	TaskExplain = "explain"
)

var (
	mathCues = []string{
		"integral", "derivative", "solve", "simplify", "limit", "proof",
		"equation", "matrix", "vector", "probability", "statistics",
	}
	writingCues = []string{
		"essay", "thesis", "introduction", "conclusion", "paragraph",
		"outline", "citation", "argument", "rewrite", "rephrase",
	}
	explainCues = []string{
		"explain", "define", "summarize", "difference", "how", "why", "what is",
	}
)

func countCues(text string, cues []string) int {
	n := 0
	for _, c := range cues {
		if strings.Contains(text, c) {
			n++
		}
	}
	return n
}

// DetectTaskType classifies an attempt as math, writing or explain.
// Explain is the default when nothing matches.
func DetectTaskType(text string) string {
	t := strings.ToLower(text)
	mh := countCues(t, mathCues)
	wh := countCues(t, writingCues)
	eh := countCues(t, explainCues)

	if mh >= wh && mh >= eh && mh > 0 {
		return TaskMath
	}
	if wh >= mh && wh >= eh && wh > 0 {
		return TaskWriting
	}
	return TaskExplain
}

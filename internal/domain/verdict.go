package domain

// Progression states reported by the evaluator. The client never computes
// transitions itself; it displays whatever state string the server returns.
// These constants exist for defaults and presentation thresholds only.
const (
	StateRaw      = "RAW"
	StateSizzling = "SIZZLING"
	StateCooked   = "COOKED"
)

// Interaction modes declared by the client per request. The server may
// substitute a different effective mode (e.g. FINAL while still locked).
const (
	ModeSocratic   = "SOCRATIC"
	ModeHint       = "HINT"
	ModeFinal      = "FINAL"
	ModeReflection = "REFLECTION"
	ModeSummary    = "SUMMARY"
)

// Metrics is the behavioral telemetry attached to one submitted attempt.
// TimeSpentMS and Backspaces are per-turn; the three counters are cumulative
// for the whole session and never reset.
type Metrics struct {
	CharsTyped        int `json:"chars_typed"`
	TimeSpentMS       int `json:"time_spent_ms"`
	Backspaces        int `json:"backspaces"`
	AttemptCount      int `json:"attempt_count"`
	HintCount         int `json:"hint_count"`
	FinalRequestCount int `json:"final_request_count"`
}

// Verdict is the evaluator's result for one submitted attempt. Any field may
// be absent on the wire; zero values are the safe display defaults.
type Verdict struct {
	State         string   `json:"state"`
	Score         int      `json:"score"`
	AssistantText string   `json:"assistant_text"`
	Banner        string   `json:"banner"`
	Tags          []string `json:"tags"`
	Reasons       []string `json:"reasons"`
	Unlocked      bool     `json:"unlocked"`
	TaskType      string   `json:"task_type,omitempty"`
}

// DisplayScore clamps the score to 0-100 for presentation. Stored values are
// never clamped.
func (v Verdict) DisplayScore() int {
	if v.Score < 0 {
		return 0
	}
	if v.Score > 100 {
		return 100
	}
	return v.Score
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashureev/cooked/internal/domain"
	"github.com/ashureev/cooked/internal/evaluator"
	"github.com/ashureev/cooked/internal/scoring"
)

// Handler serves the evaluator HTTP API.
type Handler struct {
	sessions *SessionStore
}

// NewHandler creates a Handler backed by an in-memory session store.
func NewHandler(sessions *SessionStore) *Handler {
	return &Handler{sessions: sessions}
}

// chatResponse is the wire shape returned by POST /chat. Every field except
// assistant_text is advisory; clients substitute defaults for absent fields.
type chatResponse struct {
	State         string           `json:"state"`
	Score         int              `json:"score"`
	AssistantText string           `json:"assistant_text"`
	Banner        string           `json:"banner"`
	Tags          []string         `json:"tags"`
	Reasons       []string         `json:"reasons"`
	Unlocked      bool             `json:"unlocked"`
	TaskType      string           `json:"task_type,omitempty"`
	Summary       *scoring.Summary `json:"summary,omitempty"`
}

// RegisterRoutes mounts the evaluator endpoints on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Post("/chat", h.Chat)
}

// Home reports that the service is up.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"message": "COOKED evaluator running"})
}

// Chat scores one learner turn and returns the verdict plus coaching text.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req evaluator.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" {
		Error(w, http.StatusBadRequest, "session_id is required")
		return
	}

	sess := h.sessions.Get(req.SessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.TaskType == "" {
		sess.TaskType = scoring.DetectTaskType(req.UserText)
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ModeSocratic
	}

	outcome := scoring.EffortScore(req.UserText, req.Metrics)
	if outcome.Unlocked {
		sess.FinalUnlocked = true
	}
	tags := scoring.SkillTags(req.UserText)

	// FINAL is only honored once the session has earned it. A locked
	// request falls back to Socratic questioning for this turn.
	effectiveMode := mode
	finalLocked := false
	if mode == domain.ModeFinal && !sess.FinalUnlocked {
		effectiveMode = domain.ModeSocratic
		finalLocked = true
	}

	sess.Turns = append(sess.Turns, scoring.TurnRecord{
		Mode:     mode,
		Score:    outcome.Score,
		Unlocked: sess.FinalUnlocked,
		Tags:     tags,
	})

	resp := chatResponse{
		State:         outcome.State,
		Score:         outcome.Score,
		AssistantText: tutorResponse(effectiveMode, sess.TaskType, finalLocked),
		Banner:        bannerFromState(outcome.State, sess.FinalUnlocked),
		Tags:          tags,
		Reasons:       outcome.Reasons,
		Unlocked:      sess.FinalUnlocked,
		TaskType:      sess.TaskType,
	}
	if mode == domain.ModeSummary {
		summary := scoring.GenerateSummary(sess.Turns)
		resp.Summary = &summary
	}

	JSON(w, http.StatusOK, resp)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

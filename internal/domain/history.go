package domain

// HistoryEntry is one durable record of a successfully evaluated turn.
// Entries are append-only; nothing in the client mutates or removes them.
type HistoryEntry struct {
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"`
	Score     int      `json:"score"`
	State     string   `json:"state"`
	Tags      []string `json:"tags"`
}

// Package session holds the live client session: the conversation log and
// the engine that turns user input into evaluated turns.
package session

import (
	"sync"

	"github.com/ashureev/cooked/internal/domain"
)

// Conversation is the append-only log of displayed messages plus the latest
// verdict. It lives for the client run only and is never persisted; the
// durable record is the history log.
type Conversation struct {
	mu       sync.Mutex
	messages []domain.Message
	verdict  *domain.Verdict
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// AppendUser adds a user message to the log.
func (c *Conversation) AppendUser(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, domain.Message{Role: domain.RoleUser, Content: text})
}

// AppendAssistant adds an assistant message to the log.
func (c *Conversation) AppendAssistant(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, domain.Message{Role: domain.RoleAssistant, Content: text})
}

// SetVerdict replaces the latest-verdict cell.
func (c *Conversation) SetVerdict(v *domain.Verdict) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verdict = v
}

// LatestVerdict returns the most recent verdict, or nil before the first
// successful turn.
func (c *Conversation) LatestVerdict() *domain.Verdict {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verdict
}

// CurrentMode returns the latest verdict's progression state, or RAW before
// any verdict has been received.
func (c *Conversation) CurrentMode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.verdict == nil || c.verdict.State == "" {
		return domain.StateRaw
	}
	return c.verdict.State
}

// Messages returns a copy of the message log in display order.
func (c *Conversation) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of logged messages.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Package domain contains core domain types for the COOKED client.
package domain

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single displayed entry in the conversation log.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

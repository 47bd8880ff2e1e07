// Package llm defines the language-model capability used by the request
// handlers, independent of any concrete provider.
package llm

import "context"

// Role tags a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged conversation message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Client is the capability interface for text completion. Handlers depend
// on this interface only; the concrete provider is chosen at startup.
type Client interface {
	// Complete sends an ordered message sequence and returns a single
	// text completion.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Close releases any underlying connections.
	Close() error
}

// UserMessage is a convenience constructor for the single-turn prompts
// the handlers build.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

package llm

import (
	"context"
	"strings"
)

// mockEchoLimit caps how much of the prompt the mock echoes back.
const mockEchoLimit = 200

// MockClient is a deterministic Client for development and demos: it
// echoes a truncated prefix of the last user message. No network, no
// state, safe for concurrent use.
type MockClient struct{}

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete implements Client. The reply is derived solely from the input,
// so repeated calls with the same messages return the same text.
func (m *MockClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var prompt string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			prompt = messages[i].Content
			break
		}
	}

	prompt = strings.TrimSpace(prompt)
	if len(prompt) > mockEchoLimit {
		prompt = prompt[:mockEchoLimit]
	}
	return prompt, nil
}

// Close implements Client.
func (m *MockClient) Close() error {
	return nil
}

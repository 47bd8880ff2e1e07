package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_Complete(t *testing.T) {
	client := NewMockClient()

	t.Run("echoes the last user message", func(t *testing.T) {
		reply, err := client.Complete(context.Background(), []Message{
			{Role: RoleUser, Content: "first"},
			{Role: RoleAssistant, Content: "ignored"},
			{Role: RoleUser, Content: "second"},
		})
		require.NoError(t, err)
		assert.Equal(t, "second", reply)
	})

	t.Run("truncates long prompts", func(t *testing.T) {
		long := strings.Repeat("x", 1000)
		reply, err := client.Complete(context.Background(), UserMessage(long))
		require.NoError(t, err)
		assert.Len(t, reply, mockEchoLimit)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		msgs := UserMessage("what is go")
		first, err := client.Complete(context.Background(), msgs)
		require.NoError(t, err)
		second, err := client.Complete(context.Background(), msgs)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("no user message yields empty text", func(t *testing.T) {
		reply, err := client.Complete(context.Background(), []Message{
			{Role: RoleSystem, Content: "system only"},
		})
		require.NoError(t, err)
		assert.Empty(t, reply)
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Complete(ctx, UserMessage("hello"))
		require.Error(t, err)
	})
}

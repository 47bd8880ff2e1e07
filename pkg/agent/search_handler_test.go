package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_Handle(t *testing.T) {
	t.Run("empty query fails without searching", func(t *testing.T) {
		searcher := &stubSearcher{}
		h := NewSearchHandler(searcher, &scriptedLLM{})

		_, err := h.Handle(context.Background(), "  ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Zero(t, searcher.calls)
	})

	t.Run("summarizes search results through the LLM", func(t *testing.T) {
		searcher := &stubSearcher{result: "Go is a programming language."}
		mock := &scriptedLLM{replies: []string{"Go is a language from Google."}}
		h := NewSearchHandler(searcher, mock)

		result, err := h.Handle(context.Background(), "what is Go")
		require.NoError(t, err)
		assert.Equal(t, "Go is a language from Google.", result)
		assert.Equal(t, 1, searcher.calls)
		assert.Contains(t, mock.lastPrompt(), "what is Go")
		assert.Contains(t, mock.lastPrompt(), "Go is a programming language.")
	})

	t.Run("search output is truncated to 500 characters in the prompt", func(t *testing.T) {
		long := strings.Repeat("a", searchContextLimit) + strings.Repeat("Z", 50)
		searcher := &stubSearcher{result: long}
		mock := &scriptedLLM{replies: []string{"summary"}}
		h := NewSearchHandler(searcher, mock)

		_, err := h.Handle(context.Background(), "q")
		require.NoError(t, err)
		prompt := mock.lastPrompt()
		assert.Contains(t, prompt, strings.Repeat("a", searchContextLimit))
		assert.NotContains(t, prompt, "Z")
	})

	t.Run("empty LLM reply falls back to raw search output", func(t *testing.T) {
		searcher := &stubSearcher{result: "raw results"}
		h := NewSearchHandler(searcher, &scriptedLLM{replies: []string{"  \n"}})

		result, err := h.Handle(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, "raw results", result)
	})

	t.Run("fallback returns the full untruncated output", func(t *testing.T) {
		long := strings.Repeat("x", searchContextLimit+50)
		searcher := &stubSearcher{result: long}
		h := NewSearchHandler(searcher, &scriptedLLM{})

		result, err := h.Handle(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, long, result)
	})

	t.Run("search fault propagates", func(t *testing.T) {
		searcher := &stubSearcher{err: errors.New("duckduckgo unreachable")}
		mock := &scriptedLLM{}
		h := NewSearchHandler(searcher, mock)

		_, err := h.Handle(context.Background(), "q")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duckduckgo unreachable")
		assert.Empty(t, mock.prompts)
	})

	t.Run("LLM fault propagates", func(t *testing.T) {
		searcher := &stubSearcher{result: "raw"}
		h := NewSearchHandler(searcher, &scriptedLLM{err: errors.New("llm offline")})

		_, err := h.Handle(context.Background(), "q")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm offline")
	})
}

package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arisng/agent-research/pkg/llm"
)

// searchContextLimit caps how much raw search output is embedded into the
// summarization prompt. Character-count truncation, not word-boundary aware.
const searchContextLimit = 500

// Searcher is the search-client capability the handler depends on.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// SearchHandler serves internet-search requests: one search-client call,
// then one LLM call that summarizes the results against the question.
type SearchHandler struct {
	search Searcher
	llm    llm.Client
	logger *slog.Logger
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(search Searcher, llmClient llm.Client) *SearchHandler {
	return &SearchHandler{
		search: search,
		llm:    llmClient,
		logger: slog.Default(),
	}
}

// Handle answers the query. Returns the LLM's text, or the raw search
// text when the LLM yields no text.
func (h *SearchHandler) Handle(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", NewValidationError("query", "must not be empty")
	}

	raw, err := h.search.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}

	truncated := raw
	if len(truncated) > searchContextLimit {
		truncated = truncated[:searchContextLimit]
	}

	prompt := fmt.Sprintf(summarizeSearchPrompt, query, truncated)
	reply, err := h.llm.Complete(ctx, llm.UserMessage(prompt))
	if err != nil {
		return "", fmt.Errorf("summarize search results: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		h.logger.Debug("LLM returned no text, falling back to raw search output", "query", query)
		return raw, nil
	}
	return reply, nil
}

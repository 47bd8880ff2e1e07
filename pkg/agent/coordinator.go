// Package agent implements the request handlers and the coordinator that
// routes natural-language requests between them.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arisng/agent-research/pkg/config"
	"github.com/arisng/agent-research/pkg/llm"
)

// Keyword sets for the keyword-routed coordinator variant.
var (
	databaseKeywords = []string{"database", "table", "sql", "query"}
	searchKeywords   = []string{"search", "find", "what is", "who is"}
)

// Handler interprets a free-text request for one domain and produces a
// text result.
type Handler interface {
	Handle(ctx context.Context, request string) (string, error)
}

// Coordinator is the top-level dispatcher selecting which handler serves
// a request. Two variants exist: keyword routing with a single-handler
// fallback, and LLM routing with a concurrent "both" fan-out.
type Coordinator struct {
	searchHandler   Handler
	databaseHandler Handler
	llm             llm.Client
	mode            config.RoutingMode
	logger          *slog.Logger
}

// NewCoordinator creates a coordinator with the given routing mode.
func NewCoordinator(search, database Handler, llmClient llm.Client, mode config.RoutingMode) *Coordinator {
	return &Coordinator{
		searchHandler:   search,
		databaseHandler: database,
		llm:             llmClient,
		mode:            mode,
		logger:          slog.Default(),
	}
}

// Dispatch classifies the request and runs the selected handler(s).
// The route is recomputed on every call; nothing is persisted.
func (c *Coordinator) Dispatch(ctx context.Context, request string) (string, error) {
	if strings.TrimSpace(request) == "" {
		return "", NewValidationError("request", "must not be empty")
	}

	if c.mode == config.RoutingLLM {
		return c.dispatchLLM(ctx, request)
	}
	return c.dispatchKeyword(ctx, request)
}

// dispatchKeyword routes by keyword presence. Database-only keywords go
// to the database handler; everything else (search-only, both sets, or
// neither) goes to the search handler.
func (c *Coordinator) dispatchKeyword(ctx context.Context, request string) (string, error) {
	lower := strings.ToLower(request)
	isDatabase := containsAny(lower, databaseKeywords)
	isSearch := containsAny(lower, searchKeywords)

	if isDatabase && !isSearch {
		c.logger.Debug("Routing to database handler", "request", request)
		return c.databaseHandler.Handle(ctx, request)
	}
	c.logger.Debug("Routing to search handler",
		"request", request, "database_keywords", isDatabase, "search_keywords", isSearch)
	return c.searchHandler.Handle(ctx, request)
}

// dispatchLLM asks the LLM to classify the request. Unrecognized replies
// run both handlers.
func (c *Coordinator) dispatchLLM(ctx context.Context, request string) (string, error) {
	reply, err := c.llm.Complete(ctx, llm.UserMessage(fmt.Sprintf(routingPrompt, request)))
	if err != nil {
		return "", fmt.Errorf("classify request: %w", err)
	}

	route := strings.ToLower(strings.TrimSpace(reply))
	c.logger.Debug("LLM route decision", "route", route)

	switch route {
	case "search":
		return c.searchHandler.Handle(ctx, request)
	case "database":
		return c.databaseHandler.Handle(ctx, request)
	default:
		return c.dispatchBoth(ctx, request)
	}
}

type handlerResult struct {
	text string
	err  error
}

// dispatchBoth runs both handlers concurrently and joins both before
// concatenating. No partial results: a fault from either handler aborts
// the whole dispatch after both have finished.
func (c *Coordinator) dispatchBoth(ctx context.Context, request string) (string, error) {
	searchCh := make(chan handlerResult, 1)
	databaseCh := make(chan handlerResult, 1)

	go func() {
		text, err := c.searchHandler.Handle(ctx, request)
		searchCh <- handlerResult{text: text, err: err}
	}()
	go func() {
		text, err := c.databaseHandler.Handle(ctx, request)
		databaseCh <- handlerResult{text: text, err: err}
	}()

	searchRes := <-searchCh
	databaseRes := <-databaseCh

	if searchRes.err != nil {
		return "", fmt.Errorf("search handler: %w", searchRes.err)
	}
	if databaseRes.err != nil {
		return "", fmt.Errorf("database handler: %w", databaseRes.err)
	}

	return fmt.Sprintf("Search Results:\n%s\n\nDatabase Results:\n%s\n",
		searchRes.text, databaseRes.text), nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

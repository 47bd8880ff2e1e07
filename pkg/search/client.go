// Package search provides the instant-answer search client: one HTTP GET
// against a DuckDuckGo-style endpoint, rendered into plain text sections.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrEmptyQuery is returned when Search is called with a blank query.
var ErrEmptyQuery = errors.New("search query must not be empty")

// Client queries an instant-answer API and renders results as text.
// Identical queries within the cache TTL reuse the rendered text.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *Cache
	logger     *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// NewClient creates a search client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cacheTTL := opts.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		cache:      NewCache(cacheTTL),
		logger:     slog.Default(),
	}
}

// instantAnswer is the subset of the instant-answer JSON document the
// renderer consumes. All fields are optional on the wire.
type instantAnswer struct {
	Heading          string         `json:"Heading"`
	AbstractText     string         `json:"AbstractText"`
	AbstractSource   string         `json:"AbstractSource"`
	AbstractURL      string         `json:"AbstractURL"`
	Answer           string         `json:"Answer"`
	Definition       string         `json:"Definition"`
	DefinitionSource string         `json:"DefinitionSource"`
	RelatedTopics    []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	Text     string `json:"Text"`
	FirstURL string `json:"FirstURL"`
}

// Search performs one GET against the instant-answer endpoint and returns
// the rendered text summary. Transport and decode failures propagate as
// errors; an empty result document renders as a fixed fallback string.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	if cached, ok := c.cache.Get(query); ok {
		c.logger.Debug("Search cache hit", "query", query)
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1",
		c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search endpoint returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read search response: %w", err)
	}
	if len(body) == 0 {
		return "No results found", nil
	}

	var answer instantAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return "", fmt.Errorf("decode search response: %w", err)
	}

	rendered := renderAnswer(&answer)
	c.cache.Set(query, rendered)
	return rendered, nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIClient talks to an OpenAI-compatible /chat/completions endpoint
// (OpenAI, OpenRouter, llama.cpp server). Non-streaming: one request,
// one complete reply.
type OpenAIClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// OpenAIOptions configures an OpenAIClient.
type OpenAIOptions struct {
	BaseURL string
	Model   string
	APIKey  string // empty = no Authorization header (local servers)
	Timeout time.Duration
}

// NewOpenAIClient creates a chat-completions client.
func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		model:      opts.Model,
		apiKey:     opts.APIKey,
	}
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM endpoint returned HTTP %d: %s", resp.StatusCode, truncateBody(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("LLM error response: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return completion.Choices[len(completion.Choices)-1].Message.Content, nil
}

// Close implements Client. The pooled HTTP client needs no teardown.
func (c *OpenAIClient) Close() error {
	return nil
}

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

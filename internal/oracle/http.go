package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPConfig configures the HTTP oracle endpoint and behavior.
type HTTPConfig struct {
	// URL is the chat completions endpoint.
	URL string

	// Model is the model identifier sent with each request.
	Model string

	// APIKey is sent as a bearer token. It is never echoed in errors.
	APIKey string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// HTTPOracle invokes an OpenAI-compatible chat completions endpoint.
type HTTPOracle struct {
	cfg HTTPConfig
}

// NewHTTPOracle builds an HTTP-backed oracle.
func NewHTTPOracle(cfg HTTPConfig) *HTTPOracle {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = "https://api.openai.com/v1/chat/completions"
	}
	return &HTTPOracle{cfg: cfg}
}

// Recommend sends the task as a single user message and returns the first
// choice's content.
func (o *HTTPOracle) Recommend(ctx context.Context, task string) (string, error) {
	model := strings.TrimSpace(o.cfg.Model)
	if model == "" {
		return "", fmt.Errorf("oracle model is required")
	}
	if strings.TrimSpace(task) == "" {
		return "", fmt.Errorf("oracle task is required")
	}

	requestBody, err := json.Marshal(map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": task},
		},
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.URL, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	}

	res, err := o.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return "", fmt.Errorf("read oracle error body: %w", readErr)
		}
		return "", fmt.Errorf("oracle request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode oracle response: %w", err)
	}

	for _, choice := range payload.Choices {
		if content := strings.TrimSpace(choice.Message.Content); content != "" {
			return content, nil
		}
	}
	return "", fmt.Errorf("oracle response missing content")
}

package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dawsonlp/youtube-summary/config"
	"github.com/dawsonlp/youtube-summary/errors"
)

const anthropicVersion = "2023-06-01"

// AnthropicProvider talks to the Anthropic messages API.
type AnthropicProvider struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

func NewAnthropicProvider(cfg config.AnthropicConfig, client *http.Client) *AnthropicProvider {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &AnthropicProvider{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		http:    client,
	}
}

func (p *AnthropicProvider) Name() string { return config.ProviderAnthropic }

func (p *AnthropicProvider) Model() string { return p.model }

type anthropicRequest struct {
	Model       string        `json:"model"`
	System      string        `json:"system"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (p *AnthropicProvider) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	const op = "AnthropicProvider.Summarize"

	if p.apiKey == "" {
		return "", errors.Authentication(op, nil, "ANTHROPIC_API_KEY is not set")
	}

	model := opts.Model
	if model == "" {
		model = p.model
	}

	payload, err := json.Marshal(anthropicRequest{
		Model:       model,
		System:      "Summarize the provided transcript concisely, focusing on key points and insights.",
		MaxTokens:   1000,
		Temperature: 0.3,
		Messages: []chatMessage{
			{Role: "user", Content: buildUserMessage(text, opts.MaxLength)},
		},
	})
	if err != nil {
		return "", errors.Upstream(op, err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Upstream(op, err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", errors.ProviderUnavailable(op, err, "anthropic is not reachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", errors.Authentication(op, nil, "anthropic rejected the API key")
	case resp.StatusCode != http.StatusOK:
		return "", errors.Upstream(op, nil, fmt.Sprintf("anthropic returned status %d", resp.StatusCode))
	}

	var out anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Upstream(op, err, "malformed anthropic response")
	}
	if len(out.Content) == 0 {
		return "", errors.Upstream(op, nil, "anthropic response contained no content")
	}

	return strings.TrimSpace(out.Content[0].Text), nil
}

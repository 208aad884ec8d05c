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

// OpenAIProvider talks to the OpenAI chat completions API.
type OpenAIProvider struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

func NewOpenAIProvider(cfg config.OpenAIConfig, client *http.Client) *OpenAIProvider {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &OpenAIProvider{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		http:    client,
	}
}

func (p *OpenAIProvider) Name() string { return config.ProviderOpenAI }

func (p *OpenAIProvider) Model() string { return p.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (p *OpenAIProvider) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	const op = "OpenAIProvider.Summarize"

	if p.apiKey == "" {
		return "", errors.Authentication(op, nil, "OPENAI_API_KEY is not set")
	}

	model := opts.Model
	if model == "" {
		model = p.model
	}

	payload, err := json.Marshal(openAIChatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserMessage(text, opts.MaxLength)},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", errors.Upstream(op, err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Upstream(op, err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", errors.ProviderUnavailable(op, err, "openai is not reachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", errors.Authentication(op, nil, "openai rejected the API key")
	case resp.StatusCode != http.StatusOK:
		return "", errors.Upstream(op, nil, fmt.Sprintf("openai returned status %d", resp.StatusCode))
	}

	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Upstream(op, err, "malformed openai response")
	}
	if len(out.Choices) == 0 {
		return "", errors.Upstream(op, nil, "openai response contained no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

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

// OllamaProvider talks to a local ollama daemon over its generate API.
type OllamaProvider struct {
	host  string
	model string
	http  *http.Client
}

func NewOllamaProvider(cfg config.OllamaConfig, client *http.Client) *OllamaProvider {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	return &OllamaProvider{
		host:  strings.TrimSuffix(cfg.Host, "/"),
		model: cfg.Model,
		http:  client,
	}
}

func (p *OllamaProvider) Name() string { return config.ProviderOllama }

func (p *OllamaProvider) Model() string { return p.model }

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

func (p *OllamaProvider) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	const op = "OllamaProvider.Summarize"

	model := opts.Model
	if model == "" {
		model = p.model
	}

	payload, err := json.Marshal(ollamaGenerateRequest{
		Model:  model,
		Prompt: buildPrompt(text, opts.MaxLength),
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.3,
			NumPredict:  1000,
		},
	})
	if err != nil {
		return "", errors.Upstream(op, err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Upstream(op, err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", errors.ProviderUnavailable(op, err, "ollama is not reachable at "+p.host)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Upstream(op, nil, fmt.Sprintf("ollama returned status %d", resp.StatusCode))
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Upstream(op, err, "malformed ollama response")
	}
	if out.Error != "" {
		return "", errors.Upstream(op, nil, "ollama error: "+out.Error)
	}

	return strings.TrimSpace(out.Response), nil
}

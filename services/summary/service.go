// Package summary dispatches transcript text to a configured LLM backend.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dawsonlp/youtube-summary/errors"
	"github.com/dawsonlp/youtube-summary/models"
)

type service struct {
	providers       map[string]Provider
	defaultProvider string
	logger          *logrus.Logger
}

// NewService creates a new summary service dispatching to the given providers.
func NewService(defaultProvider string, providers ...Provider) Service {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &service{
		providers:       m,
		defaultProvider: defaultProvider,
		logger:          logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error) {
	const op = "SummaryService.Summarize"

	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.InvalidInput(op, nil, "transcript text is required")
	}

	name := strings.ToLower(req.Provider)
	if name == "" {
		name = s.defaultProvider
	}

	provider, ok := s.providers[name]
	if !ok {
		return nil, errors.ProviderUnavailable(op, nil, fmt.Sprintf("unknown provider %q", name))
	}

	logger := s.logger.WithFields(logrus.Fields{
		"provider":   provider.Name(),
		"max_length": req.MaxLength,
		"chars":      len(req.Text),
	})
	logger.Info("Summarizing transcript")

	text, err := provider.Summarize(ctx, req.Text, Options{
		Model:     req.Model,
		MaxLength: req.MaxLength,
	})
	if err != nil {
		logger.WithError(err).Warn("Summarization failed")
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Upstream(op, nil, "provider returned an empty summary")
	}

	model := req.Model
	if model == "" {
		model = provider.Model()
	}

	logger.WithField("summary_chars", len(text)).Info("Summary generated")

	return &models.SummaryResult{
		Summary:  text,
		Provider: provider.Name(),
		Model:    model,
	}, nil
}

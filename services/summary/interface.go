package summary

import (
	"context"

	"github.com/dawsonlp/youtube-summary/models"
)

type Service interface {
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error)
}

// Provider turns transcript text into a summary with one backend request.
type Provider interface {
	Summarize(ctx context.Context, text string, opts Options) (string, error)
	Name() string
	Model() string
}

// Options are the per-request parameters forwarded to a provider.
type Options struct {
	Model     string
	MaxLength int
}

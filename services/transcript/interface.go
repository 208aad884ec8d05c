package transcript

import (
	"context"

	"github.com/dawsonlp/youtube-summary/models"
)

type Service interface {
	// Fetch resolves the input to a video ID and returns its transcript.
	Fetch(ctx context.Context, input string, languages []string) (*models.Transcript, error)
}

// Fetcher retrieves the caption transcript for a known video ID.
type Fetcher interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) (*models.Transcript, error)
}

type Config struct {
	// Languages is the default preference list when the caller passes none.
	Languages []string
}

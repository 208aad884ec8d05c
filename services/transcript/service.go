// Package transcript resolves user input to a video and fetches its captions.
package transcript

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dawsonlp/youtube-summary/errors"
	"github.com/dawsonlp/youtube-summary/models"
	"github.com/dawsonlp/youtube-summary/validation"
)

type service struct {
	fetcher Fetcher
	config  Config
	logger  *logrus.Logger
}

// NewService creates a new transcript service
func NewService(fetcher Fetcher, config Config) Service {
	return &service{
		fetcher: fetcher,
		config:  config,
		logger:  logrus.StandardLogger(),
	}
}

func (s *service) Fetch(ctx context.Context, input string, languages []string) (*models.Transcript, error) {
	const op = "TranscriptService.Fetch"

	videoID, err := validation.ExtractVideoID(input)
	if err != nil {
		return nil, err
	}

	if len(languages) == 0 {
		languages = s.config.Languages
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	logger := s.logger.WithFields(logrus.Fields{
		"video_id":  videoID,
		"languages": strings.Join(languages, ","),
	})
	logger.Info("Fetching transcript")

	transcript, err := s.fetcher.FetchTranscript(ctx, videoID, languages)
	if err != nil {
		logger.WithError(err).Warn("Transcript fetch failed")
		return nil, err
	}

	if transcript.Text() == "" {
		return nil, errors.TranscriptUnavailable(op, nil, "transcript is empty")
	}

	logger.WithFields(logrus.Fields{
		"language": transcript.Language,
		"chars":    len(transcript.Text()),
	}).Info("Transcript fetched")

	return transcript, nil
}

// Package youtube fetches caption transcripts through YouTube's public
// watch-page and timedtext endpoints.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	apperrors "github.com/dawsonlp/youtube-summary/errors"
	"github.com/dawsonlp/youtube-summary/models"
)

const (
	defaultWatchURL  = "https://www.youtube.com/watch"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// playerResponseMarker precedes the player response JSON in watch page HTML.
	playerResponseMarker = "ytInitialPlayerResponse = "

	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 2 * 1024 * 1024
)

type Config struct {
	HTTPClient        *http.Client
	WatchURL          string
	UserAgent         string
	RequestsPerSecond int
	Burst             int
}

// Client fetches transcripts for single videos. Outgoing requests are paced
// by a rate limiter so repeated invocations stay polite.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	watchURL  string
	userAgent string
	logger    *logrus.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.WatchURL == "" {
		cfg.WatchURL = defaultWatchURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 4
	}

	return &Client{
		http:      cfg.HTTPClient,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		watchURL:  cfg.WatchURL,
		userAgent: cfg.UserAgent,
		logger:    logrus.StandardLogger(),
	}
}

// FetchTranscript returns the caption transcript for a video in the first
// available language from the preference list.
func (c *Client) FetchTranscript(ctx context.Context, videoID string, languages []string) (*models.Transcript, error) {
	const op = "youtube.FetchTranscript"

	if videoID == "" {
		return nil, apperrors.InvalidInput(op, nil, "video ID is required")
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	logger := c.logger.WithFields(logrus.Fields{
		"video_id":  videoID,
		"languages": strings.Join(languages, ","),
	})

	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	logger.WithField("tracks", len(tracks)).Debug("Caption tracks found")

	track, ok := selectTrack(tracks, languages)
	if !ok {
		return nil, apperrors.TranscriptUnavailable(op, nil,
			fmt.Sprintf("no caption track for languages %s", strings.Join(languages, ", ")))
	}

	segments, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, apperrors.TranscriptUnavailable(op, nil, "caption track is empty")
	}

	logger.WithFields(logrus.Fields{
		"language": track.LanguageCode,
		"segments": len(segments),
	}).Debug("Transcript fetched")

	return &models.Transcript{
		VideoID:  videoID,
		Language: track.LanguageCode,
		Segments: segments,
	}, nil
}

// captionTracks fetches the watch page and extracts the caption track list
// from the embedded player response.
func (c *Client) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	const op = "youtube.captionTracks"

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NetworkError(op, err, "request cancelled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.watchURL+"?v="+videoID, nil)
	if err != nil {
		return nil, apperrors.NetworkError(op, err, "failed to build watch page request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NetworkError(op, err, "failed to reach YouTube")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NetworkError(op, nil,
			fmt.Sprintf("watch page returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
	if err != nil {
		return nil, apperrors.NetworkError(op, err, "failed to read watch page")
	}

	idx := strings.Index(string(body), playerResponseMarker)
	if idx < 0 {
		return nil, apperrors.TranscriptUnavailable(op, nil, "player response not found in watch page")
	}

	raw := extractJSON(body[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, apperrors.TranscriptUnavailable(op, nil, "failed to extract player response")
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, apperrors.TranscriptUnavailable(op,
			errors.Wrap(err, "decode player response"), "failed to parse player response")
	}

	if player.Captions == nil {
		reason := ""
		if player.PlayabilityStatus != nil {
			reason = player.PlayabilityStatus.Reason
		}
		if reason != "" {
			return nil, apperrors.TranscriptUnavailable(op, nil, "captions unavailable: "+reason)
		}
		return nil, apperrors.TranscriptUnavailable(op, nil, "video has no captions")
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, apperrors.TranscriptUnavailable(op, nil, "video has no caption tracks")
	}

	return tracks, nil
}

// selectTrack picks the first track matching the language preference order.
// Within a language, a manually created track beats an auto-generated one.
func selectTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != kindAutoGenerated {
				return t, true
			}
		}
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	return captionTrack{}, false
}

// extractJSON returns the first balanced JSON object at the start of data.
func extractJSON(data []byte) []byte {
	start := -1
	for i, b := range data {
		if b == '{' {
			start = i
			break
		}
		// Only whitespace may precede the object.
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return nil
		}
	}
	if start < 0 {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(data); i++ {
		b := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[start : i+1]
			}
		}
	}
	return nil
}

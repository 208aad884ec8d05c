package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	apperrors "github.com/dawsonlp/youtube-summary/errors"
	"github.com/dawsonlp/youtube-summary/models"
)

// kindAutoGenerated marks an ASR caption track in the player response.
const kindAutoGenerated = "asr"

// playerResponse is the subset of ytInitialPlayerResponse we read.
type playerResponse struct {
	Captions          *captions          `json:"captions"`
	PlayabilityStatus *playabilityStatus `json:"playabilityStatus"`
}

type captions struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

type playabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// timedText is the XML document served at a caption track's base URL.
type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Lines   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

// fetchTimedText downloads a caption track and parses it into ordered segments.
func (c *Client) fetchTimedText(ctx context.Context, baseURL string) ([]models.TranscriptSegment, error) {
	const op = "youtube.fetchTimedText"

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NetworkError(op, err, "request cancelled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, apperrors.NetworkError(op, err, "failed to build caption request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NetworkError(op, err, "failed to fetch caption track")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NetworkError(op, nil,
			fmt.Sprintf("caption track returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTimedTextBytes))
	if err != nil {
		return nil, apperrors.NetworkError(op, err, "failed to read caption track")
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, apperrors.TranscriptUnavailable(op,
			errors.Wrap(err, "parse timedtext XML"), "failed to parse caption track")
	}

	segments := make([]models.TranscriptSegment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		segments = append(segments, models.TranscriptSegment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}

	return segments, nil
}

package models

import "strings"

// TranscriptSegment is a single timestamped caption fragment.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript holds the ordered caption segments for one video.
type Transcript struct {
	VideoID  string              `json:"video_id"`
	Language string              `json:"language"`
	Segments []TranscriptSegment `json:"segments"`
}

// Text joins the segment texts with single spaces, in order.
func (t *Transcript) Text() string {
	parts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " ")
}

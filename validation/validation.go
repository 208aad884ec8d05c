// Package validation turns user input into a canonical YouTube video ID.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dawsonlp/youtube-summary/errors"
)

// videoIDPattern matches a bare 11-character video ID.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// urlPatterns match the watch, short, embed, /v/ and shorts URL variants.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?.*?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/\?v=)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
}

// ExtractVideoID returns the canonical 11-character video ID from a YouTube
// URL or a bare ID.
func ExtractVideoID(input string) (string, error) {
	const op = "validation.ExtractVideoID"

	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.InvalidInput(op, nil, "URL or video ID is required")
	}

	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}

	return "", errors.InvalidInput(op, nil, fmt.Sprintf("could not extract video ID from %q", input))
}

package validation

import (
	"testing"

	"github.com/dawsonlp/youtube-summary/errors"
)

func TestExtractVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	// Every variant of the same video must yield the identical ID.
	variants := []string{
		id,
		"https://www.youtube.com/watch?v=" + id,
		"https://youtube.com/watch?v=" + id,
		"http://www.youtube.com/watch?v=" + id,
		"https://www.youtube.com/watch?v=" + id + "&feature=share",
		"https://www.youtube.com/watch?t=42&v=" + id,
		"https://youtu.be/" + id,
		"https://youtu.be/" + id + "?t=10",
		"https://www.youtube.com/embed/" + id,
		"https://www.youtube.com/v/" + id,
		"https://www.youtube.com/shorts/" + id,
		"https://www.youtube.com/?v=" + id,
		"  https://www.youtube.com/watch?v=" + id + "  ",
	}

	for _, input := range variants {
		got, err := ExtractVideoID(input)
		if err != nil {
			t.Errorf("ExtractVideoID(%q) error = %v", input, err)
			continue
		}
		if got != id {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", input, got, id)
		}
	}
}

func TestExtractVideoIDInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"not a url",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch",
		"https://www.youtube.com/watch?v=",
		"https://www.youtube.com/watch?v=short",
		"tooshort",
	}

	for _, input := range tests {
		_, err := ExtractVideoID(input)
		if err == nil {
			t.Errorf("ExtractVideoID(%q) expected error, got nil", input)
			continue
		}
		if !errors.IsInvalidInput(err) {
			t.Errorf("ExtractVideoID(%q) error code = %v, want %v", input, errors.CodeOf(err), errors.CodeInvalidInput)
		}
	}
}

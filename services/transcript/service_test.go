package transcript

import (
	"context"
	"testing"

	"github.com/dawsonlp/youtube-summary/errors"
	"github.com/dawsonlp/youtube-summary/models"
)

type fakeFetcher struct {
	transcript *models.Transcript
	err        error

	calls        int
	gotVideoID   string
	gotLanguages []string
}

func (f *fakeFetcher) FetchTranscript(ctx context.Context, videoID string, languages []string) (*models.Transcript, error) {
	f.calls++
	f.gotVideoID = videoID
	f.gotLanguages = languages
	return f.transcript, f.err
}

func validTranscript() *models.Transcript {
	return &models.Transcript{
		VideoID:  "dQw4w9WgXcQ",
		Language: "en",
		Segments: []models.TranscriptSegment{
			{Text: "hello", Start: 0, Duration: 1},
			{Text: "world", Start: 1, Duration: 1},
		},
	}
}

func TestFetchExtractsVideoID(t *testing.T) {
	fetcher := &fakeFetcher{transcript: validTranscript()}
	svc := NewService(fetcher, Config{Languages: []string{"en"}})

	got, err := svc.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", nil)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if fetcher.gotVideoID != "dQw4w9WgXcQ" {
		t.Errorf("fetcher got video ID %q, want dQw4w9WgXcQ", fetcher.gotVideoID)
	}
	if got.Text() != "hello world" {
		t.Errorf("Text() = %q, want 'hello world'", got.Text())
	}
}

func TestFetchInvalidInput(t *testing.T) {
	fetcher := &fakeFetcher{transcript: validTranscript()}
	svc := NewService(fetcher, Config{})

	_, err := svc.Fetch(context.Background(), "not a url", nil)
	if !errors.IsInvalidInput(err) {
		t.Errorf("error code = %v, want %v", errors.CodeOf(err), errors.CodeInvalidInput)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times for invalid input, want 0", fetcher.calls)
	}
}

func TestFetchDefaultLanguages(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		languages []string
		expected  []string
	}{
		{"explicit languages win", Config{Languages: []string{"en"}}, []string{"fr", "de"}, []string{"fr", "de"}},
		{"config default", Config{Languages: []string{"es"}}, nil, []string{"es"}},
		{"builtin default", Config{}, nil, []string{"en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{transcript: validTranscript()}
			svc := NewService(fetcher, tt.config)

			if _, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", tt.languages); err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if len(fetcher.gotLanguages) != len(tt.expected) {
				t.Fatalf("fetcher got languages %v, want %v", fetcher.gotLanguages, tt.expected)
			}
			for i := range tt.expected {
				if fetcher.gotLanguages[i] != tt.expected[i] {
					t.Errorf("languages[%d] = %s, want %s", i, fetcher.gotLanguages[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFetchEmptyTranscript(t *testing.T) {
	fetcher := &fakeFetcher{transcript: &models.Transcript{VideoID: "dQw4w9WgXcQ"}}
	svc := NewService(fetcher, Config{})

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", nil)
	if !errors.IsTranscriptUnavailable(err) {
		t.Errorf("error code = %v, want %v", errors.CodeOf(err), errors.CodeTranscriptUnavailable)
	}
}

func TestFetchPropagatesFetcherError(t *testing.T) {
	fetchErr := errors.TranscriptUnavailable("op", nil, "no captions")
	fetcher := &fakeFetcher{err: fetchErr}
	svc := NewService(fetcher, Config{})

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", nil)
	if !errors.IsTranscriptUnavailable(err) {
		t.Errorf("error code = %v, want %v", errors.CodeOf(err), errors.CodeTranscriptUnavailable)
	}
}

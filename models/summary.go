package models

// SummaryRequest carries the transcript text and provider parameters for one
// summarization call.
type SummaryRequest struct {
	Text      string `json:"text"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
}

// SummaryResult is the generated summary plus the backend that produced it.
type SummaryResult struct {
	Summary  string `json:"summary"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

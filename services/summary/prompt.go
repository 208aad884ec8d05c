package summary

import (
	"fmt"
	"strings"
)

// systemPrompt is the instruction sent to the chat-style hosted backends.
const systemPrompt = "You are a helpful assistant that summarizes transcripts concisely."

// buildPrompt composes the single-string completion prompt used by ollama.
func buildPrompt(text string, maxLength int) string {
	var sb strings.Builder
	sb.WriteString("Please provide a concise summary of the following transcript.\n")
	sb.WriteString("Focus on the main points and key insights.\n\nTRANSCRIPT:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nSUMMARY:")
	if maxLength > 0 {
		fmt.Fprintf(&sb, "\n(Please keep the summary under %d words)", maxLength)
	}
	return sb.String()
}

// buildUserMessage composes the user message for the chat backends.
func buildUserMessage(text string, maxLength int) string {
	msg := "Please summarize the following transcript:\n\n" + text
	if maxLength > 0 {
		msg += fmt.Sprintf("\n\nKeep the summary under %d words.", maxLength)
	}
	return msg
}

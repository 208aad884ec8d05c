package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dawsonlp/youtube-summary/models"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Fetch a YouTube video transcript and summarize it",
	Example: `  youtube-summary summarize "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  youtube-summary summarize dQw4w9WgXcQ -p openai -m gpt-4o --max-length 200
  youtube-summary summarize dQw4w9WgXcQ -o summary.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transcriptSvc := newTranscriptService()
		summarySvc := newSummaryService()

		t, err := transcriptSvc.Fetch(cmd.Context(), args[0], requestedLanguages(cmd))
		if err != nil {
			return err
		}

		provider, _ := cmd.Flags().GetString("provider")
		model, _ := cmd.Flags().GetString("model")
		maxLength, _ := cmd.Flags().GetInt("max-length")

		result, err := summarySvc.Summarize(cmd.Context(), models.SummaryRequest{
			Text:      t.Text(),
			Provider:  provider,
			Model:     model,
			MaxLength: maxLength,
		})
		if err != nil {
			return err
		}

		return writeOutput(cmd, result.Summary)
	},
}

func init() {
	summarizeCmd.Flags().StringP("provider", "p", "", "summarization provider: ollama, openai, or anthropic (default from SUMMARY_PROVIDER)")
	summarizeCmd.Flags().StringP("model", "m", "", "model name override for the provider")
	summarizeCmd.Flags().Int("max-length", 0, "maximum summary length in words")
	rootCmd.AddCommand(summarizeCmd)
}

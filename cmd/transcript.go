package cmd

import (
	"github.com/spf13/cobra"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <url>",
	Short: "Fetch a YouTube video transcript without summarizing",
	Example: `  youtube-summary transcript "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  youtube-summary transcript dQw4w9WgXcQ -l en,fr -o transcript.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newTranscriptService()

		t, err := svc.Fetch(cmd.Context(), args[0], requestedLanguages(cmd))
		if err != nil {
			return err
		}

		return writeOutput(cmd, t.Text())
	},
}

func init() {
	rootCmd.AddCommand(transcriptCmd)
}

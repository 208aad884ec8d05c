// Package cmd wires the CLI commands to the transcript and summary services.
package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dawsonlp/youtube-summary/config"
	"github.com/dawsonlp/youtube-summary/errors"
	"github.com/dawsonlp/youtube-summary/logger"
	"github.com/dawsonlp/youtube-summary/services/summary"
	"github.com/dawsonlp/youtube-summary/services/transcript"
	"github.com/dawsonlp/youtube-summary/youtube"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "youtube-summary",
	Short: "Fetch YouTube video transcripts and summarize them with an LLM",
	Long: `youtube-summary fetches the caption transcript of a YouTube video and
optionally forwards it to an LLM provider (ollama, openai, or anthropic)
for summarization. Providers and API keys are configured through
environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if err := logger.Init(logger.Config{
			Dir:   cfg.LogDir,
			Level: cfg.LogLevel,
			Debug: cfg.Debug,
		}); err != nil {
			return err
		}

		logrus.AddHook(&runIDHook{runID: uuid.NewString()})
		return nil
	},
}

// runIDHook tags every log entry of one invocation with the same run ID.
type runIDHook struct {
	runID string
}

func (h *runIDHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *runIDHook) Fire(entry *logrus.Entry) error {
	entry.Data["run_id"] = h.runID
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("languages", "l", "", "comma-separated transcript language preference (default from LANGUAGES)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output file path (default: stdout)")
}

// Execute runs the root command and exits with the code mapped from the error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(errors.ExitCode(err))
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

func newTranscriptService() transcript.Service {
	client := youtube.NewClient(youtube.Config{
		HTTPClient:        newHTTPClient(),
		RequestsPerSecond: cfg.YouTube.RequestsPerSecond,
		Burst:             cfg.YouTube.Burst,
	})
	return transcript.NewService(client, transcript.Config{Languages: cfg.Languages})
}

func newSummaryService() summary.Service {
	client := newHTTPClient()
	return summary.NewService(cfg.Provider,
		summary.NewOllamaProvider(cfg.Ollama, client),
		summary.NewOpenAIProvider(cfg.OpenAI, client),
		summary.NewAnthropicProvider(cfg.Anthropic, client),
	)
}

// requestedLanguages returns the --languages flag parsed into a list, or nil
// so the service falls back to the configured default.
func requestedLanguages(cmd *cobra.Command) []string {
	raw, _ := cmd.Flags().GetString("languages")
	return config.SplitLanguages(raw)
}

// writeOutput prints text to stdout or writes it to the --output file.
func writeOutput(cmd *cobra.Command, text string) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", path)
	return nil
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/strrl/feedback-lens/internal/config"
	"github.com/strrl/feedback-lens/internal/logging"
)

var (
	logLevel  string
	logFormat string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "feedback-lens",
	Short: "Sentiment, theme and word-frequency analytics for customer feedback",
	Long: `feedback-lens scores batches of Portuguese and English customer feedback,
one entry per line: sentiment classes, theme mentions and the most frequent words.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = false

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default from LOG_FORMAT)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		loaded.LogFormat = logFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	logging.InitLogger(loaded.LogLevel, loaded.LogFormat)
	cfg = loaded
	return nil
}

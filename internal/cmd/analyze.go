package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/strrl/feedback-lens/internal/feedback"
	"github.com/strrl/feedback-lens/internal/output"
	"github.com/strrl/feedback-lens/internal/parser"
)

var (
	analyzeFile        string
	analyzeColumn      string
	analyzeFormat      string
	analyzeOutput      string
	analyzeTop         int
	analyzeMaxLines    int
	analyzeLexicon     string
	analyzeListColumns bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a batch of feedback, one entry per line",
	Long: `Analyze a batch of customer feedback and report sentiment counts, theme
mentions, the most frequent words and a few positive and negative examples.

Input is read from stdin unless --file is given. Plain text files hold one
feedback per line; CSV, TSV, JSON Lines and Parquet files are read through
DuckDB, one feedback per row of --column.`,
	Example: `  feedback-lens analyze < feedback.txt
  feedback-lens analyze --file export.csv --column comentario --format markdown
  feedback-lens analyze --file reviews.parquet --output report.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Feedback file (default: stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeColumn, "column", "c", parser.DefaultColumn, "Column holding the feedback text in tabular files")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "Report format: json or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "Number of top words to report (default from TOP_WORDS)")
	analyzeCmd.Flags().IntVar(&analyzeMaxLines, "max-lines", 0, "Reject batches with more feedback lines than this (0 = no limit)")
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "YAML or JSON file with extra lexicon terms")
	analyzeCmd.Flags().BoolVar(&analyzeListColumns, "list-columns", false, "List the columns of --file and exit")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(analyzeFormat)
	if err != nil {
		return err
	}

	if analyzeListColumns {
		return listColumns(cmd)
	}

	if cmd.Flags().Changed("top") {
		cfg.TopWords = analyzeTop
	}
	if cmd.Flags().Changed("max-lines") {
		cfg.MaxLines = analyzeMaxLines
	}
	if analyzeLexicon != "" {
		cfg.LexiconFile = analyzeLexicon
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readInput(cmd)
	if err != nil {
		return err
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := p.aggregator.Analyze(text)
	if err != nil {
		if errors.Is(err, feedback.ErrInvalidInput) {
			return fmt.Errorf("invalid input: %w", err)
		}
		return fmt.Errorf("failed to analyze feedback: %w", err)
	}
	slog.Info("Analyzed feedback",
		"lines", result.TotalFeedbacks,
		"positive", result.SentimentCounts.Positive,
		"neutral", result.SentimentCounts.Neutral,
		"negative", result.SentimentCounts.Negative,
		"duration", time.Since(start),
	)

	gen := output.NewGenerator(format, p.tagger)
	if analyzeOutput != "" {
		if err := gen.WriteFile(analyzeOutput, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s report to %s\n", format, analyzeOutput)
		return nil
	}
	return gen.Write(cmd.OutOrStdout(), result)
}

func readInput(cmd *cobra.Command) (string, error) {
	if analyzeFile == "" || analyzeFile == "-" {
		return parser.ReadAll(cmd.InOrStdin())
	}

	format, err := parser.DetectFormat(analyzeFile)
	if err != nil {
		return "", err
	}
	if format == parser.FormatText {
		return parser.ReadTextFile(analyzeFile)
	}

	p, err := parser.NewParser()
	if err != nil {
		return "", fmt.Errorf("failed to create parser: %w", err)
	}
	text, err := p.ReadText(parser.Source{Path: analyzeFile, Column: analyzeColumn})
	if err != nil {
		return "", err
	}
	slog.Debug("Read tabular feedback", "file", analyzeFile, "column", analyzeColumn, "rows", strings.Count(text, "\n")+1)
	return text, nil
}

func listColumns(cmd *cobra.Command) error {
	if analyzeFile == "" {
		return errors.New("--list-columns needs --file")
	}

	p, err := parser.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	cols, err := p.Columns(analyzeFile)
	if err != nil {
		return err
	}

	for _, c := range cols {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
	return nil
}

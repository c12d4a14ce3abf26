package aggregator

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/strrl/feedback-lens/internal/feedback"
)

const MsgEmptyText = "O campo de texto não pode ser vazio."

type Config struct {
	MaxExamples   int
	MaxInputBytes int
	MaxLines      int
}

func DefaultConfig() Config {
	return Config{
		MaxExamples:   3,
		MaxInputBytes: 0,
		MaxLines:      0,
	}
}

type Classifier interface {
	Classify(line string) (feedback.SentimentClass, float64)
}

type ThemeTagger interface {
	Counts() map[string]int
	Tag(line string) []string
}

type WordRanker interface {
	Top(text string) []feedback.WordCount
}

// Aggregator runs the per-line and corpus-wide analyses over one batch. It
// holds only read-only collaborators, so a single instance serves concurrent
// callers.
type Aggregator struct {
	config     Config
	classifier Classifier
	tagger     ThemeTagger
	ranker     WordRanker
}

func NewAggregator(cfg Config, classifier Classifier, tagger ThemeTagger, ranker WordRanker) *Aggregator {
	if cfg.MaxExamples <= 0 {
		cfg.MaxExamples = DefaultConfig().MaxExamples
	}
	return &Aggregator{
		config:     cfg,
		classifier: classifier,
		tagger:     tagger,
		ranker:     ranker,
	}
}

func (a *Aggregator) Analyze(text string) (*feedback.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, feedback.InvalidInput(MsgEmptyText)
	}
	if a.config.MaxInputBytes > 0 && len(text) > a.config.MaxInputBytes {
		return nil, feedback.InvalidInput("O texto excede o limite de %d bytes.", a.config.MaxInputBytes)
	}

	lines := SplitLines(text)
	if a.config.MaxLines > 0 && len(lines) > a.config.MaxLines {
		return nil, feedback.InvalidInput("O texto excede o limite de %d linhas.", a.config.MaxLines)
	}

	result := &feedback.Result{
		TotalFeedbacks:   len(lines),
		ThemeFrequency:   a.tagger.Counts(),
		PositiveExamples: []string{},
		NegativeExamples: []string{},
	}

	// examples keep the submitted bytes; analysis sees the composed form
	for _, line := range lines {
		composed := norm.NFC.String(line)
		class, _ := a.classifier.Classify(composed)
		result.SentimentCounts.Add(class)

		switch class {
		case feedback.Positive:
			if len(result.PositiveExamples) < a.config.MaxExamples {
				result.PositiveExamples = append(result.PositiveExamples, line)
			}
		case feedback.Negative:
			if len(result.NegativeExamples) < a.config.MaxExamples {
				result.NegativeExamples = append(result.NegativeExamples, line)
			}
		}

		for _, name := range a.tagger.Tag(composed) {
			result.ThemeFrequency[name]++
		}
	}

	result.TopWords = a.ranker.Top(norm.NFC.String(text))
	if result.TopWords == nil {
		result.TopWords = []feedback.WordCount{}
	}

	return result, nil
}

// SplitLines splits text on line breaks and returns the trimmed, non-blank
// lines. A text that is not blank always yields at least one line.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

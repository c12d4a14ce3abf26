package cmd

import (
	"fmt"
	"log/slog"

	"github.com/strrl/feedback-lens/internal/aggregator"
	"github.com/strrl/feedback-lens/internal/config"
	"github.com/strrl/feedback-lens/internal/frequency"
	"github.com/strrl/feedback-lens/internal/lexicon"
	"github.com/strrl/feedback-lens/internal/sentiment"
	"github.com/strrl/feedback-lens/internal/stopwords"
	"github.com/strrl/feedback-lens/internal/themes"
)

type pipeline struct {
	aggregator *aggregator.Aggregator
	tagger     *themes.Tagger
}

// buildPipeline assembles the read-only lexical resources once and wires them
// into an aggregator.
func buildPipeline(cfg *config.Config) (*pipeline, error) {
	overlays := []map[string]float64{lexicon.Domain()}
	if cfg.LexiconFile != "" {
		extra, err := lexicon.LoadOverrides(cfg.LexiconFile)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, extra)
		slog.Info("Loaded lexicon overrides", "file", cfg.LexiconFile, "terms", len(extra))
	}
	lex := lexicon.Build(lexicon.Base(), overlays...)

	stop := stopwords.New(cfg.Stopwords()...)
	ranker, err := frequency.NewAnalyzer(stop, cfg.TopWords)
	if err != nil {
		return nil, fmt.Errorf("failed to build frequency analyzer: %w", err)
	}

	tagger := themes.NewTagger()
	scorer := sentiment.NewScorer(sentiment.NewVaderEngine(lex))

	aggCfg := aggregator.DefaultConfig()
	aggCfg.MaxLines = cfg.MaxLines
	aggCfg.MaxInputBytes = cfg.MaxInputBytes

	slog.Debug("Pipeline ready",
		"lexicon_terms", lex.Len(),
		"top_words", ranker.TopK(),
		"themes", tagger.Names(),
	)

	return &pipeline{
		aggregator: aggregator.NewAggregator(aggCfg, scorer, tagger, ranker),
		tagger:     tagger,
	}, nil
}

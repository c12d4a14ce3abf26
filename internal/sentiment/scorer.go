package sentiment

import (
	"strings"

	"github.com/strrl/feedback-lens/internal/feedback"
)

// Engine computes a compound polarity in [-1, 1] for a piece of text.
type Engine interface {
	Score(text string) float64
}

type Scorer struct {
	engine Engine
}

func NewScorer(engine Engine) *Scorer {
	return &Scorer{engine: engine}
}

func (s *Scorer) Score(line string) float64 {
	if strings.TrimSpace(line) == "" {
		return 0
	}
	return s.engine.Score(line)
}

func (s *Scorer) Classify(line string) (feedback.SentimentClass, float64) {
	score := s.Score(line)
	return feedback.ClassOf(score), score
}

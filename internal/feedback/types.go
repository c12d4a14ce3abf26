package feedback

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the submitted text cannot be analyzed.
var ErrInvalidInput = errors.New("invalid input")

// InputError carries a message meant for the client. It matches
// ErrInvalidInput under errors.Is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func InvalidInput(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

type SentimentClass string

const (
	Positive SentimentClass = "positive"
	Neutral  SentimentClass = "neutral"
	Negative SentimentClass = "negative"
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// ClassOf maps a compound score onto a sentiment class.
func ClassOf(score float64) SentimentClass {
	switch {
	case score >= PositiveThreshold:
		return Positive
	case score <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func (c *SentimentCounts) Add(class SentimentClass) {
	switch class {
	case Positive:
		c.Positive++
	case Negative:
		c.Negative++
	default:
		c.Neutral++
	}
}

func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type Result struct {
	TotalFeedbacks   int             `json:"total_feedbacks"`
	SentimentCounts  SentimentCounts `json:"sentiment_counts"`
	ThemeFrequency   map[string]int  `json:"theme_frequency"`
	TopWords         []WordCount     `json:"top_words"`
	PositiveExamples []string        `json:"positive_examples"`
	NegativeExamples []string        `json:"negative_examples"`
}

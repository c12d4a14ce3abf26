package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/strrl/feedback-lens/internal/feedback"
)

// Analysis metrics
var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_analyses_total",
			Help: "Total analysis requests by outcome (ok, invalid, error)",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_analysis_duration_seconds",
			Help:    "Time spent analyzing one batch",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	FeedbackLinesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_lines_total",
			Help: "Total feedback lines analyzed",
		},
	)

	SentimentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_sentiment_total",
			Help: "Analyzed feedback lines by sentiment class",
		},
		[]string{"class"},
	)

	ThemeMentionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_theme_mentions_total",
			Help: "Feedback lines mentioning each theme",
		},
		[]string{"theme"},
	)
)

// Cache metrics
var (
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_cache_requests_total",
			Help: "Result cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// HTTP metrics
var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route, method and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// ObserveResult records the per-line tallies of a completed analysis.
func ObserveResult(result *feedback.Result) {
	FeedbackLinesTotal.Add(float64(result.TotalFeedbacks))

	counts := result.SentimentCounts
	SentimentTotal.WithLabelValues(string(feedback.Positive)).Add(float64(counts.Positive))
	SentimentTotal.WithLabelValues(string(feedback.Neutral)).Add(float64(counts.Neutral))
	SentimentTotal.WithLabelValues(string(feedback.Negative)).Add(float64(counts.Negative))

	for theme, n := range result.ThemeFrequency {
		ThemeMentionsTotal.WithLabelValues(theme).Add(float64(n))
	}
}

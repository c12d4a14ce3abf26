package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/feedback-lens/internal/aggregator"
	"github.com/strrl/feedback-lens/internal/config"
	"github.com/strrl/feedback-lens/internal/feedback"
	"github.com/strrl/feedback-lens/internal/frequency"
	"github.com/strrl/feedback-lens/internal/lexicon"
	"github.com/strrl/feedback-lens/internal/sentiment"
	"github.com/strrl/feedback-lens/internal/stopwords"
	"github.com/strrl/feedback-lens/internal/themes"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:           ":0",
		LogLevel:       "info",
		LogFormat:      "text",
		CORSOrigins:    "*",
		BodyLimitBytes: 1 << 20,
		TopWords:       10,
		CacheTTL:       time.Minute,
	}
}

func newPipeline(t *testing.T) *aggregator.Aggregator {
	t.Helper()
	scorer := sentiment.NewScorer(sentiment.NewVaderEngine(lexicon.Build(nil, lexicon.Domain())))
	ranker, err := frequency.NewAnalyzer(stopwords.New(), frequency.DefaultTopK)
	require.NoError(t, err)
	return aggregator.NewAggregator(aggregator.DefaultConfig(), scorer, themes.NewTagger(), ranker)
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryCache) Set(key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	m.sets++
	return nil
}

type countingAnalyzer struct {
	inner Analyzer
	calls int
}

func (c *countingAnalyzer) Analyze(text string) (*feedback.Result, error) {
	c.calls++
	return c.inner.Analyze(text)
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(string) (*feedback.Result, error) {
	return nil, errors.New("boom")
}

func postIndex(t *testing.T, s *Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/index", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	return resp, decoded
}

func TestIndexAnalyzesText(t *testing.T) {
	s := New(testConfig(), newPipeline(t), nil)

	resp, body := postIndex(t, s, `{"text": "Ótimo produto, chegou rápido!\nAtendimento péssimo e caro."}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.EqualValues(t, 2, body["total_feedbacks"])
	assert.Equal(t, map[string]any{"positive": 1.0, "neutral": 0.0, "negative": 1.0}, body["sentiment_counts"])
	assert.Equal(t, map[string]any{"entrega": 0.0, "produto": 1.0, "atendimento": 1.0, "preço": 0.0}, body["theme_frequency"])
	assert.Equal(t, []any{"Ótimo produto, chegou rápido!"}, body["positive_examples"])
	assert.Equal(t, []any{"Atendimento péssimo e caro."}, body["negative_examples"])
	assert.NotEmpty(t, body["top_words"])
}

func TestIndexRejectsBadRequests(t *testing.T) {
	s := New(testConfig(), newPipeline(t), nil)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing field", `{"texto": "oi"}`, msgMissingText},
		{"not json", `text=oi`, msgMissingText},
		{"wrong type", `{"text": 42}`, msgMissingText},
		{"empty text", `{"text": ""}`, aggregator.MsgEmptyText},
		{"blank lines", `{"text": "   \n\n  "}`, aggregator.MsgEmptyText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postIndex(t, s, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

func TestIndexInternalError(t *testing.T) {
	s := New(testConfig(), failingAnalyzer{}, nil)

	resp, body := postIndex(t, s, `{"text": "oi"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestIndexUsesCache(t *testing.T) {
	cache := newMemoryCache()
	analyzer := &countingAnalyzer{inner: newPipeline(t)}
	s := New(testConfig(), analyzer, cache)

	_, first := postIndex(t, s, `{"text": "Entrega rápida"}`)
	_, second := postIndex(t, s, `{"text": "Entrega rápida"}`)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 1, cache.sets)

	_, _ = postIndex(t, s, `{"text": "Entrega lenta"}`)
	assert.Equal(t, 2, analyzer.calls)
}

func TestInvalidInputIsNotCached(t *testing.T) {
	cache := newMemoryCache()
	s := New(testConfig(), newPipeline(t), cache)

	resp, _ := postIndex(t, s, `{"text": "  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, cache.sets)
}

func TestCacheKeyIsStable(t *testing.T) {
	assert.Equal(t, cacheKey("abc"), cacheKey("abc"))
	assert.NotEqual(t, cacheKey("abc"), cacheKey("abd"))
	assert.True(t, strings.HasPrefix(cacheKey("abc"), "feedback:result:"))
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.BodyLimitBytes = 32
	analyzer := &countingAnalyzer{inner: newPipeline(t)}
	s := New(cfg, analyzer, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/index", strings.NewReader(`{"text": "`+strings.Repeat("a", 64)+`"}`))
	req.Header.Set("Content-Type", "application/json")

	// fasthttp rejects the body before routing and app.Test surfaces it as an error
	resp, err := s.App.Test(req)
	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "body size exceeds the given limit")
	assert.Zero(t, analyzer.calls)

	resp, _ = postIndex(t, s, `{"text": "ok"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, analyzer.calls)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerMinute = 1
	s := New(cfg, newPipeline(t), nil)

	resp, _ := postIndex(t, s, `{"text": "ok"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := postIndex(t, s, `{"text": "ok"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, body["error"], "Rate limit")
}

func TestCORSPreflight(t *testing.T) {
	s := New(testConfig(), newPipeline(t), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/index", nil)
	req.Header.Set("Origin", "https://feedback.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := s.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthAndMetrics(t *testing.T) {
	s := New(testConfig(), newPipeline(t), nil)
	_, _ = postIndex(t, s, `{"text": "Produto excelente"}`)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "feedback_analyses_total")
	assert.Contains(t, string(raw), "feedback_lines_total")
	assert.Contains(t, string(raw), `http_request_duration_seconds_count{method="POST",route="/api/index",status="200"}`)
}

func TestRequestIDHeader(t *testing.T) {
	s := New(testConfig(), newPipeline(t), nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/strrl/feedback-lens/internal/feedback"
	"github.com/strrl/feedback-lens/internal/metrics"
)

const msgMissingText = "O campo 'text' não foi encontrado no corpo da requisição."

type indexRequest struct {
	Text *string `json:"text"`
}

func (s *Server) handleIndex(c fiber.Ctx) error {
	var req indexRequest
	if err := c.Bind().JSON(&req); err != nil || req.Text == nil {
		metrics.AnalysesTotal.WithLabelValues("invalid").Inc()
		return jsonError(c, fiber.StatusBadRequest, msgMissingText)
	}
	text := *req.Text
	log := slog.With("request_id", requestid.FromContext(c))

	key := cacheKey(text)
	if data, ok := s.cachedResult(key, log); ok {
		metrics.AnalysesTotal.WithLabelValues("ok").Inc()
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(data)
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(text)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, feedback.ErrInvalidInput) {
			metrics.AnalysesTotal.WithLabelValues("invalid").Inc()
			log.Debug("rejected feedback batch", "error", err)
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		log.Error("analysis failed", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	metrics.ObserveResult(result)
	log.Info("analyzed feedback batch",
		"lines", result.TotalFeedbacks,
		"positive", result.SentimentCounts.Positive,
		"negative", result.SentimentCounts.Negative,
		"duration", time.Since(start),
	)

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	s.storeResult(key, data, log)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

func handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) cachedResult(key string, log *slog.Logger) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(key)
	switch {
	case err != nil:
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		log.Warn("result cache lookup failed", "error", err)
		return nil, false
	case len(data) == 0:
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	return data, true
}

func (s *Server) storeResult(key string, data []byte, log *slog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(key, data, s.Cfg.CacheTTL); err != nil {
		log.Warn("result cache store failed", "error", err)
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "feedback:result:" + hex.EncodeToString(sum[:])
}

// observeRequest records request latency per matched route.
func observeRequest(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	metrics.HTTPRequestDuration.
		WithLabelValues(c.Route().Path, c.Method(), strconv.Itoa(status)).
		Observe(time.Since(start).Seconds())
	return err
}

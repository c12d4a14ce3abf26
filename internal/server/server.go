package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"github.com/strrl/feedback-lens/internal/config"
	"github.com/strrl/feedback-lens/internal/feedback"
)

// Analyzer is the batch analysis entry point served over HTTP.
type Analyzer interface {
	Analyze(text string) (*feedback.Result, error)
}

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config

	analyzer Analyzer
	cache    ResultCache
}

// New creates a server with middleware configured and routes registered.
// cache may be nil to disable result caching.
func New(cfg *config.Config, analyzer Analyzer, cache ResultCache) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "feedback-lens",
		BodyLimit: cfg.BodyLimitBytes,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			} else {
				slog.Error("unhandled request error", "path", c.Path(), "error", err)
			}

			return jsonError(c, code, message)
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(observeRequest)

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins(),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       86400,
	}))

	if cfg.RateLimitPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitPerMinute,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return jsonError(c, fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			},
		}))
	}

	s := &Server{
		App:      app,
		Cfg:      cfg,
		analyzer: analyzer,
		cache:    cache,
	}
	s.RegisterRoutes()
	return s
}

func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.Cfg.Addr, "cache", s.cache != nil)
	return s.App.Listen(s.Cfg.Addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes() {
	s.App.Post("/api/index", s.handleIndex)

	s.App.Get("/healthz", handleHealth)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

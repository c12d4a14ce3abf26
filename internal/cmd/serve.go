package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/strrl/feedback-lens/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis over HTTP",
	Long: `Start the HTTP API. POST /api/index with {"text": "..."} returns the
analysis of the submitted batch. GET /healthz and GET /metrics are also served.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	var cache server.ResultCache
	if cfg.RedisURL != "" {
		redisCache, err := server.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		cache = redisCache
		slog.Info("Result cache enabled", "ttl", cfg.CacheTTL)
	}

	srv := server.New(cfg, p.aggregator, cache)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		return err
	}
	slog.Info("Server exited")
	return nil
}

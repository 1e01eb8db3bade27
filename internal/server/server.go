// Package server exposes review sessions over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quizmd/internal/history"
	"quizmd/internal/logging"
)

// Config captures the settings for serving the review API.
type Config struct {
	Addr           string
	MaxUploadBytes int64
	CORSOrigins    []string
	// MaxSessions caps in-memory sessions; the least recently used one is
	// evicted first. Zero means 1000.
	MaxSessions int
	// SessionTTL drops sessions idle for longer. Zero means two hours.
	SessionTTL time.Duration
	// Strict rejects uploads that fail deck checks.
	Strict bool
	// History records answers when non-nil.
	History *history.Store
	Logger  logging.Logger
}

// Serve starts the HTTP server and shuts it down when ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("server: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("server: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("server listening", "addr", cfg.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}

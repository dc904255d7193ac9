// Package httpapi serves the docking operations as a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxBodyBytes      = 1 << 20
)

// Service is what the API needs from the application.
type Service interface {
	Rank(ctx context.Context, molecules []string, target string) (domain.Ranking, error)
	Explain(key string) (domain.Explanation, error)
	Interpret(score float64) domain.Interpretation
	Target(id string) (domain.TargetDetails, error)
	Targets() []domain.TargetProfile
	CacheStats() (domain.CacheStats, error)
}

// Server is the HTTP API.
type Server struct {
	svc     Service
	metrics http.Handler
	log     ports.Logger
}

// New creates a Server. metrics serves /metrics and may be nil.
func New(svc Service, metrics http.Handler, log ports.Logger) *Server {
	return &Server{svc: svc, metrics: metrics, log: log}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/rank", s.handleRank)
	mux.HandleFunc("GET /api/v1/explain/{key}", s.handleExplain)
	mux.HandleFunc("GET /api/v1/interpret", s.handleInterpret)
	mux.HandleFunc("GET /api/v1/targets", s.handleTargets)
	mux.HandleFunc("GET /api/v1/targets/{id}", s.handleTarget)
	mux.HandleFunc("GET /api/v1/cache/stats", s.handleCacheStats)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}

	return Chain(mux, RequestID(), AccessLog(s.log), RecoverPanic(s.log))
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("serving HTTP API on " + addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "failed to shut down HTTP server")
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "HTTP server failed"), "addr", addr)
	}
}

// Package app implements the application layer for dockq.
package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.trai.ch/dockq/internal/adapters/httpapi"   //nolint:depguard // Driving surface
	"go.trai.ch/dockq/internal/adapters/mcpserver" //nolint:depguard // Driving surface
	"go.trai.ch/dockq/internal/build"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/dockq/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App is the facade every driving surface calls into.
type App struct {
	dispatcher *dispatcher.Dispatcher
	knowledge  ports.Knowledge
	store      ports.ScoreStore
	logger     ports.Logger
	metrics    http.Handler
	watch      func(ctx context.Context) error
	httpAddr   string
}

// New creates a new App instance.
func New(d *dispatcher.Dispatcher, kb ports.Knowledge, store ports.ScoreStore, log ports.Logger) *App {
	return &App{
		dispatcher: d,
		knowledge:  kb,
		store:      store,
		logger:     log,
	}
}

// WithMetrics sets the handler served on /metrics.
func (a *App) WithMetrics(h http.Handler) *App {
	a.metrics = h
	return a
}

// WithWatcher sets a function started by the long-running surfaces to keep
// the knowledge base up to date.
func (a *App) WithWatcher(watch func(ctx context.Context) error) *App {
	a.watch = watch
	return a
}

// WithHTTPAddr sets the address Serve listens on when none is given.
func (a *App) WithHTTPAddr(addr string) *App {
	a.httpAddr = addr
	return a
}

// Rank scores the molecules against the target and returns them best binder first.
func (a *App) Rank(ctx context.Context, molecules []string, target string) (domain.Ranking, error) {
	return a.dispatcher.Rank(ctx, molecules, target)
}

// Explain looks up a key in the knowledge base.
func (a *App) Explain(key string) (domain.Explanation, error) {
	return a.knowledge.Explain(key)
}

// Interpret places a score in its bucket.
func (a *App) Interpret(score float64) domain.Interpretation {
	return a.knowledge.Interpret(score)
}

// Target describes a target. A configured target the knowledge base does not
// cover is described by its configured name alone.
func (a *App) Target(id string) (domain.TargetDetails, error) {
	details, err := a.knowledge.Target(id)
	if err == nil || !errors.Is(err, domain.ErrUnknownKey) {
		return details, err
	}

	profile, ok := a.dispatcher.Targets().Get(id)
	if !ok {
		return domain.TargetDetails{}, err
	}
	return domain.TargetDetails{
		ID:         profile.ID,
		TargetInfo: domain.TargetInfo{Name: profile.Name},
	}, nil
}

// Targets lists the configured targets sorted by identifier.
func (a *App) Targets() []domain.TargetProfile {
	return a.dispatcher.Targets().Profiles()
}

// Analyze summarises a set of scores for a target.
func (a *App) Analyze(target string, records []domain.ScoreRecord) domain.Analysis {
	return a.knowledge.Analyze(target, records)
}

// CacheStats summarises the score cache.
func (a *App) CacheStats() (domain.CacheStats, error) {
	stats, err := a.store.Stats()
	if err != nil {
		return domain.CacheStats{}, zerr.Wrap(err, "failed to read cache stats")
	}
	return stats, nil
}

// ClearCache removes the cached scores of a target, or all of them when target is empty.
func (a *App) ClearCache(target string) (int, error) {
	if target != "" && !a.dispatcher.Targets().Contains(target) {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidTarget, "target is not configured"), "target", target)
	}
	removed, err := a.store.Clear(target)
	if err != nil {
		return removed, zerr.Wrap(err, "failed to clear score cache")
	}
	return removed, nil
}

// CacheHitRate reports how many of the molecules already have a cached score for the target.
func (a *App) CacheHitRate(molecules []string, target string) (domain.HitRate, error) {
	if !a.dispatcher.Targets().Contains(target) {
		return domain.HitRate{}, zerr.With(zerr.Wrap(domain.ErrInvalidTarget, "target is not configured"), "target", target)
	}

	rate := domain.HitRate{Target: domain.NormalizeTarget(target), Requested: len(molecules)}
	for _, m := range molecules {
		rec, err := a.store.Get(m, target)
		if err != nil {
			return domain.HitRate{}, zerr.With(zerr.Wrap(err, "failed to read score cache"), "molecule", m)
		}
		if rec != nil {
			rate.Cached++
		}
	}
	if rate.Requested > 0 {
		rate.Rate = float64(rate.Cached) / float64(rate.Requested)
	}
	return rate, nil
}

// Serve runs the HTTP API until ctx is cancelled. An empty addr uses the configured one.
func (a *App) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.httpAddr
	}
	if err := a.startWatcher(ctx); err != nil {
		return err
	}
	return httpapi.New(a, a.metrics, a.logger).Run(ctx, addr)
}

// ServeMCP runs the MCP tool server until ctx is cancelled. Port 0 serves over
// stdio, any other port serves streamable HTTP.
func (a *App) ServeMCP(ctx context.Context, port int) error {
	if err := a.startWatcher(ctx); err != nil {
		return err
	}

	server := mcpserver.New(a, build.Version)
	if port == 0 {
		return mcpserver.RunStdio(ctx, server)
	}
	return mcpserver.RunHTTP(ctx, server, ":"+strconv.Itoa(port), a.logger)
}

func (a *App) startWatcher(ctx context.Context) error {
	if a.watch == nil {
		return nil
	}
	if err := a.watch(ctx); err != nil {
		return zerr.Wrap(err, "failed to watch knowledge base")
	}
	return nil
}

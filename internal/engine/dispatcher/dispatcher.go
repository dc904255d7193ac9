// Package dispatcher resolves docking scores from the cache, the docking engine
// or the mock generator, and ranks batches of molecules against a target.
package dispatcher

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Settings is the part of the configuration the dispatcher acts on.
type Settings struct {
	Targets     domain.TargetSet
	Policy      domain.EnginePolicy
	Platform    domain.Platform
	Parallelism int
}

// SettingsFrom extracts the dispatcher settings from the runtime configuration.
func SettingsFrom(cfg *domain.Config) Settings {
	return Settings{
		Targets:     cfg.Targets,
		Policy:      cfg.Policy,
		Platform:    cfg.Platform,
		Parallelism: cfg.Parallelism,
	}
}

// Dispatcher decides, per (molecule, target) pair, whether to serve the cached
// score, run the docking engine or fall back to the mock generator. It is the
// only writer of the score store.
type Dispatcher struct {
	settings  Settings
	store     ports.ScoreStore
	engine    ports.DockingEngine
	scorer    ports.Scorer
	validator ports.MoleculeValidator
	logger    ports.Logger
	telemetry ports.Telemetry
	metrics   ports.Metrics

	// inflight collapses concurrent misses on the same key.
	inflight singleflight.Group
	now      func() time.Time
}

// New creates a Dispatcher.
func New(
	settings Settings,
	store ports.ScoreStore,
	engine ports.DockingEngine,
	scorer ports.Scorer,
	validator ports.MoleculeValidator,
	logger ports.Logger,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
) *Dispatcher {
	if settings.Parallelism <= 0 {
		settings.Parallelism = 1
	}
	return &Dispatcher{
		settings:  settings,
		store:     store,
		engine:    engine,
		scorer:    scorer,
		validator: validator,
		logger:    logger,
		telemetry: telemetry,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Targets returns the set of valid targets.
func (d *Dispatcher) Targets() domain.TargetSet {
	return d.settings.Targets
}

// Rank scores every molecule against the target and returns the records sorted
// by score ascending. Equal scores keep their input order.
//
// The target and every molecule are validated before anything is dispatched, so
// invalid input never touches the store. Engine failures never fail the call.
// Persistence problems are reported as warnings on the ranking.
func (d *Dispatcher) Rank(ctx context.Context, molecules []string, target string) (domain.Ranking, error) {
	requests, err := d.validate(molecules, target)
	if err != nil {
		return domain.Ranking{}, err
	}

	results := make([]resolution, len(requests))

	g := errgroup.Group{}
	g.SetLimit(d.settings.Parallelism)
	for i, req := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.dispatch(ctx, req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Ranking{}, err
	}

	ranking := domain.Ranking{
		Target:  requests[0].Target,
		Records: make([]domain.ScoreRecord, len(results)),
	}
	var warnings warningSet
	for i, res := range results {
		ranking.Records[i] = res.record
		warnings.add(res.warning)
	}
	ranking.Warnings = warnings.list

	slices.SortStableFunc(ranking.Records, func(a, b domain.ScoreRecord) int {
		return cmp.Compare(a.Score, b.Score)
	})
	return ranking, nil
}

func (d *Dispatcher) validate(molecules []string, target string) ([]domain.Request, error) {
	normalized := domain.NormalizeTarget(target)
	if !d.settings.Targets.Contains(normalized) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTarget, "target is not in the configured target set"), "target", target)
	}
	if len(molecules) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoMolecules, "nothing to rank"), "target", normalized)
	}

	requests := make([]domain.Request, len(molecules))
	for i, m := range molecules {
		req := domain.NewRequest(m, normalized)
		if err := d.validator.Validate(req.Molecule); err != nil {
			return nil, zerr.With(err, "index", i)
		}
		requests[i] = req
	}
	return requests, nil
}

// resolution is the outcome of one dispatch. warning is set when the record
// could not be persisted or the cache could not be read.
type resolution struct {
	record  domain.ScoreRecord
	warning string
}

func (d *Dispatcher) dispatch(ctx context.Context, req domain.Request) resolution {
	start := d.now()
	ctx, vertex := d.telemetry.Record(ctx, fmt.Sprintf("dock %s against %s", req.Molecule, req.Target))

	v, _, _ := d.inflight.Do(req.Key(), func() (any, error) {
		return d.resolve(ctx, req, vertex), nil
	})
	res, _ := v.(resolution)

	if res.record.Outcome == domain.OutcomeCached {
		vertex.Cached()
	}
	vertex.Complete(nil)
	d.metrics.ObserveDispatch(req.Target, res.record.Outcome, d.now().Sub(start))
	return res
}

func (d *Dispatcher) resolve(ctx context.Context, req domain.Request, vertex ports.Vertex) resolution {
	var res resolution

	cached, err := d.store.Get(req.Molecule, req.Target)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("score cache lookup failed for %s on %s, treating as a miss: %v", req.Molecule, req.Target, err))
		res.warning = "score cache lookup failed: " + err.Error()
		cached = nil
	}

	usable := d.settings.Policy.Usable(req.Target, d.settings.Platform) && d.engine.Available()

	switch domain.Decide(cached != nil, usable) {
	case domain.ActionServeCache:
		res.record = cached.AsCached()
		return res

	case domain.ActionCompute:
		score, err := d.engine.Dock(ctx, req.Molecule, req.Target)
		if err == nil && (math.IsNaN(score) || math.IsInf(score, 0)) {
			err = zerr.With(zerr.Wrap(domain.ErrEngineOutput, "docking engine score is not finite"), "score", score)
		}
		if err == nil {
			res.record = d.record(req, score, domain.SourceComputed, domain.OutcomeComputed)
			break
		}
		d.metrics.EngineFailure(req.Target, failureReason(err))
		d.logger.Warn(fmt.Sprintf("docking engine failed for %s on %s, falling back to mock score: %v", req.Molecule, req.Target, err))
		_, _ = fmt.Fprintf(vertex.Stdout(), "engine failed: %v\n", err)
		res.record = d.record(req, d.scorer.Score(req.Molecule, req.Target), domain.SourceMock, domain.OutcomeFallback)

	default:
		res.record = d.record(req, d.scorer.Score(req.Molecule, req.Target), domain.SourceMock, domain.OutcomeMock)
	}

	if err := d.store.Put(res.record); err != nil {
		d.metrics.StoreWriteFailure()
		d.logger.Warn(fmt.Sprintf("score for %s on %s is not durable: %v", req.Molecule, req.Target, err))
		if res.warning == "" {
			res.warning = persistenceWarning(err)
		}
	}
	return res
}

func (d *Dispatcher) record(req domain.Request, score float64, source domain.Source, outcome domain.Outcome) domain.ScoreRecord {
	return domain.ScoreRecord{
		Molecule:   req.Molecule,
		Target:     req.Target,
		Score:      score,
		Source:     source,
		Outcome:    outcome,
		ComputedAt: d.now().UTC(),
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEngineTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrEngineOutput):
		return "output"
	case errors.Is(err, domain.ErrEngineUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}

func persistenceWarning(err error) string {
	if errors.Is(err, domain.ErrStoreDegraded) {
		return "score cache is running in memory-only mode; results are not durable"
	}
	return "score could not be persisted: " + err.Error()
}

// warningSet keeps warnings in first-seen order without duplicates.
type warningSet struct {
	seen map[string]bool
	list []string
}

func (w *warningSet) add(msg string) {
	if msg == "" {
		return
	}
	if w.seen == nil {
		w.seen = make(map[string]bool)
	}
	if w.seen[msg] {
		return
	}
	w.seen[msg] = true
	w.list = append(w.list, msg)
}

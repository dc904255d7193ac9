package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dockq/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dockq/internal/adapters/knowledge" //nolint:depguard // Wired in app layer
	"go.trai.ch/dockq/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dockq/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/dockq/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/dockq/internal/engine/dispatcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

type jsonSwitch interface {
	SetJSON(enable bool)
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			dispatcher.NodeID,
			knowledge.NodeID,
			cache.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.ConfigNodeID,
			logger.NodeID,
			cache.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	d, err := graft.Dep[*dispatcher.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	kb, err := graft.Dep[*knowledge.Base](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ScoreStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	prom, err := graft.Dep[*metrics.Prometheus](ctx)
	if err != nil {
		return nil, err
	}

	a := New(d, kb, store, log).
		WithMetrics(prom.Handler()).
		WithHTTPAddr(cfg.HTTPAddr)
	if cfg.KnowledgePath != "" {
		a.WithWatcher(func(ctx context.Context) error {
			return knowledge.Watch(ctx, kb, cfg.KnowledgePath, log)
		})
	}
	return a, nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ScoreStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	if l, ok := log.(jsonSwitch); ok && cfg.LogFormat == domain.LogFormatJSON {
		l.SetJSON(true)
	}

	return NewComponents(a, log, cfg, store.Close, tel.Close), nil
}

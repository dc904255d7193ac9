package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/chem"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/mockscore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			cache.NodeID,
			shell.NodeID,
			mockscore.NodeID,
			chem.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ScoreStore](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[ports.DockingEngine](ctx)
			if err != nil {
				return nil, err
			}

			scorer, err := graft.Dep[ports.Scorer](ctx)
			if err != nil {
				return nil, err
			}

			validator, err := graft.Dep[ports.MoleculeValidator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			prom, err := graft.Dep[*metrics.Prometheus](ctx)
			if err != nil {
				return nil, err
			}

			return New(SettingsFrom(cfg), store, engine, scorer, validator, log, tel, prom), nil
		},
	})
}

package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/adapters/config"
	"go.trai.ch/dockq/internal/adapters/logger"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

// NodeID is the unique identifier for the docking engine Graft node.
const NodeID graft.ID = "adapter.docking_engine"

func init() {
	graft.Register(graft.Node[ports.DockingEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DockingEngine, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(cfg.Engine, log), nil
		},
	})
}

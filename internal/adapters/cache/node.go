package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/adapters/cache/sqlite"
	"go.trai.ch/dockq/internal/adapters/config" //nolint:depguard // Backend selection needs the config
	"go.trai.ch/dockq/internal/adapters/logger"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

// NodeID is the unique identifier for the score store Graft node.
const NodeID graft.ID = "adapter.score_store"

func init() {
	graft.Register(graft.Node[ports.ScoreStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ScoreStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Open(cfg.Cache, log), nil
		},
	})
}

// Open opens the configured backend. A backend that cannot be opened is replaced
// by a memory-only store, so scoring keeps working without durability.
func Open(cfg domain.CacheConfig, log ports.Logger) ports.ScoreStore {
	if cfg.Backend == domain.CacheBackendSQLite {
		store, err := sqlite.Open(cfg.Path)
		if err != nil {
			return NewDegraded(cfg.Path, err, log)
		}
		return store
	}
	return NewStore(cfg.Path, log)
}

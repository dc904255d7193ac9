package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/adapters/config"
	"go.trai.ch/dockq/internal/adapters/telemetry/progrock"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Telemetry), nil
		},
	})
}

// New returns the telemetry implementation for the configured mode.
func New(mode string) ports.Telemetry {
	if mode == domain.TelemetryProgrock {
		return progrock.New()
	}
	return NoOp{}
}

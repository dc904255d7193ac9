package mockscore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/core/ports"
)

// NodeID is the unique identifier for the mock scorer Graft node.
const NodeID graft.ID = "adapter.mock_scorer"

func init() {
	graft.Register(graft.Node[ports.Scorer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Scorer, error) {
			return NewGenerator(), nil
		},
	})
}

package chem

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/core/ports"
)

// NodeID is the unique identifier for the molecule validator Graft node.
const NodeID graft.ID = "adapter.molecule_validator"

func init() {
	graft.Register(graft.Node[ports.MoleculeValidator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MoleculeValidator, error) {
			return NewValidator(), nil
		},
	})
}

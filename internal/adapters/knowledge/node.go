package knowledge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/internal/adapters/config"
	"go.trai.ch/dockq/internal/core/domain"
)

// NodeID is the unique identifier for the knowledge base Graft node.
const NodeID graft.ID = "adapter.knowledge"

func init() {
	graft.Register(graft.Node[*Base]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (*Base, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return Open(cfg.KnowledgePath)
		},
	})
}

// Open loads the document at path, or the built-in one when path is empty.
func Open(path string) (*Base, error) {
	load := Default
	if path != "" {
		load = func() (*domain.KnowledgeBase, error) { return Load(path) }
	}
	doc, err := load()
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

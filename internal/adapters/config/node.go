package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the workspace-file loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*FileLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*FileLoader, error) {
			return NewFileLoader(), nil
		},
	})
}

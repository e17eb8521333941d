package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cubuild/internal/core/ports"
)

// NodeID is the unique identifier for the stamp store Graft node.
const NodeID graft.ID = "adapter.state"

func init() {
	graft.Register(graft.Node[ports.StampStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StampStore, error) {
			return NewStore(DefaultFilename), nil
		},
	})
}

package fsclean

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cubuild/internal/adapters/logger"
	"go.trai.ch/cubuild/internal/core/ports"
)

// NodeID is the unique identifier for the cleaner Graft node.
const NodeID graft.ID = "adapter.cleaner"

func init() {
	graft.Register(graft.Node[ports.Cleaner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Cleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(log), nil
		},
	})
}

package envcfg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cubuild/internal/adapters/config"
	"go.trai.ch/cubuild/internal/core/ports"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			file, err := graft.Dep[*config.FileLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(file), nil
		},
	})
}

package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cubuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/cubuild/internal/core/ports"
)

// NodeID is the unique identifier for the progress recorder Graft node.
const NodeID graft.ID = "adapter.telemetry"

// EnvProgress selects the recorder: "tape" records a progrock tape, any
// other value streams output through unchanged.
const EnvProgress = "CUBUILD_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(EnvProgress) == "tape" {
				return progrock.New(), nil
			}
			return NewPlain(nil, nil), nil
		},
	})
}

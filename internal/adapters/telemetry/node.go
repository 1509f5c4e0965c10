package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Provider, error) {
			return NewProvider(), nil
		},
	})
}

package notify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taxa/internal/adapters/logger"
	"go.trai.ch/taxa/internal/core/ports"
)

// NodeID is the unique identifier for the notifier Graft node.
const NodeID graft.ID = "adapter.notify"

func init() {
	graft.Register(graft.Node[*Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Notifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, DefaultLimit), nil
		},
	})
}

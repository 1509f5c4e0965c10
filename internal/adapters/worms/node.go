package worms

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taxa/internal/adapters/telemetry"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
)

// NodeID is the unique identifier for the WoRMS label source Graft node.
const NodeID graft.ID = "adapter.worms"

func init() {
	graft.Register(graft.Node[ports.LabelSourceFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.NodeID},
		Run: func(ctx context.Context) (ports.LabelSourceFactory, error) {
			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return func(settings domain.LookupSettings) ports.LabelSource {
				return NewClient(settings, WithTracerProvider(provider.TracerProvider()))
			}, nil
		},
	})
}

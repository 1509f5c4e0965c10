package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taxa/internal/adapters/logger"
	"go.trai.ch/taxa/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// StoreNodeID is the unique identifier for the label store Graft node.
	StoreNodeID graft.ID = "adapter.label_store"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.LabelStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LabelStore, error) {
			return NewStore(NewOSFS()), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taxa/internal/adapters/config"
	"go.trai.ch/taxa/internal/adapters/logger"
	"go.trai.ch/taxa/internal/adapters/notify"
	"go.trai.ch/taxa/internal/adapters/telemetry"
	"go.trai.ch/taxa/internal/adapters/watcher"
	"go.trai.ch/taxa/internal/adapters/worms"
	"go.trai.ch/taxa/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

// Components holds everything the command line needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry *telemetry.Provider
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.StoreNodeID,
			logger.NodeID,
			notify.NodeID,
			worms.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.LabelStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			notifier, err := graft.Dep[*notify.Notifier](ctx)
			if err != nil {
				return nil, err
			}
			sources, err := graft.Dep[ports.LabelSourceFactory](ctx)
			if err != nil {
				return nil, err
			}
			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       New(loader, store, log, notifier, sources, provider, fileWatcher),
				Logger:    log,
				Telemetry: provider,
			}, nil
		},
	})
}

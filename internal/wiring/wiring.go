// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taxa/internal/adapters/config"
	_ "go.trai.ch/taxa/internal/adapters/logger"
	_ "go.trai.ch/taxa/internal/adapters/notify"
	_ "go.trai.ch/taxa/internal/adapters/telemetry"
	_ "go.trai.ch/taxa/internal/adapters/watcher"
	_ "go.trai.ch/taxa/internal/adapters/worms"
	// Register app nodes.
	_ "go.trai.ch/taxa/internal/app"
)

package ports

import (
	"context"
	"time"

	"go.trai.ch/taxa/internal/core/domain"
)

// Renderer is the interactive picker. Events from other goroutines reach it
// through the On* methods and are applied on the renderer's own loop.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start launches the renderer. It returns once the renderer is running.
	Start(ctx context.Context) error

	// Stop asks the renderer to quit.
	Stop() error

	// Wait blocks until the renderer has terminated.
	Wait() error

	// OnLabelsChanged replaces the collection of the named tree.
	OnLabelsChanged(tree string, labels []*domain.Label)

	// OnNotice shows an error to the user.
	OnNotice(err error)

	// OnRequestComplete reports a finished external request.
	// name: the span name of the request
	// duration: wall time of the request
	// err: nil if successful, error otherwise
	OnRequestComplete(name string, duration time.Duration, err error)
}

// Package telemetry sets up tracing for external requests and reports
// finished requests to the picker.
package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/taxa/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor and forwards ended spans to a
// Renderer. The renderer may be attached after the provider is built.
type Bridge struct {
	mu       sync.RWMutex
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// SetRenderer replaces the renderer spans are forwarded to. Nil detaches it.
func (b *Bridge) SetRenderer(renderer ports.Renderer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renderer = renderer
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	b.mu.RLock()
	renderer := b.renderer
	b.mu.RUnlock()

	if renderer == nil || !s.SpanContext().IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "request failed"
		}
		err = errors.New(desc)
	}

	renderer.OnRequestComplete(s.Name(), s.EndTime().Sub(s.StartTime()), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown detaches the renderer.
func (b *Bridge) Shutdown(_ context.Context) error {
	b.SetRenderer(nil)
	return nil
}

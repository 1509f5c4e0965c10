package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/taxa/internal/core/ports"
)

// Provider owns the tracer provider used by the lookup client.
type Provider struct {
	tp     *sdktrace.TracerProvider
	bridge *Bridge
}

// NewProvider creates a provider whose spans are forwarded to a renderer
// once one is attached. Extra processors, such as an exporter, may be added.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	bridge := NewBridge(nil)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(bridge)}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	return &Provider{
		tp:     sdktrace.NewTracerProvider(opts...),
		bridge: bridge,
	}
}

// TracerProvider returns the provider to create tracers from.
func (p *Provider) TracerProvider() trace.TracerProvider {
	return p.tp
}

// Attach forwards finished requests to renderer.
func (p *Provider) Attach(renderer ports.Renderer) {
	p.bridge.SetRenderer(renderer)
}

// Detach stops forwarding.
func (p *Provider) Detach() {
	p.bridge.SetRenderer(nil)
}

// Shutdown flushes and stops all span processors.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

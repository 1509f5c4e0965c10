package telemetry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/taxa/internal/adapters/telemetry"
	"go.trai.ch/taxa/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestProvider_ForwardsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	renderer.EXPECT().OnRequestComplete("worms.search", gomock.Any(), nil)

	p := telemetry.NewProvider()
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })
	p.Attach(renderer)

	_, span := p.TracerProvider().Tracer("test").Start(t.Context(), "worms.search")
	span.End()
}

func TestProvider_ForwardsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var got error
	renderer.EXPECT().OnRequestComplete("worms.classification", gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Duration, err error) { got = err })

	p := telemetry.NewProvider()
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })
	p.Attach(renderer)

	_, span := p.TracerProvider().Tracer("test").Start(t.Context(), "worms.classification")
	span.SetStatus(codes.Error, "unexpected lookup status")
	span.End()

	require.Error(t, got)
	assert.Equal(t, "unexpected lookup status", got.Error())
}

func TestProvider_Detached(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	recorder := tracetest.NewSpanRecorder()
	p := telemetry.NewProvider(recorder)
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })

	p.Attach(renderer)
	p.Detach()

	_, span := p.TracerProvider().Tracer("test").Start(t.Context(), "worms.search")
	span.End()

	assert.Len(t, recorder.Ended(), 1)
}

func TestBridge_DefaultErrorDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var got error
	renderer.EXPECT().OnRequestComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Duration, err error) { got = err })

	p := telemetry.NewProvider()
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })
	p.Attach(renderer)

	_, span := p.TracerProvider().Tracer("test").Start(t.Context(), "worms.search")
	span.SetStatus(codes.Error, "")
	span.End()

	assert.EqualError(t, got, "request failed")
}

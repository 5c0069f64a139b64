package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/knapsack/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_Discard(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	shutdown, err := telemetry.Init(context.Background(), telemetry.Config{
		ServiceName:    "knapsack",
		ServiceVersion: "test",
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok, "Init must install an SDK tracer provider")
}

func TestInit_StdoutExport(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := telemetry.Init(context.Background(), telemetry.Config{
		ServiceName:    "knapsack",
		ServiceVersion: "test",
		Endpoint:       telemetry.EndpointStdout,
		Writer:         &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("knapsack/test").Start(context.Background(), "exhaustive")
	span.End()

	require.NoError(t, shutdown(context.Background()), "shutdown flushes the batcher")
	assert.Contains(t, buf.String(), `"Name": "exhaustive"`)
}

package timing_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/knapsack/timing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// stepClock returns start on the first call and start+step on every later call.
func stepClock(step time.Duration) func() time.Time {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		if calls == 1 {
			return start
		}
		return start.Add(step)
	}
}

// recorder wires a span recorder into a fresh tracer provider.
func recorder(t *testing.T) (*tracetest.SpanRecorder, timing.Option) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, timing.WithTracer(tp.Tracer("test"))
}

// TestBlock_ReportLine pins the report format.
func TestBlock_ReportLine(t *testing.T) {
	var buf bytes.Buffer
	b := timing.Start(context.Background(), "greedy",
		timing.WithWriter(&buf),
		timing.WithClock(stepClock(1500*time.Microsecond)),
	)
	elapsed := b.Stop()

	assert.Equal(t, 1500*time.Microsecond, elapsed)
	assert.Equal(t, "Block labelled greedy completed execution in 1.5ms\n", buf.String())
}

// TestBlock_StopOnce ensures repeated Stop calls report a single time.
func TestBlock_StopOnce(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	m := timing.NewMetrics(reg)

	b := timing.Start(context.Background(), "exhaustive",
		timing.WithWriter(&buf),
		timing.WithMetrics(m),
		timing.WithClock(stepClock(2*time.Millisecond)),
	)
	first := b.Stop()
	second := b.Stop()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(buf.String(), "Block labelled"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("exhaustive")))
}

// TestBlock_Span checks the span name, attributes and status.
func TestBlock_Span(t *testing.T) {
	sr, withTracer := recorder(t)

	b := timing.Start(context.Background(), "exhaustive",
		timing.WithWriter(nil),
		withTracer,
		timing.WithAttributes(attribute.Int("items", 50)),
	)
	b.Fail(errors.New("boom"))
	b.Fail(nil)
	b.Stop()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "exhaustive", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int("items", 50))
}

// TestMeasure_Normal returns the elapsed time and passes the span context through.
func TestMeasure_Normal(t *testing.T) {
	sr, withTracer := recorder(t)
	var buf bytes.Buffer

	ran := false
	elapsed := timing.Measure(context.Background(), "greedy", func(ctx context.Context) {
		ran = true
		assert.NotNil(t, ctx)
	}, timing.WithWriter(&buf), withTracer, timing.WithClock(stepClock(3*time.Millisecond)))

	assert.True(t, ran)
	assert.Equal(t, 3*time.Millisecond, elapsed)
	assert.Contains(t, buf.String(), "Block labelled greedy completed execution in 3ms")
	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, codes.Unset, sr.Ended()[0].Status().Code)
}

// TestMeasure_Panic: the block is reported and the span failed before the panic escapes.
func TestMeasure_Panic(t *testing.T) {
	sr, withTracer := recorder(t)
	var buf bytes.Buffer

	assert.PanicsWithValue(t, "division by zero", func() {
		timing.Measure(context.Background(), "faulty", func(context.Context) {
			panic("division by zero")
		}, timing.WithWriter(&buf), withTracer)
	})

	assert.Contains(t, buf.String(), "Block labelled faulty completed execution in")
	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, codes.Error, sr.Ended()[0].Status().Code)
}

// TestMetrics_Textfile writes the registry to disk in textfile format.
func TestMetrics_Textfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := timing.NewMetrics(reg)

	timing.Measure(context.Background(), "greedy", func(context.Context) {}, timing.WithWriter(nil), timing.WithMetrics(m))
	timing.Measure(context.Background(), "greedy", func(context.Context) {}, timing.WithWriter(nil), timing.WithMetrics(m))

	n, err := testutil.GatherAndCount(reg, "knapsack_blocks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one labelled series")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues("greedy")))

	path := filepath.Join(t.TempDir(), "knapsack.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `knapsack_block_duration_seconds_count{block="greedy"} 2`)
}

// TestMilliseconds converts durations to fractional milliseconds.
func TestMilliseconds(t *testing.T) {
	assert.InDelta(t, 0.25, timing.Milliseconds(250*time.Microsecond), 1e-12)
	assert.InDelta(t, 1000.0, timing.Milliseconds(time.Second), 1e-9)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestBlock_WriteErrorLogged leaves a debug trace when the report line cannot be written.
func TestBlock_WriteErrorLogged(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := timing.Start(context.Background(), "greedy",
		timing.WithWriter(failingWriter{}),
		timing.WithLogger(log),
	)
	b.Stop()

	assert.Contains(t, logs.String(), `"msg":"block report not written"`)
	assert.Contains(t, logs.String(), "disk full")
}

// TestWriteLine matches the line Stop prints.
func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, timing.WriteLine(&buf, "exhaustive", 2500*time.Microsecond))
	assert.Equal(t, "Block labelled exhaustive completed execution in 2.5ms\n", buf.String())

	assert.Error(t, timing.WriteLine(failingWriter{}, "x", time.Millisecond))
}

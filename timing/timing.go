package timing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/knapsack/timing"

// Option configures a Block.
type Option func(*Block)

// WithWriter sets where the report line goes. nil silences it.
func WithWriter(w io.Writer) Option {
	return func(b *Block) { b.w = w }
}

// WithLogger sets the slog logger; defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Block) {
		if l != nil {
			b.log = l
		}
	}
}

// WithTracer sets the tracer for the block span; defaults to the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(b *Block) {
		if t != nil {
			b.tracer = t
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(b *Block) { b.metrics = m }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Block) {
		if now != nil {
			b.now = now
		}
	}
}

// WithAttributes adds span attributes, e.g. the item count.
func WithAttributes(kv ...attribute.KeyValue) Option {
	return func(b *Block) { b.attrs = append(b.attrs, kv...) }
}

// Block is one measured region. It is not safe for concurrent use.
type Block struct {
	name    string
	start   time.Time
	elapsed time.Duration
	stopped bool

	w       io.Writer
	log     *slog.Logger
	tracer  trace.Tracer
	metrics *Metrics
	now     func() time.Time
	attrs   []attribute.KeyValue

	ctx  context.Context
	span trace.Span
}

// Start opens a block named name. The report line goes to os.Stdout unless
// WithWriter says otherwise.
func Start(ctx context.Context, name string, opts ...Option) *Block {
	if ctx == nil {
		ctx = context.Background()
	}
	b := &Block{
		name:   name,
		w:      os.Stdout,
		log:    slog.Default(),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.ctx, b.span = b.tracer.Start(ctx, name, trace.WithAttributes(b.attrs...))
	b.start = b.now()

	return b
}

// Context returns the context carrying the block span.
func (b *Block) Context() context.Context {
	return b.ctx
}

// Name returns the block label.
func (b *Block) Name() string {
	return b.name
}

// Fail records err on the span; the block still has to be stopped.
func (b *Block) Fail(err error) {
	if err == nil {
		return
	}
	b.span.RecordError(err)
	b.span.SetStatus(codes.Error, err.Error())
}

// Stop reports the block exactly once and returns the elapsed time.
// Further calls return the first measurement without reporting again.
func (b *Block) Stop() time.Duration {
	if b.stopped {
		return b.elapsed
	}
	b.stopped = true
	b.elapsed = b.now().Sub(b.start)

	ms := Milliseconds(b.elapsed)
	if b.w != nil {
		if err := WriteLine(b.w, b.name, b.elapsed); err != nil {
			b.log.Debug("block report not written", "block", b.name, "error", err)
		}
	}
	b.log.Debug("block completed", "block", b.name, "elapsed_ms", ms)
	b.metrics.observe(b.name, b.elapsed.Seconds())
	b.span.SetAttributes(attribute.Float64("elapsed_ms", ms))
	b.span.End()

	return b.elapsed
}

// WriteLine writes the report line for a block named name that took d.
// Callers that stop a block silently use it to report after their own output.
func WriteLine(w io.Writer, name string, d time.Duration) error {
	_, err := fmt.Fprintf(w, "Block labelled %s completed execution in %.6gms\n", name, Milliseconds(d))
	return err
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Measure runs fn inside a block and returns the elapsed time. If fn panics
// the span is marked failed, the block is still reported, and the panic is
// re-raised.
func Measure(ctx context.Context, name string, fn func(context.Context), opts ...Option) (elapsed time.Duration) {
	b := Start(ctx, name, opts...)
	defer func() {
		if r := recover(); r != nil {
			b.Fail(fmt.Errorf("panic: %v", r))
			b.Stop()
			panic(r)
		}
		elapsed = b.Stop()
	}()
	fn(b.Context())

	return
}

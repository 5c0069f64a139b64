// Package timing measures a named block of code and always reports it.
//
// A Block is started before the measured region and stopped on every exit
// path, including panics when Stop is deferred:
//
//	b := timing.Start(ctx, "exhaustive", timing.WithWriter(os.Stdout))
//	defer b.Stop()
//
// Stopping a block, once:
//   - prints "Block labelled <name> completed execution in <ms>ms"
//   - logs the duration via slog at debug level
//   - ends an OpenTelemetry span named after the block
//   - observes the duration in a Prometheus histogram (when Metrics are attached)
//
// Measure wraps the pattern for a plain func and marks the span as failed when
// the func panics, before letting the panic continue.
package timing

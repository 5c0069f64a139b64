package timing

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects block durations for Prometheus.
type Metrics struct {
	// Duration observes seconds per block, labelled by block name.
	Duration *prometheus.HistogramVec

	// Runs counts completed blocks, labelled by block name.
	Runs *prometheus.CounterVec

	reg *prometheus.Registry
}

// NewMetrics registers the timing collectors on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_block_duration_seconds",
				Help:    "Duration of measured blocks in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"block"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_blocks_total",
				Help: "Total number of completed measured blocks",
			},
			[]string{"block"},
		),
		reg: reg,
	}
	reg.MustRegister(m.Duration, m.Runs)

	return m
}

func (m *Metrics) observe(name string, seconds float64) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(name).Observe(seconds)
	m.Runs.WithLabelValues(name).Inc()
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

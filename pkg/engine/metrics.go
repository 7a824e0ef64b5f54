package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds in-process Prometheus collectors for Engine operations. It
// is never exposed over HTTP; a caller that wants to scrape it registers it
// with its own registry and exposition path.
type Metrics struct {
	snapshotDuration prometheus.Histogram
	restoreDuration  prometheus.Histogram
	bytesDeduped     prometheus.Counter
	bytesReclaimed   prometheus.Counter
	corruptHashes    prometheus.Gauge

	registered bool
}

// NewMetrics creates Engine metrics. If registry is nil the metrics are
// created but never registered, which keeps them safe to use in tests.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		snapshotDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ridgevault",
			Subsystem: "engine",
			Name:      "snapshot_duration_seconds",
			Help:      "Time taken to complete a snapshot operation.",
			Buckets:   prometheus.DefBuckets,
		}),
		restoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ridgevault",
			Subsystem: "engine",
			Name:      "restore_duration_seconds",
			Help:      "Time taken to complete a restore operation.",
			Buckets:   prometheus.DefBuckets,
		}),
		bytesDeduped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ridgevault",
			Subsystem: "engine",
			Name:      "bytes_deduped_total",
			Help:      "Bytes not written to the content table because an identical hash already existed.",
		}),
		bytesReclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ridgevault",
			Subsystem: "engine",
			Name:      "bytes_reclaimed_total",
			Help:      "Bytes removed from the content table by prune.",
		}),
		corruptHashes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ridgevault",
			Subsystem: "engine",
			Name:      "corrupt_hashes",
			Help:      "Number of corrupt content hashes found by the most recent check.",
		}),
	}

	if registry != nil {
		registry.MustRegister(
			m.snapshotDuration,
			m.restoreDuration,
			m.bytesDeduped,
			m.bytesReclaimed,
			m.corruptHashes,
		)
		m.registered = true
	}

	return m
}

func (m *Metrics) observeSnapshot(seconds float64) {
	if m == nil {
		return
	}
	m.snapshotDuration.Observe(seconds)
}

func (m *Metrics) observeRestore(seconds float64) {
	if m == nil {
		return
	}
	m.restoreDuration.Observe(seconds)
}

func (m *Metrics) addBytesDeduped(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.bytesDeduped.Add(float64(n))
}

func (m *Metrics) addBytesReclaimed(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.bytesReclaimed.Add(float64(n))
}

func (m *Metrics) setCorruptHashes(n int) {
	if m == nil {
		return
	}
	m.corruptHashes.Set(float64(n))
}

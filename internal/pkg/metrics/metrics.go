// Package metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "balance_ranker"

// Metrics groups the collectors updated by the services.
type Metrics struct {
	rankRuns          prometheus.Counter
	rowsDropped       *prometheus.CounterVec
	rowsUnpriced      prometheus.Counter
	priceFeedDuration prometheus.Histogram
	priceFeedErrors   prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rankRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rank_runs_total",
			Help:      "Number of ranking pipeline runs.",
		}),
		rowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_dropped_total",
			Help:      "Balances left out of the ranked view, by reason.",
		}, []string{"reason"}),
		rowsUnpriced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_unpriced_total",
			Help:      "Ranked rows without a known USD price.",
		}),
		priceFeedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "price_feed_duration_seconds",
			Help:      "Duration of price feed fetches.",
			Buckets:   prometheus.DefBuckets,
		}),
		priceFeedErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_feed_errors_total",
			Help:      "Failed price feed fetches.",
		}),
	}
	reg.MustRegister(m.rankRuns, m.rowsDropped, m.rowsUnpriced, m.priceFeedDuration, m.priceFeedErrors)
	return m
}

// ObserveRank records one pipeline run.
func (m *Metrics) ObserveRank(droppedByReason map[string]int, unpriced int) {
	if m == nil {
		return
	}
	m.rankRuns.Inc()
	for reason, n := range droppedByReason {
		m.rowsDropped.WithLabelValues(reason).Add(float64(n))
	}
	m.rowsUnpriced.Add(float64(unpriced))
}

// ObservePriceFeed records one price feed fetch.
func (m *Metrics) ObservePriceFeed(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.priceFeedDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.priceFeedErrors.Inc()
	}
}

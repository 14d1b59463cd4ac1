package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRank(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRank(map[string]int{"unknown_chain": 2, "invalid_amount": 1}, 3)
	m.ObserveRank(map[string]int{"unknown_chain": 1}, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rankRuns))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rowsDropped.WithLabelValues("unknown_chain")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rowsDropped.WithLabelValues("invalid_amount")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rowsUnpriced))
}

func TestObservePriceFeed(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePriceFeed(10*time.Millisecond, nil)
	m.ObservePriceFeed(20*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.priceFeedErrors))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRank(map[string]int{"x": 1}, 1)
		m.ObservePriceFeed(time.Second, nil)
	})
}

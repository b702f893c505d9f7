// Package metrics exports search observations to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/pdrpinto/gridsearch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements gridsearch.Recorder on top of a Prometheus registry.
//
// Metrics exposed (all namespaced with "gridsearch_"):
//
//  1. searches_total (counter): finished searches. Labels: algorithm, found.
//  2. expanded_states (histogram): expansions per search. Labels: algorithm.
//  3. search_duration_seconds (histogram): wall time per search. Labels: algorithm.
//
// Safe for concurrent use.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

var _ gridsearch.Recorder = (*Recorder)(nil)

// NewRecorder registers the search metrics with registry.
func NewRecorder(registry prometheus.Registerer) *Recorder {
	factory := promauto.With(registry)
	return &Recorder{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridsearch",
			Name:      "searches_total",
			Help:      "Total number of finished searches",
		}, []string{"algorithm", "found"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridsearch",
			Name:      "expanded_states",
			Help:      "States expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridsearch",
			Name:      "search_duration_seconds",
			Help:      "Duration of searches",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}
}

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(algorithm gridsearch.Algorithm, expanded int, found bool, elapsed time.Duration) {
	label := string(algorithm)
	r.searches.WithLabelValues(label, strconv.FormatBool(found)).Inc()
	r.expanded.WithLabelValues(label).Observe(float64(expanded))
	r.duration.WithLabelValues(label).Observe(elapsed.Seconds())
}

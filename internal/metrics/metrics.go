// Package metrics exposes Prometheus counters for the query and profile paths.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coach_api"

// Recorder owns its own registry so several servers (and tests) can coexist in one process.
type Recorder struct {
	registry       *prometheus.Registry
	searches       *prometheus.CounterVec
	searchResults  prometheus.Histogram
	profileLookups *prometheus.CounterVec
	writes         *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Coach searches by outcome.",
		}, []string{"outcome"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of coaches returned per successful search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		profileLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_lookups_total",
			Help:      "Profile lookups by outcome.",
		}, []string{"outcome"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_writes_total",
			Help:      "Directory writes by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	r.registry.MustRegister(
		r.searches,
		r.searchResults,
		r.profileLookups,
		r.writes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Search records one search. A nil Recorder is a no-op.
func (r *Recorder) Search(results int, err error) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		r.searchResults.Observe(float64(results))
	}
}

func (r *Recorder) ProfileLookup(err error) {
	if r == nil {
		return
	}
	r.profileLookups.WithLabelValues(outcome(err)).Inc()
}

// Write records an admin or review write; kind is "upsert", "availability" or "review".
func (r *Recorder) Write(kind string, err error) {
	if r == nil {
		return
	}
	r.writes.WithLabelValues(kind, outcome(err)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Package metric exports search metrics to Prometheus.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/slimefinder"
)

// Prometheus implements slimefinder.MetricsCollector.
type Prometheus struct {
	workerLatency *prometheus.HistogramVec
	searchLatency *prometheus.HistogramVec
	positions     prometheus.Counter
	results       prometheus.Counter
	completed     prometheus.Gauge
	total         prometheus.Gauge
}

var _ slimefinder.MetricsCollector = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		workerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slimefinder_worker_duration_seconds",
			Help:    "Time taken to scan one band",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		searchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slimefinder_search_duration_seconds",
			Help:    "Time taken by a whole search",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		}, []string{"status"}),
		positions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slimefinder_positions_scored_total",
			Help: "Window positions scored by finished workers",
		}),
		results: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slimefinder_results_total",
			Help: "Results returned by finished searches",
		}),
		completed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slimefinder_progress_completed",
			Help: "Positions completed by the running search",
		}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slimefinder_progress_total",
			Help: "Positions in the running search",
		}),
	}

	reg.MustRegister(p.workerLatency, p.searchLatency, p.positions, p.results, p.completed, p.total)
	return p
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordWorker implements slimefinder.MetricsCollector.
func (p *Prometheus) RecordWorker(steps int64, d time.Duration, err error) {
	p.workerLatency.WithLabelValues(status(err)).Observe(d.Seconds())
	p.positions.Add(float64(steps))
}

// RecordSearch implements slimefinder.MetricsCollector.
func (p *Prometheus) RecordSearch(_, results int, d time.Duration, err error) {
	p.searchLatency.WithLabelValues(status(err)).Observe(d.Seconds())
	p.results.Add(float64(results))
}

// RecordProgress implements slimefinder.MetricsCollector.
func (p *Prometheus) RecordProgress(completed, total int64) {
	p.completed.Set(float64(completed))
	p.total.Set(float64(total))
}

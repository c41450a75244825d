package slimefinder

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting search metrics.
// Implement this interface to integrate with monitoring systems like Prometheus;
// see package metric for a ready-made collector.
type MetricsCollector interface {
	// RecordWorker is called when a worker finishes its band.
	// steps is the number of positions scored, err is nil if successful.
	RecordWorker(steps int64, duration time.Duration, err error)

	// RecordSearch is called after each search.
	// workers is the number of bands scanned, results the number returned.
	RecordSearch(workers, results int, duration time.Duration, err error)

	// RecordProgress is called on every progress poll.
	RecordProgress(completed, total int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordWorker(int64, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordProgress(int64, int64)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	WorkerCount      atomic.Int64
	WorkerErrors     atomic.Int64
	WorkerSteps      atomic.Int64
	WorkerTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
	ProgressPolls    atomic.Int64
	LastCompleted    atomic.Int64
}

// RecordWorker implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWorker(steps int64, duration time.Duration, err error) {
	b.WorkerCount.Add(1)
	b.WorkerSteps.Add(steps)
	b.WorkerTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WorkerErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(workers, results int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordProgress implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProgress(completed, _ int64) {
	b.ProgressPolls.Add(1)
	b.LastCompleted.Store(completed)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		WorkerCount:    b.WorkerCount.Load(),
		WorkerErrors:   b.WorkerErrors.Load(),
		WorkerSteps:    b.WorkerSteps.Load(),
		WorkerAvgNanos: avg(b.WorkerTotalNanos.Load(), b.WorkerCount.Load()),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchResults:  b.SearchResults.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		ProgressPolls:  b.ProgressPolls.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	WorkerCount    int64
	WorkerErrors   int64
	WorkerSteps    int64
	WorkerAvgNanos int64
	SearchCount    int64
	SearchErrors   int64
	SearchResults  int64
	SearchAvgNanos int64
	ProgressPolls  int64
}

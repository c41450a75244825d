package slimefinder

import (
	"log/slog"
	"time"

	"github.com/hupe1980/slimefinder/internal/progress"
	"github.com/hupe1980/slimefinder/internal/scanner"
	"github.com/hupe1980/slimefinder/internal/slime"
)

// PredicateFactory builds the chunk predicate for one worker. It is called
// once per band, so the returned value need not be safe for concurrent use.
type PredicateFactory func(seed int64) scanner.Predicate

// SlimePredicate is the default PredicateFactory.
func SlimePredicate(seed int64) scanner.Predicate {
	return slime.NewChecker(seed)
}

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	predicate        PredicateFactory
	shape            *scanner.Shape
	progressInterval time.Duration
	progressFn       func(progress.Snapshot)
}

// Option configures a Finder.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &slimefinder.BasicMetricsCollector{}
//	results, _ := slimefinder.Search(ctx, q, slimefinder.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Workers: %d, Avg band time: %dns\n", stats.WorkerCount, stats.WorkerAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for searches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := slimefinder.NewJSONLogger(slog.LevelInfo)
//	results, _ := slimefinder.Search(ctx, q, slimefinder.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgress calls fn with a progress snapshot once per interval while a
// search runs. A non-positive interval uses progress.DefaultInterval.
func WithProgress(interval time.Duration, fn func(progress.Snapshot)) Option {
	return func(o *options) {
		o.progressInterval = interval
		o.progressFn = fn
	}
}

// WithPredicate replaces the slime chunk predicate. Pass nil to restore the
// default.
func WithPredicate(factory PredicateFactory) Option {
	return func(o *options) {
		if factory == nil {
			factory = SlimePredicate
		}
		o.predicate = factory
	}
}

// WithShape overrides Query.Shape for every search run by the Finder.
func WithShape(shape scanner.Shape) Option {
	return func(o *options) {
		o.shape = &shape
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		predicate:        SlimePredicate,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

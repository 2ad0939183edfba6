package priority

import (
	"maps"

	"github.com/davidvella/bstq/core/monitoring"
)

// options defines the observability configuration of a queue.
type options struct {
	logger monitoring.Logger // Receives clear/assign and empty access events
	stats  monitoring.Stats  // Optional counters and size gauge
	labels map[string]string // Attached to every stats series
}

// Option is a function that configures queue options.
type Option func(*options)

// WithLogger sets the event logger.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStats records queue activity into s.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// WithLabels sets the labels attached to every recorded metric.
func WithLabels(labels map[string]string) Option {
	return func(o *options) {
		o.labels = maps.Clone(labels)
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: monitoring.NopLogger{},
		stats:  nil,
		labels: nil,
	}
}

package monitoring

import (
	"github.com/davidvella/bstq/core/metrics"
)

const (
	MetricEnqueued    = "queue_enqueued_total"
	MetricDequeued    = "queue_dequeued_total"
	MetricEmptyAccess = "queue_empty_access_total"
	MetricSize        = "queue_size"
)

// Stats collects queue statistics.
type Stats interface {
	RecordEnqueue(labels map[string]string)
	RecordDequeue(labels map[string]string)
	RecordEmptyAccess(op string, labels map[string]string)
	SetSize(size int, labels map[string]string)
}

type stats struct {
	registry *metrics.Registry
}

// NewStats registers the queue metrics in registry and returns a Stats
// recording into it.
func NewStats(registry *metrics.Registry) Stats {
	registry.Register(metrics.Metric{
		Name:        MetricEnqueued,
		Type:        metrics.Counter,
		Description: "Total number of enqueued elements",
	})

	registry.Register(metrics.Metric{
		Name:        MetricDequeued,
		Type:        metrics.Counter,
		Description: "Total number of dequeued elements",
	})

	registry.Register(metrics.Metric{
		Name:        MetricEmptyAccess,
		Type:        metrics.Counter,
		Description: "Dequeue or peek calls made on an empty queue, by operation",
	})

	registry.Register(metrics.Metric{
		Name:        MetricSize,
		Type:        metrics.Gauge,
		Description: "Number of elements currently held",
	})

	return &stats{registry: registry}
}

func (s *stats) RecordEnqueue(labels map[string]string) {
	s.registry.Add(MetricEnqueued, 1, labels)
}

func (s *stats) RecordDequeue(labels map[string]string) {
	s.registry.Add(MetricDequeued, 1, labels)
}

func (s *stats) RecordEmptyAccess(op string, labels map[string]string) {
	l := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		l[k] = v
	}
	l["op"] = op
	s.registry.Add(MetricEmptyAccess, 1, l)
}

func (s *stats) SetSize(size int, labels map[string]string) {
	s.registry.Set(MetricSize, float64(size), labels)
}

package metrics

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

func (t MetricType) String() string {
	switch t {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Metric describes a registered metric.
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue is the current value of one labelled series of a metric.
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. It is safe for concurrent use so a
// single registry can be shared by many queues.
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]*MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]*MetricValue),
	}
}

// Register adds a metric definition. Registering the same name twice keeps
// the first definition.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[metric.Name]; ok {
		return
	}
	r.metrics[metric.Name] = metric
	r.values[metric.Name] = make(map[string]*MetricValue)
}

// Add increments a counter series by delta. Unknown names and non-counters
// are ignored.
func (r *Registry) Add(name string, delta float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		v := r.series(name, labels)
		v.Value += delta
		v.Timestamp = time.Now()
	}
}

// Set replaces the value of a gauge series. Unknown names and non-gauges are
// ignored.
func (r *Registry) Set(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		v := r.series(name, labels)
		v.Value = value
		v.Timestamp = time.Now()
	}
}

// Value returns the current value of the series identified by name and
// labels.
func (r *Registry) Value(name string, labels map[string]string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name][labelKey(labels)]
	if !ok {
		return 0, false
	}
	return v.Value, true
}

// GetMetrics returns a snapshot of every series, keyed by metric name.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue, len(r.values))
	for name, series := range r.values {
		if len(series) == 0 {
			continue
		}
		keys := slices.Sorted(maps.Keys(series))
		out := make([]MetricValue, 0, len(keys))
		for _, k := range keys {
			v := *series[k]
			v.Labels = maps.Clone(v.Labels)
			out = append(out, v)
		}
		result[name] = out
	}
	return result
}

// series must be called with r.mu held for writing.
func (r *Registry) series(name string, labels map[string]string) *MetricValue {
	key := labelKey(labels)
	v, ok := r.values[name][key]
	if !ok {
		v = &MetricValue{Labels: maps.Clone(labels)}
		r.values[name][key] = v
	}
	return v
}

func labelKey(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, k := range slices.Sorted(maps.Keys(labels)) {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(labels[k])
		sb.WriteByte(',')
	}
	return sb.String()
}

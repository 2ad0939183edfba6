package monitoring

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

// Logger receives queue events. Queue operations never block, so no context
// is threaded through.
type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]any)
}

// LoggerOption configures a JSON logger.
type LoggerOption func(*logger)

// WithMinLevel drops entries below level.
func WithMinLevel(level LogLevel) LoggerOption {
	return func(l *logger) {
		l.minLevel = level
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) LoggerOption {
	return func(l *logger) {
		l.now = now
	}
}

type logger struct {
	component string
	minLevel  LogLevel
	now       func() time.Time

	mu  sync.Mutex
	enc *json.Encoder
}

// NewLogger returns a Logger writing one JSON object per line to w.
func NewLogger(component string, w io.Writer, opts ...LoggerOption) Logger {
	l := &logger{
		component: component,
		minLevel:  INFO,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]any) {
	if level < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	//nolint:errcheck // logging is best effort
	l.enc.Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Log(LogLevel, string, string, map[string]any) {}

package lazyload

import (
	"time"
)

// Logger interface for controller lifecycle logging, fallback decisions,
// warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting controller performance and
// operational metrics. It is dependency-free so users can integrate any
// metrics backend (OpenTelemetry, Prometheus, statsd, ...) by implementing
// it; an OpenTelemetry-backed implementation ships in lazyload/oteladapters.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// Metric names emitted by the controller when a MetricsCollector is set.
const (
	LoadsMetric           = "lazyload_loads_total"
	LoadErrorsMetric      = "lazyload_load_errors_total"
	LoadDurationMetric    = "lazyload_load_duration_seconds"
	RetriesMetric         = "lazyload_retries_total"
	RetryExhaustedMetric  = "lazyload_retry_exhausted_total"
	TrackedElementsMetric = "lazyload_tracked_elements"
)

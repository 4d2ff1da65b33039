package controller

import (
	"errors"
	"time"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

var (
	// ErrNilEnvironment is returned when New is called without an environment.
	ErrNilEnvironment = errors.New("environment must not be nil")

	// ErrNilDocument is returned when WithDocument is given a nil document.
	ErrNilDocument = errors.New("document must not be nil")
)

// Option defines a functional option for configuring a Controller.
type Option func(*Controller) error

// WithConfig replaces the entire configuration. Unset and out-of-range
// fields fall back to their documented defaults.
func WithConfig(cfg lazyload.Config) Option {
	return func(c *Controller) error {
		c.cfg = cfg
		return nil
	}
}

// WithDocument sets the document used to discover elements by selector at
// construction time and on Update calls without explicit elements.
func WithDocument(doc dom.Document) Option {
	return func(c *Controller) error {
		if doc == nil {
			return ErrNilDocument
		}

		c.doc = doc

		return nil
	}
}

// WithElements supplies the initial element collection explicitly, bypassing
// selector discovery.
func WithElements(els ...dom.Element) Option {
	return func(c *Controller) error {
		c.initial = append(c.initial, els...)
		return nil
	}
}

// WithCallbacks sets the lifecycle hooks. Nil hooks are simply not invoked.
func WithCallbacks(callbacks lazyload.Callbacks) Option {
	return func(c *Controller) error {
		c.callbacks = callbacks
		return nil
	}
}

// WithLogger sets the logger for the controller.
//
// Debug level: admissions, reveals, fallback decisions, retry scans
// Warn level: non-critical anomalies
// Error level: nothing today. Per-element load failures are Debug, since
// they are an expected part of operation and surface via callbacks.
func WithLogger(logger lazyload.Logger) Option {
	return func(c *Controller) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the controller. It receives
// load durations and counts, retry counts, and the tracked-element gauge.
func WithMetrics(collector lazyload.MetricsCollector) Option {
	return func(c *Controller) error {
		c.metrics = collector
		return nil
	}
}

// WithSelector overrides the element discovery selector.
func WithSelector(selector string) Option {
	return func(c *Controller) error {
		c.cfg.ElementsSelector = selector
		return nil
	}
}

// WithLoadDelay postpones each element's load by d after it is revealed.
// Negative values fall back to no delay.
func WithLoadDelay(d time.Duration) Option {
	return func(c *Controller) error {
		c.cfg.LoadDelay = d
		return nil
	}
}

// WithSkipInvisible loads elements that are already on screen immediately,
// without routing them through the intersection observer.
func WithSkipInvisible(skip bool) Option {
	return func(c *Controller) error {
		c.cfg.SkipInvisible = skip
		return nil
	}
}

// WithStrictVisibility requires the runtime's visibility confirmation before
// revealing an element that intersects geometrically. delay <= 0 falls back
// to the default confirmation delay.
func WithStrictVisibility(delay time.Duration) Option {
	return func(c *Controller) error {
		c.cfg.StrictVisibility = true
		c.cfg.StrictVisibilityDelay = delay
		return nil
	}
}

// WithRetryPolicy tunes reconnect retries: base is the first backoff delay,
// maxAttempts the attempt budget per element. Non-positive values fall back
// to the defaults.
func WithRetryPolicy(base time.Duration, maxAttempts int) Option {
	return func(c *Controller) error {
		c.cfg.RetryBackoffBase = base
		c.cfg.RetryMaxAttempts = maxAttempts
		return nil
	}
}

// WithoutRetryOnReconnect disables the connectivity-driven retry scheduler.
// RetryFailedLoads remains available as a manual trigger.
func WithoutRetryOnReconnect() Option {
	return func(c *Controller) error {
		c.cfg.RetryOnReconnect = false
		return nil
	}
}

// WithEventDispatch additionally fires lifecycle events on each element.
func WithEventDispatch() Option {
	return func(c *Controller) error {
		c.cfg.DispatchEvents = true
		return nil
	}
}

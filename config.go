package lazyload

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/sajjadeakbari/lazyload/dom"
)

// Defaults for every Config field. Exported so embedders can reference the
// documented values instead of repeating literals.
const (
	DefaultDataSrc      = "data-src"
	DefaultDataSrcset   = "data-srcset"
	DefaultDataSizes    = "data-sizes"
	DefaultDataPoster   = "data-poster"
	DefaultDataMedia    = "data-media"
	DefaultDataOverride = "data-lazyload"

	DefaultElementsSelector = ".lazyload"

	DefaultClassLoading = "lazyloading"
	DefaultClassLoaded  = "lazyloaded"
	DefaultClassError   = "lazyerror"

	DefaultRootMargin = "0px"
	DefaultThreshold  = 0.0

	DefaultStrictVisibilityDelay = 100 * time.Millisecond

	DefaultRetryBackoffBase = 1000 * time.Millisecond
	DefaultRetryMaxAttempts = 5
)

// Config is the complete, resolved configuration of a controller instance.
// It is captured at construction and never re-merged afterwards.
//
// The zero value is not usable; start from DefaultConfig and override fields,
// or let the controller's functional options do the merging.
type Config struct {
	// Source attribute names consumed (and always removed) by the loader.
	DataSrc    string
	DataSrcset string
	DataSizes  string
	DataPoster string
	DataMedia  string

	// DataOverride names the attribute carrying per-element JSON overrides,
	// e.g. {"delay_ms": 250}. Malformed JSON is ignored.
	DataOverride string

	// ElementsSelector discovers elements when none are supplied explicitly.
	ElementsSelector string

	ClassLoading string
	ClassLoaded  string
	ClassError   string

	// Root is the intersection root; nil means the viewport.
	Root       dom.Element
	RootMargin string
	Threshold  float64

	// StrictVisibility requires the runtime to confirm an element is
	// rendered and unoccluded, not merely geometrically intersecting.
	StrictVisibility      bool
	StrictVisibilityDelay time.Duration

	// LoadDelay postpones the actual load after an element is revealed.
	// Skipped entirely in non-interactive environments.
	LoadDelay time.Duration

	// SkipInvisible loads elements already on screen immediately, bypassing
	// the intersection observer.
	SkipInvisible bool

	RetryOnReconnect bool
	RetryBackoffBase time.Duration
	RetryMaxAttempts int

	// DispatchEvents additionally fires lifecycle events on the element
	// itself (EventEnter, EventLoad, EventError, EventFinish).
	DispatchEvents bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DataSrc:               DefaultDataSrc,
		DataSrcset:            DefaultDataSrcset,
		DataSizes:             DefaultDataSizes,
		DataPoster:            DefaultDataPoster,
		DataMedia:             DefaultDataMedia,
		DataOverride:          DefaultDataOverride,
		ElementsSelector:      DefaultElementsSelector,
		ClassLoading:          DefaultClassLoading,
		ClassLoaded:           DefaultClassLoaded,
		ClassError:            DefaultClassError,
		RootMargin:            DefaultRootMargin,
		Threshold:             DefaultThreshold,
		StrictVisibility:      false,
		StrictVisibilityDelay: DefaultStrictVisibilityDelay,
		LoadDelay:             0,
		SkipInvisible:         false,
		RetryOnReconnect:      true,
		RetryBackoffBase:      DefaultRetryBackoffBase,
		RetryMaxAttempts:      DefaultRetryMaxAttempts,
		DispatchEvents:        false,
	}
}

// Normalize coerces out-of-range numeric fields back to their defaults and
// fills empty names, matching the tolerant resolver contract: malformed
// options never fail, they fall back.
func (c Config) Normalize() Config {
	d := DefaultConfig()

	if c.DataSrc == "" {
		c.DataSrc = d.DataSrc
	}
	if c.DataSrcset == "" {
		c.DataSrcset = d.DataSrcset
	}
	if c.DataSizes == "" {
		c.DataSizes = d.DataSizes
	}
	if c.DataPoster == "" {
		c.DataPoster = d.DataPoster
	}
	if c.DataMedia == "" {
		c.DataMedia = d.DataMedia
	}
	if c.DataOverride == "" {
		c.DataOverride = d.DataOverride
	}
	if c.ElementsSelector == "" {
		c.ElementsSelector = d.ElementsSelector
	}
	if c.ClassLoading == "" {
		c.ClassLoading = d.ClassLoading
	}
	if c.ClassLoaded == "" {
		c.ClassLoaded = d.ClassLoaded
	}
	if c.ClassError == "" {
		c.ClassError = d.ClassError
	}
	if c.RootMargin == "" {
		c.RootMargin = d.RootMargin
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		c.Threshold = d.Threshold
	}
	if c.StrictVisibilityDelay <= 0 {
		c.StrictVisibilityDelay = d.StrictVisibilityDelay
	}
	if c.LoadDelay < 0 {
		c.LoadDelay = 0
	}
	if c.RetryBackoffBase <= 0 {
		c.RetryBackoffBase = d.RetryBackoffBase
	}
	if c.RetryMaxAttempts <= 0 {
		c.RetryMaxAttempts = d.RetryMaxAttempts
	}

	return c
}

// SourceAttrs lists every attribute the loader may consume; all of them are
// stripped from an element after a terminal outcome.
func (c Config) SourceAttrs() []string {
	return []string{c.DataSrc, c.DataSrcset, c.DataSizes, c.DataPoster, c.DataMedia, c.DataOverride}
}

// elementOverrides is the shape of the per-element override attribute.
type elementOverrides struct {
	DelayMS *int `json:"delay_ms"`
}

// LoadDelayFor resolves the effective load delay for one element, honoring a
// per-element {"delay_ms": N} override. Malformed JSON, negative values and
// unknown keys are ignored.
func (c Config) LoadDelayFor(el dom.Element) time.Duration {
	raw, ok := el.Attr(c.DataOverride)
	if !ok || raw == "" {
		return c.LoadDelay
	}

	var overrides elementOverrides
	if err := jsoniter.ConfigFastest.UnmarshalFromString(raw, &overrides); err != nil {
		return c.LoadDelay
	}

	if overrides.DelayMS == nil || *overrides.DelayMS < 0 {
		return c.LoadDelay
	}

	return time.Duration(*overrides.DelayMS) * time.Millisecond
}

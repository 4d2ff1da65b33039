package dom

import (
	"time"
)

// Visibility is the strict-visibility confirmation carried by an
// IntersectionEntry. Runtimes without strict-visibility tracking report
// VisibilityUnknown, in which case the geometric intersection flag decides.
type Visibility int

const (
	// VisibilityUnknown means the runtime made no visibility confirmation.
	VisibilityUnknown Visibility = iota

	// VisibilityConfirmed means the element is rendered and unoccluded.
	VisibilityConfirmed

	// VisibilityHidden means the element intersects geometrically but is
	// occluded, transformed away, or at zero opacity.
	VisibilityHidden
)

// ObserverOptions configure an IntersectionObserver instance.
type ObserverOptions struct {
	// Root is the intersection root; nil means the viewport.
	Root Element

	// RootMargin grows or shrinks the root's bounding box, CSS-margin style.
	RootMargin string

	// Threshold is the intersection ratio at which entries fire, 0..1.
	Threshold float64

	// TrackVisibility requests strict-visibility confirmation. Runtimes
	// without the capability ignore it and report VisibilityUnknown.
	TrackVisibility bool

	// VisibilityDelay is the minimum time between visibility-tracked
	// notifications. Only meaningful with TrackVisibility.
	VisibilityDelay time.Duration
}

// IntersectionEntry is one visibility event for one observed element.
type IntersectionEntry struct {
	Target         Element
	IsIntersecting bool
	Visibility     Visibility
}

// IntersectionObserver watches elements for viewport intersection and
// delivers batches of entries to the callback it was constructed with.
type IntersectionObserver interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

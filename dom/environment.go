package dom

import (
	"time"
)

// CancelFunc cancels a scheduled callback. Calling it after the callback ran
// is a no-op.
type CancelFunc func()

// RemoveListenerFunc detaches a previously installed environment listener.
type RemoveListenerFunc func()

// Environment bundles the runtime capabilities the controller consumes.
// Everything here is optional in spirit: an Environment may lack the
// intersection capability (ok=false from NewIntersectionObserver), may run
// frames synchronously, and may never signal connectivity changes.
type Environment interface {
	// NewIntersectionObserver constructs an observer delivering entry
	// batches to callback. It reports ok=false when the runtime has no
	// intersection capability at all; the controller then falls back to
	// loading everything immediately.
	NewIntersectionObserver(opts ObserverOptions, callback func([]IntersectionEntry)) (observer IntersectionObserver, ok bool)

	// IsIntersectingViewport synchronously checks whether el currently
	// intersects the viewport. Used by the skip-invisible shortcut.
	IsIntersectingViewport(el Element) bool

	// OnConnectivityRestored installs fn to run whenever network
	// connectivity returns. The returned remover detaches it; environments
	// without a connectivity signal return a no-op remover and never call fn.
	OnConnectivityRestored(fn func()) RemoveListenerFunc

	// RequestFrame schedules fn for the next paint opportunity. Synchronous
	// implementations (running fn before returning) are conforming; the
	// scheduling is a performance affordance, not a correctness requirement.
	RequestFrame(fn func()) CancelFunc

	// Schedule runs fn after d has elapsed.
	Schedule(d time.Duration, fn func()) CancelFunc

	// Now is the environment's clock. Backoff arithmetic uses it so tests
	// can step time manually.
	Now() time.Time

	// Interactive reports whether a user is looking at this runtime.
	// Load delays only apply in interactive environments.
	Interactive() bool
}

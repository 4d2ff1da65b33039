package controller

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// elementState is the single explicit per-element state tag. An element is
// in exactly one state at any instant. A successful load keeps a terminal
// loaded record only until the paint flush applies the loaded CSS class;
// from then on the class is the only evidence and the record is dropped.
type elementState int

const (
	statePending elementState = iota
	stateObserved
	stateLoading
	stateErrored
	stateLoaded
)

// retryInfo is the per-element retry bookkeeping. It exists only for
// elements that errored at least once and is dropped on success, reset, and
// teardown, so it never outlives the controller's interest in the element.
type retryInfo struct {
	attemptCount   int
	nextEligibleAt time.Time
}

// Controller is the loader controller instance. Create one with New; it is
// safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	env dom.Environment
	doc dom.Document

	cfg       lazyload.Config
	callbacks lazyload.Callbacks
	logger    lazyload.Logger
	metrics   lazyload.MetricsCollector

	instanceID string

	states  map[dom.Element]elementState
	retries map[dom.Element]*retryInfo

	observer dom.IntersectionObserver
	// observerUnavailable latches the permanent force-load fallback once the
	// environment reports it has no intersection capability.
	observerUnavailable bool

	removeConnectivity dom.RemoveListenerFunc
	destroyed          bool

	// initial holds elements supplied via WithElements until New admits them.
	initial []dom.Element
}

// New creates a controller over the given environment. Elements are taken
// from WithElements if supplied, otherwise discovered by running the
// configured selector against the WithDocument document. Without either, the
// controller starts empty and elements arrive through AddElements.
func New(env dom.Environment, options ...Option) (*Controller, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}

	c := &Controller{
		env:        env,
		cfg:        lazyload.DefaultConfig(),
		instanceID: uuid.NewString(),
		states:     make(map[dom.Element]elementState),
		retries:    make(map[dom.Element]*retryInfo),
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	c.cfg = c.cfg.Normalize()

	if c.cfg.RetryOnReconnect {
		c.removeConnectivity = env.OnConnectivityRestored(c.RetryFailedLoads)
	}

	initial := c.initial
	c.initial = nil
	if len(initial) == 0 && c.doc != nil {
		initial = c.doc.QuerySelectorAll(c.cfg.ElementsSelector)
	}

	c.AddElements(initial...)

	return c, nil
}

// AddElements enqueues new elements. Nil entries, elements already tracked,
// elements already carrying the loaded class, and calls after Destroy are
// all silently ignored; callers are typically responding to live DOM
// mutation and the registry is tolerant by design.
func (c *Controller) AddElements(els ...dom.Element) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	admitted := c.admitLocked(els)
	toReveal := c.activateLocked()
	tracked := len(c.states)
	c.mu.Unlock()

	if admitted > 0 {
		c.logDebug(logMsgElementsAdmitted, logAttrCount, admitted)
		c.recordTracked(tracked)
	}

	c.revealAll(toReveal)
}

// Update resets the controller: the observer is disconnected, every
// membership and retry record is dropped, and either the supplied elements
// or a fresh selector query are admitted as if the controller were newly
// constructed. CSS classes on previously processed elements are untouched.
func (c *Controller) Update(newEls ...dom.Element) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	c.clearLocked()
	c.mu.Unlock()

	c.logDebug(logMsgControllerReset)

	els := newEls
	if len(els) == 0 && c.doc != nil {
		els = c.doc.QuerySelectorAll(c.cfg.ElementsSelector)
	}

	c.AddElements(els...)
}

// LoadAllNow moves every pending or observed element directly to loading,
// bypassing visibility. It is the explicit escape hatch and the path the
// capability-absence fallback uses.
func (c *Controller) LoadAllNow() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	toReveal := c.forceLoadLocked()
	c.mu.Unlock()

	c.revealAll(toReveal)
}

// Destroy permanently tears the controller down: the observer is
// disconnected, all bookkeeping is dropped, and the connectivity listener is
// detached. Classes and attributes already applied to elements are not
// reverted. In-flight load attempts are not aborted; their late outcomes are
// discarded.
func (c *Controller) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	c.destroyed = true
	c.clearLocked()
	remove := c.removeConnectivity
	c.removeConnectivity = nil
	c.mu.Unlock()

	if remove != nil {
		remove()
	}

	c.logDebug(logMsgControllerDestroyed)
	c.recordTracked(0)
}

// admitLocked applies the admission rules to each candidate and returns how
// many became pending. Callers hold c.mu.
func (c *Controller) admitLocked(els []dom.Element) int {
	admitted := 0

	for _, el := range els {
		if el == nil {
			continue
		}

		// Already pending, observed, loading, or errored: the element is
		// someone's responsibility and must not be double-processed.
		if _, tracked := c.states[el]; tracked {
			continue
		}

		// Loaded elements leave only their CSS class behind; that class is
		// what makes add idempotent after success.
		if el.HasClass(c.cfg.ClassLoaded) {
			continue
		}

		// An error class from a prior unrelated run does not make the
		// element ours to retry; treat it as fresh.
		if el.HasClass(c.cfg.ClassError) {
			el.RemoveClass(c.cfg.ClassError)
		}

		c.states[el] = statePending
		admitted++
	}

	return admitted
}

// clearLocked drops every membership and retry record and disconnects the
// observer. Callers hold c.mu.
func (c *Controller) clearLocked() {
	if c.observer != nil {
		c.observer.Disconnect()
		c.observer = nil
	}

	c.states = make(map[dom.Element]elementState)
	c.retries = make(map[dom.Element]*retryInfo)
}

// forceLoadLocked transitions every pending/observed element to loading and
// returns them for revealing. Callers hold c.mu.
func (c *Controller) forceLoadLocked() []dom.Element {
	var toReveal []dom.Element

	for el, state := range c.states {
		if state != statePending && state != stateObserved {
			continue
		}

		if state == stateObserved && c.observer != nil {
			c.observer.Unobserve(el)
		}

		c.states[el] = stateLoading
		toReveal = append(toReveal, el)
	}

	return toReveal
}

package controller

import (
	"github.com/sajjadeakbari/lazyload/dom"
)

// activateLocked makes sure newly pending elements end up either observed or
// loading. It lazily creates the observer on first need; if the environment
// has no intersection capability the controller latches the permanent
// force-load fallback instead. Returns the elements to reveal. Callers hold
// c.mu.
func (c *Controller) activateLocked() []dom.Element {
	if c.observer == nil && !c.observerUnavailable {
		opts := dom.ObserverOptions{
			Root:       c.cfg.Root,
			RootMargin: c.cfg.RootMargin,
			Threshold:  c.cfg.Threshold,
		}
		if c.cfg.StrictVisibility {
			opts.TrackVisibility = true
			opts.VisibilityDelay = c.cfg.StrictVisibilityDelay
		}

		observer, ok := c.env.NewIntersectionObserver(opts, c.onEntries)
		if !ok {
			c.observerUnavailable = true
			c.logDebug(logMsgObserverUnavailable)
		} else {
			c.observer = observer
		}
	}

	if c.observerUnavailable {
		return c.forceLoadLocked()
	}

	return c.observePendingLocked()
}

// observePendingLocked hands every pending element to the observer, except
// that with SkipInvisible enabled, elements already on screen bypass the
// observer and go straight to loading. Callers hold c.mu.
func (c *Controller) observePendingLocked() []dom.Element {
	var toReveal []dom.Element

	for el, state := range c.states {
		if state != statePending {
			continue
		}

		if c.cfg.SkipInvisible && c.env.IsIntersectingViewport(el) {
			c.states[el] = stateLoading
			toReveal = append(toReveal, el)
			continue
		}

		c.observer.Observe(el)
		c.states[el] = stateObserved
	}

	return toReveal
}

// onEntries is the observer callback. Entries are processed in the order the
// detector reports them; stale targets (reset or teardown raced the
// delivery) are unregistered and ignored.
func (c *Controller) onEntries(entries []dom.IntersectionEntry) {
	c.mu.Lock()
	if c.destroyed || c.observer == nil {
		c.mu.Unlock()
		return
	}

	var toReveal []dom.Element

	for _, entry := range entries {
		el := entry.Target
		if el == nil {
			continue
		}

		state, known := c.states[el]
		if !known || (state != statePending && state != stateObserved) {
			c.observer.Unobserve(el)
			continue
		}

		if !c.effectivelyIntersecting(entry) {
			continue
		}

		c.observer.Unobserve(el)
		c.states[el] = stateLoading
		toReveal = append(toReveal, el)
	}
	c.mu.Unlock()

	c.revealAll(toReveal)
}

// effectivelyIntersecting combines the geometric intersection flag with the
// strict-visibility confirmation (which overrides it when present) and the
// SkipInvisible synchronous on-screen check.
func (c *Controller) effectivelyIntersecting(entry dom.IntersectionEntry) bool {
	intersecting := entry.IsIntersecting

	if c.cfg.StrictVisibility {
		switch entry.Visibility {
		case dom.VisibilityConfirmed:
			intersecting = true
		case dom.VisibilityHidden:
			intersecting = false
		case dom.VisibilityUnknown:
			// Runtime made no confirmation; the geometric flag stands.
		}
	}

	if !intersecting && c.cfg.SkipInvisible && c.env.IsIntersectingViewport(entry.Target) {
		intersecting = true
	}

	return intersecting
}

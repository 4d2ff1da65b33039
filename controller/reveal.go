package controller

import (
	"time"

	"github.com/google/uuid"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/controller/internal/strategies"
	"github.com/sajjadeakbari/lazyload/dom"
)

// revealAll runs the reveal procedure for a batch of elements that just
// transitioned to loading. Must be called without holding c.mu.
func (c *Controller) revealAll(els []dom.Element) {
	for _, el := range els {
		c.reveal(el)
	}
}

// reveal starts one load attempt: enter notification, optional load delay,
// then the actual load. The element is already in the loading state.
func (c *Controller) reveal(el dom.Element) {
	attemptID := uuid.NewString()

	c.logDebug(logMsgElementRevealed, logAttrAttempt, attemptID, logAttrTag, el.TagName())
	c.notifyEnter(el, attemptID)

	var delay time.Duration
	if c.env.Interactive() {
		delay = c.cfg.LoadDelayFor(el)
	}

	if delay > 0 {
		c.env.Schedule(delay, func() {
			c.startLoad(el, attemptID)
		})
		return
	}

	c.startLoad(el, attemptID)
}

// startLoad performs the actual load attempt. It re-checks the element is
// still ours to load, since a reset, teardown, or force-load may have raced the
// load delay timer.
func (c *Controller) startLoad(el dom.Element, attemptID string) {
	c.mu.Lock()
	if c.destroyed || c.states[el] != stateLoading {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	started := c.env.Now()

	el.RemoveClass(c.cfg.ClassError)
	c.env.RequestFrame(func() {
		el.AddClass(c.cfg.ClassLoading)
	})

	attrs := strategies.Attrs{
		Src:    c.cfg.DataSrc,
		Srcset: c.cfg.DataSrcset,
		Sizes:  c.cfg.DataSizes,
		Poster: c.cfg.DataPoster,
		Media:  c.cfg.DataMedia,
	}

	strategies.ForElement(el).Load(el, attrs, func(outcome strategies.Outcome) {
		c.finalize(el, attemptID, started, outcome)
	})
}

// finalize applies the terminal outcome of one attempt exactly once: class
// and membership updates, callbacks and events in the fixed order
// load-or-error then finish, and the attribute cleanup that guards against
// reprocessing. Late outcomes after teardown or reset are discarded.
func (c *Controller) finalize(el dom.Element, attemptID string, started time.Time, outcome strategies.Outcome) {
	c.mu.Lock()
	if c.destroyed || c.states[el] != stateLoading {
		c.mu.Unlock()
		return
	}

	var attempts int
	if outcome.OK() {
		// The record stays, as a terminal loaded entry, until the paint
		// flush applies the loaded class. Dropping it here would let an add
		// issued inside the frame window re-enqueue a loaded element.
		c.states[el] = stateLoaded
		delete(c.retries, el)
	} else {
		c.states[el] = stateErrored
		if info := c.retries[el]; info != nil {
			attempts = info.attemptCount
		}
	}
	tracked := len(c.states)
	c.mu.Unlock()

	c.env.RequestFrame(func() {
		el.RemoveClass(c.cfg.ClassLoading)
		if outcome.OK() {
			el.AddClass(c.cfg.ClassLoaded)
		} else {
			el.AddClass(c.cfg.ClassError)
		}

		for _, attr := range c.cfg.SourceAttrs() {
			el.RemoveAttr(attr)
		}

		if outcome.OK() {
			c.mu.Lock()
			// A reset during the frame window may have re-admitted the
			// element; only the terminal record is ours to drop.
			if c.states[el] == stateLoaded {
				delete(c.states, el)
			}
			c.mu.Unlock()
		}
	})

	c.recordOutcome(el, attemptID, started, outcome)
	c.recordTracked(tracked)

	if outcome.OK() {
		c.notifyLoad(el, attemptID)
	} else {
		c.notifyError(el, attemptID, outcome.Err)
		if attempts >= c.cfg.RetryMaxAttempts {
			c.incrementCounter(lazyload.RetryExhaustedMetric, map[string]string{labelTag: el.TagName()})
		}
	}

	c.notifyFinish(el, attemptID)
}

// notifyEnter invokes the enter hook and, when enabled, the enter event.
func (c *Controller) notifyEnter(el dom.Element, attemptID string) {
	if c.callbacks.OnEnter != nil {
		c.callbacks.OnEnter(el)
	}

	c.dispatch(el, lazyload.EventEnter, attemptID, nil)
}

func (c *Controller) notifyLoad(el dom.Element, attemptID string) {
	if c.callbacks.OnLoad != nil {
		c.callbacks.OnLoad(el)
	}

	c.dispatch(el, lazyload.EventLoad, attemptID, nil)
}

func (c *Controller) notifyError(el dom.Element, attemptID string, err error) {
	if c.callbacks.OnError != nil {
		c.callbacks.OnError(el, err)
	}

	c.dispatch(el, lazyload.EventError, attemptID, err)
}

func (c *Controller) notifyFinish(el dom.Element, attemptID string) {
	if c.callbacks.OnFinish != nil {
		c.callbacks.OnFinish(el)
	}

	c.dispatch(el, lazyload.EventFinish, attemptID, nil)
}

// dispatch fires a lifecycle event on the element when event dispatch is
// enabled. Events are bubbling and cancelable; cancellation carries no
// state-machine meaning.
func (c *Controller) dispatch(el dom.Element, eventType string, attemptID string, err error) {
	if !c.cfg.DispatchEvents {
		return
	}

	detail := map[string]string{
		lazyload.DetailAttemptID: attemptID,
		lazyload.DetailTag:       el.TagName(),
	}
	if err != nil {
		detail[lazyload.DetailError] = err.Error()
	}

	el.DispatchEvent(dom.Event{
		Type:       eventType,
		Detail:     detail,
		Bubbles:    true,
		Cancelable: true,
	})
}

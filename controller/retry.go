package controller

import (
	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// RetryFailedLoads re-evaluates every errored element against its
// exponential-backoff budget and resubmits the eligible ones through the
// normal admission path. It runs automatically when the environment signals
// restored connectivity (unless disabled) and can be called manually at any
// time.
//
// For an element on its k-th retry the next eligibility is backoff_base *
// 2^(k-1) in the future; elements past the attempt budget stay errored
// permanently for this controller instance.
func (c *Controller) RetryFailedLoads() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	now := c.env.Now()
	var eligible []dom.Element

	for el, state := range c.states {
		if state != stateErrored {
			continue
		}

		info := c.retries[el]
		if info == nil {
			info = &retryInfo{}
			c.retries[el] = info
		}

		if info.attemptCount >= c.cfg.RetryMaxAttempts {
			continue
		}

		if now.Before(info.nextEligibleAt) {
			continue
		}

		info.attemptCount++
		info.nextEligibleAt = now.Add(c.cfg.RetryBackoffBase * (1 << (info.attemptCount - 1)))

		// Drop the errored record so the admission path re-admits the
		// element into the normal pending flow; the retry metadata stays.
		delete(c.states, el)
		eligible = append(eligible, el)
	}
	c.mu.Unlock()

	if len(eligible) == 0 {
		return
	}

	c.logDebug(logMsgRetryScan, logAttrCount, len(eligible))
	c.incrementCounterBy(lazyload.RetriesMetric, len(eligible), nil)

	c.AddElements(eligible...)
}

package controller

import (
	"errors"
	"time"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/controller/internal/strategies"
	"github.com/sajjadeakbari/lazyload/dom"
)

const (
	logMsgObserverUnavailable = "intersection capability unavailable, loading all elements immediately"
	logMsgElementsAdmitted    = "elements admitted"
	logMsgElementRevealed     = "element revealed"
	logMsgLoadSucceeded       = "load succeeded"
	logMsgLoadFailed          = "load failed"
	logMsgRetryScan           = "failed elements resubmitted"
	logMsgControllerReset     = "controller reset"
	logMsgControllerDestroyed = "controller destroyed"

	logAttrController = "controller_id"
	logAttrAttempt    = "attempt_id"
	logAttrTag        = "tag"
	logAttrError      = "error"
	logAttrCount      = "count"
	logAttrDurationMS = "duration_ms"

	labelTag       = "tag"
	labelOutcome   = "outcome"
	labelErrorType = "error_type"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// logDebug logs through the configured logger, tagging every line with the
// controller instance ID. No-op without a logger.
func (c *Controller) logDebug(msg string, args ...any) {
	if c.logger == nil {
		return
	}

	c.logger.Debug(msg, append([]any{logAttrController, c.instanceID}, args...)...)
}

// recordOutcome logs and measures one finished attempt.
func (c *Controller) recordOutcome(el dom.Element, attemptID string, started time.Time, outcome strategies.Outcome) {
	duration := c.env.Now().Sub(started)
	tag := el.TagName()

	if outcome.OK() {
		c.logDebug(logMsgLoadSucceeded,
			logAttrAttempt, attemptID,
			logAttrTag, tag,
			logAttrDurationMS, duration.Milliseconds(),
		)
		c.incrementCounter(lazyload.LoadsMetric, map[string]string{labelTag: tag})
		c.recordDuration(lazyload.LoadDurationMetric, duration, map[string]string{labelTag: tag, labelOutcome: outcomeSuccess})
		return
	}

	c.logDebug(logMsgLoadFailed,
		logAttrAttempt, attemptID,
		logAttrTag, tag,
		logAttrError, outcome.Err.Error(),
		logAttrDurationMS, duration.Milliseconds(),
	)
	c.incrementCounter(lazyload.LoadErrorsMetric, map[string]string{labelTag: tag, labelErrorType: errorType(outcome.Err)})
	c.recordDuration(lazyload.LoadDurationMetric, duration, map[string]string{labelTag: tag, labelOutcome: outcomeError})
}

func (c *Controller) recordTracked(count int) {
	if c.metrics == nil {
		return
	}

	c.metrics.RecordValue(lazyload.TrackedElementsMetric, float64(count), nil)
}

func (c *Controller) incrementCounter(metric string, labels map[string]string) {
	if c.metrics == nil {
		return
	}

	c.metrics.IncrementCounter(metric, labels)
}

func (c *Controller) incrementCounterBy(metric string, n int, labels map[string]string) {
	if c.metrics == nil {
		return
	}

	for i := 0; i < n; i++ {
		c.metrics.IncrementCounter(metric, labels)
	}
}

func (c *Controller) recordDuration(metric string, duration time.Duration, labels map[string]string) {
	if c.metrics == nil {
		return
	}

	c.metrics.RecordDuration(metric, duration, labels)
}

// errorType maps a load error onto a stable metrics label.
func errorType(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, lazyload.ErrNoSourceData):
		return "no_source_data"
	case errors.Is(err, lazyload.ErrNoImgTag):
		return "no_img_tag"
	case errors.Is(err, lazyload.ErrNoValidSources):
		return "no_valid_sources"
	case errors.Is(err, lazyload.ErrNoSource):
		return "no_source"
	case errors.Is(err, lazyload.ErrMediaLoadFailed):
		return "media_load_failed"
	default:
		return "other"
	}
}

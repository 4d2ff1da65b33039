package lazyload

import (
	"github.com/sajjadeakbari/lazyload/dom"
)

// Lifecycle event names dispatched on elements when Config.DispatchEvents is
// enabled. They are namespaced so they never collide with the native "load"
// and "error" events the media strategies listen for on the same element.
const (
	EventEnter  = "lazyload:enter"
	EventLoad   = "lazyload:load"
	EventError  = "lazyload:error"
	EventFinish = "lazyload:finish"
)

// Detail keys carried by dispatched lifecycle events.
const (
	DetailError     = "error"
	DetailAttemptID = "attempt_id"
	DetailTag       = "tag"
)

// Callbacks are the per-controller lifecycle hooks. Any of them may be nil.
// For a single element and a single load attempt the invocation order is
// fixed: OnEnter, then exactly one of OnLoad/OnError, then OnFinish.
type Callbacks struct {
	OnEnter  func(el dom.Element)
	OnLoad   func(el dom.Element)
	OnError  func(el dom.Element, err error)
	OnFinish func(el dom.Element)
}

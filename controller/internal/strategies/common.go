package strategies

import (
	"fmt"
	"sync"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// Native element event types the strategies listen for.
const (
	nativeEventLoad    = "load"
	nativeEventError   = "error"
	nativeEventCanPlay = "canplay"
)

// applyAttr moves the value of the data attribute dataName onto the real
// attribute realName, consuming dataName. It reports whether a value was
// present.
func applyAttr(el dom.Element, dataName, realName string) bool {
	value, ok := el.Attr(dataName)
	if !ok {
		return false
	}

	el.SetAttr(realName, value)
	el.RemoveAttr(dataName)

	return true
}

// attachOutcomeListeners installs one-shot success/error listeners on el and
// returns a fire function. The first call to fire (from a listener or from
// the strategy synthesizing an outcome) detaches all listeners and invokes
// done; every later call is a no-op. This is the per-attempt "fired" latch.
func attachOutcomeListeners(el dom.Element, done DoneFunc, successEvent string) func(Outcome) {
	var once sync.Once
	var handles []dom.ListenerHandle

	fire := func(outcome Outcome) {
		once.Do(func() {
			for _, handle := range handles {
				el.RemoveEventListener(handle)
			}
			done(outcome)
		})
	}

	handles = append(handles, el.AddEventListener(successEvent, func(_ dom.Event) {
		fire(Outcome{})
	}))
	handles = append(handles, el.AddEventListener(nativeEventError, func(event dom.Event) {
		fire(Outcome{Err: errFromEvent(event)})
	}))

	return fire
}

// errFromEvent turns a native error event into a load error, keeping the
// runtime's detail when it carries one.
func errFromEvent(event dom.Event) error {
	if detail := event.Detail[lazyload.DetailError]; detail != "" {
		return fmt.Errorf("%w: %s", lazyload.ErrMediaLoadFailed, detail)
	}

	return lazyload.ErrMediaLoadFailed
}

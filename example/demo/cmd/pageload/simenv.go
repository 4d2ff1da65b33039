package main

import (
	"time"

	"github.com/sajjadeakbari/lazyload/dom"
)

const viewportHeight = 900

// simEnvironment is a scripted dom.Environment: elements sit at fixed
// vertical positions, scrollTo moves the viewport and notifies the observer,
// and media loads resolve synchronously by dispatching native events.
type simEnvironment struct {
	positions    map[dom.Element]int
	scrollOffset int
	observer     *simObserver
	connectivity []func()
	failNext     map[dom.Element]bool
	now          time.Time
}

func newSimEnvironment() *simEnvironment {
	return &simEnvironment{
		positions: make(map[dom.Element]int),
		failNext:  make(map[dom.Element]bool),
		now:       time.Now(),
	}
}

func (e *simEnvironment) placeElement(el dom.Element, y int) {
	e.positions[el] = y
}

func (e *simEnvironment) failNextLoadOf(el dom.Element) {
	e.failNext[el] = true
}

// scrollTo moves the viewport, delivers intersection entries for elements
// now on screen, then resolves their loads like the network would.
func (e *simEnvironment) scrollTo(offset int) {
	e.scrollOffset = offset

	if e.observer == nil {
		return
	}

	var entries []dom.IntersectionEntry
	var revealed []dom.Element
	for el := range e.observer.observed {
		if !e.onScreen(el) {
			continue
		}

		entries = append(entries, dom.IntersectionEntry{Target: el, IsIntersecting: true})
		revealed = append(revealed, el)
	}

	if len(entries) == 0 {
		return
	}

	e.observer.callback(entries)
	for _, el := range revealed {
		e.resolveLoad(el)
	}
}

// resolveLoad plays the network's part for elements that wait on native
// events. Background divs complete synchronously and need no help.
func (e *simEnvironment) resolveLoad(el dom.Element) {
	switch el.TagName() {
	case "img", "iframe":
		if e.failNext[el] {
			delete(e.failNext, el)
			el.DispatchEvent(dom.Event{Type: "error", Detail: map[string]string{"error": "connection lost"}})
			return
		}
		el.DispatchEvent(dom.Event{Type: "load"})
	case "video":
		el.DispatchEvent(dom.Event{Type: "canplay"})
	}
}

func (e *simEnvironment) restoreConnectivity() {
	for _, fn := range e.connectivity {
		fn()
	}
}

func (e *simEnvironment) onScreen(el dom.Element) bool {
	y, ok := e.positions[el]
	if !ok {
		return false
	}

	return y >= e.scrollOffset && y < e.scrollOffset+viewportHeight
}

func (e *simEnvironment) NewIntersectionObserver(_ dom.ObserverOptions, callback func([]dom.IntersectionEntry)) (dom.IntersectionObserver, bool) {
	e.observer = &simObserver{
		callback: callback,
		observed: make(map[dom.Element]struct{}),
	}

	return e.observer, true
}

func (e *simEnvironment) IsIntersectingViewport(el dom.Element) bool {
	return e.onScreen(el)
}

func (e *simEnvironment) OnConnectivityRestored(fn func()) dom.RemoveListenerFunc {
	e.connectivity = append(e.connectivity, fn)

	return func() { e.connectivity = nil }
}

func (e *simEnvironment) RequestFrame(fn func()) dom.CancelFunc {
	fn()
	return func() {}
}

func (e *simEnvironment) Schedule(d time.Duration, fn func()) dom.CancelFunc {
	e.now = e.now.Add(d)
	fn()
	return func() {}
}

func (e *simEnvironment) Now() time.Time {
	return e.now
}

func (e *simEnvironment) Interactive() bool {
	return true
}

type simObserver struct {
	callback func([]dom.IntersectionEntry)
	observed map[dom.Element]struct{}
}

func (o *simObserver) Observe(el dom.Element)   { o.observed[el] = struct{}{} }
func (o *simObserver) Unobserve(el dom.Element) { delete(o.observed, el) }
func (o *simObserver) Disconnect()              { o.observed = make(map[dom.Element]struct{}) }

package domtest

import (
	"sort"
	"sync"
	"time"

	"github.com/sajjadeakbari/lazyload/dom"
)

// FakeEnvironment is a dom.Environment with a manual clock, manually driven
// observers, synchronous frames, and a manually triggered connectivity
// signal. The zero configuration (from NewEnvironment) is interactive and
// has the intersection capability.
type FakeEnvironment struct {
	mu sync.Mutex

	now         time.Time
	interactive bool

	intersectionSupported bool
	observers             []*FakeObserver

	onScreen map[dom.Element]bool

	connectivityListeners map[int]func()
	nextListenerID        int

	deferFrames   bool
	pendingFrames []func()

	timers      map[int]*fakeTimer
	nextTimerID int
}

type fakeTimer struct {
	deadline time.Time
	fn       func()
}

// NewEnvironment creates an interactive environment with the intersection
// capability, a clock starting at a fixed instant, and synchronous frames.
func NewEnvironment() *FakeEnvironment {
	return &FakeEnvironment{
		now:                   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		interactive:           true,
		intersectionSupported: true,
		onScreen:              make(map[dom.Element]bool),
		connectivityListeners: make(map[int]func()),
		timers:                make(map[int]*fakeTimer),
	}
}

// DisableIntersection removes the intersection capability; controllers built
// against this environment fall back to loading everything immediately.
func (e *FakeEnvironment) DisableIntersection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.intersectionSupported = false
}

// SetNonInteractive marks the runtime non-interactive; load delays no longer
// apply.
func (e *FakeEnvironment) SetNonInteractive() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.interactive = false
}

// DeferFrames switches RequestFrame from synchronous execution to queueing;
// queued frames run on FlushFrames.
func (e *FakeEnvironment) DeferFrames() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deferFrames = true
}

// FlushFrames runs every queued frame callback in order.
func (e *FakeEnvironment) FlushFrames() {
	e.mu.Lock()
	frames := e.pendingFrames
	e.pendingFrames = nil
	e.mu.Unlock()

	for _, fn := range frames {
		fn()
	}
}

// SetOnScreen marks an element as synchronously intersecting the viewport.
func (e *FakeEnvironment) SetOnScreen(el dom.Element, onScreen bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onScreen[el] = onScreen
}

// Advance moves the clock forward and fires every timer that came due, in
// deadline order.
func (e *FakeEnvironment) Advance(d time.Duration) {
	e.mu.Lock()
	e.now = e.now.Add(d)

	var due []int
	for id, timer := range e.timers {
		if !timer.deadline.After(e.now) {
			due = append(due, id)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return e.timers[due[i]].deadline.Before(e.timers[due[j]].deadline)
	})

	var fns []func()
	for _, id := range due {
		fns = append(fns, e.timers[id].fn)
		delete(e.timers, id)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// RestoreConnectivity fires every installed connectivity listener.
func (e *FakeEnvironment) RestoreConnectivity() {
	e.mu.Lock()
	fns := make([]func(), 0, len(e.connectivityListeners))
	ids := make([]int, 0, len(e.connectivityListeners))
	for id := range e.connectivityListeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, e.connectivityListeners[id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// ConnectivityListenerCount reports how many connectivity listeners are
// currently installed.
func (e *FakeEnvironment) ConnectivityListenerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.connectivityListeners)
}

// Observer returns the most recently constructed observer, or nil.
func (e *FakeEnvironment) Observer() *FakeObserver {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.observers) == 0 {
		return nil
	}
	return e.observers[len(e.observers)-1]
}

// ObserverCount reports how many observers were constructed over the
// environment's lifetime.
func (e *FakeEnvironment) ObserverCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.observers)
}

func (e *FakeEnvironment) NewIntersectionObserver(opts dom.ObserverOptions, callback func([]dom.IntersectionEntry)) (dom.IntersectionObserver, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.intersectionSupported {
		return nil, false
	}

	observer := &FakeObserver{
		opts:     opts,
		callback: callback,
		observed: make(map[dom.Element]struct{}),
	}
	e.observers = append(e.observers, observer)

	return observer, true
}

func (e *FakeEnvironment) IsIntersectingViewport(el dom.Element) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.onScreen[el]
}

func (e *FakeEnvironment) OnConnectivityRestored(fn func()) dom.RemoveListenerFunc {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextListenerID++
	id := e.nextListenerID
	e.connectivityListeners[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.connectivityListeners, id)
	}
}

func (e *FakeEnvironment) RequestFrame(fn func()) dom.CancelFunc {
	e.mu.Lock()
	if e.deferFrames {
		e.pendingFrames = append(e.pendingFrames, fn)
		e.mu.Unlock()
		return func() {}
	}
	e.mu.Unlock()

	fn()

	return func() {}
}

func (e *FakeEnvironment) Schedule(d time.Duration, fn func()) dom.CancelFunc {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextTimerID++
	id := e.nextTimerID
	e.timers[id] = &fakeTimer{deadline: e.now.Add(d), fn: fn}

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.timers, id)
	}
}

func (e *FakeEnvironment) Now() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

func (e *FakeEnvironment) Interactive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interactive
}

// FakeObserver is a manually driven dom.IntersectionObserver. Tests deliver
// entry batches with Emit.
type FakeObserver struct {
	mu           sync.Mutex
	opts         dom.ObserverOptions
	callback     func([]dom.IntersectionEntry)
	observed     map[dom.Element]struct{}
	disconnected bool
}

func (o *FakeObserver) Observe(el dom.Element) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disconnected {
		return
	}
	o.observed[el] = struct{}{}
}

func (o *FakeObserver) Unobserve(el dom.Element) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.observed, el)
}

func (o *FakeObserver) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.disconnected = true
	o.observed = make(map[dom.Element]struct{})
}

// Emit delivers a batch of entries to the observer's callback, regardless of
// observation state; stale-delivery races are the controller's problem to
// guard, and tests exercise exactly that.
func (o *FakeObserver) Emit(entries ...dom.IntersectionEntry) {
	o.mu.Lock()
	callback := o.callback
	o.mu.Unlock()

	if callback != nil {
		callback(entries)
	}
}

// EmitIntersecting is shorthand for a single element becoming visible.
func (o *FakeObserver) EmitIntersecting(el dom.Element) {
	o.Emit(dom.IntersectionEntry{Target: el, IsIntersecting: true})
}

// IsObserving reports whether el is currently registered.
func (o *FakeObserver) IsObserving(el dom.Element) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.observed[el]
	return ok
}

// ObservedCount reports how many elements are currently registered.
func (o *FakeObserver) ObservedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.observed)
}

// Disconnected reports whether Disconnect was called.
func (o *FakeObserver) Disconnected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disconnected
}

// Options returns the observer options the controller constructed with.
func (o *FakeObserver) Options() dom.ObserverOptions {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opts
}

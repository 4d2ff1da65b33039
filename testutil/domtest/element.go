package domtest

import (
	"slices"
	"sync"

	"github.com/sajjadeakbari/lazyload/dom"
)

// FakeElement is an in-memory dom.Element. It also implements
// dom.MediaElement and counts native load-trigger invocations.
type FakeElement struct {
	tag string

	mu         sync.Mutex
	attrs      map[string]string
	classes    map[string]struct{}
	styles     map[string]string
	children   []dom.Element
	listeners  map[string]map[int]func(dom.Event)
	nextHandle int
	dispatched []dom.Event
	loadCalls  int
}

// listenerHandle identifies one registered listener on one element.
type listenerHandle struct {
	eventType string
	id        int
}

// NewElement creates a fake element with the given tag name.
func NewElement(tag string) *FakeElement {
	return &FakeElement{
		tag:       tag,
		attrs:     make(map[string]string),
		classes:   make(map[string]struct{}),
		styles:    make(map[string]string),
		listeners: make(map[string]map[int]func(dom.Event)),
	}
}

// WithAttr sets an attribute and returns the element, for fluent test setup.
func (e *FakeElement) WithAttr(name, value string) *FakeElement {
	e.SetAttr(name, value)
	return e
}

// WithClass adds a class and returns the element, for fluent test setup.
func (e *FakeElement) WithClass(name string) *FakeElement {
	e.AddClass(name)
	return e
}

// WithChild appends a child and returns the element, for fluent test setup.
func (e *FakeElement) WithChild(child dom.Element) *FakeElement {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children = append(e.children, child)
	return e
}

func (e *FakeElement) TagName() string {
	return e.tag
}

func (e *FakeElement) Attr(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	value, ok := e.attrs[name]
	return value, ok
}

func (e *FakeElement) SetAttr(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

func (e *FakeElement) RemoveAttr(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

func (e *FakeElement) AddClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[name] = struct{}{}
}

func (e *FakeElement) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, name)
}

func (e *FakeElement) HasClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.classes[name]
	return ok
}

func (e *FakeElement) Children() []dom.Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]dom.Element, len(e.children))
	copy(out, e.children)
	return out
}

func (e *FakeElement) SetStyle(property, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.styles[property] = value
}

// Style returns an inline style property set via SetStyle.
func (e *FakeElement) Style(property string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	value, ok := e.styles[property]
	return value, ok
}

func (e *FakeElement) AddEventListener(eventType string, fn func(dom.Event)) dom.ListenerHandle {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextHandle++
	if e.listeners[eventType] == nil {
		e.listeners[eventType] = make(map[int]func(dom.Event))
	}
	e.listeners[eventType][e.nextHandle] = fn

	return listenerHandle{eventType: eventType, id: e.nextHandle}
}

func (e *FakeElement) RemoveEventListener(handle dom.ListenerHandle) {
	lh, ok := handle.(listenerHandle)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if m := e.listeners[lh.eventType]; m != nil {
		delete(m, lh.id)
	}
}

// DispatchEvent invokes listeners synchronously in registration order and
// records the event for later assertions.
func (e *FakeElement) DispatchEvent(event dom.Event) bool {
	e.mu.Lock()
	e.dispatched = append(e.dispatched, event)
	m := e.listeners[event.Type]
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(dom.Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m[id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}

	return true
}

// Load implements dom.MediaElement.
func (e *FakeElement) Load() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadCalls++
}

// LoadCalls returns how often the native media load trigger was invoked.
func (e *FakeElement) LoadCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadCalls
}

// DispatchedEvents returns every event dispatched on this element, including
// test-synthesized native signals and controller lifecycle notifications.
func (e *FakeElement) DispatchedEvents() []dom.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]dom.Event, len(e.dispatched))
	copy(out, e.dispatched)
	return out
}

// DispatchedEventTypes returns the types of DispatchedEvents in order.
func (e *FakeElement) DispatchedEventTypes() []string {
	events := e.DispatchedEvents()
	types := make([]string, len(events))
	for i, event := range events {
		types[i] = event.Type
	}
	return types
}

// ListenerCount reports how many listeners are registered for an event type.
func (e *FakeElement) ListenerCount(eventType string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[eventType])
}

// EmitLoad synthesizes the native load signal.
func (e *FakeElement) EmitLoad() {
	e.DispatchEvent(dom.Event{Type: "load"})
}

// EmitCanPlay synthesizes the native playable signal.
func (e *FakeElement) EmitCanPlay() {
	e.DispatchEvent(dom.Event{Type: "canplay"})
}

// EmitError synthesizes the native error signal with an optional detail.
func (e *FakeElement) EmitError(detail string) {
	event := dom.Event{Type: "error"}
	if detail != "" {
		event.Detail = map[string]string{"error": detail}
	}
	e.DispatchEvent(event)
}

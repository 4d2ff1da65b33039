package dom

// Event is a notification dispatched on an Element, either by the runtime
// (media load/error signals) or by the controller (lifecycle notifications).
type Event struct {
	Type       string
	Detail     map[string]string
	Bubbles    bool
	Cancelable bool
}

// ListenerHandle identifies a registered event listener so it can be removed.
type ListenerHandle interface{}

// EventTarget is the listener surface of an Element.
type EventTarget interface {
	// AddEventListener registers fn for events of the given type and returns
	// a handle for later removal. Listeners are invoked synchronously by
	// DispatchEvent, in registration order.
	AddEventListener(eventType string, fn func(Event)) ListenerHandle

	// RemoveEventListener removes a previously registered listener.
	// Unknown handles are ignored.
	RemoveEventListener(handle ListenerHandle)

	// DispatchEvent delivers an event to all listeners registered for its
	// type. Implementations backed by a real node tree propagate bubbling
	// events to ancestor elements. It reports false if the event was
	// cancelable and a listener canceled it (implementation-defined),
	// true otherwise.
	DispatchEvent(event Event) bool
}

// Element is a single node the controller can observe and mutate. The
// controller never owns the element's lifecycle; other code may remove or
// mutate it concurrently and implementations must tolerate that.
type Element interface {
	EventTarget

	// TagName returns the lower-case tag name, e.g. "img", "picture".
	TagName() string

	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)

	SetAttr(name, value string)
	RemoveAttr(name string)

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// Children returns the element children in document order.
	Children() []Element

	// SetStyle sets a single inline style property, e.g.
	// SetStyle("background-image", `url("a.jpg")`).
	SetStyle(property, value string)
}

// MediaElement is implemented by elements that expose a native media load
// trigger (HTMLMediaElement.load). Discovered by type assertion; elements
// without it simply never get the trigger invoked.
type MediaElement interface {
	Load()
}

// Document is the query surface used to discover elements by selector.
type Document interface {
	QuerySelectorAll(selector string) []Element
}

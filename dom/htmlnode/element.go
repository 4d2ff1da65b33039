package htmlnode

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/sajjadeakbari/lazyload/dom"
)

// Element adapts one html.Node to dom.Element. Obtain instances through
// Page.Wrap or Page.QuerySelectorAll only; that keeps identity canonical.
type Element struct {
	page *Page
	node *html.Node

	mu         sync.Mutex
	listeners  map[string]map[int]func(dom.Event)
	nextHandle int
}

type listenerHandle struct {
	eventType string
	id        int
}

func (e *Element) TagName() string {
	return e.node.Data
}

func (e *Element) Attr(name string) (string, bool) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	for _, attr := range e.node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}

	return "", false
}

func (e *Element) SetAttr(name, value string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	for i, attr := range e.node.Attr {
		if attr.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}

	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) RemoveAttr(name string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	attrs := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if attr.Key != name {
			attrs = append(attrs, attr)
		}
	}
	e.node.Attr = attrs
}

func (e *Element) AddClass(name string) {
	classes := e.classList()
	for _, class := range classes {
		if class == name {
			return
		}
	}

	e.setClassList(append(classes, name))
}

func (e *Element) RemoveClass(name string) {
	classes := e.classList()
	filtered := classes[:0]
	for _, class := range classes {
		if class != name {
			filtered = append(filtered, class)
		}
	}

	e.setClassList(filtered)
}

func (e *Element) HasClass(name string) bool {
	for _, class := range e.classList() {
		if class == name {
			return true
		}
	}

	return false
}

func (e *Element) Children() []dom.Element {
	var out []dom.Element
	for child := e.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, e.page.Wrap(child))
		}
	}

	return out
}

// SetStyle rewrites the inline style attribute, replacing the property if it
// is already declared.
func (e *Element) SetStyle(property, value string) {
	existing, _ := e.Attr("style")

	var declarations []string
	for _, declaration := range strings.Split(existing, ";") {
		declaration = strings.TrimSpace(declaration)
		if declaration == "" {
			continue
		}

		name, _, found := strings.Cut(declaration, ":")
		if found && strings.TrimSpace(name) == property {
			continue
		}

		declarations = append(declarations, declaration)
	}

	declarations = append(declarations, property+": "+value)
	e.SetAttr("style", strings.Join(declarations, "; "))
}

func (e *Element) AddEventListener(eventType string, fn func(dom.Event)) dom.ListenerHandle {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[string]map[int]func(dom.Event))
	}
	if e.listeners[eventType] == nil {
		e.listeners[eventType] = make(map[int]func(dom.Event))
	}

	e.nextHandle++
	e.listeners[eventType][e.nextHandle] = fn

	return listenerHandle{eventType: eventType, id: e.nextHandle}
}

func (e *Element) RemoveEventListener(handle dom.ListenerHandle) {
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

// DispatchEvent delivers the event to this element's listeners and, for
// bubbling events, walks it up the ancestor chain like a browser would.
func (e *Element) DispatchEvent(event dom.Event) bool {
	e.deliver(event)

	if event.Bubbles {
		for node := e.node.Parent; node != nil; node = node.Parent {
			if node.Type != html.ElementNode {
				continue
			}

			e.page.Wrap(node).deliver(event)
		}
	}

	return true
}

// deliver invokes this element's own listeners for the event type, in
// registration order, without propagation.
func (e *Element) deliver(event dom.Event) {
	e.mu.Lock()
	var fns []func(dom.Event)
	ids := make([]int, 0, len(e.listeners[event.Type]))
	for id := range e.listeners[event.Type] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, e.listeners[event.Type][id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

func (e *Element) classList() []string {
	raw, _ := e.Attr("class")

	return strings.Fields(raw)
}

func (e *Element) setClassList(classes []string) {
	if len(classes) == 0 {
		e.RemoveAttr("class")
		return
	}

	e.SetAttr("class", strings.Join(classes, " "))
}

package domtest

import (
	"sync"

	"github.com/sajjadeakbari/lazyload/dom"
)

// FakeDocument is a dom.Document returning canned selector results.
type FakeDocument struct {
	mu      sync.Mutex
	results map[string][]dom.Element
}

// NewDocument creates an empty fake document.
func NewDocument() *FakeDocument {
	return &FakeDocument{results: make(map[string][]dom.Element)}
}

// SetQueryResult defines what QuerySelectorAll returns for a selector.
func (d *FakeDocument) SetQueryResult(selector string, els ...dom.Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results[selector] = els
}

func (d *FakeDocument) QuerySelectorAll(selector string) []dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]dom.Element, len(d.results[selector]))
	copy(out, d.results[selector])
	return out
}

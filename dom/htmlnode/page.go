// Package htmlnode implements the dom abstractions over a parsed
// golang.org/x/net/html tree, with CSS selector support from
// github.com/andybalholm/cascadia. It serves server-side rendering flows and
// tests; media load/error signals do not occur naturally here and are
// dispatched by the embedder.
package htmlnode

import (
	"io"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/sajjadeakbari/lazyload/dom"
)

// Page owns one parsed HTML tree and guarantees a single Element wrapper per
// node, so element identity is stable across queries.
type Page struct {
	root *html.Node

	mu       sync.Mutex
	wrappers map[*html.Node]*Element
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	return FromNode(root), nil
}

// FromNode creates a Page over an already parsed tree. Useful when the tree
// is shared with other consumers, e.g. a goquery document.
func FromNode(root *html.Node) *Page {
	return &Page{
		root:     root,
		wrappers: make(map[*html.Node]*Element),
	}
}

// Root returns the underlying tree root.
func (p *Page) Root() *html.Node {
	return p.root
}

// Wrap returns the canonical Element for a node of this page's tree.
func (p *Page) Wrap(node *html.Node) *Element {
	p.mu.Lock()
	defer p.mu.Unlock()

	if el, ok := p.wrappers[node]; ok {
		return el
	}

	el := &Element{page: p, node: node}
	p.wrappers[node] = el

	return el
}

// QuerySelectorAll implements dom.Document. Invalid selectors yield no
// matches, in keeping with the tolerant design of the controller's inputs.
func (p *Page) QuerySelectorAll(selector string) []dom.Element {
	compiled, err := cascadia.Parse(selector)
	if err != nil {
		return nil
	}

	var out []dom.Element
	for _, node := range cascadia.QueryAll(p.root, compiled) {
		out = append(out, p.Wrap(node))
	}

	return out
}

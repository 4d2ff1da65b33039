// Package goqueryadapter exposes the controller's public operations over
// goquery selections. It only translates collection types; all state
// machine logic stays in lazyload/controller.
package goqueryadapter

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sajjadeakbari/lazyload/controller"
	"github.com/sajjadeakbari/lazyload/dom"
	"github.com/sajjadeakbari/lazyload/dom/htmlnode"
)

// Adapter forwards goquery selections to a controller. The page must wrap
// the same html tree the goquery document was built from, so node identity
// lines up.
type Adapter struct {
	page *htmlnode.Page
	ctrl *controller.Controller
}

// New creates an adapter binding the controller to the page's tree.
func New(page *htmlnode.Page, ctrl *controller.Controller) *Adapter {
	return &Adapter{page: page, ctrl: ctrl}
}

// AddElements enqueues every element node in the selection.
func (a *Adapter) AddElements(sel *goquery.Selection) {
	a.ctrl.AddElements(a.elements(sel)...)
}

// Update resets the controller and re-admits the selection; with a nil
// selection the controller falls back to its selector query.
func (a *Adapter) Update(sel *goquery.Selection) {
	a.ctrl.Update(a.elements(sel)...)
}

// LoadAllNow force-loads everything pending or observed.
func (a *Adapter) LoadAllNow() {
	a.ctrl.LoadAllNow()
}

// RetryFailedLoads manually triggers the retry scheduler.
func (a *Adapter) RetryFailedLoads() {
	a.ctrl.RetryFailedLoads()
}

// Destroy permanently tears the controller down.
func (a *Adapter) Destroy() {
	a.ctrl.Destroy()
}

func (a *Adapter) elements(sel *goquery.Selection) []dom.Element {
	if sel == nil {
		return nil
	}

	var els []dom.Element
	for _, node := range sel.Nodes {
		if node != nil && node.Type == html.ElementNode {
			els = append(els, a.page.Wrap(node))
		}
	}

	return els
}

package strategies

import (
	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// Iframe loads an iframe element through a one-shot load listener.
type Iframe struct{}

// Load implements the Strategy interface.
func (Iframe) Load(el dom.Element, attrs Attrs, done DoneFunc) {
	fire := attachOutcomeListeners(el, done, nativeEventLoad)

	if !applyAttr(el, attrs.Src, "src") {
		fire(Outcome{Err: lazyload.ErrNoSource})
	}
}

package strategies

import (
	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// Img loads a plain img element: listeners first, then sizes, srcset and src
// in that order. Sizes must be in place before the rendering engine
// evaluates srcset.
type Img struct{}

// Load implements the Strategy interface.
func (Img) Load(el dom.Element, attrs Attrs, done DoneFunc) {
	fire := attachOutcomeListeners(el, done, nativeEventLoad)

	applyAttr(el, attrs.Sizes, "sizes")
	hasSrcset := applyAttr(el, attrs.Srcset, "srcset")
	hasSrc := applyAttr(el, attrs.Src, "src")

	if !hasSrc && !hasSrcset {
		fire(Outcome{Err: lazyload.ErrNoSourceData})
	}
}

package strategies

import (
	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// Video loads a video element: every source child with source data gets its
// src applied, the poster is applied if present, and the element's native
// load trigger is invoked. The attempt completes on a playable signal or an
// error; a video without any usable source fails immediately.
type Video struct{}

// Load implements the Strategy interface.
func (Video) Load(el dom.Element, attrs Attrs, done DoneFunc) {
	fire := attachOutcomeListeners(el, done, nativeEventCanPlay)

	applied := false
	for _, child := range el.Children() {
		if child.TagName() != tagSource {
			continue
		}

		if applyAttr(child, attrs.Src, "src") {
			applied = true
		}
	}

	applyAttr(el, attrs.Poster, "poster")

	if !applied {
		fire(Outcome{Err: lazyload.ErrNoValidSources})
		return
	}

	if media, ok := el.(dom.MediaElement); ok {
		media.Load()
	}
}

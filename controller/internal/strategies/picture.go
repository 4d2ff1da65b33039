package strategies

import (
	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// Picture loads a responsive picture element: each source child gets its
// media query, sizes and srcset applied, then the fallback img child is
// delegated to the Img strategy. The load/error signal comes from the img.
//
// A picture whose img child carries no source data of its own deliberately
// falls into the img missing-source error path; the picture's own attributes
// are not consulted as a fallback.
type Picture struct{}

// Load implements the Strategy interface.
func (Picture) Load(el dom.Element, attrs Attrs, done DoneFunc) {
	var img dom.Element
	for _, child := range el.Children() {
		if child.TagName() == tagImg {
			img = child
			break
		}
	}

	if img == nil {
		done(Outcome{Err: lazyload.ErrNoImgTag})
		return
	}

	for _, child := range el.Children() {
		if child.TagName() != tagSource {
			continue
		}

		applyAttr(child, attrs.Media, "media")
		applyAttr(child, attrs.Sizes, "sizes")
		applyAttr(child, attrs.Srcset, "srcset")
	}

	Img{}.Load(img, attrs, done)
}

package strategies

import (
	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/dom"
)

// Background handles every other tag by applying the source as a CSS
// background image. It completes synchronously: success when source data was
// present, failure otherwise.
type Background struct{}

// Load implements the Strategy interface.
func (Background) Load(el dom.Element, attrs Attrs, done DoneFunc) {
	value, ok := el.Attr(attrs.Src)
	if !ok {
		done(Outcome{Err: lazyload.ErrNoSourceData})
		return
	}

	el.SetStyle("background-image", `url("`+value+`")`)
	el.RemoveAttr(attrs.Src)

	done(Outcome{})
}

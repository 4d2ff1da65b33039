package strategies

import (
	"github.com/sajjadeakbari/lazyload/dom"
)

// Attrs carries the configured names of the deferred-source attributes.
type Attrs struct {
	Src    string
	Srcset string
	Sizes  string
	Poster string
	Media  string
}

// Outcome is the terminal result of one load attempt. Err is nil on success.
type Outcome struct {
	Err error
}

// OK reports whether the attempt succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// DoneFunc receives the terminal outcome of an attempt. Strategies call it
// at most once per Load invocation.
type DoneFunc func(Outcome)

// Strategy applies deferred source data to a revealed element and arranges
// for done to be called with the terminal outcome: immediately for
// synchronous cases (missing source data, background images), or when the
// element's own load/error signal arrives.
type Strategy interface {
	Load(el dom.Element, attrs Attrs, done DoneFunc)
}

// ForElement selects the strategy for an element by tag name. Unrecognized
// tags get the background-image strategy.
func ForElement(el dom.Element) Strategy {
	switch el.TagName() {
	case tagImg:
		return Img{}
	case tagPicture:
		return Picture{}
	case tagVideo:
		return Video{}
	case tagIframe:
		return Iframe{}
	default:
		return Background{}
	}
}

const (
	tagImg     = "img"
	tagPicture = "picture"
	tagVideo   = "video"
	tagIframe  = "iframe"
	tagSource  = "source"
)

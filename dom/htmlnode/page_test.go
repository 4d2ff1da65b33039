package htmlnode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjadeakbari/lazyload/dom"
	"github.com/sajjadeakbari/lazyload/dom/htmlnode"
)

const pageHTML = `<!DOCTYPE html>
<html>
<body>
	<img class="lazyload" data-src="a.jpg" alt="a">
	<img class="lazyload" data-src="b.jpg" alt="b">
	<img src="eager.jpg" alt="eager">
	<picture class="lazyload">
		<source data-srcset="wide.jpg" data-media="(min-width: 800px)">
		<img data-src="fallback.jpg" alt="pic">
	</picture>
</body>
</html>`

func parsePage(t *testing.T) *htmlnode.Page {
	t.Helper()

	page, err := htmlnode.Parse(strings.NewReader(pageHTML))
	require.NoError(t, err)

	return page
}

func Test_Page_QuerySelectorAll(t *testing.T) {
	page := parsePage(t)

	matches := page.QuerySelectorAll(".lazyload")

	require.Len(t, matches, 3)
	assert.Equal(t, "img", matches[0].TagName())
	assert.Equal(t, "picture", matches[2].TagName())
}

func Test_Page_QuerySelectorAll_InvalidSelectorYieldsNothing(t *testing.T) {
	page := parsePage(t)

	assert.Empty(t, page.QuerySelectorAll("..not a selector"))
}

func Test_Page_Wrap_StableIdentity(t *testing.T) {
	page := parsePage(t)

	first := page.QuerySelectorAll(".lazyload")
	second := page.QuerySelectorAll(".lazyload")

	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i], "repeated queries return the same wrapper")
	}
}

func Test_Element_AttributeRoundTrip(t *testing.T) {
	page := parsePage(t)
	img := page.QuerySelectorAll(".lazyload")[0]

	src, ok := img.Attr("data-src")
	require.True(t, ok)
	assert.Equal(t, "a.jpg", src)

	img.SetAttr("src", "a.jpg")
	img.RemoveAttr("data-src")

	applied, ok := img.Attr("src")
	require.True(t, ok)
	assert.Equal(t, "a.jpg", applied)
	_, stillThere := img.Attr("data-src")
	assert.False(t, stillThere)
}

func Test_Element_ClassList(t *testing.T) {
	page := parsePage(t)
	img := page.QuerySelectorAll(".lazyload")[0]

	require.True(t, img.HasClass("lazyload"))

	img.AddClass("lazyloading")
	assert.True(t, img.HasClass("lazyloading"))

	// Adding twice keeps a single entry.
	img.AddClass("lazyloading")
	img.RemoveClass("lazyloading")
	assert.False(t, img.HasClass("lazyloading"))
	assert.True(t, img.HasClass("lazyload"), "unrelated classes survive")
}

func Test_Element_Children(t *testing.T) {
	page := parsePage(t)
	picture := page.QuerySelectorAll("picture")[0]

	children := picture.Children()

	require.Len(t, children, 2)
	assert.Equal(t, "source", children[0].TagName())
	assert.Equal(t, "img", children[1].TagName())
}

func Test_Element_SetStyle(t *testing.T) {
	page := parsePage(t)
	img := page.QuerySelectorAll(".lazyload")[0]

	img.SetStyle("background-image", `url("a.jpg")`)
	style, _ := img.Attr("style")
	assert.Contains(t, style, `background-image: url("a.jpg")`)

	// Re-setting replaces the property instead of appending.
	img.SetStyle("background-image", `url("b.jpg")`)
	style, _ = img.Attr("style")
	assert.Contains(t, style, `url("b.jpg")`)
	assert.NotContains(t, style, `url("a.jpg")`)
}

func Test_Element_BubblingEventReachesAncestors(t *testing.T) {
	page := parsePage(t)
	img := page.QuerySelectorAll(".lazyload")[0]
	body := page.QuerySelectorAll("body")[0]

	var seenOnBody []string
	body.AddEventListener("lazyload:finish", func(event dom.Event) {
		seenOnBody = append(seenOnBody, event.Type)
	})

	img.DispatchEvent(dom.Event{Type: "lazyload:finish", Bubbles: true})
	assert.Equal(t, []string{"lazyload:finish"}, seenOnBody)

	// Non-bubbling events stay on the element.
	img.DispatchEvent(dom.Event{Type: "lazyload:finish"})
	assert.Len(t, seenOnBody, 1)
}

func Test_Element_EventListeners(t *testing.T) {
	page := parsePage(t)
	img := page.QuerySelectorAll(".lazyload")[0]

	var got []string
	handle := img.AddEventListener("load", func(event dom.Event) {
		got = append(got, event.Type)
	})

	img.DispatchEvent(dom.Event{Type: "load"})
	img.DispatchEvent(dom.Event{Type: "error"})

	assert.Equal(t, []string{"load"}, got)

	img.RemoveEventListener(handle)
	img.DispatchEvent(dom.Event{Type: "load"})
	assert.Len(t, got, 1)
}

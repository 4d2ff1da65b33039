package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/controller"
	"github.com/sajjadeakbari/lazyload/dom"
	"github.com/sajjadeakbari/lazyload/testutil/domtest"
)

func Test_Loader_Picture_AppliesSourcesAndDelegatesToImg(t *testing.T) {
	env := domtest.NewEnvironment()

	source := domtest.NewElement("source").
		WithAttr("data-media", "(min-width: 800px)").
		WithAttr("data-sizes", "100vw").
		WithAttr("data-srcset", "wide.jpg 2x")
	img := domtest.NewElement("img").WithAttr("data-src", "fallback.jpg")
	picture := domtest.NewElement("picture").WithChild(source).WithChild(img)

	newController(t, env, controller.WithElements(picture))
	env.Observer().EmitIntersecting(picture)

	media, _ := source.Attr("media")
	sizes, _ := source.Attr("sizes")
	srcset, _ := source.Attr("srcset")
	assert.Equal(t, "(min-width: 800px)", media)
	assert.Equal(t, "100vw", sizes)
	assert.Equal(t, "wide.jpg 2x", srcset)
	_, hasData := source.Attr("data-srcset")
	assert.False(t, hasData, "source data attributes are consumed")

	src, hasSrc := img.Attr("src")
	require.True(t, hasSrc)
	assert.Equal(t, "fallback.jpg", src)

	// The load signal comes from the img child; classes land on the picture.
	img.EmitLoad()
	assert.True(t, picture.HasClass("lazyloaded"))
	assert.False(t, img.HasClass("lazyloaded"))
}

func Test_Loader_Picture_WithoutImgChildFails(t *testing.T) {
	env := domtest.NewEnvironment()
	source := domtest.NewElement("source").WithAttr("data-srcset", "wide.jpg")
	picture := domtest.NewElement("picture").WithChild(source)

	var gotErr error
	newController(t, env,
		controller.WithElements(picture),
		controller.WithCallbacks(lazyload.Callbacks{
			OnError: func(_ dom.Element, err error) { gotErr = err },
		}),
	)
	env.Observer().EmitIntersecting(picture)

	assert.ErrorIs(t, gotErr, lazyload.ErrNoImgTag)
	assert.True(t, picture.HasClass("lazyerror"))
}

func Test_Loader_Video_AppliesSourcesPosterAndTriggersLoad(t *testing.T) {
	env := domtest.NewEnvironment()

	sourceA := domtest.NewElement("source").WithAttr("data-src", "movie.webm")
	sourceB := domtest.NewElement("source").WithAttr("data-src", "movie.mp4")
	video := domtest.NewElement("video").
		WithAttr("data-poster", "poster.jpg").
		WithChild(sourceA).
		WithChild(sourceB)

	newController(t, env, controller.WithElements(video))
	env.Observer().EmitIntersecting(video)

	srcA, _ := sourceA.Attr("src")
	srcB, _ := sourceB.Attr("src")
	poster, _ := video.Attr("poster")
	assert.Equal(t, "movie.webm", srcA)
	assert.Equal(t, "movie.mp4", srcB)
	assert.Equal(t, "poster.jpg", poster)
	assert.Equal(t, 1, video.LoadCalls(), "native load trigger invoked after source assignment")

	video.EmitCanPlay()

	assert.True(t, video.HasClass("lazyloaded"))
}

func Test_Loader_Video_WithoutSourcesFails(t *testing.T) {
	env := domtest.NewEnvironment()
	video := domtest.NewElement("video").WithAttr("data-poster", "poster.jpg")

	var gotErr error
	newController(t, env,
		controller.WithElements(video),
		controller.WithCallbacks(lazyload.Callbacks{
			OnError: func(_ dom.Element, err error) { gotErr = err },
		}),
	)
	env.Observer().EmitIntersecting(video)

	assert.ErrorIs(t, gotErr, lazyload.ErrNoValidSources)
	assert.Equal(t, 0, video.LoadCalls())

	// The poster is still applied; only the playable sources were missing.
	poster, _ := video.Attr("poster")
	assert.Equal(t, "poster.jpg", poster)
}

func Test_Loader_Iframe_Success(t *testing.T) {
	env := domtest.NewEnvironment()
	iframe := domtest.NewElement("iframe").WithAttr("data-src", "https://example.com/embed")

	newController(t, env, controller.WithElements(iframe))
	env.Observer().EmitIntersecting(iframe)

	src, hasSrc := iframe.Attr("src")
	require.True(t, hasSrc)
	assert.Equal(t, "https://example.com/embed", src)

	iframe.EmitLoad()
	assert.True(t, iframe.HasClass("lazyloaded"))
}

func Test_Loader_Iframe_WithoutSourceFails(t *testing.T) {
	env := domtest.NewEnvironment()
	iframe := domtest.NewElement("iframe")

	var gotErr error
	newController(t, env,
		controller.WithElements(iframe),
		controller.WithCallbacks(lazyload.Callbacks{
			OnError: func(_ dom.Element, err error) { gotErr = err },
		}),
	)
	env.Observer().EmitIntersecting(iframe)

	assert.ErrorIs(t, gotErr, lazyload.ErrNoSource)
}

func Test_Loader_Background_SetsStyleSynchronously(t *testing.T) {
	env := domtest.NewEnvironment()
	div := domtest.NewElement("div").WithAttr("data-src", "hero.jpg")

	newController(t, env, controller.WithElements(div))
	env.Observer().EmitIntersecting(div)

	style, ok := div.Style("background-image")
	require.True(t, ok)
	assert.Equal(t, `url("hero.jpg")`, style)
	assert.True(t, div.HasClass("lazyloaded"))
}

func Test_Loader_Img_SrcsetAndSizes(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").
		WithAttr("data-srcset", "a.jpg 1x, a2.jpg 2x").
		WithAttr("data-sizes", "50vw")

	newController(t, env, controller.WithElements(img))
	env.Observer().EmitIntersecting(img)

	srcset, _ := img.Attr("srcset")
	sizes, _ := img.Attr("sizes")
	assert.Equal(t, "a.jpg 1x, a2.jpg 2x", srcset)
	assert.Equal(t, "50vw", sizes)
	_, hasSrc := img.Attr("src")
	assert.False(t, hasSrc, "srcset alone is a valid source")

	img.EmitLoad()
	assert.True(t, img.HasClass("lazyloaded"))
}

func Test_Loader_Img_NativeErrorCarriesDetail(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	var gotErr error
	newController(t, env,
		controller.WithElements(img),
		controller.WithCallbacks(lazyload.Callbacks{
			OnError: func(_ dom.Element, err error) { gotErr = err },
		}),
	)
	env.Observer().EmitIntersecting(img)
	img.EmitError("404 not found")

	require.ErrorIs(t, gotErr, lazyload.ErrMediaLoadFailed)
	assert.Contains(t, gotErr.Error(), "404 not found")
}

func Test_Loader_AttributeCleanupAfterTerminalOutcome(t *testing.T) {
	env := domtest.NewEnvironment()
	loadedImg := domtest.NewElement("img").WithAttr("data-src", "a.jpg")
	erroredImg := domtest.NewElement("img").
		WithAttr("data-src", "b.jpg").
		WithAttr("data-srcset", "b.jpg 1x").
		WithAttr("data-lazyload", `{"delay_ms": 0}`)

	cfg := lazyload.DefaultConfig()
	newController(t, env, controller.WithElements(loadedImg, erroredImg))

	observer := env.Observer()
	observer.EmitIntersecting(loadedImg)
	loadedImg.EmitLoad()
	observer.EmitIntersecting(erroredImg)
	erroredImg.EmitError("boom")

	for _, el := range []*domtest.FakeElement{loadedImg, erroredImg} {
		for _, attr := range cfg.SourceAttrs() {
			_, present := el.Attr(attr)
			assert.False(t, present, "attribute %s must not survive a terminal outcome", attr)
		}
	}
}

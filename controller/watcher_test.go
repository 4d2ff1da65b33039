package controller_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/controller"
	"github.com/sajjadeakbari/lazyload/dom"
	"github.com/sajjadeakbari/lazyload/testutil/domtest"
)

func Test_Observer_OptionsPropagatedFromConfig(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")
	root := domtest.NewElement("div")

	cfg := lazyload.DefaultConfig()
	cfg.Root = root
	cfg.RootMargin = "200px"
	cfg.Threshold = 0.25

	newController(t, env,
		controller.WithConfig(cfg),
		controller.WithElements(img),
	)

	opts := env.Observer().Options()
	assert.Equal(t, dom.Element(root), opts.Root)
	assert.Equal(t, "200px", opts.RootMargin)
	assert.Equal(t, 0.25, opts.Threshold)
	assert.False(t, opts.TrackVisibility)
}

func Test_LoadDelay_PostponesTheLoad(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	entered := 0
	newController(t, env,
		controller.WithElements(img),
		controller.WithLoadDelay(100*time.Millisecond),
		controller.WithCallbacks(lazyload.Callbacks{
			OnEnter: func(dom.Element) { entered++ },
		}),
	)

	env.Observer().EmitIntersecting(img)

	assert.Equal(t, 1, entered, "enter fires at reveal, before the delay")
	_, hasSrc := img.Attr("src")
	require.False(t, hasSrc, "load must not start before the delay elapses")

	env.Advance(99 * time.Millisecond)
	_, hasSrc = img.Attr("src")
	require.False(t, hasSrc)

	env.Advance(1 * time.Millisecond)
	src, hasSrc := img.Attr("src")
	require.True(t, hasSrc)
	assert.Equal(t, "a.jpg", src)
}

func Test_LoadDelay_SkippedInNonInteractiveEnvironment(t *testing.T) {
	env := domtest.NewEnvironment()
	env.SetNonInteractive()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	newController(t, env,
		controller.WithElements(img),
		controller.WithLoadDelay(100*time.Millisecond),
	)

	env.Observer().EmitIntersecting(img)

	_, hasSrc := img.Attr("src")
	assert.True(t, hasSrc, "non-interactive environments load synchronously")
}

func Test_LoadDelay_PerElementOverride(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").
		WithAttr("data-src", "a.jpg").
		WithAttr("data-lazyload", `{"delay_ms": 250}`)

	newController(t, env,
		controller.WithElements(img),
		controller.WithLoadDelay(100*time.Millisecond),
	)

	env.Observer().EmitIntersecting(img)

	env.Advance(100 * time.Millisecond)
	_, hasSrc := img.Attr("src")
	require.False(t, hasSrc, "element override outranks the instance delay")

	env.Advance(150 * time.Millisecond)
	_, hasSrc = img.Attr("src")
	assert.True(t, hasSrc)
}

func Test_LoadDelay_CanceledByTeardown(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	ctrl := newController(t, env,
		controller.WithElements(img),
		controller.WithLoadDelay(100*time.Millisecond),
	)

	env.Observer().EmitIntersecting(img)
	ctrl.Destroy()
	env.Advance(100 * time.Millisecond)

	_, hasSrc := img.Attr("src")
	assert.False(t, hasSrc, "timer fires but the attempt is no longer actionable")
}

func Test_SkipInvisible_OnScreenElementBypassesObserver(t *testing.T) {
	env := domtest.NewEnvironment()
	onScreen := domtest.NewElement("img").WithAttr("data-src", "a.jpg")
	offScreen := domtest.NewElement("img").WithAttr("data-src", "b.jpg")
	env.SetOnScreen(onScreen, true)

	newController(t, env,
		controller.WithElements(onScreen, offScreen),
		controller.WithSkipInvisible(true),
	)

	src, hasSrc := onScreen.Attr("src")
	require.True(t, hasSrc, "on-screen element loads without waiting for the observer")
	assert.Equal(t, "a.jpg", src)

	assert.False(t, env.Observer().IsObserving(onScreen))
	assert.True(t, env.Observer().IsObserving(offScreen))
}

func Test_SkipInvisible_SecondOpinionOnNonIntersectingEntry(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	newController(t, env,
		controller.WithElements(img),
		controller.WithSkipInvisible(true),
	)
	require.True(t, env.Observer().IsObserving(img))

	// The element scrolled on screen between the observer snapshot and the
	// delivery; the synchronous check wins.
	env.SetOnScreen(img, true)
	env.Observer().Emit(dom.IntersectionEntry{Target: img, IsIntersecting: false})

	_, hasSrc := img.Attr("src")
	assert.True(t, hasSrc)
}

func Test_StrictVisibility_RequestsTrackingFromObserver(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	newController(t, env,
		controller.WithElements(img),
		controller.WithStrictVisibility(200*time.Millisecond),
	)

	opts := env.Observer().Options()
	assert.True(t, opts.TrackVisibility)
	assert.Equal(t, 200*time.Millisecond, opts.VisibilityDelay)
}

func Test_StrictVisibility_HiddenOverridesIntersection(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	newController(t, env,
		controller.WithElements(img),
		controller.WithStrictVisibility(lazyload.DefaultStrictVisibilityDelay),
	)

	// Geometrically intersecting but occluded or distorted: not revealed.
	env.Observer().Emit(dom.IntersectionEntry{
		Target:         img,
		IsIntersecting: true,
		Visibility:     dom.VisibilityHidden,
	})

	_, hasSrc := img.Attr("src")
	require.False(t, hasSrc)
	assert.True(t, env.Observer().IsObserving(img))

	env.Observer().Emit(dom.IntersectionEntry{
		Target:         img,
		IsIntersecting: true,
		Visibility:     dom.VisibilityConfirmed,
	})

	_, hasSrc = img.Attr("src")
	assert.True(t, hasSrc)
}

func Test_StrictVisibility_UnknownFallsBackToGeometry(t *testing.T) {
	env := domtest.NewEnvironment()
	img := domtest.NewElement("img").WithAttr("data-src", "a.jpg")

	newController(t, env,
		controller.WithElements(img),
		controller.WithStrictVisibility(lazyload.DefaultStrictVisibilityDelay),
	)

	env.Observer().Emit(dom.IntersectionEntry{
		Target:         img,
		IsIntersecting: true,
		Visibility:     dom.VisibilityUnknown,
	})

	_, hasSrc := img.Attr("src")
	assert.True(t, hasSrc)
}

package lazyload_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/testutil/domtest"
)

func Test_DefaultConfig_DocumentedValues(t *testing.T) {
	cfg := lazyload.DefaultConfig()

	assert.Equal(t, "data-src", cfg.DataSrc)
	assert.Equal(t, ".lazyload", cfg.ElementsSelector)
	assert.Equal(t, "lazyloading", cfg.ClassLoading)
	assert.Equal(t, "lazyloaded", cfg.ClassLoaded)
	assert.Equal(t, "lazyerror", cfg.ClassError)
	assert.Equal(t, "0px", cfg.RootMargin)
	assert.Equal(t, 0.0, cfg.Threshold)
	assert.True(t, cfg.RetryOnReconnect)
	assert.Equal(t, time.Second, cfg.RetryBackoffBase)
	assert.Equal(t, 5, cfg.RetryMaxAttempts)
}

func Test_Normalize_FillsEmptyNames(t *testing.T) {
	cfg := lazyload.Config{}.Normalize()

	assert.Equal(t, lazyload.DefaultConfig().DataSrc, cfg.DataSrc)
	assert.Equal(t, lazyload.DefaultConfig().ElementsSelector, cfg.ElementsSelector)
	assert.Equal(t, lazyload.DefaultConfig().ClassLoaded, cfg.ClassLoaded)
}

func Test_Normalize_CoercesOutOfRangeValues(t *testing.T) {
	cfg := lazyload.Config{
		Threshold:        1.5,
		LoadDelay:        -10 * time.Millisecond,
		RetryBackoffBase: -1,
		RetryMaxAttempts: 0,
	}.Normalize()

	assert.Equal(t, 0.0, cfg.Threshold)
	assert.Equal(t, time.Duration(0), cfg.LoadDelay)
	assert.Equal(t, lazyload.DefaultRetryBackoffBase, cfg.RetryBackoffBase)
	assert.Equal(t, lazyload.DefaultRetryMaxAttempts, cfg.RetryMaxAttempts)
}

func Test_Normalize_KeepsValidOverrides(t *testing.T) {
	cfg := lazyload.Config{
		DataSrc:          "data-original",
		Threshold:        0.75,
		RetryMaxAttempts: 3,
	}.Normalize()

	assert.Equal(t, "data-original", cfg.DataSrc)
	assert.Equal(t, 0.75, cfg.Threshold)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
}

func Test_SourceAttrs_CoversEveryConsumedAttribute(t *testing.T) {
	cfg := lazyload.DefaultConfig()

	assert.ElementsMatch(t,
		[]string{"data-src", "data-srcset", "data-sizes", "data-poster", "data-media", "data-lazyload"},
		cfg.SourceAttrs(),
	)
}

func Test_LoadDelayFor_NoOverride(t *testing.T) {
	cfg := lazyload.DefaultConfig()
	cfg.LoadDelay = 100 * time.Millisecond
	el := domtest.NewElement("img")

	assert.Equal(t, 100*time.Millisecond, cfg.LoadDelayFor(el))
}

func Test_LoadDelayFor_ElementOverrideWins(t *testing.T) {
	cfg := lazyload.DefaultConfig()
	cfg.LoadDelay = 100 * time.Millisecond
	el := domtest.NewElement("img").WithAttr("data-lazyload", `{"delay_ms": 250}`)

	assert.Equal(t, 250*time.Millisecond, cfg.LoadDelayFor(el))
}

func Test_LoadDelayFor_ZeroOverrideDisablesDelay(t *testing.T) {
	cfg := lazyload.DefaultConfig()
	cfg.LoadDelay = 100 * time.Millisecond
	el := domtest.NewElement("img").WithAttr("data-lazyload", `{"delay_ms": 0}`)

	assert.Equal(t, time.Duration(0), cfg.LoadDelayFor(el))
}

func Test_LoadDelayFor_TolerantOfBadInput(t *testing.T) {
	cfg := lazyload.DefaultConfig()
	cfg.LoadDelay = 100 * time.Millisecond

	cases := map[string]string{
		"malformed json": `{delay_ms: 250`,
		"wrong type":     `{"delay_ms": "fast"}`,
		"negative":       `{"delay_ms": -5}`,
		"unknown keys":   `{"threshold": 0.5}`,
		"empty":          ``,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			el := domtest.NewElement("img").WithAttr("data-lazyload", raw)
			assert.Equal(t, 100*time.Millisecond, cfg.LoadDelayFor(el))
		})
	}
}

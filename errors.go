package lazyload

import (
	"errors"
)

var (
	// ErrNoSourceData is reported for an img (or background container)
	// revealed without any configured source attribute to consume.
	ErrNoSourceData = errors.New("no source data")

	// ErrNoImgTag is reported for a picture element without an img child.
	ErrNoImgTag = errors.New("no img tag found")

	// ErrNoValidSources is reported for a video element none of whose
	// source children carried source data.
	ErrNoValidSources = errors.New("no valid sources")

	// ErrNoSource is reported for an iframe revealed without source data.
	ErrNoSource = errors.New("no source")

	// ErrMediaLoadFailed is reported when the media element itself signals
	// a load failure (network error, HTTP error, decode error).
	ErrMediaLoadFailed = errors.New("media load failed")
)

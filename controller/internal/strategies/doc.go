// Package strategies contains the per-media-type load strategies the
// controller dispatches to when an element is revealed: img, picture, video,
// iframe, and the generic background-image fallback. Each strategy applies
// the element's deferred source data and arranges for exactly one terminal
// outcome per attempt.
package strategies

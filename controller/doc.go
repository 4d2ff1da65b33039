// Package controller implements the deferred-media-loading state machine.
//
// A Controller tracks elements through a single explicit per-element state
// (pending, observed, loading, errored), hands them to the environment's
// intersection observer, reveals them when they become effectively visible,
// dispatches the per-media-type load strategy, and reschedules failed
// elements with exponential backoff when connectivity returns.
//
// When the environment has no intersection capability at all, the controller
// permanently falls back to loading every admitted element immediately.
//
// All public operations are safe for concurrent use and never panic on
// malformed input; per-element load failures surface only through the
// configured callbacks, the error CSS class, and optional element events.
package controller

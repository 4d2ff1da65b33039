// Package dom defines the runtime abstractions the lazy-loading controller
// operates on: elements, documents, intersection observers, and the
// environment capabilities (timers, frame scheduling, connectivity signal).
//
// The controller never talks to a concrete DOM. Embedders supply
// implementations of these interfaces: a WASM binding, a headless browser
// driver, the bundled golang.org/x/net/html implementation (dom/htmlnode),
// or the test doubles in testutil/domtest.
//
// Element implementations must be comparable, since the controller keys its
// per-element bookkeeping on element identity.
package dom

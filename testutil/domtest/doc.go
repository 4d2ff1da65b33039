// Package domtest provides in-memory implementations of the dom abstractions
// for tests: elements with attributes, classes, children and synchronous
// event dispatch, a document with canned selector results, and an
// environment with a manual clock, manually driven intersection observers,
// and a manually triggered connectivity signal.
package domtest

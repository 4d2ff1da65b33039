// Package helper provides test spies for the lazyload observability
// interfaces: a Logger spy capturing log calls and a MetricsCollector spy
// capturing metric records.
package helper

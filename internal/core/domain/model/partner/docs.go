// Package partner provides the delivery partner aggregate: a worker with a
// declared coverage-area set, a daily shift window, a concurrent-order
// capacity, and cumulative delivery metrics.
package partner

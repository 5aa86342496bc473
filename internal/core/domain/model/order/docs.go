// Package order provides the Order aggregate and its lifecycle state machine.
//
// An order enters the system Pending, is matched to a delivery partner
// (Assigned), then either progresses Picked -> Delivered or is Cancelled.
// The Status type enforces the transition table; the Order aggregate enforces
// the at-most-one-partner invariant and intake validation rules.
package order

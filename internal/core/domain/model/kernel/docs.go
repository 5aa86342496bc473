// Package kernel contains the shared value objects of the dispatch domain:
// UUID identity, TimeOfDay (wall-clock HH:mm values), Area (normalized coverage
// labels), and ShiftWindow (a daily working window that may wrap midnight).
//
// All types in this package are immutable value objects. Zero values are
// invalid and must be produced through the provided constructors.
package kernel

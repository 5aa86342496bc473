// Package services contains domain services that coordinate behavior across
// aggregates. OrderDispatcher implements the matching rule between pending
// orders and delivery partners: an eligibility predicate (status, capacity,
// coverage area, shift window) followed by least-loaded selection with a
// deterministic tie-break.
package services

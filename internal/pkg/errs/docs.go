// Package errs provides the standardized error types used across the dispatch
// service. Each error type follows the same pattern: a sentinel error variable
// for classification with errors.Is, a struct carrying the error details, a
// pair of constructors (with and without cause), an Error() formatter, and an
// Unwrap() method.
//
// Expected business outcomes (not found, invalid value, stale version) are
// expressed through these types and resolved locally by callers; only
// unexpected storage and infrastructure failures propagate untyped.
package errs

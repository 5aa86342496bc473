// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models derived from the persistence tables,
// bypassing the domain aggregates.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentMetricsQueryIsNotConstructed = errors.New(
	"GetAssignmentMetricsQuery must be created via NewGetAssignmentMetricsQuery constructor",
)

// GetAssignmentMetricsQuery retrieves aggregate statistics over the
// assignment attempt ledger: totals, the success rate, and a histogram of
// failure reasons.
//
// Example:
//
//	query := NewGetAssignmentMetricsQuery()
//	handler := NewGetAssignmentMetricsQueryHandler(db)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve metrics: %w", err)
//	}
//	fmt.Printf("success rate: %.2f%%\n", metrics.SuccessRate)
type GetAssignmentMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignmentMetricsQuery creates a query for assignment metrics.
// This is a parameterless query over the whole ledger.
func NewGetAssignmentMetricsQuery() GetAssignmentMetricsQuery {
	return GetAssignmentMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentMetricsQueryIsNotConstructed if validation fails.
func (q GetAssignmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentMetricsQueryIsNotConstructed)
}

// FailureReasonCount is one bucket of the failure histogram.
type FailureReasonCount struct {
	Reason string
	Count  int
}

// GetAssignmentMetricsQueryResponse is the metrics read model.
// SuccessRate is a percentage rounded to two decimal places; it is 0 for an
// empty ledger rather than NaN.
type GetAssignmentMetricsQueryResponse struct {
	TotalAttempts  int
	Successful     int
	Failed         int
	SuccessRate    float64
	FailureReasons []FailureReasonCount
}

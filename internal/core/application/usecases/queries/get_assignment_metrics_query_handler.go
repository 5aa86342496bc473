package queries

import (
	"context"
	"math"

	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler computes assignment statistics straight
// from the ledger table with a single grouped scan.
type GetAssignmentMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentMetricsQueryHandler creates a handler for metrics queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{db: db}
}

// Handle executes the metrics query.
// Counts successes and failures and builds the failure-reason histogram,
// ordered by descending count so the dominant failure mode comes first.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (GetAssignmentMetricsQueryResponse, error) {
	var response GetAssignmentMetricsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			reason,
			COUNT(*)
		FROM assignment_attempts
		GROUP BY status, reason
		ORDER BY COUNT(*) DESC, reason
	`).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	response.FailureReasons = make([]FailureReasonCount, 0)

	for rows.Next() {
		var status int
		var reason string
		var count int

		if err = rows.Scan(&status, &reason, &count); err != nil {
			return GetAssignmentMetricsQueryResponse{}, err
		}

		response.TotalAttempts += count
		switch assignment.AttemptStatus(status) {
		case assignment.AttemptSucceeded:
			response.Successful += count
		case assignment.AttemptFailed:
			response.Failed += count
			response.FailureReasons = append(response.FailureReasons, FailureReasonCount{
				Reason: reason,
				Count:  count,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	if response.TotalAttempts > 0 {
		rate := float64(response.Successful) / float64(response.TotalAttempts) * 100
		response.SuccessRate = math.Round(rate*100) / 100
	}

	return response, nil
}

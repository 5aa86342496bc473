package queries

import (
	"context"
	"math"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"

	"gorm.io/gorm"
)

// GetDashboardMetricsQueryHandler computes the dashboard counters with one
// scan per table.
type GetDashboardMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardMetricsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardMetricsQueryHandler(db *gorm.DB) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	var response GetDashboardMetricsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	if err := h.countOrders(ctx, &response); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}
	if err := h.countPartners(ctx, &response); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}
	if err := h.computeSuccessRate(ctx, &response); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	return response, nil
}

func (h GetDashboardMetricsQueryHandler) countOrders(
	ctx context.Context,
	response *GetDashboardMetricsQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}

		response.TotalOrders += count
		switch order.Status(status) {
		case order.Pending:
			response.PendingOrders = count
		case order.Assigned:
			response.AssignedOrders = count
		case order.Picked:
			response.PickedOrders = count
		case order.Delivered:
			response.DeliveredOrders = count
		case order.Cancelled:
			response.CancelledOrders = count
		}
	}

	response.ActiveOrders = response.PendingOrders + response.AssignedOrders + response.PickedOrders

	return rows.Err()
}

func (h GetDashboardMetricsQueryHandler) countPartners(
	ctx context.Context,
	response *GetDashboardMetricsQueryResponse,
) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ? AND current_load < ?)
		FROM partners
	`, int(partner.StatusActive), int(partner.StatusActive), partner.MaxConcurrentOrders).Row()

	return row.Scan(
		&response.TotalPartners,
		&response.ActivePartners,
		&response.AvailablePartners,
	)
}

func (h GetDashboardMetricsQueryHandler) computeSuccessRate(
	ctx context.Context,
	response *GetDashboardMetricsQueryResponse,
) error {
	var total, succeeded int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?)
		FROM assignment_attempts
	`, int(assignment.AttemptSucceeded)).Row()

	if err := row.Scan(&total, &succeeded); err != nil {
		return err
	}

	if total > 0 {
		rate := float64(succeeded) / float64(total) * 100
		response.SuccessRate = math.Round(rate*100) / 100
	}
	return nil
}

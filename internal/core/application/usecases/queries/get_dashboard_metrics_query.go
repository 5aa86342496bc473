package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
	"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
)

// GetDashboardMetricsQuery retrieves the operational counters shown on the
// dispatch dashboard: order counts per lifecycle status and the state of the
// partner pool.
type GetDashboardMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a query for dashboard counters.
// This is a parameterless query over the current system state.
func NewGetDashboardMetricsQuery() GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardMetricsQueryIsNotConstructed if validation fails.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

// GetDashboardMetricsQueryResponse is the dashboard read model.
// ActiveOrders counts orders still in flight (pending, assigned, or picked).
// AvailablePartners counts active partners below the capacity ceiling, the
// same pool the batch sweep draws from. SuccessRate is the ledger-wide
// percentage, 0 when no attempts exist.
type GetDashboardMetricsQueryResponse struct {
	TotalOrders     int
	ActiveOrders    int
	PendingOrders   int
	AssignedOrders  int
	PickedOrders    int
	DeliveredOrders int
	CancelledOrders int

	TotalPartners     int
	ActivePartners    int
	AvailablePartners int

	SuccessRate float64
}

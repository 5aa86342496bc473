package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for listing, optionally narrowed by
// lifecycle status and/or delivery area. Both filters are empty strings when
// unused; the area filter matches on the normalized key, so casing and
// whitespace in the input do not matter.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status  *order.Status
	areaKey string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. statusName and areaLabel
// are optional; pass "" to skip a filter.
func NewGetOrdersQuery(statusName, areaLabel string) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if statusName != "" {
		status, err := order.StatusFromString(statusName)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		query.status = &status
	}

	if areaLabel != "" {
		area, err := kernel.NewArea(areaLabel)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		query.areaKey = area.Key()
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unused.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// AreaKey returns the normalized area filter, empty when unused.
func (q GetOrdersQuery) AreaKey() string {
	return q.areaKey
}

// GetOrdersQueryResponse is one order row of the listing read model.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerName string
	Area         string
	Status       order.Status
	PartnerID    *kernel.UUID
	TotalAmount  int64
	ScheduledFor string
	CreatedAt    time.Time
}

package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves the full partner roster with coverage, shift and
// delivery metrics.
type GetPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a query for the partner roster.
// This is a parameterless query over the current system state.
func NewGetPartnersQuery() GetPartnersQuery {
	return GetPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnersQueryIsNotConstructed if validation fails.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// GetPartnersQueryResponse is one partner row of the roster read model.
type GetPartnersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	Status          partner.Status
	CurrentLoad     int
	Areas           []string
	ShiftStart      string
	ShiftEnd        string
	Rating          float64
	CompletedOrders int
	CancelledOrders int
}

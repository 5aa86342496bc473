// Package ports defines the persistence contracts between the domain layer
// and infrastructure adapters.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using an optimistic
	// version check. Returns errs.VersionIsInvalidError when the stored
	// version no longer matches the aggregate's loaded version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves every order in Pending status, ordered by
	// creation time ascending. This fixed iteration order makes batch
	// assignment sweeps deterministic.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}

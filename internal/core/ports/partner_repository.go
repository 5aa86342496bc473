package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner using an optimistic
	// version check. Returns errs.VersionIsInvalidError when the stored
	// version no longer matches the aggregate's loaded version.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetByEmail retrieves a partner by email, used to enforce uniqueness
	// at registration. Returns errs.ObjectNotFoundError when none exists.
	GetByEmail(ctx context.Context, email string) (*partner.Partner, error)

	// GetAllAvailable retrieves the coarse candidate set for matching:
	// active partners below the capacity ceiling, ordered by registration
	// time ascending so selection tie-breaks are deterministic.
	GetAllAvailable(ctx context.Context) ([]*partner.Partner, error)
}

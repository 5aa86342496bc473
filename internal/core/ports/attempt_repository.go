package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AttemptRepository defines the persistence contract for the assignment
// attempt ledger. The ledger is append-only: records are never updated or
// deleted, so the interface exposes Add alone.
type AttemptRepository interface {
	// Add appends an attempt record to the ledger.
	Add(ctx context.Context, attempt *assignment.AssignmentAttempt) error
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary across the order,
// partner, and attempt repositories. Client code manages the transaction
// lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful Commit is a no-op error and safe to defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// PartnerRepository returns a PartnerRepository bound to the current
	// transaction.
	PartnerRepository() PartnerRepository

	// AttemptRepository returns an AttemptRepository bound to the current
	// transaction.
	AttemptRepository() AttemptRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AttemptRepoFactory provides access to the attempt ledger within a transaction.
	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// OrderPartnerUoW manages transactions across order and partner aggregates,
	// used by status updates that touch partner load and metrics.
	OrderPartnerUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// OrderPartnerUoWFactory creates new order+partner unit of work instances.
	OrderPartnerUoWFactory interface {
		Create() OrderPartnerUoW
	}

	// UoW manages transactions across orders, partners, and the assignment
	// attempt ledger. Used by the dispatch commands, which update both
	// aggregates and append a ledger record in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   partnerRepo := uow.PartnerRepository()
	//   attemptRepo := uow.AttemptRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		AttemptRepoFactory
	}

	// UoWFactory creates new unit of work instances for dispatch operations.
	UoWFactory interface {
		Create() UoW
	}
)

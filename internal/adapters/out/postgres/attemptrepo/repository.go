package attemptrepo

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAttemptRepository implements ports.AttemptRepository using GORM.
type GormAttemptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAttemptRepository creates a new GORM attempt repository.
func NewGormAttemptRepository(db *gorm.DB, tracker aggregateTracker) *GormAttemptRepository {
	return &GormAttemptRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a ledger entry.
func (r *GormAttemptRepository) Add(ctx context.Context, attempt *assignment.AssignmentAttempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}

	dto := fromDomain(attempt)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(attempt.ID(), attempt)
	return nil
}

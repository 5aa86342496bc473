// Package attemptrepo persists the assignment attempt ledger. The ledger is
// append-only: rows are inserted once and never updated or deleted, which is
// why the repository exposes Add alone.
package attemptrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"

	"github.com/google/uuid"
)

// AttemptDTO represents the database structure for one ledger entry.
// PartnerID is nullable: batch sweeps that found no eligible candidate record
// the failure without a partner.
type AttemptDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Status    int        `gorm:"index;not null"`
	Reason    string
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for attempt entities.
func (AttemptDTO) TableName() string {
	return "assignment_attempts"
}

func fromDomain(attempt *assignment.AssignmentAttempt) AttemptDTO {
	var partnerID *uuid.UUID
	if id := attempt.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return AttemptDTO{
		ID:        attempt.ID().Bytes(),
		OrderID:   attempt.OrderID().Bytes(),
		PartnerID: partnerID,
		Status:    int(attempt.Status()),
		Reason:    attempt.Reason(),
		CreatedAt: attempt.CreatedAt(),
	}
}

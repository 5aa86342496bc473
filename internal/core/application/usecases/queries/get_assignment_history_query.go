package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentHistoryQueryIsNotConstructed = errors.New(
	"GetAssignmentHistoryQuery must be created via NewGetAssignmentHistoryQuery constructor",
)

// GetAssignmentHistoryQuery retrieves recent ledger entries enriched with
// order and partner display data. "Recent" covers the previous calendar day
// and the current one, relative to the query's reference time.
type GetAssignmentHistoryQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetAssignmentHistoryQuery creates a history query anchored at the given
// reference time.
func NewGetAssignmentHistoryQuery(now time.Time) (GetAssignmentHistoryQuery, error) {
	if now.IsZero() {
		return GetAssignmentHistoryQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetAssignmentHistoryQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentHistoryQueryIsNotConstructed if validation fails.
func (q GetAssignmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentHistoryQueryIsNotConstructed)
}

// Window returns the half-open [from, to) time range the history covers:
// from the start of the previous calendar day to the start of the next one.
func (q GetAssignmentHistoryQuery) Window() (time.Time, time.Time) {
	year, month, day := q.now.Date()
	startOfToday := time.Date(year, month, day, 0, 0, 0, 0, q.now.Location())
	return startOfToday.AddDate(0, 0, -1), startOfToday.AddDate(0, 0, 1)
}

// GetAssignmentHistoryQueryResponse is one enriched ledger entry.
// PartnerID is nil and PartnerName empty for batch skips that involved no
// partner.
type GetAssignmentHistoryQueryResponse struct {
	AttemptID   kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	PartnerID   *kernel.UUID
	PartnerName string
	Status      assignment.AttemptStatus
	Reason      string
	CreatedAt   time.Time
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRunSmartAssignmentCommandIsNotConstructed = errors.New(
	"RunSmartAssignmentCommand must be created via NewRunSmartAssignmentCommand constructor",
)

// RunSmartAssignmentCommand triggers one batch assignment sweep: every
// pending order is matched against the available partner pool at the given
// time of day.
//
// recordSkips controls whether orders that find no eligible partner leave a
// failed attempt in the ledger. The scheduled job keeps it off so repeated
// sweeps over a quiet pool do not flood the ledger; ad-hoc API runs switch it
// on to make skips visible in metrics.
type RunSmartAssignmentCommand struct { //nolint:recvcheck //using for validation
	now         kernel.TimeOfDay
	recordSkips bool

	guard guard.ConstructorGuard
}

// NewRunSmartAssignmentCommand creates a command to run one assignment sweep
// at the given time of day.
func NewRunSmartAssignmentCommand(now kernel.TimeOfDay, recordSkips bool) (RunSmartAssignmentCommand, error) {
	if err := now.Validate(); err != nil {
		return RunSmartAssignmentCommand{}, err
	}

	return RunSmartAssignmentCommand{
		now:         now,
		recordSkips: recordSkips,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunSmartAssignmentCommandIsNotConstructed if validation fails.
func (c RunSmartAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRunSmartAssignmentCommandIsNotConstructed)
}

// Now returns the time of day the sweep evaluates shifts against.
func (c RunSmartAssignmentCommand) Now() kernel.TimeOfDay {
	return c.now
}

// RecordSkips reports whether unmatched orders leave failed ledger records.
func (c RunSmartAssignmentCommand) RecordSkips() bool {
	return c.recordSkips
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a profile update for a registered partner:
// contact phone, coverage areas, shift window, and active status. Name and
// email are fixed at registration.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	phone     string
	areas     []kernel.Area
	shift     kernel.ShiftWindow
	status    partner.Status

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner's profile.
// All fields are replaced; statusName accepts "active" or "inactive".
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	phone string,
	areaLabels []string,
	shiftStart string,
	shiftEnd string,
	statusName string,
) (UpdatePartnerCommand, error) {
	cmd := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := partnerID.Validate(); err != nil {
		return UpdatePartnerCommand{}, err
	}
	cmd.partnerID = partnerID

	if phone == "" {
		return UpdatePartnerCommand{}, errs.NewValueIsRequiredError("phone")
	}
	cmd.phone = phone

	if len(areaLabels) == 0 {
		return UpdatePartnerCommand{}, errs.NewValueIsRequiredError("areas")
	}
	areas := make([]kernel.Area, 0, len(areaLabels))
	for _, label := range areaLabels {
		area, err := kernel.NewArea(label)
		if err != nil {
			return UpdatePartnerCommand{}, err
		}
		areas = append(areas, area)
	}
	cmd.areas = areas

	startTod, err := kernel.NewTimeOfDay(shiftStart)
	if err != nil {
		return UpdatePartnerCommand{}, err
	}
	endTod, err := kernel.NewTimeOfDay(shiftEnd)
	if err != nil {
		return UpdatePartnerCommand{}, err
	}
	shift, err := kernel.NewShiftWindow(startTod, endTod)
	if err != nil {
		return UpdatePartnerCommand{}, err
	}
	cmd.shift = shift

	status, err := partner.StatusFromString(statusName)
	if err != nil {
		return UpdatePartnerCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerCommandIsNotConstructed if validation fails.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Phone returns the new contact phone.
func (c UpdatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the new coverage areas.
func (c UpdatePartnerCommand) Areas() []kernel.Area {
	return c.areas
}

// Shift returns the new shift window.
func (c UpdatePartnerCommand) Shift() kernel.ShiftWindow {
	return c.shift
}

// Status returns the new partner status.
func (c UpdatePartnerCommand) Status() partner.Status {
	return c.status
}

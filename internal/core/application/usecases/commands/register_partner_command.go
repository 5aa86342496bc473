package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterPartnerCommandIsNotConstructed = errors.New(
	"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
)

// RegisterPartnerCommand represents a request to register a new delivery
// partner with their coverage areas and daily shift window.
//
// Example:
//
//	cmd, err := NewRegisterPartnerCommand(
//	    "Alex Smith", "alex@example.com", "+1-555-0100",
//	    []string{"South Zone", "North Zone"}, "09:00", "17:00",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	areas     []kernel.Area
	shift     kernel.ShiftWindow

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand creates a command to register a delivery partner.
// The partner identifier is generated at construction. Area labels are
// normalized, and the shift window accepts "HH:mm" bounds that may wrap
// midnight.
func NewRegisterPartnerCommand(
	name string,
	email string,
	phone string,
	areaLabels []string,
	shiftStart string,
	shiftEnd string,
) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		partnerID: kernel.NewUUID(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAreas(areaLabels),
		cmd.setShift(shiftStart, shiftEnd),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterPartnerCommandIsNotConstructed if validation fails.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the generated unique identifier for the partner.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c RegisterPartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's unique email address.
func (c RegisterPartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner's contact phone.
func (c RegisterPartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the partner's normalized coverage areas.
func (c RegisterPartnerCommand) Areas() []kernel.Area {
	return c.areas
}

// Shift returns the partner's daily working window.
func (c RegisterPartnerCommand) Shift() kernel.ShiftWindow {
	return c.shift
}

func (c *RegisterPartnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterPartnerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterPartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *RegisterPartnerCommand) setAreas(labels []string) error {
	if len(labels) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}

	areas := make([]kernel.Area, 0, len(labels))
	for _, label := range labels {
		area, err := kernel.NewArea(label)
		if err != nil {
			return err
		}
		areas = append(areas, area)
	}

	c.areas = areas
	return nil
}

func (c *RegisterPartnerCommand) setShift(start, end string) error {
	startTod, err := kernel.NewTimeOfDay(start)
	if err != nil {
		return err
	}
	endTod, err := kernel.NewTimeOfDay(end)
	if err != nil {
		return err
	}

	shift, err := kernel.NewShiftWindow(startTod, endTod)
	if err != nil {
		return err
	}

	c.shift = shift
	return nil
}

package partner

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// MaxConcurrentOrders is the capacity ceiling: the maximum number of
// concurrently assigned, not-yet-completed orders a partner may hold.
const MaxConcurrentOrders = 3

// Domain errors for partner operations.
var (
	// ErrPartnerIsNotConstructed is returned when using an improperly
	// initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrCapacityExceeded is returned when a partner at the capacity ceiling
	// is asked to take another order.
	ErrCapacityExceeded = errors.New("partner is already at maximum concurrent orders")
	// ErrNoOrdersInProgress is returned when completing or cancelling an
	// order for a partner whose current load is zero.
	ErrNoOrdersInProgress = errors.New("partner has no orders in progress")
)

// Metrics accumulates a partner's delivery history.
type Metrics struct {
	Rating          float64
	CompletedOrders int
	CancelledOrders int
}

// Partner is the aggregate root for a delivery partner: a worker who covers
// a declared set of areas during a daily shift window and carries up to
// MaxConcurrentOrders orders at a time.
//
// currentLoad is maintained transactionally alongside order status writes:
// TakeOrder increments it, CompleteOrder and CancelOrder decrement it, so it
// always equals the number of the partner's orders in assigned or picked
// state.
type Partner struct {
	id          kernel.UUID
	name        string
	email       string
	phone       string
	status      Status
	currentLoad int
	areas       []kernel.Area
	shift       kernel.ShiftWindow
	metrics     Metrics
	version     int

	isConstructed bool
}

// NewPartner registers a new, active partner with zero load and empty metrics.
func NewPartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	areas []kernel.Area,
	shift kernel.ShiftWindow,
) (*Partner, error) {
	p := &Partner{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setAreas(areas),
		p.setShift(shift),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner rehydrates a partner from persistence.
func RestorePartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	status Status,
	currentLoad int,
	areas []kernel.Area,
	shift kernel.ShiftWindow,
	metrics Metrics,
	version int,
) (*Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if currentLoad < 0 || currentLoad > MaxConcurrentOrders {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, MaxConcurrentOrders)
	}
	if err := shift.Validate(); err != nil {
		return nil, err
	}

	return &Partner{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		status:        status,
		currentLoad:   currentLoad,
		areas:         areas,
		shift:         shift,
		metrics:       metrics,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the partner was created through a constructor.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by identity.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's unique email address.
func (p *Partner) Email() string {
	return p.email
}

// Phone returns the partner's contact phone.
func (p *Partner) Phone() string {
	return p.phone
}

// Status returns whether the partner is active.
func (p *Partner) Status() Status {
	return p.status
}

// CurrentLoad returns the number of orders currently in progress.
func (p *Partner) CurrentLoad() int {
	return p.currentLoad
}

// Areas returns a copy of the partner's coverage areas.
func (p *Partner) Areas() []kernel.Area {
	areas := make([]kernel.Area, len(p.areas))
	copy(areas, p.areas)
	return areas
}

// Shift returns the partner's daily working window.
func (p *Partner) Shift() kernel.ShiftWindow {
	return p.shift
}

// Metrics returns the partner's cumulative delivery metrics.
func (p *Partner) Metrics() Metrics {
	return p.metrics
}

// Version returns the optimistic concurrency version loaded from storage.
func (p *Partner) Version() int {
	return p.version
}

// IsActive reports whether the partner accepts assignments.
func (p *Partner) IsActive() bool {
	return p.status == StatusActive
}

// HasCapacity reports whether the partner is below the capacity ceiling.
func (p *Partner) HasCapacity() bool {
	return p.currentLoad < MaxConcurrentOrders
}

// CoversArea reports whether the given area is in the partner's coverage set.
// Comparison uses the normalized area key.
func (p *Partner) CoversArea(area kernel.Area) bool {
	for _, a := range p.areas {
		if a.IsEqual(area) {
			return true
		}
	}
	return false
}

// OnShift reports whether now falls inside the partner's shift window,
// honoring windows that wrap midnight.
func (p *Partner) OnShift(now kernel.TimeOfDay) bool {
	return p.shift.Contains(now)
}

// TakeOrder increments the partner's load after a capacity check.
// Returns ErrCapacityExceeded when the partner is already at the ceiling.
func (p *Partner) TakeOrder() error {
	if !p.HasCapacity() {
		return ErrCapacityExceeded
	}
	p.currentLoad++
	return nil
}

// CompleteOrder records a delivered order: load goes down, completed count
// goes up.
func (p *Partner) CompleteOrder() error {
	if p.currentLoad == 0 {
		return ErrNoOrdersInProgress
	}
	p.currentLoad--
	p.metrics.CompletedOrders++
	return nil
}

// CancelOrder records a cancelled order: load goes down, cancelled count
// goes up.
func (p *Partner) CancelOrder() error {
	if p.currentLoad == 0 {
		return ErrNoOrdersInProgress
	}
	p.currentLoad--
	p.metrics.CancelledOrders++
	return nil
}

// Activate makes the partner eligible for new assignments.
func (p *Partner) Activate() {
	p.status = StatusActive
}

// Deactivate excludes the partner from matching. In-progress orders are
// unaffected.
func (p *Partner) Deactivate() {
	p.status = StatusInactive
}

// ChangePhone updates the partner's contact phone.
func (p *Partner) ChangePhone(phone string) error {
	return p.setPhone(phone)
}

// ChangeAreas replaces the partner's coverage areas.
func (p *Partner) ChangeAreas(areas []kernel.Area) error {
	return p.setAreas(areas)
}

// ChangeShift replaces the partner's shift window.
func (p *Partner) ChangeShift(shift kernel.ShiftWindow) error {
	return p.setShift(shift)
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *Partner) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

func (p *Partner) setAreas(areas []kernel.Area) error {
	if len(areas) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}
	for i, a := range areas {
		if err := a.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("areas[%d]", i), err,
			)
		}
	}
	p.areas = make([]kernel.Area, len(areas))
	copy(p.areas, areas)
	return nil
}

func (p *Partner) setShift(shift kernel.ShiftWindow) error {
	if err := shift.Validate(); err != nil {
		return err
	}
	p.shift = shift
	return nil
}

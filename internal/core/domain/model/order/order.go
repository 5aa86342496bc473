package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Customer holds the recipient contact details captured at order intake.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

func (c Customer) validate() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if c.Phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	if c.Address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	return nil
}

// Item is a single order line. Price is in minor currency units.
type Item struct {
	Name     string
	Quantity int
	Price    int64
}

func (i Item) validate() error {
	if i.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	if i.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%d is negative", i.Price))
	}
	return nil
}

// Order is the aggregate root for a delivery order. It owns the order's
// lifecycle from intake (Pending) through assignment to a delivery partner
// and on to a terminal state.
//
// Invariants:
//   - at most one assigned partner at any time
//   - status transitions follow the table in Status and never move backward
//   - total amount equals the sum of item price*quantity
type Order struct {
	id           kernel.UUID
	orderNumber  string
	customer     Customer
	area         kernel.Area
	items        []Item
	scheduledFor kernel.TimeOfDay
	status       Status
	partnerID    *kernel.UUID
	totalAmount  int64
	version      int

	isConstructed bool
}

// NewOrder creates a Pending order and computes its total from the items.
// All parameters are validated; construction fails on the first invalid one.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	area kernel.Area,
	items []Item,
	scheduledFor kernel.TimeOfDay,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setArea(area),
		o.setItems(items),
		o.setScheduledFor(scheduledFor),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without re-running intake
// validation, while still checking internal consistency between status and
// partner assignment.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	area kernel.Area,
	items []Item,
	scheduledFor kernel.TimeOfDay,
	status Status,
	partnerID *kernel.UUID,
	totalAmount int64,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHavePartner(partnerID != nil); err != nil {
		return nil, err
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		customer:      customer,
		area:          area,
		items:         items,
		scheduledFor:  scheduledFor,
		status:        status,
		partnerID:     partnerID,
		totalAmount:   totalAmount,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the recipient details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Area returns the delivery coverage area.
func (o *Order) Area() kernel.Area {
	return o.area
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ScheduledFor returns the planned delivery time of day.
func (o *Order) ScheduledFor() kernel.TimeOfDay {
	return o.scheduledFor
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned partner's ID, or nil when unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Version returns the optimistic concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// ValidateAssign reports whether a partner may currently be assigned.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign attaches a delivery partner and moves the order to Assigned.
// Fails when the partner ID is invalid or the order is not Pending.
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	return nil
}

// MarkPicked records that the partner collected the order.
func (o *Order) MarkPicked() error {
	newStatus, err := o.status.Pick()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered records successful delivery. Terminal.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkCancelled cancels an in-flight order. Terminal.
func (o *Order) MarkCancelled() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	o.area = area
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var total int64
	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
		total += item.Price * int64(item.Quantity)
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

func (o *Order) setScheduledFor(scheduledFor kernel.TimeOfDay) error {
	if err := scheduledFor.Validate(); err != nil {
		return err
	}
	o.scheduledFor = scheduledFor
	return nil
}

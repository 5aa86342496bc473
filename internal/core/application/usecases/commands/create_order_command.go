package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one order line as submitted by the caller. Price is in minor
// currency units.
type OrderItem struct {
	Name     string
	Quantity int
	Price    int64
}

// CreateOrderCommand represents a request to register a new delivery order.
// The order identifier and human-readable order number are generated at
// construction so the caller can reference the order immediately.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "Jane Doe", "+1-555-0101", "12 Main St", "South Zone",
//	    []OrderItem{{Name: "Margherita", Quantity: 1, Price: 899}},
//	    "12:30",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting assignment", cmd.OrderNumber())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNumber  string
	customer     order.Customer
	area         kernel.Area
	items        []OrderItem
	scheduledFor kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates the customer details, area label, order lines, and the scheduled
// delivery time ("HH:mm"). Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerName string,
	customerPhone string,
	customerAddress string,
	areaLabel string,
	items []OrderItem,
	scheduledFor string,
) (CreateOrderCommand, error) {
	orderID := kernel.NewUUID()
	cmd := CreateOrderCommand{
		orderID:     orderID,
		orderNumber: generateOrderNumber(orderID),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customerName, customerPhone, customerAddress),
		cmd.setArea(areaLabel),
		cmd.setItems(items),
		cmd.setScheduledFor(scheduledFor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the generated human-readable order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Customer returns the recipient contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Area returns the delivery coverage area.
func (c CreateOrderCommand) Area() kernel.Area {
	return c.area
}

// Items returns the submitted order lines.
func (c CreateOrderCommand) Items() []OrderItem {
	return c.items
}

// ScheduledFor returns the planned delivery time of day.
func (c CreateOrderCommand) ScheduledFor() kernel.TimeOfDay {
	return c.scheduledFor
}

func (c *CreateOrderCommand) setCustomer(name, phone, address string) error {
	customer := order.Customer{Name: name, Phone: phone, Address: address}
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setArea(label string) error {
	area, err := kernel.NewArea(label)
	if err != nil {
		return err
	}

	c.area = area
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setScheduledFor(scheduledFor string) error {
	tod, err := kernel.NewTimeOfDay(scheduledFor)
	if err != nil {
		return err
	}

	c.scheduledFor = tod
	return nil
}

// generateOrderNumber derives a human-readable order number from the creation
// date and the order's identifier, e.g. "ORD-20260831-9F3A21BC".
func generateOrderNumber(orderID kernel.UUID) string {
	return fmt.Sprintf(
		"ORD-%s-%s",
		time.Now().UTC().Format("20060102"),
		strings.ToUpper(orderID.String()[:8]),
	)
}

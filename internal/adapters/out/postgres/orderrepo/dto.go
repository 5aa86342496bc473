// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// AreaKey holds the normalized area label so matching and filtering never
// depend on the display casing. Version backs the optimistic concurrency
// check in Update.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"uniqueIndex;not null"`
	CustomerName    string     `gorm:"not null"`
	CustomerPhone   string     `gorm:"not null"`
	CustomerAddress string     `gorm:"not null"`
	AreaLabel       string     `gorm:"not null"`
	AreaKey         string     `gorm:"index;not null"`
	Items           []ItemDTO  `gorm:"serializer:json"`
	ScheduledFor    string     `gorm:"type:varchar(5);not null"`
	Status          int        `gorm:"index;not null"`
	PartnerID       *uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount     int64      `gorm:"not null"`
	Version         int        `gorm:"not null"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the JSON items column.
type ItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerName:    aggregate.Customer().Name,
		CustomerPhone:   aggregate.Customer().Phone,
		CustomerAddress: aggregate.Customer().Address,
		AreaLabel:       aggregate.Area().Label(),
		AreaKey:         aggregate.Area().Key(),
		Items:           items,
		ScheduledFor:    aggregate.ScheduledFor().String(),
		Status:          int(aggregate.Status()),
		PartnerID:       partnerID,
		TotalAmount:     aggregate.TotalAmount(),
		Version:         aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	area, err := kernel.NewArea(dto.AreaLabel)
	if err != nil {
		return nil, err
	}

	scheduledFor, err := kernel.NewTimeOfDay(dto.ScheduledFor)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Customer{
			Name:    dto.CustomerName,
			Phone:   dto.CustomerPhone,
			Address: dto.CustomerAddress,
		},
		area,
		items,
		scheduledFor,
		order.Status(dto.Status),
		partnerID,
		dto.TotalAmount,
		dto.Version,
	)
}

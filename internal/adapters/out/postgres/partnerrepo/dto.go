// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates. Coverage areas are stored as a JSON list of display labels;
// the normalized keys are recomputed on load. Version backs the optimistic
// concurrency check in Update.
type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	Email           string    `gorm:"uniqueIndex;not null"`
	Phone           string    `gorm:"not null"`
	Status          int       `gorm:"index;not null"`
	CurrentLoad     int       `gorm:"not null"`
	Areas           []string  `gorm:"serializer:json"`
	ShiftStart      string    `gorm:"type:varchar(5);not null"`
	ShiftEnd        string    `gorm:"type:varchar(5);not null"`
	Rating          float64   `gorm:"not null;default:0"`
	CompletedOrders int       `gorm:"not null;default:0"`
	CancelledOrders int       `gorm:"not null;default:0"`
	Version         int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(aggregate *partner.Partner) PartnerDTO {
	areas := make([]string, 0, len(aggregate.Areas()))
	for _, area := range aggregate.Areas() {
		areas = append(areas, area.Label())
	}

	return PartnerDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Status:          int(aggregate.Status()),
		CurrentLoad:     aggregate.CurrentLoad(),
		Areas:           areas,
		ShiftStart:      aggregate.Shift().Start().String(),
		ShiftEnd:        aggregate.Shift().End().String(),
		Rating:          aggregate.Metrics().Rating,
		CompletedOrders: aggregate.Metrics().CompletedOrders,
		CancelledOrders: aggregate.Metrics().CancelledOrders,
		Version:         aggregate.Version(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	areas := make([]kernel.Area, 0, len(dto.Areas))
	for _, label := range dto.Areas {
		area, areaErr := kernel.NewArea(label)
		if areaErr != nil {
			return nil, areaErr
		}
		areas = append(areas, area)
	}

	start, err := kernel.NewTimeOfDay(dto.ShiftStart)
	if err != nil {
		return nil, err
	}
	end, err := kernel.NewTimeOfDay(dto.ShiftEnd)
	if err != nil {
		return nil, err
	}
	shift, err := kernel.NewShiftWindow(start, end)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		partner.Status(dto.Status),
		dto.CurrentLoad,
		areas,
		shift,
		partner.Metrics{
			Rating:          dto.Rating,
			CompletedOrders: dto.CompletedOrders,
			CancelledOrders: dto.CancelledOrders,
		},
		dto.Version,
	)
}

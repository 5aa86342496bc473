package queries

import (
	"context"
	"encoding/json"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnersQueryHandler lists the partner roster ordered by registration
// time.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for partner roster queries.
// Requires a GORM database connection for query execution.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle executes the roster query.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) ([]GetPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			status,
			current_load,
			areas,
			shift_start,
			shift_end,
			rating,
			completed_orders,
			cancelled_orders
		FROM partners
		ORDER BY created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetPartnersQueryResponse
		var id uuid.UUID
		var status int
		var areasJSON []byte

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Email,
			&row.Phone,
			&status,
			&row.CurrentLoad,
			&areasJSON,
			&row.ShiftStart,
			&row.ShiftEnd,
			&row.Rating,
			&row.CompletedOrders,
			&row.CancelledOrders,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = partnerID

		if len(areasJSON) > 0 {
			if err = json.Unmarshal(areasJSON, &row.Areas); err != nil {
				return nil, err
			}
		}

		row.Status = partner.Status(status)
		partners = append(partners, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

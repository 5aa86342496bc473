package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders for dashboards and operator tooling,
// newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query with the query's optional filters.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			customer_name,
			area_label,
			status,
			partner_id,
			total_amount,
			scheduled_for,
			created_at
		FROM orders
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, int(*status))
	}
	if areaKey := query.AreaKey(); areaKey != "" {
		sql += " AND area_key = ?"
		args = append(args, areaKey)
	}
	sql += " ORDER BY created_at DESC"

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrdersQueryResponse
		var id uuid.UUID
		var partnerID uuid.NullUUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&row.OrderNumber,
			&row.CustomerName,
			&row.Area,
			&status,
			&partnerID,
			&row.TotalAmount,
			&row.ScheduledFor,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID

		if partnerID.Valid {
			pID, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.PartnerID = &pID
		}

		row.Status = order.Status(status)
		row.CreatedAt = createdAt
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentHistoryQueryHandler reads recent ledger entries joined with
// order numbers and partner names, newest first.
type GetAssignmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentHistoryQueryHandler(db *gorm.DB) GetAssignmentHistoryQueryHandler {
	return GetAssignmentHistoryQueryHandler{db: db}
}

// Handle executes the history query over the query's time window.
// Partner data is left-joined: entries recorded without a partner keep a nil
// PartnerID and an empty PartnerName.
func (h GetAssignmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentHistoryQuery,
) ([]GetAssignmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from, to := query.Window()
	entries := make([]GetAssignmentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.order_id,
			o.order_number,
			a.partner_id,
			p.name,
			a.status,
			a.reason,
			a.created_at
		FROM assignment_attempts a
		JOIN orders o ON o.id = a.order_id
		LEFT JOIN partners p ON p.id = a.partner_id
		WHERE a.created_at >= ? AND a.created_at < ?
		ORDER BY a.created_at DESC
	`, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAssignmentHistoryQueryResponse
		var id, orderID uuid.UUID
		var partnerID uuid.NullUUID
		var partnerName sql.NullString
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&entry.OrderNumber,
			&partnerID,
			&partnerName,
			&status,
			&entry.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		attemptID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.AttemptID = attemptID

		entryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = entryOrderID

		if partnerID.Valid {
			pID, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.PartnerID = &pID
		}
		if partnerName.Valid {
			entry.PartnerName = partnerName.String
		}

		entry.Status = assignment.AttemptStatus(status)
		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

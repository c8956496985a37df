package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueShipmentsQueryHandler finds orders that have sat in a non-terminal
// status past the staleness threshold. Terminal orders are never overdue.
type GetOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue-shipment queries.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the overdue-shipments query.
// Results are sorted oldest first so the report leads with the worst cases.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]GetOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	overdue := make([]GetOverdueShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			updated_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)
			AND updated_at < ?
		ORDER BY updated_at
	`, order.Delivered, order.Cancelled, order.Returned, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOverdueShipmentsQueryResponse
		var id uuid.UUID
		var statusValue int

		if err = rows.Scan(&id, &statusValue, &entry.UpdatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = orderID
		entry.Status = order.Status(statusValue).String()
		overdue = append(overdue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}

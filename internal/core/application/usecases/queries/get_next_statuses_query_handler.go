package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetNextStatusesQueryHandler answers which statuses an order may move to.
// Reads only the current status from the database; the adjacency itself comes
// from the status catalog, so read and write paths can never disagree on what
// a legal move is.
type GetNextStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetNextStatusesQueryHandler creates a handler for next-status queries.
func NewGetNextStatusesQueryHandler(db *gorm.DB) GetNextStatusesQueryHandler {
	return GetNextStatusesQueryHandler{db: db}
}

// Handle executes the next-statuses query.
// Returns errs.ErrObjectNotFound if the order does not exist.
func (h GetNextStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetNextStatusesQuery,
) (GetNextStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextStatusesQueryResponse{}, err
	}

	var statusValue int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&statusValue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetNextStatusesQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetNextStatusesQueryResponse{}, err
	}

	status := order.Status(statusValue)
	next, err := status.NextStatuses()
	if err != nil {
		return GetNextStatusesQueryResponse{}, err
	}

	names := make([]string, 0, len(next))
	for _, candidate := range next {
		names = append(names, candidate.String())
	}

	return GetNextStatusesQueryResponse{
		OrderID:         query.OrderID(),
		CurrentStatus:   status.String(),
		NextStatuses:    names,
		CanUpdateStatus: len(names) > 0,
	}, nil
}

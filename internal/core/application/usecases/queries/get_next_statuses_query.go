package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetNextStatusesQueryIsNotConstructed = errors.New(
	"GetNextStatusesQuery must be created via NewGetNextStatusesQuery constructor",
)

// GetNextStatusesQuery retrieves the statuses an order may transition to next.
// Used by operator tooling to render only the legal moves.
type GetNextStatusesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNextStatusesQuery creates a query for an order's legal next statuses.
func NewGetNextStatusesQuery(orderID kernel.UUID) (GetNextStatusesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetNextStatusesQuery{}, err
	}

	return GetNextStatusesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNextStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetNextStatusesQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetNextStatusesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetNextStatusesQueryResponse lists the legal next statuses of an order.
// NextStatuses is empty and CanUpdateStatus false for terminal statuses.
type GetNextStatusesQueryResponse struct {
	OrderID         kernel.UUID
	CurrentStatus   string
	NextStatuses    []string
	CanUpdateStatus bool
}

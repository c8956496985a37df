package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
	"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
)

// GetOverdueShipmentsQuery retrieves orders stuck in a non-terminal status for
// longer than a threshold. Feeds the periodic overdue-shipment report.
type GetOverdueShipmentsQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query for orders whose last status
// change is older than the given duration. The duration must be positive.
func NewGetOverdueShipmentsQuery(olderThan time.Duration) (GetOverdueShipmentsQuery, error) {
	if olderThan <= 0 {
		return GetOverdueShipmentsQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetOverdueShipmentsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (q GetOverdueShipmentsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetOverdueShipmentsQueryResponse describes one overdue order.
type GetOverdueShipmentsQueryResponse struct {
	OrderID   kernel.UUID
	Status    string
	UpdatedAt time.Time
}

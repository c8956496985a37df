// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and the relational schema of
// the orders and order_transitions tables.
package orderrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row of an order aggregate.
// The status column is the target of the conditional write that serializes
// concurrent transitions; updated_at moves with every accepted transition and
// feeds the overdue-shipment report.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Status      int             `gorm:"index"`
	Transitions []TransitionDTO `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// TransitionDTO represents one row of the append-only transition log.
// Rows are insert-only; the auto-incremented ID preserves acceptance order.
type TransitionDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	FromStatus    int
	ToStatus      int
	WaybillNumber string
	TrackingURL   string
	Reason        string
	DeliveryDate  *time.Time
	DeliveryNotes string
	UpdatedBy     string
	OccurredAt    time.Time
}

// TableName specifies the database table name for transition log entries.
func (TransitionDTO) TableName() string {
	return "order_transitions"
}

// fromDomain converts an order aggregate to its database representation,
// including only the transitions appended in this unit of work.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Status:      int(aggregate.Status()),
		Transitions: transitionsFromDomain(aggregate.ID(), aggregate.AppendedTransitions()),
	}
}

func transitionsFromDomain(orderID kernel.UUID, transitions []order.Transition) []TransitionDTO {
	dtos := make([]TransitionDTO, 0, len(transitions))
	for _, t := range transitions {
		details := t.Details()
		dtos = append(dtos, TransitionDTO{
			OrderID:       orderID.Bytes(),
			FromStatus:    int(t.From()),
			ToStatus:      int(t.To()),
			WaybillNumber: details.WaybillNumber(),
			TrackingURL:   details.TrackingURL(),
			Reason:        details.Reason(),
			DeliveryDate:  details.DeliveryDate(),
			DeliveryNotes: details.DeliveryNotes(),
			UpdatedBy:     details.UpdatedBy(),
			OccurredAt:    t.OccurredAt(),
		})
	}
	return dtos
}

// toDomain converts database rows to an order aggregate, rebuilding the
// transition log in acceptance order via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transitions := make([]order.Transition, 0, len(dto.Transitions))
	for _, t := range dto.Transitions {
		details, detailsErr := detailsFromRow(t)
		if detailsErr != nil {
			return nil, detailsErr
		}

		transitions = append(transitions, order.RestoreTransition(
			order.Status(t.FromStatus),
			order.Status(t.ToStatus),
			details,
			t.OccurredAt,
		))
	}

	return order.RestoreOrder(id, order.Status(dto.Status), transitions)
}

func detailsFromRow(t TransitionDTO) (order.TransitionDetails, error) {
	opts := make([]order.TransitionDetailsOption, 0, 4)
	if t.WaybillNumber != "" {
		opts = append(opts, order.WithWaybillNumber(t.WaybillNumber))
	}
	if t.TrackingURL != "" {
		opts = append(opts, order.WithTrackingURL(t.TrackingURL))
	}
	if t.Reason != "" {
		opts = append(opts, order.WithReason(t.Reason))
	}
	if t.DeliveryDate != nil {
		opts = append(opts, order.WithDeliveryInfo(*t.DeliveryDate, t.DeliveryNotes))
	}

	return order.NewTransitionDetails(t.UpdatedBy, opts...)
}
